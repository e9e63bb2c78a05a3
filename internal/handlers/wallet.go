package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/logger"
	"github.com/mysteryidea/ledgerd/internal/middleware"
	"github.com/mysteryidea/ledgerd/internal/models"
	"go.uber.org/zap"
)

type withdrawalRequest struct {
	AmountInCents int64 `json:"amount_in_cents" validate:"required,gt=0"`
}

type depositRequest struct {
	AmountInCents int64 `json:"amount_in_cents" validate:"required,gt=0"`
}

type depositResponse struct {
	URL string `json:"url"`
}

// currentUser resolves the authenticated identity-provider subject to
// the internal user.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	externalID, ok := middleware.GetExternalID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return models.User{}, false
	}

	user, err := h.userService.GetByExternalID(r.Context(), externalID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		http.Error(w, "user not found", http.StatusUnauthorized)
		return models.User{}, false
	}
	if err != nil {
		http.Error(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		logger.Log.Error("failed to resolve user", zap.Error(err))
		return models.User{}, false
	}
	return user, true
}

func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	wallet, err := h.walletService.GetOrCreateWallet(r.Context(), user.ID)
	if err != nil {
		http.Error(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		logger.Log.Error("failed to get wallet", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(wallet)
}

func (h *Handler) GetWalletActivity(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	txLimit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		txLimit = parsed
	}

	activity, err := h.walletService.GetWalletActivity(r.Context(), user.ID, txLimit)
	if err != nil {
		http.Error(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		logger.Log.Error("failed to get wallet activity", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(activity); err != nil {
		logger.Log.Error("failed to encode wallet activity json", zap.Error(err))
	}
}

func (h *Handler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req withdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := h.walletService.RequestWithdrawal(r.Context(), user, req.AmountInCents)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrPayoutAccountNotConnected):
		http.Error(w, "connect your payout account before withdrawing", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrMinimumNotMet):
		http.Error(w, "withdrawal amount is below the minimum", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	case errors.Is(err, apperrors.ErrPendingWithdrawalExists):
		http.Error(w, "a withdrawal request is already pending", http.StatusConflict)
	default:
		http.Error(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		logger.Log.Error("withdrawal error", zap.Error(err))
	}
}

func (h *Handler) CreateDepositSession(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	url, err := h.walletService.CreateDepositSession(r.Context(), user, req.AmountInCents)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(depositResponse{URL: url})
	case errors.Is(err, apperrors.ErrMinimumNotMet):
		http.Error(w, "deposit amount is below the minimum", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrMaximumExceeded):
		http.Error(w, "deposit amount is above the maximum", http.StatusBadRequest)
	default:
		http.Error(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		logger.Log.Error("deposit session error", zap.Error(err))
	}
}
