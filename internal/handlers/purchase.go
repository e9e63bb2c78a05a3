package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/logger"
	"go.uber.org/zap"
)

type checkoutRequest struct {
	IdeaID int64 `json:"idea_id" validate:"required,gt=0"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

type verifyResponse struct {
	Purchased bool `json:"purchased"`
}

func (h *Handler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	url, err := h.purchaseService.CreateCheckoutSession(r.Context(), user, req.IdeaID)
	if err != nil {
		h.writePurchaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(checkoutResponse{URL: url})
}

func (h *Handler) PurchaseWithWallet(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	purchase, err := h.purchaseService.PurchaseWithWallet(r.Context(), user, req.IdeaID)
	if err != nil {
		h.writePurchaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(purchase)
}

func (h *Handler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	purchases, err := h.purchaseService.ListPurchases(r.Context(), user.ID)
	if err != nil {
		http.Error(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		logger.Log.Error("failed to list purchases", zap.Error(err))
		return
	}

	if len(purchases) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(purchases); err != nil {
		logger.Log.Error("failed to encode purchases json", zap.Error(err))
	}
}

func (h *Handler) VerifyPurchase(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	ideaID, err := strconv.ParseInt(chi.URLParam(r, "ideaID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid idea id", http.StatusBadRequest)
		return
	}

	purchased, err := h.purchaseService.VerifyPurchase(r.Context(), user.ID, ideaID)
	if err != nil {
		http.Error(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		logger.Log.Error("failed to verify purchase", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(verifyResponse{Purchased: purchased})
}

func (h *Handler) writePurchaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrIdeaNotFound):
		http.Error(w, "idea not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrIdeaNotPublished):
		http.Error(w, "idea is not published", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrOwnIdea):
		http.Error(w, "cannot buy your own idea", http.StatusConflict)
	case errors.Is(err, apperrors.ErrAlreadyPurchased):
		http.Error(w, "already purchased", http.StatusConflict)
	case errors.Is(err, apperrors.ErrExclusiveAlreadyClaimed):
		http.Error(w, "this exclusive idea has already been claimed", http.StatusConflict)
	case errors.Is(err, apperrors.ErrCreatorPayoutNotSetUp):
		http.Error(w, "creator payment account not set up", http.StatusConflict)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient wallet balance", http.StatusPaymentRequired)
	default:
		http.Error(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		logger.Log.Error("purchase error", zap.Error(err))
	}
}
