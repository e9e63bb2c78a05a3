package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/logger"
	"go.uber.org/zap"
)

type connectResponse struct {
	URL string `json:"url"`
}

// ConnectPayoutAccount provisions (or reuses) the caller's payout
// account and returns the hosted onboarding URL.
func (h *Handler) ConnectPayoutAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	url, err := h.userService.ConnectPayoutAccount(r.Context(), user)
	if err != nil {
		http.Error(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		logger.Log.Error("payout connect failed", zap.Int64("user", user.ID), zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(connectResponse{URL: url})
}
