package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mysteryidea/ledgerd/internal/logger"
	"github.com/mysteryidea/ledgerd/internal/stripe"
	"go.uber.org/zap"
)

const maxWebhookBodyBytes = 1 << 20

type webhookResponse struct {
	Received bool `json:"received"`
}

// StripeWebhook is the settlement boundary: verify the signature,
// decode the event into its ledger meaning, apply it. Unhandled event
// types and duplicates are acknowledged so the provider stops
// retrying; only real failures return 5xx.
func (h *Handler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if err := stripe.VerifySignature(body, signature, h.stripeWebhookSecret, stripe.DefaultSignatureTolerance); err != nil {
		logger.Log.Warn("webhook signature rejected", zap.Error(err))
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	}

	event, err := stripe.ParseEvent(body)
	if err != nil {
		http.Error(w, "malformed event", http.StatusBadRequest)
		return
	}

	settlement, err := stripe.DecodeSettlement(event)
	if errors.Is(err, stripe.ErrUnhandledEvent) {
		h.writeReceived(w)
		return
	}
	if err != nil {
		logger.Log.Warn("webhook event rejected", zap.String("type", event.Type), zap.Error(err))
		http.Error(w, "malformed event", http.StatusBadRequest)
		return
	}

	if err := h.settlementService.HandleSettlement(r.Context(), settlement); err != nil {
		logger.Log.Error("settlement failed", zap.String("event", event.ID), zap.Error(err))
		http.Error(w, "settlement failed", http.StatusInternalServerError)
		return
	}

	h.writeReceived(w)
}

type identityEvent struct {
	Type string `json:"type"`
	Data struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"data"`
}

// IdentityWebhook mirrors identity-provider users into the local
// mapping so ledger rows can reference them.
func (h *Handler) IdentityWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("Identity-Signature")
	if err := stripe.VerifySignature(body, signature, h.identityWebhookSecret, stripe.DefaultSignatureTolerance); err != nil {
		logger.Log.Warn("identity webhook signature rejected", zap.Error(err))
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	}

	var event identityEvent
	if err := json.Unmarshal(body, &event); err != nil {
		http.Error(w, "malformed event", http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "user.created", "user.updated":
		if event.Data.ID == "" {
			http.Error(w, "malformed event", http.StatusBadRequest)
			return
		}
		if _, err := h.userService.SyncUser(r.Context(), event.Data.ID, event.Data.Email, event.Data.Name); err != nil {
			logger.Log.Error("user sync failed", zap.String("external_id", event.Data.ID), zap.Error(err))
			http.Error(w, "user sync failed", http.StatusInternalServerError)
			return
		}
	default:
		// user.deleted and anything else is acknowledged; ledger rows
		// are kept for the audit trail.
	}

	h.writeReceived(w)
}

func (h *Handler) writeReceived(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(webhookResponse{Received: true})
}
