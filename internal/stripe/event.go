package stripe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventChargeRefunded    = "charge.refunded"
	EventAccountUpdated    = "account.updated"

	metadataTypeDeposit = "wallet_deposit"
)

// ErrUnhandledEvent marks event types the ledger does not react to;
// the webhook acknowledges them without doing anything.
var ErrUnhandledEvent = errors.New("unhandled event type")

type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

func ParseEvent(payload []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return Event{}, fmt.Errorf("malformed event payload: %w", err)
	}
	if ev.Type == "" || len(ev.Data.Object) == 0 {
		return Event{}, errors.New("malformed event payload: missing type or object")
	}
	return ev, nil
}

// Settlement is what an external event means to the ledger, decoded at
// the boundary. Loosely typed provider metadata either decodes cleanly
// into one of the variants or the event is rejected.
type Settlement interface {
	settlement()
}

// DepositSettlement credits a buyer's own wallet top-up.
type DepositSettlement struct {
	UserID        int64
	AmountInCents int64
	PaymentRef    string
}

// PurchaseSettlement completes a pending checkout purchase.
type PurchaseSettlement struct {
	PaymentRef string
}

// RefundSettlement reverses a completed purchase.
type RefundSettlement struct {
	PaymentRef string
}

// PayoutAccountUpdate reports a creator's payout onboarding state.
type PayoutAccountUpdate struct {
	AccountID      string
	ChargesEnabled bool
}

func (DepositSettlement) settlement()   {}
func (PurchaseSettlement) settlement()  {}
func (RefundSettlement) settlement()    {}
func (PayoutAccountUpdate) settlement() {}

type checkoutSessionObject struct {
	ID            string            `json:"id"`
	PaymentIntent string            `json:"payment_intent"`
	AmountTotal   int64             `json:"amount_total"`
	Metadata      map[string]string `json:"metadata"`
}

type chargeObject struct {
	PaymentIntent string `json:"payment_intent"`
}

type accountObject struct {
	ID             string `json:"id"`
	ChargesEnabled bool   `json:"charges_enabled"`
}

// DecodeSettlement turns a verified event into its ledger meaning.
func DecodeSettlement(ev Event) (Settlement, error) {
	switch ev.Type {
	case EventCheckoutCompleted:
		var session checkoutSessionObject
		if err := json.Unmarshal(ev.Data.Object, &session); err != nil {
			return nil, fmt.Errorf("malformed checkout session: %w", err)
		}
		return decodeCheckoutSession(session)

	case EventChargeRefunded:
		var charge chargeObject
		if err := json.Unmarshal(ev.Data.Object, &charge); err != nil {
			return nil, fmt.Errorf("malformed charge: %w", err)
		}
		if charge.PaymentIntent == "" {
			return nil, errors.New("charge without payment intent")
		}
		return RefundSettlement{PaymentRef: charge.PaymentIntent}, nil

	case EventAccountUpdated:
		var account accountObject
		if err := json.Unmarshal(ev.Data.Object, &account); err != nil {
			return nil, fmt.Errorf("malformed account: %w", err)
		}
		if account.ID == "" {
			return nil, errors.New("account without id")
		}
		return PayoutAccountUpdate{AccountID: account.ID, ChargesEnabled: account.ChargesEnabled}, nil

	default:
		return nil, ErrUnhandledEvent
	}
}

func decodeCheckoutSession(session checkoutSessionObject) (Settlement, error) {
	paymentRef := session.PaymentIntent
	if paymentRef == "" {
		paymentRef = session.ID
	}
	if paymentRef == "" {
		return nil, errors.New("checkout session without payment reference")
	}

	if session.Metadata["type"] == metadataTypeDeposit {
		userID, err := strconv.ParseInt(session.Metadata["userId"], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("deposit session with bad userId: %w", err)
		}
		amount := session.AmountTotal
		if raw, ok := session.Metadata["amountInCents"]; ok {
			amount, err = strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("deposit session with bad amountInCents: %w", err)
			}
		}
		if amount <= 0 {
			return nil, errors.New("deposit session with non-positive amount")
		}
		return DepositSettlement{UserID: userID, AmountInCents: amount, PaymentRef: paymentRef}, nil
	}

	if session.Metadata["ideaId"] != "" && session.Metadata["buyerId"] != "" {
		return PurchaseSettlement{PaymentRef: paymentRef}, nil
	}

	return nil, errors.New("checkout session with unrecognized metadata")
}
