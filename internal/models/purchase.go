package models

import "time"

const (
	PurchaseStatusPending   = "PENDING"
	PurchaseStatusCompleted = "COMPLETED"
	PurchaseStatusRefunded  = "REFUNDED"
	PurchaseStatusFailed    = "FAILED"
)

type Purchase struct {
	ID                 int64     `json:"id" db:"id"`
	BuyerID            int64     `json:"-" db:"buyer_id"`
	IdeaID             int64     `json:"idea_id" db:"idea_id"`
	AmountInCents      int64     `json:"amount_in_cents" db:"amount_in_cents"`
	PlatformFeeInCents int64     `json:"platform_fee_in_cents" db:"platform_fee_in_cents"`
	Status             string    `json:"status" db:"status"`
	PaymentRef         *string   `json:"-" db:"payment_ref"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"-" db:"updated_at"`
}

// NetEarningsInCents is the amount credited to the creator once the
// platform fee is taken.
func (p *Purchase) NetEarningsInCents() int64 {
	return p.AmountInCents - p.PlatformFeeInCents
}
