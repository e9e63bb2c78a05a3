package models

import "time"

const (
	UnlockTypeStandard  = "STANDARD"
	UnlockTypeExclusive = "EXCLUSIVE"
)

type Idea struct {
	ID           int64     `json:"id" db:"id"`
	CreatorID    int64     `json:"-" db:"creator_id"`
	Title        string    `json:"title" db:"title"`
	PriceInCents int64     `json:"price_in_cents" db:"price_in_cents"`
	Currency     string    `json:"currency" db:"currency"`
	UnlockType   string    `json:"unlock_type" db:"unlock_type"`
	Published    bool      `json:"published" db:"published"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
