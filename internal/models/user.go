package models

import "time"

type User struct {
	ID              int64     `json:"-" db:"id"`
	ExternalID      string    `json:"-" db:"external_id"`
	Email           string    `json:"email" db:"email"`
	Name            string    `json:"name" db:"name"`
	PayoutAccountID *string   `json:"-" db:"payout_account_id"`
	PayoutOnboarded bool      `json:"-" db:"payout_onboarded"`
	CreatedAt       time.Time `json:"-" db:"created_at"`
}

// PayoutReady reports whether the user may receive external payouts.
func (u *User) PayoutReady() bool {
	return u.PayoutAccountID != nil && *u.PayoutAccountID != "" && u.PayoutOnboarded
}
