package models

import "time"

// Transaction types. The sign of an entry is implied by the type:
// EARNING and DEPOSIT credit the wallet, the rest debit it.
const (
	TxTypeEarning     = "EARNING"
	TxTypeWithdrawal  = "WITHDRAWAL"
	TxTypeRefundDebit = "REFUND_DEBIT"
	TxTypeDeposit     = "DEPOSIT"
	TxTypePurchase    = "PURCHASE"
)

const (
	WithdrawalStatusPending    = "PENDING"
	WithdrawalStatusProcessing = "PROCESSING"
	WithdrawalStatusCompleted  = "COMPLETED"
	WithdrawalStatusRejected   = "REJECTED"
)

type Wallet struct {
	ID                    int64     `json:"-" db:"id"`
	UserID                int64     `json:"-" db:"user_id"`
	BalanceInCents        int64     `json:"balance_in_cents" db:"balance_in_cents"`
	TotalEarnedInCents    int64     `json:"total_earned_in_cents" db:"total_earned_in_cents"`
	TotalWithdrawnInCents int64     `json:"total_withdrawn_in_cents" db:"total_withdrawn_in_cents"`
	CreatedAt             time.Time `json:"-" db:"created_at"`
	UpdatedAt             time.Time `json:"-" db:"updated_at"`
}

// WalletTransaction is an append-only ledger entry. Rows are never
// updated or deleted; the wallet counters must stay reconstructible by
// replaying a wallet's entries from zero.
type WalletTransaction struct {
	ID            int64     `json:"id" db:"id"`
	WalletID      int64     `json:"-" db:"wallet_id"`
	Type          string    `json:"type" db:"type"`
	AmountInCents int64     `json:"amount_in_cents" db:"amount_in_cents"`
	Description   string    `json:"description" db:"description"`
	ReferenceID   *string   `json:"reference_id,omitempty" db:"reference_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// SignedAmount is the entry's effect on the balance.
func (t *WalletTransaction) SignedAmount() int64 {
	switch t.Type {
	case TxTypeEarning, TxTypeDeposit:
		return t.AmountInCents
	default:
		return -t.AmountInCents
	}
}

type WithdrawalRequest struct {
	ID            int64     `json:"id" db:"id"`
	WalletID      int64     `json:"-" db:"wallet_id"`
	AmountInCents int64     `json:"amount_in_cents" db:"amount_in_cents"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"-" db:"updated_at"`
}

// WalletActivity is the wallet page payload: the wallet plus its most
// recent transactions and withdrawal requests.
type WalletActivity struct {
	Wallet       Wallet              `json:"wallet"`
	Transactions []WalletTransaction `json:"transactions"`
	Withdrawals  []WithdrawalRequest `json:"withdrawals"`
}
