package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/models"
)

// Helpers shared by every ledger operation. Each mutation of a wallet
// goes through lockWalletTx first so concurrent operations against the
// same wallet serialize on the row lock, and appends exactly one
// wallet_transactions row before the surrounding transaction commits.

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return constraint == "" || pgErr.ConstraintName == constraint
	}
	return false
}

// lockWalletTx materializes the user's wallet if needed and returns it
// locked for the rest of the transaction.
func lockWalletTx(ctx context.Context, tx *sql.Tx, userID int64) (models.Wallet, error) {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO wallets (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return models.Wallet{}, err
	}

	var w models.Wallet
	err = tx.QueryRowContext(ctx, `
		SELECT id, user_id, balance_in_cents, total_earned_in_cents, total_withdrawn_in_cents, created_at, updated_at
		FROM wallets WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&w.ID, &w.UserID, &w.BalanceInCents, &w.TotalEarnedInCents, &w.TotalWithdrawnInCents, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return models.Wallet{}, err
	}
	return w, nil
}

func appendTransactionTx(ctx context.Context, tx *sql.Tx, walletID int64, txType string, amount int64, description string, referenceID *string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO wallet_transactions (wallet_id, type, amount_in_cents, description, reference_id)
		VALUES ($1, $2, $3, $4, $5)
	`, walletID, txType, amount, description, referenceID)
	if isUniqueViolation(err, "idx_wallet_transactions_settlement_ref") {
		return apperrors.ErrDuplicateSettlement
	}
	return err
}

// creditWalletTx adds amount to an already-locked wallet. Earning
// credits also bump the lifetime earned counter.
func creditWalletTx(ctx context.Context, tx *sql.Tx, wallet models.Wallet, txType string, amount int64, description string, referenceID *string) error {
	earned := int64(0)
	if txType == models.TxTypeEarning {
		earned = amount
	}

	_, err := tx.ExecContext(ctx, `
		UPDATE wallets
		SET balance_in_cents = balance_in_cents + $1,
		    total_earned_in_cents = total_earned_in_cents + $2,
		    updated_at = now()
		WHERE id = $3
	`, amount, earned, wallet.ID)
	if err != nil {
		return err
	}

	return appendTransactionTx(ctx, tx, wallet.ID, txType, amount, description, referenceID)
}

// debitWalletTx subtracts amount from an already-locked wallet,
// failing closed when the balance does not cover it.
func debitWalletTx(ctx context.Context, tx *sql.Tx, wallet models.Wallet, txType string, amount int64, description string, referenceID *string) error {
	if wallet.BalanceInCents < amount {
		return apperrors.ErrInsufficientFunds
	}

	_, err := tx.ExecContext(ctx, `
		UPDATE wallets
		SET balance_in_cents = balance_in_cents - $1,
		    updated_at = now()
		WHERE id = $2
	`, amount, wallet.ID)
	if err != nil {
		return err
	}

	return appendTransactionTx(ctx, tx, wallet.ID, txType, amount, description, referenceID)
}
