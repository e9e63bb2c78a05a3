package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/logger"
	"github.com/mysteryidea/ledgerd/internal/models"
	"go.uber.org/zap"
)

type WalletRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (models.Wallet, error)
	GetActivity(ctx context.Context, userID int64, txLimit int) (models.WalletActivity, error)
	Credit(ctx context.Context, userID int64, txType string, amount int64, description string, referenceID *string) error
	Debit(ctx context.Context, userID int64, txType string, amount int64, description string, referenceID *string) error
	Withdraw(ctx context.Context, userID int64, amount int64, description string) error
}

type walletRepo struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) WalletRepository {
	return &walletRepo{db: db}
}

func (r *walletRepo) GetOrCreate(ctx context.Context, userID int64) (models.Wallet, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wallets (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		logger.Log.Error("failed to upsert wallet", zap.Int64("user", userID), zap.Error(err))
		return models.Wallet{}, err
	}

	var w models.Wallet
	err = r.db.QueryRowContext(ctx, `
		SELECT id, user_id, balance_in_cents, total_earned_in_cents, total_withdrawn_in_cents, created_at, updated_at
		FROM wallets WHERE user_id = $1
	`, userID).Scan(&w.ID, &w.UserID, &w.BalanceInCents, &w.TotalEarnedInCents, &w.TotalWithdrawnInCents, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		logger.Log.Error("failed to get wallet", zap.Int64("user", userID), zap.Error(err))
		return models.Wallet{}, err
	}
	return w, nil
}

func (r *walletRepo) GetActivity(ctx context.Context, userID int64, txLimit int) (models.WalletActivity, error) {
	wallet, err := r.GetOrCreate(ctx, userID)
	if err != nil {
		return models.WalletActivity{}, err
	}

	activity := models.WalletActivity{Wallet: wallet}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, wallet_id, type, amount_in_cents, description, reference_id, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, wallet.ID, txLimit)
	if err != nil {
		logger.Log.Error("failed to query transactions", zap.Error(err))
		return models.WalletActivity{}, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	for rows.Next() {
		var t models.WalletTransaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Type, &t.AmountInCents, &t.Description, &t.ReferenceID, &t.CreatedAt); err != nil {
			logger.Log.Error("failed to scan transaction", zap.Error(err))
			return models.WalletActivity{}, err
		}
		activity.Transactions = append(activity.Transactions, t)
	}
	if err := rows.Err(); err != nil {
		return models.WalletActivity{}, err
	}

	wrows, err := r.db.QueryContext(ctx, `
		SELECT id, wallet_id, amount_in_cents, status, created_at, updated_at
		FROM withdrawal_requests
		WHERE wallet_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 10
	`, wallet.ID)
	if err != nil {
		logger.Log.Error("failed to query withdrawal requests", zap.Error(err))
		return models.WalletActivity{}, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(wrows)

	for wrows.Next() {
		var wr models.WithdrawalRequest
		if err := wrows.Scan(&wr.ID, &wr.WalletID, &wr.AmountInCents, &wr.Status, &wr.CreatedAt, &wr.UpdatedAt); err != nil {
			logger.Log.Error("failed to scan withdrawal request", zap.Error(err))
			return models.WalletActivity{}, err
		}
		activity.Withdrawals = append(activity.Withdrawals, wr)
	}
	if err := wrows.Err(); err != nil {
		return models.WalletActivity{}, err
	}

	return activity, nil
}

func (r *walletRepo) Credit(ctx context.Context, userID int64, txType string, amount int64, description string, referenceID *string) error {
	if txType != models.TxTypeEarning && txType != models.TxTypeDeposit {
		return fmt.Errorf("credit with non-credit transaction type %q", txType)
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		wallet, err := lockWalletTx(ctx, tx, userID)
		if err != nil {
			return err
		}
		return creditWalletTx(ctx, tx, wallet, txType, amount, description, referenceID)
	})
}

func (r *walletRepo) Debit(ctx context.Context, userID int64, txType string, amount int64, description string, referenceID *string) error {
	if txType != models.TxTypePurchase && txType != models.TxTypeRefundDebit {
		return fmt.Errorf("debit with non-debit transaction type %q", txType)
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		wallet, err := lockWalletTx(ctx, tx, userID)
		if err != nil {
			return err
		}
		return debitWalletTx(ctx, tx, wallet, txType, amount, description, referenceID)
	})
}

// Withdraw debits the balance, bumps the lifetime withdrawn counter,
// appends a WITHDRAWAL entry and opens a PENDING payout request as one
// unit. The partial unique index on open requests rejects a second
// in-flight withdrawal for the same wallet.
func (r *walletRepo) Withdraw(ctx context.Context, userID int64, amount int64, description string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		wallet, err := lockWalletTx(ctx, tx, userID)
		if err != nil {
			return err
		}

		if wallet.BalanceInCents < amount {
			return apperrors.ErrInsufficientFunds
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO withdrawal_requests (wallet_id, amount_in_cents)
			VALUES ($1, $2)
		`, wallet.ID, amount)
		if isUniqueViolation(err, "idx_withdrawal_requests_single_open") {
			return apperrors.ErrPendingWithdrawalExists
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE wallets
			SET balance_in_cents = balance_in_cents - $1,
			    total_withdrawn_in_cents = total_withdrawn_in_cents + $1,
			    updated_at = now()
			WHERE id = $2
		`, amount, wallet.ID)
		if err != nil {
			return err
		}

		return appendTransactionTx(ctx, tx, wallet.ID, models.TxTypeWithdrawal, amount, description, nil)
	})
}

func (r *walletRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	err = tx.Commit()
	return err
}
