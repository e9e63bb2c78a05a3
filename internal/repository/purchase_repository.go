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

// SettleResult describes the outcome of applying an external payment
// event to a purchase. Applied is false when the event was a duplicate
// and nothing changed.
type SettleResult struct {
	Purchase        models.Purchase
	CreatorID       int64
	Applied         bool
	ClawbackSkipped bool
}

type WalletPurchaseInput struct {
	BuyerID            int64
	CreatorID          int64
	IdeaID             int64
	AmountInCents      int64
	PlatformFeeInCents int64
	ReferenceID        string
	Description        string
}

type PurchaseRepository interface {
	CreatePending(ctx context.Context, purchase *models.Purchase) error
	GetByBuyerAndIdea(ctx context.Context, buyerID, ideaID int64) (models.Purchase, error)
	CountCompletedForIdea(ctx context.Context, ideaID int64) (int64, error)
	ListCompletedByBuyer(ctx context.Context, buyerID int64) ([]models.Purchase, error)
	SettleByPaymentRef(ctx context.Context, paymentRef string) (SettleResult, error)
	RefundByPaymentRef(ctx context.Context, paymentRef string) (SettleResult, error)
	CreateWalletPurchase(ctx context.Context, input WalletPurchaseInput) (models.Purchase, error)
}

type purchaseRepo struct {
	db *sql.DB
}

func NewPurchaseRepository(db *sql.DB) PurchaseRepository {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) CreatePending(ctx context.Context, purchase *models.Purchase) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO purchases (buyer_id, idea_id, amount_in_cents, platform_fee_in_cents, status, payment_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, purchase.BuyerID, purchase.IdeaID, purchase.AmountInCents, purchase.PlatformFeeInCents,
		models.PurchaseStatusPending, purchase.PaymentRef,
	).Scan(&purchase.ID, &purchase.CreatedAt, &purchase.UpdatedAt)
	if isUniqueViolation(err, "purchases_buyer_id_idea_id_key") {
		return apperrors.ErrAlreadyPurchased
	}
	if err != nil {
		logger.Log.Error("failed to create pending purchase", zap.Error(err))
	}
	purchase.Status = models.PurchaseStatusPending
	return err
}

func (r *purchaseRepo) GetByBuyerAndIdea(ctx context.Context, buyerID, ideaID int64) (models.Purchase, error) {
	var p models.Purchase
	err := r.db.QueryRowContext(ctx, `
		SELECT id, buyer_id, idea_id, amount_in_cents, platform_fee_in_cents, status, payment_ref, created_at, updated_at
		FROM purchases WHERE buyer_id = $1 AND idea_id = $2
	`, buyerID, ideaID).Scan(&p.ID, &p.BuyerID, &p.IdeaID, &p.AmountInCents, &p.PlatformFeeInCents, &p.Status, &p.PaymentRef, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Purchase{}, apperrors.ErrPurchaseNotFound
	}
	return p, err
}

func (r *purchaseRepo) CountCompletedForIdea(ctx context.Context, ideaID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT count(*) FROM purchases WHERE idea_id = $1 AND status = $2
	`, ideaID, models.PurchaseStatusCompleted).Scan(&count)
	return count, err
}

func (r *purchaseRepo) ListCompletedByBuyer(ctx context.Context, buyerID int64) ([]models.Purchase, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, buyer_id, idea_id, amount_in_cents, platform_fee_in_cents, status, payment_ref, created_at, updated_at
		FROM purchases
		WHERE buyer_id = $1 AND status = $2
		ORDER BY created_at DESC
	`, buyerID, models.PurchaseStatusCompleted)
	if err != nil {
		logger.Log.Error("failed to query purchases", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.BuyerID, &p.IdeaID, &p.AmountInCents, &p.PlatformFeeInCents, &p.Status, &p.PaymentRef, &p.CreatedAt, &p.UpdatedAt); err != nil {
			logger.Log.Error("failed to scan purchase", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// SettleByPaymentRef moves a PENDING purchase to COMPLETED and credits
// the creator's net earnings, all in one transaction. The purchase row
// is locked first so a redelivered event observes the final status and
// applies nothing.
func (r *purchaseRepo) SettleByPaymentRef(ctx context.Context, paymentRef string) (SettleResult, error) {
	var result SettleResult
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		purchase, creatorID, err := lockPurchaseByRefTx(ctx, tx, paymentRef)
		if err != nil {
			return err
		}
		result.Purchase = purchase
		result.CreatorID = creatorID

		if purchase.Status != models.PurchaseStatusPending {
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE purchases SET status = $1, updated_at = now() WHERE id = $2
		`, models.PurchaseStatusCompleted, purchase.ID)
		if err != nil {
			return err
		}

		creatorWallet, err := lockWalletTx(ctx, tx, creatorID)
		if err != nil {
			return err
		}

		earningRef := earningReference(purchase.ID)
		err = creditWalletTx(ctx, tx, creatorWallet, models.TxTypeEarning, purchase.NetEarningsInCents(),
			fmt.Sprintf("Sale of idea #%d", purchase.IdeaID), &earningRef)
		if err != nil {
			return err
		}

		result.Purchase.Status = models.PurchaseStatusCompleted
		result.Applied = true
		return nil
	})
	return result, err
}

// RefundByPaymentRef moves a COMPLETED purchase to REFUNDED and claws
// the original net earnings back from the creator, unless the creator's
// balance no longer covers them; then the clawback is skipped so the
// balance is not driven negative, and the caller logs the gap.
func (r *purchaseRepo) RefundByPaymentRef(ctx context.Context, paymentRef string) (SettleResult, error) {
	var result SettleResult
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		purchase, creatorID, err := lockPurchaseByRefTx(ctx, tx, paymentRef)
		if err != nil {
			return err
		}
		result.Purchase = purchase
		result.CreatorID = creatorID

		if purchase.Status != models.PurchaseStatusCompleted {
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE purchases SET status = $1, updated_at = now() WHERE id = $2
		`, models.PurchaseStatusRefunded, purchase.ID)
		if err != nil {
			return err
		}

		result.Purchase.Status = models.PurchaseStatusRefunded
		result.Applied = true

		creatorWallet, err := lockWalletTx(ctx, tx, creatorID)
		if err != nil {
			return err
		}

		clawback := purchase.NetEarningsInCents()
		if creatorWallet.BalanceInCents < clawback {
			result.ClawbackSkipped = true
			return nil
		}

		refundRef := refundReference(purchase.ID)
		return debitWalletTx(ctx, tx, creatorWallet, models.TxTypeRefundDebit, clawback,
			fmt.Sprintf("Refund of sale of idea #%d", purchase.IdeaID), &refundRef)
	})
	return result, err
}

// CreateWalletPurchase is the compound wallet-to-wallet operation:
// debit the buyer, credit the creator and record a COMPLETED purchase
// in a single transaction, the two ledger entries sharing one
// reference id. The idea row is locked first to serialize competing
// purchases of the same idea, then both wallets are locked in
// ascending wallet-id order.
func (r *purchaseRepo) CreateWalletPurchase(ctx context.Context, input WalletPurchaseInput) (models.Purchase, error) {
	var purchase models.Purchase
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var unlockType string
		err := tx.QueryRowContext(ctx, `
			SELECT unlock_type FROM ideas WHERE id = $1 FOR UPDATE
		`, input.IdeaID).Scan(&unlockType)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrIdeaNotFound
		}
		if err != nil {
			return err
		}

		if unlockType == models.UnlockTypeExclusive {
			var completed int64
			err = tx.QueryRowContext(ctx, `
				SELECT count(*) FROM purchases WHERE idea_id = $1 AND status = $2
			`, input.IdeaID, models.PurchaseStatusCompleted).Scan(&completed)
			if err != nil {
				return err
			}
			if completed > 0 {
				return apperrors.ErrExclusiveAlreadyClaimed
			}
		}

		buyerWallet, creatorWallet, err := lockWalletPairTx(ctx, tx, input.BuyerID, input.CreatorID)
		if err != nil {
			return err
		}

		if buyerWallet.BalanceInCents < input.AmountInCents {
			return apperrors.ErrInsufficientFunds
		}

		purchase = models.Purchase{
			BuyerID:            input.BuyerID,
			IdeaID:             input.IdeaID,
			AmountInCents:      input.AmountInCents,
			PlatformFeeInCents: input.PlatformFeeInCents,
			Status:             models.PurchaseStatusCompleted,
			PaymentRef:         &input.ReferenceID,
		}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO purchases (buyer_id, idea_id, amount_in_cents, platform_fee_in_cents, status, payment_ref)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`, purchase.BuyerID, purchase.IdeaID, purchase.AmountInCents, purchase.PlatformFeeInCents,
			purchase.Status, purchase.PaymentRef,
		).Scan(&purchase.ID, &purchase.CreatedAt, &purchase.UpdatedAt)
		if isUniqueViolation(err, "purchases_buyer_id_idea_id_key") {
			return apperrors.ErrAlreadyPurchased
		}
		if err != nil {
			return err
		}

		err = debitWalletTx(ctx, tx, buyerWallet, models.TxTypePurchase, input.AmountInCents, input.Description, &input.ReferenceID)
		if err != nil {
			return err
		}

		return creditWalletTx(ctx, tx, creatorWallet, models.TxTypeEarning,
			input.AmountInCents-input.PlatformFeeInCents,
			fmt.Sprintf("Sale of idea #%d", input.IdeaID), &input.ReferenceID)
	})
	if err != nil {
		return models.Purchase{}, err
	}
	return purchase, nil
}

func lockPurchaseByRefTx(ctx context.Context, tx *sql.Tx, paymentRef string) (models.Purchase, int64, error) {
	var (
		p         models.Purchase
		creatorID int64
	)
	err := tx.QueryRowContext(ctx, `
		SELECT p.id, p.buyer_id, p.idea_id, p.amount_in_cents, p.platform_fee_in_cents, p.status, p.payment_ref,
		       p.created_at, p.updated_at, i.creator_id
		FROM purchases p
		JOIN ideas i ON i.id = p.idea_id
		WHERE p.payment_ref = $1
		FOR UPDATE OF p
	`, paymentRef).Scan(&p.ID, &p.BuyerID, &p.IdeaID, &p.AmountInCents, &p.PlatformFeeInCents, &p.Status, &p.PaymentRef,
		&p.CreatedAt, &p.UpdatedAt, &creatorID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Purchase{}, 0, apperrors.ErrPurchaseNotFound
	}
	return p, creatorID, err
}

// lockWalletPairTx locks two users' wallets for the transaction,
// always in ascending wallet-id order to avoid deadlock.
func lockWalletPairTx(ctx context.Context, tx *sql.Tx, buyerUserID, creatorUserID int64) (buyer, creator models.Wallet, err error) {
	for _, userID := range []int64{buyerUserID, creatorUserID} {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO wallets (user_id) VALUES ($1)
			ON CONFLICT (user_id) DO NOTHING
		`, userID)
		if err != nil {
			return
		}
	}

	var buyerWalletID, creatorWalletID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM wallets WHERE user_id = $1`, buyerUserID).Scan(&buyerWalletID)
	if err != nil {
		return
	}
	err = tx.QueryRowContext(ctx, `SELECT id FROM wallets WHERE user_id = $1`, creatorUserID).Scan(&creatorWalletID)
	if err != nil {
		return
	}

	first, second := buyerWalletID, creatorWalletID
	if second < first {
		first, second = second, first
	}

	wallets := make(map[int64]models.Wallet, 2)
	for _, walletID := range []int64{first, second} {
		var w models.Wallet
		err = tx.QueryRowContext(ctx, `
			SELECT id, user_id, balance_in_cents, total_earned_in_cents, total_withdrawn_in_cents, created_at, updated_at
			FROM wallets WHERE id = $1
			FOR UPDATE
		`, walletID).Scan(&w.ID, &w.UserID, &w.BalanceInCents, &w.TotalEarnedInCents, &w.TotalWithdrawnInCents, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return
		}
		wallets[walletID] = w
	}

	return wallets[buyerWalletID], wallets[creatorWalletID], nil
}

func earningReference(purchaseID int64) string {
	return fmt.Sprintf("purchase:%d", purchaseID)
}

func refundReference(purchaseID int64) string {
	return fmt.Sprintf("refund:%d", purchaseID)
}

func (r *purchaseRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
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
