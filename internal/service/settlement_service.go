package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/logger"
	"github.com/mysteryidea/ledgerd/internal/models"
	"github.com/mysteryidea/ledgerd/internal/notifier"
	"github.com/mysteryidea/ledgerd/internal/repository"
	"github.com/mysteryidea/ledgerd/internal/stripe"
	"go.uber.org/zap"
)

// SettlementService translates verified payment-provider events into
// ledger effects. Every handler is idempotent: redelivery of an event
// that already produced its effect is acknowledged without applying
// anything twice.
type SettlementService interface {
	HandleSettlement(ctx context.Context, settlement stripe.Settlement) error
	HandleCheckoutCompleted(ctx context.Context, settlement stripe.PurchaseSettlement) error
	HandleDeposit(ctx context.Context, settlement stripe.DepositSettlement) error
	HandleChargeRefunded(ctx context.Context, settlement stripe.RefundSettlement) error
	HandlePayoutAccountUpdate(ctx context.Context, update stripe.PayoutAccountUpdate) error
}

type settlementService struct {
	wallets   repository.WalletRepository
	purchases repository.PurchaseRepository
	ideas     repository.IdeaRepository
	users     repository.UserRepository
	notify    notifier.Notifier
}

func NewSettlementService(
	wallets repository.WalletRepository,
	purchases repository.PurchaseRepository,
	ideas repository.IdeaRepository,
	users repository.UserRepository,
	notify notifier.Notifier,
) SettlementService {
	return &settlementService{
		wallets:   wallets,
		purchases: purchases,
		ideas:     ideas,
		users:     users,
		notify:    notify,
	}
}

func (s *settlementService) HandleSettlement(ctx context.Context, settlement stripe.Settlement) error {
	switch v := settlement.(type) {
	case stripe.DepositSettlement:
		return s.HandleDeposit(ctx, v)
	case stripe.PurchaseSettlement:
		return s.HandleCheckoutCompleted(ctx, v)
	case stripe.RefundSettlement:
		return s.HandleChargeRefunded(ctx, v)
	case stripe.PayoutAccountUpdate:
		return s.HandlePayoutAccountUpdate(ctx, v)
	default:
		return fmt.Errorf("unknown settlement variant %T", settlement)
	}
}

// HandleDeposit credits the depositor's own wallet, keyed by the
// event's payment reference; a second delivery hits the unique
// reference constraint and is treated as success.
func (s *settlementService) HandleDeposit(ctx context.Context, settlement stripe.DepositSettlement) error {
	description := fmt.Sprintf("Wallet deposit of %s", FormatUSD(settlement.AmountInCents))
	err := s.wallets.Credit(ctx, settlement.UserID, models.TxTypeDeposit,
		settlement.AmountInCents, description, &settlement.PaymentRef)
	if errors.Is(err, apperrors.ErrDuplicateSettlement) {
		logger.Log.Info("duplicate deposit settlement ignored",
			zap.Int64("user", settlement.UserID),
			zap.String("payment_ref", settlement.PaymentRef))
		return nil
	}
	return err
}

// HandleCheckoutCompleted completes the pending purchase carrying the
// payment reference and credits the creator's net earnings.
func (s *settlementService) HandleCheckoutCompleted(ctx context.Context, settlement stripe.PurchaseSettlement) error {
	result, err := s.purchases.SettleByPaymentRef(ctx, settlement.PaymentRef)
	if errors.Is(err, apperrors.ErrPurchaseNotFound) {
		logger.Log.Warn("checkout completed for unknown purchase",
			zap.String("payment_ref", settlement.PaymentRef))
		return nil
	}
	if err != nil {
		return err
	}

	if !result.Applied {
		logger.Log.Info("purchase already settled",
			zap.Int64("purchase", result.Purchase.ID),
			zap.String("payment_ref", settlement.PaymentRef))
		return nil
	}

	logger.Log.Info("purchase settled",
		zap.Int64("purchase", result.Purchase.ID),
		zap.Int64("creator", result.CreatorID),
		zap.Int64("net_earnings_in_cents", result.Purchase.NetEarningsInCents()))

	s.sendPurchaseNotifications(ctx, result)
	return nil
}

// HandleChargeRefunded marks the purchase REFUNDED and claws back the
// creator's earning when the balance still covers it.
func (s *settlementService) HandleChargeRefunded(ctx context.Context, settlement stripe.RefundSettlement) error {
	result, err := s.purchases.RefundByPaymentRef(ctx, settlement.PaymentRef)
	if errors.Is(err, apperrors.ErrPurchaseNotFound) {
		logger.Log.Warn("refund for unknown purchase",
			zap.String("payment_ref", settlement.PaymentRef))
		return nil
	}
	if err != nil {
		return err
	}

	if !result.Applied {
		logger.Log.Info("purchase already refunded",
			zap.Int64("purchase", result.Purchase.ID),
			zap.String("payment_ref", settlement.PaymentRef))
		return nil
	}

	if result.ClawbackSkipped {
		logger.Log.Warn("refund clawback skipped: creator balance below earning",
			zap.Int64("purchase", result.Purchase.ID),
			zap.Int64("creator", result.CreatorID),
			zap.Int64("clawback_in_cents", result.Purchase.NetEarningsInCents()))
	}
	return nil
}

func (s *settlementService) HandlePayoutAccountUpdate(ctx context.Context, update stripe.PayoutAccountUpdate) error {
	if !update.ChargesEnabled {
		return nil
	}
	return s.users.MarkPayoutOnboarded(ctx, update.AccountID)
}

// sendPurchaseNotifications is fire-and-forget: the ledger mutation
// has already committed, so failures here are logged and swallowed.
func (s *settlementService) sendPurchaseNotifications(ctx context.Context, result repository.SettleResult) {
	purchase := result.Purchase

	buyer, err := s.users.GetByID(ctx, purchase.BuyerID)
	if err != nil {
		logger.Log.Error("notification skipped: buyer lookup failed", zap.Error(err))
		return
	}
	creator, err := s.users.GetByID(ctx, result.CreatorID)
	if err != nil {
		logger.Log.Error("notification skipped: creator lookup failed", zap.Error(err))
		return
	}
	idea, err := s.ideas.GetByID(ctx, purchase.IdeaID)
	if err != nil {
		logger.Log.Error("notification skipped: idea lookup failed", zap.Error(err))
		return
	}

	if err := s.notify.PurchaseConfirmed(ctx, buyer, idea, purchase); err != nil {
		logger.Log.Error("purchase confirmation failed", zap.Error(err))
	}
	if err := s.notify.SaleCompleted(ctx, creator, buyer, idea, purchase); err != nil {
		logger.Log.Error("sale notification failed", zap.Error(err))
	}
}
