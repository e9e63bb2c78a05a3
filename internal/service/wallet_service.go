package service

import (
	"context"
	"fmt"

	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/models"
	"github.com/mysteryidea/ledgerd/internal/repository"
	"github.com/mysteryidea/ledgerd/internal/stripe"
)

// Policy bounds, in minor units.
const (
	MinWithdrawalInCents = 1000
	MinDepositInCents    = 500
	MaxDepositInCents    = 50000

	DefaultActivityLimit = 20
)

type WalletService interface {
	GetOrCreateWallet(ctx context.Context, userID int64) (models.Wallet, error)
	GetWalletActivity(ctx context.Context, userID int64, txLimit int) (models.WalletActivity, error)
	CreditWallet(ctx context.Context, userID int64, amountInCents int64, description string, referenceID *string) error
	CreditWalletForDeposit(ctx context.Context, userID int64, amountInCents int64, referenceID *string) error
	DebitWalletForPurchase(ctx context.Context, userID int64, amountInCents int64, description string, referenceID *string) error
	DebitWalletForRefund(ctx context.Context, userID int64, amountInCents int64, description string, referenceID *string) error
	RequestWithdrawal(ctx context.Context, user models.User, amountInCents int64) error
	CreateDepositSession(ctx context.Context, user models.User, amountInCents int64) (string, error)
}

type walletService struct {
	repo      repository.WalletRepository
	payments  stripe.ClientInterface
	publicURL string
}

func NewWalletService(repo repository.WalletRepository, payments stripe.ClientInterface, publicURL string) WalletService {
	return &walletService{
		repo:      repo,
		payments:  payments,
		publicURL: publicURL,
	}
}

func (s *walletService) GetOrCreateWallet(ctx context.Context, userID int64) (models.Wallet, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

func (s *walletService) GetWalletActivity(ctx context.Context, userID int64, txLimit int) (models.WalletActivity, error) {
	if txLimit <= 0 {
		txLimit = DefaultActivityLimit
	}
	return s.repo.GetActivity(ctx, userID, txLimit)
}

// CreditWallet is the earning credit: sale proceeds that also count
// toward the creator's lifetime earnings.
func (s *walletService) CreditWallet(ctx context.Context, userID int64, amountInCents int64, description string, referenceID *string) error {
	if amountInCents <= 0 {
		return apperrors.ErrInvalidRequest
	}
	return s.repo.Credit(ctx, userID, models.TxTypeEarning, amountInCents, description, referenceID)
}

// CreditWalletForDeposit tops up the user's own balance without
// touching the lifetime earned counter.
func (s *walletService) CreditWalletForDeposit(ctx context.Context, userID int64, amountInCents int64, referenceID *string) error {
	if amountInCents <= 0 {
		return apperrors.ErrInvalidRequest
	}
	description := fmt.Sprintf("Wallet deposit of %s", FormatUSD(amountInCents))
	return s.repo.Credit(ctx, userID, models.TxTypeDeposit, amountInCents, description, referenceID)
}

func (s *walletService) DebitWalletForPurchase(ctx context.Context, userID int64, amountInCents int64, description string, referenceID *string) error {
	if amountInCents <= 0 {
		return apperrors.ErrInvalidRequest
	}
	return s.repo.Debit(ctx, userID, models.TxTypePurchase, amountInCents, description, referenceID)
}

func (s *walletService) DebitWalletForRefund(ctx context.Context, userID int64, amountInCents int64, description string, referenceID *string) error {
	if amountInCents <= 0 {
		return apperrors.ErrInvalidRequest
	}
	return s.repo.Debit(ctx, userID, models.TxTypeRefundDebit, amountInCents, description, referenceID)
}

// RequestWithdrawal rejects before any mutation: payout account not
// ready, amount below the minimum, balance not covering the amount, or
// another request already open. The repository re-checks balance and
// open-request uniqueness inside the transaction.
func (s *walletService) RequestWithdrawal(ctx context.Context, user models.User, amountInCents int64) error {
	if !user.PayoutReady() {
		return apperrors.ErrPayoutAccountNotConnected
	}

	if amountInCents < MinWithdrawalInCents {
		return apperrors.ErrMinimumNotMet
	}

	wallet, err := s.repo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return err
	}

	if wallet.BalanceInCents < amountInCents {
		return apperrors.ErrInsufficientFunds
	}

	description := fmt.Sprintf("Withdrawal request for %s", FormatUSD(amountInCents))
	return s.repo.Withdraw(ctx, user.ID, amountInCents, description)
}

// CreateDepositSession returns the hosted checkout redirect URL for a
// wallet top-up; the credit itself arrives later via the webhook.
func (s *walletService) CreateDepositSession(ctx context.Context, user models.User, amountInCents int64) (string, error) {
	if amountInCents < MinDepositInCents {
		return "", apperrors.ErrMinimumNotMet
	}
	if amountInCents > MaxDepositInCents {
		return "", apperrors.ErrMaximumExceeded
	}

	session, err := s.payments.CreateCheckoutSession(ctx, stripe.CheckoutParams{
		Currency:          "usd",
		ProductName:       "Wallet Deposit - MysteryIdea",
		UnitAmountInCents: amountInCents,
		SuccessURL:        s.publicURL + "/dashboard/wallet?deposit=success",
		CancelURL:         s.publicURL + "/dashboard/wallet",
		Metadata: map[string]string{
			"type":          "wallet_deposit",
			"userId":        fmt.Sprintf("%d", user.ID),
			"amountInCents": fmt.Sprintf("%d", amountInCents),
		},
	})
	if err != nil {
		return "", err
	}

	return session.URL, nil
}

// FormatUSD renders minor units for user-facing descriptions.
func FormatUSD(amountInCents int64) string {
	return fmt.Sprintf("$%d.%02d", amountInCents/100, amountInCents%100)
}
