package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/mocks/repository_mocks"
	"github.com/mysteryidea/ledgerd/internal/models"
	"github.com/mysteryidea/ledgerd/internal/repository"
	"github.com/mysteryidea/ledgerd/internal/stripe"
	"github.com/stretchr/testify/assert"
)

type recordingNotifier struct {
	confirmed int
	sales     int
	err       error
}

func (n *recordingNotifier) PurchaseConfirmed(_ context.Context, _ models.User, _ models.Idea, _ models.Purchase) error {
	n.confirmed++
	return n.err
}

func (n *recordingNotifier) SaleCompleted(_ context.Context, _ models.User, _ models.User, _ models.Idea, _ models.Purchase) error {
	n.sales++
	return n.err
}

type settlementMocks struct {
	wallets   *repository_mocks.MockWalletRepository
	purchases *repository_mocks.MockPurchaseRepository
	ideas     *repository_mocks.MockIdeaRepository
	users     *repository_mocks.MockUserRepository
	notify    *recordingNotifier
}

func newSettlementService(ctrl *gomock.Controller) (SettlementService, settlementMocks) {
	m := settlementMocks{
		wallets:   repository_mocks.NewMockWalletRepository(ctrl),
		purchases: repository_mocks.NewMockPurchaseRepository(ctrl),
		ideas:     repository_mocks.NewMockIdeaRepository(ctrl),
		users:     repository_mocks.NewMockUserRepository(ctrl),
		notify:    &recordingNotifier{},
	}
	svc := NewSettlementService(m.wallets, m.purchases, m.ideas, m.users, m.notify)
	return svc, m
}

func completedPurchase() models.Purchase {
	ref := "pi_1"
	return models.Purchase{
		ID:                 5,
		BuyerID:            1,
		IdeaID:             7,
		AmountInCents:      2000,
		PlatformFeeInCents: 300,
		Status:             models.PurchaseStatusCompleted,
		PaymentRef:         &ref,
	}
}

func TestSettlementService_HandleDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	deposit := stripe.DepositSettlement{UserID: 42, AmountInCents: 500, PaymentRef: "pi_dep"}

	t.Run("credits the wallet as a deposit", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)
		m.wallets.EXPECT().Credit(ctx, int64(42), models.TxTypeDeposit, int64(500),
			"Wallet deposit of $5.00", &deposit.PaymentRef).Return(nil)

		assert.NoError(t, svc.HandleDeposit(ctx, deposit))
	})

	t.Run("duplicate delivery is acknowledged", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)
		m.wallets.EXPECT().Credit(ctx, int64(42), models.TxTypeDeposit, int64(500),
			gomock.Any(), gomock.Any()).Return(apperrors.ErrDuplicateSettlement)

		assert.NoError(t, svc.HandleDeposit(ctx, deposit))
	})

	t.Run("other repository errors propagate", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)
		dbErr := errors.New("connection reset")
		m.wallets.EXPECT().Credit(ctx, int64(42), models.TxTypeDeposit, int64(500),
			gomock.Any(), gomock.Any()).Return(dbErr)

		assert.ErrorIs(t, svc.HandleDeposit(ctx, deposit), dbErr)
	})
}

func TestSettlementService_HandleCheckoutCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	settlement := stripe.PurchaseSettlement{PaymentRef: "pi_1"}

	t.Run("applied settlement sends both notifications", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)
		purchase := completedPurchase()

		m.purchases.EXPECT().SettleByPaymentRef(ctx, "pi_1").
			Return(repository.SettleResult{Purchase: purchase, CreatorID: 2, Applied: true}, nil)
		m.users.EXPECT().GetByID(ctx, int64(1)).Return(models.User{ID: 1}, nil)
		m.users.EXPECT().GetByID(ctx, int64(2)).Return(models.User{ID: 2}, nil)
		m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(publishedIdea(), nil)

		assert.NoError(t, svc.HandleCheckoutCompleted(ctx, settlement))
		assert.Equal(t, 1, m.notify.confirmed)
		assert.Equal(t, 1, m.notify.sales)
	})

	t.Run("already settled purchase is acknowledged without notifying", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)

		m.purchases.EXPECT().SettleByPaymentRef(ctx, "pi_1").
			Return(repository.SettleResult{Purchase: completedPurchase(), Applied: false}, nil)

		assert.NoError(t, svc.HandleCheckoutCompleted(ctx, settlement))
		assert.Zero(t, m.notify.confirmed)
		assert.Zero(t, m.notify.sales)
	})

	t.Run("unknown payment reference is acknowledged", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)

		m.purchases.EXPECT().SettleByPaymentRef(ctx, "pi_1").
			Return(repository.SettleResult{}, apperrors.ErrPurchaseNotFound)

		assert.NoError(t, svc.HandleCheckoutCompleted(ctx, settlement))
	})

	t.Run("notification failure does not fail the settlement", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)
		m.notify.err = errors.New("smtp down")

		m.purchases.EXPECT().SettleByPaymentRef(ctx, "pi_1").
			Return(repository.SettleResult{Purchase: completedPurchase(), CreatorID: 2, Applied: true}, nil)
		m.users.EXPECT().GetByID(ctx, int64(1)).Return(models.User{ID: 1}, nil)
		m.users.EXPECT().GetByID(ctx, int64(2)).Return(models.User{ID: 2}, nil)
		m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(publishedIdea(), nil)

		assert.NoError(t, svc.HandleCheckoutCompleted(ctx, settlement))
	})

	t.Run("repository error propagates", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)
		dbErr := errors.New("deadlock detected")

		m.purchases.EXPECT().SettleByPaymentRef(ctx, "pi_1").
			Return(repository.SettleResult{}, dbErr)

		assert.ErrorIs(t, svc.HandleCheckoutCompleted(ctx, settlement), dbErr)
	})
}

func TestSettlementService_HandleChargeRefunded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	settlement := stripe.RefundSettlement{PaymentRef: "pi_1"}

	t.Run("applied refund", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)

		m.purchases.EXPECT().RefundByPaymentRef(ctx, "pi_1").
			Return(repository.SettleResult{Purchase: completedPurchase(), CreatorID: 2, Applied: true}, nil)

		assert.NoError(t, svc.HandleChargeRefunded(ctx, settlement))
	})

	t.Run("clawback skipped is still success", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)

		m.purchases.EXPECT().RefundByPaymentRef(ctx, "pi_1").
			Return(repository.SettleResult{Purchase: completedPurchase(), CreatorID: 2, Applied: true, ClawbackSkipped: true}, nil)

		assert.NoError(t, svc.HandleChargeRefunded(ctx, settlement))
	})

	t.Run("already refunded is acknowledged", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)

		m.purchases.EXPECT().RefundByPaymentRef(ctx, "pi_1").
			Return(repository.SettleResult{Purchase: completedPurchase(), Applied: false}, nil)

		assert.NoError(t, svc.HandleChargeRefunded(ctx, settlement))
	})

	t.Run("unknown payment reference is acknowledged", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)

		m.purchases.EXPECT().RefundByPaymentRef(ctx, "pi_1").
			Return(repository.SettleResult{}, apperrors.ErrPurchaseNotFound)

		assert.NoError(t, svc.HandleChargeRefunded(ctx, settlement))
	})
}

func TestSettlementService_HandlePayoutAccountUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("charges enabled marks the account onboarded", func(t *testing.T) {
		svc, m := newSettlementService(ctrl)
		m.users.EXPECT().MarkPayoutOnboarded(ctx, "acct_123").Return(nil)

		assert.NoError(t, svc.HandlePayoutAccountUpdate(ctx, stripe.PayoutAccountUpdate{
			AccountID:      "acct_123",
			ChargesEnabled: true,
		}))
	})

	t.Run("charges disabled is a no-op", func(t *testing.T) {
		svc, _ := newSettlementService(ctrl)

		assert.NoError(t, svc.HandlePayoutAccountUpdate(ctx, stripe.PayoutAccountUpdate{
			AccountID: "acct_123",
		}))
	})
}

func TestSettlementService_HandleSettlementDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newSettlementService(ctrl)

	m.wallets.EXPECT().Credit(ctx, int64(42), models.TxTypeDeposit, int64(500),
		gomock.Any(), gomock.Any()).Return(nil)

	err := svc.HandleSettlement(ctx, stripe.DepositSettlement{UserID: 42, AmountInCents: 500, PaymentRef: "pi_dep"})
	assert.NoError(t, err)
}
