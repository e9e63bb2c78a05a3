package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/mocks/repository_mocks"
	"github.com/mysteryidea/ledgerd/internal/mocks/stripe_mocks"
	"github.com/mysteryidea/ledgerd/internal/models"
	"github.com/mysteryidea/ledgerd/internal/repository"
	"github.com/mysteryidea/ledgerd/internal/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		name    string
		price   int64
		percent int
		want    int64
	}{
		{name: "even split", price: 1000, percent: 15, want: 150},
		{name: "rounds half up", price: 999, percent: 15, want: 150},
		{name: "rounds down", price: 995, percent: 15, want: 149},
		{name: "zero fee", price: 1000, percent: 0, want: 0},
		{name: "full fee", price: 1000, percent: 100, want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformFee(tt.price, tt.percent))
		})
	}
}

type purchaseMocks struct {
	purchases *repository_mocks.MockPurchaseRepository
	ideas     *repository_mocks.MockIdeaRepository
	users     *repository_mocks.MockUserRepository
	payments  *stripe_mocks.MockClientInterface
}

func newPurchaseService(ctrl *gomock.Controller) (PurchaseService, purchaseMocks) {
	m := purchaseMocks{
		purchases: repository_mocks.NewMockPurchaseRepository(ctrl),
		ideas:     repository_mocks.NewMockIdeaRepository(ctrl),
		users:     repository_mocks.NewMockUserRepository(ctrl),
		payments:  stripe_mocks.NewMockClientInterface(ctrl),
	}
	svc := NewPurchaseService(m.purchases, m.ideas, m.users, m.payments, "http://localhost:3000", 15)
	return svc, m
}

func publishedIdea() models.Idea {
	return models.Idea{
		ID:           7,
		CreatorID:    2,
		Title:        "Solar kiln",
		PriceInCents: 2000,
		Currency:     "usd",
		UnlockType:   models.UnlockTypeStandard,
		Published:    true,
	}
}

func TestPurchaseService_Preconditions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	buyer := models.User{ID: 1}

	tests := []struct {
		name      string
		buyer     models.User
		mockSetup func(m purchaseMocks)
		wantErr   error
	}{
		{
			name:  "idea not found",
			buyer: buyer,
			mockSetup: func(m purchaseMocks) {
				m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(models.Idea{}, apperrors.ErrIdeaNotFound)
			},
			wantErr: apperrors.ErrIdeaNotFound,
		},
		{
			name:  "idea not published",
			buyer: buyer,
			mockSetup: func(m purchaseMocks) {
				idea := publishedIdea()
				idea.Published = false
				m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(idea, nil)
			},
			wantErr: apperrors.ErrIdeaNotPublished,
		},
		{
			name:  "own idea",
			buyer: models.User{ID: 2},
			mockSetup: func(m purchaseMocks) {
				m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(publishedIdea(), nil)
			},
			wantErr: apperrors.ErrOwnIdea,
		},
		{
			name:  "already purchased",
			buyer: buyer,
			mockSetup: func(m purchaseMocks) {
				m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(publishedIdea(), nil)
				m.purchases.EXPECT().GetByBuyerAndIdea(ctx, int64(1), int64(7)).
					Return(models.Purchase{ID: 3, Status: models.PurchaseStatusCompleted}, nil)
			},
			wantErr: apperrors.ErrAlreadyPurchased,
		},
		{
			name:  "exclusive already claimed",
			buyer: buyer,
			mockSetup: func(m purchaseMocks) {
				idea := publishedIdea()
				idea.UnlockType = models.UnlockTypeExclusive
				m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(idea, nil)
				m.purchases.EXPECT().GetByBuyerAndIdea(ctx, int64(1), int64(7)).
					Return(models.Purchase{}, apperrors.ErrPurchaseNotFound)
				m.purchases.EXPECT().CountCompletedForIdea(ctx, int64(7)).Return(int64(1), nil)
			},
			wantErr: apperrors.ErrExclusiveAlreadyClaimed,
		},
		{
			name:  "creator payout not set up",
			buyer: buyer,
			mockSetup: func(m purchaseMocks) {
				m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(publishedIdea(), nil)
				m.purchases.EXPECT().GetByBuyerAndIdea(ctx, int64(1), int64(7)).
					Return(models.Purchase{}, apperrors.ErrPurchaseNotFound)
				m.users.EXPECT().GetByID(ctx, int64(2)).Return(models.User{ID: 2}, nil)
			},
			wantErr: apperrors.ErrCreatorPayoutNotSetUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPurchaseService(ctrl)
			tt.mockSetup(m)

			_, err := svc.CreateCheckoutSession(ctx, tt.buyer, 7)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPurchaseService_CreateCheckoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	buyer := models.User{ID: 1}

	svc, m := newPurchaseService(ctrl)

	m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(publishedIdea(), nil)
	m.purchases.EXPECT().GetByBuyerAndIdea(ctx, int64(1), int64(7)).
		Return(models.Purchase{}, apperrors.ErrPurchaseNotFound)
	m.users.EXPECT().GetByID(ctx, int64(2)).Return(payoutReadyUser(2), nil)

	m.payments.EXPECT().CreateCheckoutSession(ctx, gomock.AssignableToTypeOf(stripe.CheckoutParams{})).DoAndReturn(
		func(_ context.Context, params stripe.CheckoutParams) (*stripe.CheckoutSession, error) {
			assert.Equal(t, int64(2000), params.UnitAmountInCents)
			assert.Equal(t, int64(300), params.FeeAmountInCents)
			assert.Equal(t, "acct_123", params.TransferAccountID)
			assert.Equal(t, "7", params.Metadata["ideaId"])
			assert.Equal(t, "1", params.Metadata["buyerId"])
			return &stripe.CheckoutSession{ID: "cs_9", URL: "https://checkout.test/cs_9", PaymentIntentID: "pi_9"}, nil
		})

	m.purchases.EXPECT().CreatePending(ctx, gomock.AssignableToTypeOf(&models.Purchase{})).DoAndReturn(
		func(_ context.Context, p *models.Purchase) error {
			assert.Equal(t, int64(1), p.BuyerID)
			assert.Equal(t, int64(7), p.IdeaID)
			assert.Equal(t, int64(2000), p.AmountInCents)
			assert.Equal(t, int64(300), p.PlatformFeeInCents)
			require.NotNil(t, p.PaymentRef)
			assert.Equal(t, "pi_9", *p.PaymentRef)
			return nil
		})

	url, err := svc.CreateCheckoutSession(ctx, buyer, 7)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.test/cs_9", url)
}

func TestPurchaseService_CheckoutFallsBackToSessionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newPurchaseService(ctrl)

	m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(publishedIdea(), nil)
	m.purchases.EXPECT().GetByBuyerAndIdea(ctx, int64(1), int64(7)).
		Return(models.Purchase{}, apperrors.ErrPurchaseNotFound)
	m.users.EXPECT().GetByID(ctx, int64(2)).Return(payoutReadyUser(2), nil)
	m.payments.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).
		Return(&stripe.CheckoutSession{ID: "cs_only", URL: "https://checkout.test/cs_only"}, nil)

	m.purchases.EXPECT().CreatePending(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Purchase) error {
			require.NotNil(t, p.PaymentRef)
			assert.Equal(t, "cs_only", *p.PaymentRef)
			return nil
		})

	_, err := svc.CreateCheckoutSession(ctx, models.User{ID: 1}, 7)
	require.NoError(t, err)
}

func TestPurchaseService_PurchaseWithWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newPurchaseService(ctrl)

	m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(publishedIdea(), nil)
	m.purchases.EXPECT().GetByBuyerAndIdea(ctx, int64(1), int64(7)).
		Return(models.Purchase{}, apperrors.ErrPurchaseNotFound)
	m.users.EXPECT().GetByID(ctx, int64(2)).Return(models.User{ID: 2}, nil)

	m.purchases.EXPECT().CreateWalletPurchase(ctx, gomock.AssignableToTypeOf(repository.WalletPurchaseInput{})).DoAndReturn(
		func(_ context.Context, input repository.WalletPurchaseInput) (models.Purchase, error) {
			assert.Equal(t, int64(1), input.BuyerID)
			assert.Equal(t, int64(2), input.CreatorID)
			assert.Equal(t, int64(2000), input.AmountInCents)
			assert.Equal(t, int64(300), input.PlatformFeeInCents)
			assert.Contains(t, input.ReferenceID, "wallet_")
			assert.Equal(t, `Purchase of "Solar kiln"`, input.Description)
			return models.Purchase{ID: 11, Status: models.PurchaseStatusCompleted}, nil
		})

	purchase, err := svc.PurchaseWithWallet(ctx, models.User{ID: 1}, 7)
	require.NoError(t, err)
	assert.Equal(t, models.PurchaseStatusCompleted, purchase.Status)
}

func TestPurchaseService_WalletPurchaseInsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newPurchaseService(ctrl)

	m.ideas.EXPECT().GetByID(ctx, int64(7)).Return(publishedIdea(), nil)
	m.purchases.EXPECT().GetByBuyerAndIdea(ctx, int64(1), int64(7)).
		Return(models.Purchase{}, apperrors.ErrPurchaseNotFound)
	m.users.EXPECT().GetByID(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	m.purchases.EXPECT().CreateWalletPurchase(ctx, gomock.Any()).
		Return(models.Purchase{}, apperrors.ErrInsufficientFunds)

	_, err := svc.PurchaseWithWallet(ctx, models.User{ID: 1}, 7)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
}

func TestPurchaseService_VerifyPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func(m purchaseMocks)
		want      bool
		wantErr   bool
	}{
		{
			name: "completed purchase verifies",
			mockSetup: func(m purchaseMocks) {
				m.purchases.EXPECT().GetByBuyerAndIdea(ctx, int64(1), int64(7)).
					Return(models.Purchase{Status: models.PurchaseStatusCompleted}, nil)
			},
			want: true,
		},
		{
			name: "pending purchase does not verify",
			mockSetup: func(m purchaseMocks) {
				m.purchases.EXPECT().GetByBuyerAndIdea(ctx, int64(1), int64(7)).
					Return(models.Purchase{Status: models.PurchaseStatusPending}, nil)
			},
			want: false,
		},
		{
			name: "missing purchase does not verify",
			mockSetup: func(m purchaseMocks) {
				m.purchases.EXPECT().GetByBuyerAndIdea(ctx, int64(1), int64(7)).
					Return(models.Purchase{}, apperrors.ErrPurchaseNotFound)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPurchaseService(ctrl)
			tt.mockSetup(m)

			got, err := svc.VerifyPurchase(ctx, 1, 7)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
