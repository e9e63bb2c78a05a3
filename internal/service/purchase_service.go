package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/models"
	"github.com/mysteryidea/ledgerd/internal/repository"
	"github.com/mysteryidea/ledgerd/internal/stripe"
)

type PurchaseService interface {
	CreateCheckoutSession(ctx context.Context, buyer models.User, ideaID int64) (string, error)
	PurchaseWithWallet(ctx context.Context, buyer models.User, ideaID int64) (models.Purchase, error)
	VerifyPurchase(ctx context.Context, buyerID, ideaID int64) (bool, error)
	ListPurchases(ctx context.Context, buyerID int64) ([]models.Purchase, error)
}

type purchaseService struct {
	purchases  repository.PurchaseRepository
	ideas      repository.IdeaRepository
	users      repository.UserRepository
	payments   stripe.ClientInterface
	publicURL  string
	feePercent int
}

func NewPurchaseService(
	purchases repository.PurchaseRepository,
	ideas repository.IdeaRepository,
	users repository.UserRepository,
	payments stripe.ClientInterface,
	publicURL string,
	feePercent int,
) PurchaseService {
	return &purchaseService{
		purchases:  purchases,
		ideas:      ideas,
		users:      users,
		payments:   payments,
		publicURL:  publicURL,
		feePercent: feePercent,
	}
}

// PlatformFee computes the fee retained on a sale.
func PlatformFee(priceInCents int64, feePercent int) int64 {
	return int64(math.Round(float64(priceInCents) * float64(feePercent) / 100))
}

// CreateCheckoutSession starts a card purchase through the hosted
// checkout. A PENDING purchase is recorded under the session's payment
// reference so the completion webhook can settle it later.
func (s *purchaseService) CreateCheckoutSession(ctx context.Context, buyer models.User, ideaID int64) (string, error) {
	idea, creator, err := s.purchasableIdea(ctx, buyer, ideaID)
	if err != nil {
		return "", err
	}

	if !creator.PayoutReady() {
		return "", apperrors.ErrCreatorPayoutNotSetUp
	}

	fee := PlatformFee(idea.PriceInCents, s.feePercent)

	session, err := s.payments.CreateCheckoutSession(ctx, stripe.CheckoutParams{
		Currency:          idea.Currency,
		ProductName:       idea.Title,
		UnitAmountInCents: idea.PriceInCents,
		SuccessURL:        fmt.Sprintf("%s/ideas/%d?purchased=true", s.publicURL, idea.ID),
		CancelURL:         fmt.Sprintf("%s/ideas/%d", s.publicURL, idea.ID),
		Metadata: map[string]string{
			"ideaId":             fmt.Sprintf("%d", idea.ID),
			"buyerId":            fmt.Sprintf("%d", buyer.ID),
			"amountInCents":      fmt.Sprintf("%d", idea.PriceInCents),
			"platformFeeInCents": fmt.Sprintf("%d", fee),
		},
		FeeAmountInCents:  fee,
		TransferAccountID: *creator.PayoutAccountID,
	})
	if err != nil {
		return "", err
	}

	paymentRef := session.PaymentIntentID
	if paymentRef == "" {
		paymentRef = session.ID
	}

	purchase := models.Purchase{
		BuyerID:            buyer.ID,
		IdeaID:             idea.ID,
		AmountInCents:      idea.PriceInCents,
		PlatformFeeInCents: fee,
		PaymentRef:         &paymentRef,
	}
	if err := s.purchases.CreatePending(ctx, &purchase); err != nil {
		return "", err
	}

	return session.URL, nil
}

// PurchaseWithWallet pays directly from the buyer's balance: one
// compound ledger operation debits the buyer and credits the creator
// the net amount, both entries sharing a generated reference id.
func (s *purchaseService) PurchaseWithWallet(ctx context.Context, buyer models.User, ideaID int64) (models.Purchase, error) {
	idea, _, err := s.purchasableIdea(ctx, buyer, ideaID)
	if err != nil {
		return models.Purchase{}, err
	}

	fee := PlatformFee(idea.PriceInCents, s.feePercent)

	return s.purchases.CreateWalletPurchase(ctx, repository.WalletPurchaseInput{
		BuyerID:            buyer.ID,
		CreatorID:          idea.CreatorID,
		IdeaID:             idea.ID,
		AmountInCents:      idea.PriceInCents,
		PlatformFeeInCents: fee,
		ReferenceID:        "wallet_" + uuid.NewString(),
		Description:        fmt.Sprintf("Purchase of %q", idea.Title),
	})
}

func (s *purchaseService) VerifyPurchase(ctx context.Context, buyerID, ideaID int64) (bool, error) {
	purchase, err := s.purchases.GetByBuyerAndIdea(ctx, buyerID, ideaID)
	if errors.Is(err, apperrors.ErrPurchaseNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return purchase.Status == models.PurchaseStatusCompleted, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, buyerID int64) ([]models.Purchase, error) {
	return s.purchases.ListCompletedByBuyer(ctx, buyerID)
}

// purchasableIdea checks every precondition shared by both purchase
// paths before anything is mutated.
func (s *purchaseService) purchasableIdea(ctx context.Context, buyer models.User, ideaID int64) (models.Idea, models.User, error) {
	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return models.Idea{}, models.User{}, err
	}

	if !idea.Published {
		return models.Idea{}, models.User{}, apperrors.ErrIdeaNotPublished
	}

	if idea.CreatorID == buyer.ID {
		return models.Idea{}, models.User{}, apperrors.ErrOwnIdea
	}

	_, err = s.purchases.GetByBuyerAndIdea(ctx, buyer.ID, ideaID)
	if err == nil {
		return models.Idea{}, models.User{}, apperrors.ErrAlreadyPurchased
	}
	if !errors.Is(err, apperrors.ErrPurchaseNotFound) {
		return models.Idea{}, models.User{}, err
	}

	if idea.UnlockType == models.UnlockTypeExclusive {
		completed, err := s.purchases.CountCompletedForIdea(ctx, ideaID)
		if err != nil {
			return models.Idea{}, models.User{}, err
		}
		if completed > 0 {
			return models.Idea{}, models.User{}, apperrors.ErrExclusiveAlreadyClaimed
		}
	}

	creator, err := s.users.GetByID(ctx, idea.CreatorID)
	if err != nil {
		return models.Idea{}, models.User{}, err
	}

	return idea, creator, nil
}
