package service

import (
	"context"
	"fmt"

	"github.com/mysteryidea/ledgerd/internal/models"
	"github.com/mysteryidea/ledgerd/internal/repository"
	"github.com/mysteryidea/ledgerd/internal/stripe"
)

type UserService interface {
	GetByExternalID(ctx context.Context, externalID string) (models.User, error)
	SyncUser(ctx context.Context, externalID, email, name string) (models.User, error)
	ConnectPayoutAccount(ctx context.Context, user models.User) (string, error)
	MarkPayoutOnboarded(ctx context.Context, payoutAccountID string) error
}

type userService struct {
	repo      repository.UserRepository
	payments  stripe.ClientInterface
	publicURL string
}

func NewUserService(repo repository.UserRepository, payments stripe.ClientInterface, publicURL string) UserService {
	return &userService{
		repo:      repo,
		payments:  payments,
		publicURL: publicURL,
	}
}

func (s *userService) GetByExternalID(ctx context.Context, externalID string) (models.User, error) {
	return s.repo.GetByExternalID(ctx, externalID)
}

// SyncUser mirrors an identity-provider profile into the local user
// mapping; called from the provider's webhook.
func (s *userService) SyncUser(ctx context.Context, externalID, email, name string) (models.User, error) {
	user := models.User{
		ExternalID: externalID,
		Email:      email,
		Name:       name,
	}
	if err := s.repo.UpsertByExternalID(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ConnectPayoutAccount starts payout onboarding: provision an express
// account on first call (persisting its id immediately, so a later
// account.updated event can find the user), then return a fresh
// onboarding link. Re-calling with an existing account just issues a
// new link; onboarding links are single-use and expire.
func (s *userService) ConnectPayoutAccount(ctx context.Context, user models.User) (string, error) {
	accountID := ""
	if user.PayoutAccountID != nil {
		accountID = *user.PayoutAccountID
	}

	if accountID == "" {
		created, err := s.payments.CreateConnectAccount(ctx, user.Email, map[string]string{
			"userId":     fmt.Sprintf("%d", user.ID),
			"externalId": user.ExternalID,
		})
		if err != nil {
			return "", err
		}
		if err := s.repo.SetPayoutAccount(ctx, user.ID, created); err != nil {
			return "", err
		}
		accountID = created
	}

	return s.payments.CreateAccountLink(ctx, accountID,
		s.publicURL+"/creator/connect?refresh=true",
		s.publicURL+"/creator/connect?success=true")
}

func (s *userService) MarkPayoutOnboarded(ctx context.Context, payoutAccountID string) error {
	return s.repo.MarkPayoutOnboarded(ctx, payoutAccountID)
}
