package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/logger"
	"github.com/mysteryidea/ledgerd/internal/models"
	"go.uber.org/zap"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (models.User, error)
	UpsertByExternalID(ctx context.Context, user *models.User) error
	SetPayoutAccount(ctx context.Context, userID int64, payoutAccountID string) error
	MarkPayoutOnboarded(ctx context.Context, payoutAccountID string) error
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, external_id, email, name, payout_account_id, payout_onboarded, created_at`

func (r *userRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.PayoutAccountID, &u.PayoutOnboarded, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, apperrors.ErrUserNotFound
	}
	return u, err
}

func (r *userRepo) GetByExternalID(ctx context.Context, externalID string) (models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE external_id = $1
	`, externalID).Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.PayoutAccountID, &u.PayoutOnboarded, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, apperrors.ErrUserNotFound
	}
	return u, err
}

func (r *userRepo) UpsertByExternalID(ctx context.Context, user *models.User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (external_id, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (external_id) DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name
		RETURNING id, created_at
	`, user.ExternalID, user.Email, user.Name).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		logger.Log.Error("failed to upsert user", zap.String("external_id", user.ExternalID), zap.Error(err))
	}
	return err
}

// SetPayoutAccount links a freshly created provider account to the
// user; onboarded stays false until the provider confirms it.
func (r *userRepo) SetPayoutAccount(ctx context.Context, userID int64, payoutAccountID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET payout_account_id = $1 WHERE id = $2
	`, payoutAccountID, userID)
	if err != nil {
		logger.Log.Error("failed to set payout account", zap.Int64("user", userID), zap.Error(err))
	}
	return err
}

func (r *userRepo) MarkPayoutOnboarded(ctx context.Context, payoutAccountID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET payout_onboarded = TRUE WHERE payout_account_id = $1
	`, payoutAccountID)
	return err
}
