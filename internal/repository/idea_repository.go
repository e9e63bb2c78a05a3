package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/models"
)

// IdeaRepository is a read-only view of the marketplace catalog; the
// ledger core only needs enough of an idea to gate a purchase.
type IdeaRepository interface {
	GetByID(ctx context.Context, id int64) (models.Idea, error)
}

type ideaRepo struct {
	db *sql.DB
}

func NewIdeaRepository(db *sql.DB) IdeaRepository {
	return &ideaRepo{db: db}
}

func (r *ideaRepo) GetByID(ctx context.Context, id int64) (models.Idea, error) {
	var idea models.Idea
	err := r.db.QueryRowContext(ctx, `
		SELECT id, creator_id, title, price_in_cents, currency, unlock_type, published, created_at
		FROM ideas WHERE id = $1
	`, id).Scan(&idea.ID, &idea.CreatorID, &idea.Title, &idea.PriceInCents, &idea.Currency, &idea.UnlockType, &idea.Published, &idea.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Idea{}, apperrors.ErrIdeaNotFound
	}
	return idea, err
}
