package repository

import (
	"context"
	"testing"

	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/mysteryidea/ledgerd/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"
)

func TestIdeaRepo_GetByID(t *testing.T) {
	r := NewIdeaRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("existing idea", func(t *testing.T) {
		idea, err := r.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Solar kiln", idea.Title)
		assert.Equal(t, int64(2000), idea.PriceInCents)
		assert.Equal(t, models.UnlockTypeStandard, idea.UnlockType)
		assert.True(t, idea.Published)
	})

	t.Run("exclusive idea", func(t *testing.T) {
		idea, err := r.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, models.UnlockTypeExclusive, idea.UnlockType)
	})

	t.Run("missing idea", func(t *testing.T) {
		_, err := r.GetByID(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrIdeaNotFound)
	})
}
