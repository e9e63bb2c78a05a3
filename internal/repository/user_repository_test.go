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

func TestUserRepo_GetByID(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("existing user", func(t *testing.T) {
		u, err := r.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "ext_2", u.ExternalID)
		assert.True(t, u.PayoutOnboarded)
		require.NotNil(t, u.PayoutAccountID)
		assert.Equal(t, "acct_123", *u.PayoutAccountID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := r.GetByID(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserRepo_GetByExternalID(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("existing user", func(t *testing.T) {
		u, err := r.GetByExternalID(ctx, "ext_1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := r.GetByExternalID(ctx, "ext_nope")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserRepo_UpsertByExternalID(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("inserts a new user", func(t *testing.T) {
		u := models.User{ExternalID: "ext_new", Email: "new@example.com", Name: "New"}
		require.NoError(t, r.UpsertByExternalID(ctx, &u))
		assert.NotZero(t, u.ID)
	})

	t.Run("updates profile fields on conflict", func(t *testing.T) {
		u := models.User{ExternalID: "ext_1", Email: "renamed@example.com", Name: "Renamed"}
		require.NoError(t, r.UpsertByExternalID(ctx, &u))
		assert.Equal(t, int64(1), u.ID)

		stored, err := r.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "renamed@example.com", stored.Email)
		assert.Equal(t, "Renamed", stored.Name)
	})

	t.Run("keeps payout fields on conflict", func(t *testing.T) {
		u := models.User{ExternalID: "ext_2", Email: "creator@example.com", Name: "Creator"}
		require.NoError(t, r.UpsertByExternalID(ctx, &u))

		stored, err := r.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.True(t, stored.PayoutOnboarded)
	})
}

func TestUserRepo_SetPayoutAccount(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	require.NoError(t, r.SetPayoutAccount(ctx, 3, "acct_999"))

	u, err := r.GetByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, u.PayoutAccountID)
	assert.Equal(t, "acct_999", *u.PayoutAccountID)
	assert.False(t, u.PayoutOnboarded)
	assert.False(t, u.PayoutReady())
}

func TestUserRepo_MarkPayoutOnboarded(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("flips a connected user to payout ready", func(t *testing.T) {
		require.NoError(t, r.SetPayoutAccount(ctx, 3, "acct_999"))
		require.NoError(t, r.MarkPayoutOnboarded(ctx, "acct_999"))

		u, err := r.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.True(t, u.PayoutOnboarded)
		assert.True(t, u.PayoutReady())
	})

	t.Run("unknown account touches nobody", func(t *testing.T) {
		require.NoError(t, r.MarkPayoutOnboarded(ctx, "acct_unknown"))

		u, err := r.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.False(t, u.PayoutOnboarded)
	})
}
