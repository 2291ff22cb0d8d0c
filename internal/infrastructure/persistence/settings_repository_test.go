package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restopos/backend/internal/domain/ordertech"
)

func TestGormSettingsRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSettingsRepository(db)
	ctx := context.Background()

	t.Run("Get on an empty table", func(t *testing.T) {
		_, err := repo.Get(ctx)
		assert.ErrorIs(t, err, ordertech.ErrSettingsMissing)
	})

	t.Run("SetBearerToken without settings", func(t *testing.T) {
		err := repo.SetBearerToken(ctx, "token")
		assert.ErrorIs(t, err, ordertech.ErrSettingsMissing)
	})

	t.Run("Save and Get round-trip", func(t *testing.T) {
		settings := &ordertech.Settings{
			Name:    "restopos",
			BaseURL: "https://api.ordertech.example",
			APIKey:  "key",
		}
		require.NoError(t, repo.Save(ctx, settings))
		require.NotZero(t, settings.ID)

		found, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "restopos", found.Name)
		assert.Equal(t, "https://api.ordertech.example", found.BaseURL)
		assert.Equal(t, "key", found.APIKey)
		assert.False(t, found.HasToken())
	})

	t.Run("SetBearerToken persists on the settings row", func(t *testing.T) {
		require.NoError(t, repo.SetBearerToken(ctx, "bearer-abc"))

		found, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "bearer-abc", found.BearerToken)
		assert.True(t, found.HasToken())
	})
}
