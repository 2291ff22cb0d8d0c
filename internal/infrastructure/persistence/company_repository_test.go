package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
)

func TestGormCompanyRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCompanyRepository(db)
	ctx := context.Background()

	restaurant := &pos.Company{
		Name:         "Big Slice",
		IsRestaurant: true,
		OpeningTime:  9.5,
		ClosingTime:  23.75,
	}
	require.NoError(t, repo.Save(ctx, restaurant))
	require.NotZero(t, restaurant.ID)

	branch := &pos.Company{
		Name:     "Big Slice Marina",
		IsBranch: true,
		ParentID: &restaurant.ID,
		Street:   "12 Marina Walk",
	}
	require.NoError(t, repo.Save(ctx, branch))

	t.Run("FindByID round-trips the company", func(t *testing.T) {
		found, err := repo.FindByID(ctx, restaurant.ID)
		require.NoError(t, err)
		assert.Equal(t, "Big Slice", found.Name)
		assert.True(t, found.IsRestaurant)
		assert.InDelta(t, 9.5, found.OpeningTime, 1e-9)
	})

	t.Run("FindByID unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("FindRestaurant picks the restaurant", func(t *testing.T) {
		found, err := repo.FindRestaurant(ctx)
		require.NoError(t, err)
		assert.Equal(t, restaurant.ID, found.ID)
	})

	t.Run("FindBranchesWithoutRemoteID lists unsynced branches", func(t *testing.T) {
		branches, err := repo.FindBranchesWithoutRemoteID(ctx)
		require.NoError(t, err)
		require.Len(t, branches, 1)
		assert.Equal(t, branch.ID, branches[0].ID)
		require.NotNil(t, branches[0].ParentID)
		assert.Equal(t, restaurant.ID, *branches[0].ParentID)
	})

	t.Run("SetRemoteBranchID makes the branch resolvable", func(t *testing.T) {
		require.NoError(t, repo.SetRemoteBranchID(ctx, branch.ID, "b-1"))
		require.NoError(t, repo.SetRemoteTenantID(ctx, branch.ID, "t-1"))

		found, err := repo.FindByRemoteBranchID(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, branch.ID, found.ID)
		assert.Equal(t, "t-1", found.OrderTechTenantID)

		branches, err := repo.FindBranchesWithoutRemoteID(ctx)
		require.NoError(t, err)
		assert.Empty(t, branches)
	})

	t.Run("FindByRemoteBranchID unknown id", func(t *testing.T) {
		_, err := repo.FindByRemoteBranchID(ctx, "b-9")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
