package ordertech

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/pos"
)

func TestCustomerIntakeCreate(t *testing.T) {
	branch := &pos.Company{ID: 2, IsBranch: true, OrderTechBranchID: "b-1"}

	t.Run("creates a branch-scoped customer", func(t *testing.T) {
		customers := newFakeCustomerRepo()
		svc := NewCustomerIntakeService(customers, newFakeCompanyRepo(branch), zap.NewNop())

		result, err := svc.Create(context.Background(), CustomerIntakeRequest{
			RemoteCustomerID: "cu-1",
			BranchRemoteID:   "b-1",
			Name:             "Sam Lee",
			Phone:            "+971501112222",
		})
		require.NoError(t, err)

		assert.False(t, result.Existing)
		assert.Equal(t, "cu-1", result.RemoteCustomerID)

		stored, err := customers.FindByRemoteID(context.Background(), "cu-1")
		require.NoError(t, err)
		assert.Equal(t, branch.ID, stored.CompanyID)
		assert.Equal(t, 1, stored.CustomerRank)
		assert.Equal(t, "Sam Lee", stored.Name)
	})

	t.Run("replaying a remote customer id creates no duplicate", func(t *testing.T) {
		customers := newFakeCustomerRepo(&pos.Customer{
			ID: 31, Name: "Sam Lee", CustomerRank: 1, OrderTechCustomerID: "cu-1",
		})
		svc := NewCustomerIntakeService(customers, newFakeCompanyRepo(branch), zap.NewNop())

		result, err := svc.Create(context.Background(), CustomerIntakeRequest{
			RemoteCustomerID: "cu-1",
			BranchRemoteID:   "b-1",
			Name:             "Sam Lee",
		})
		require.NoError(t, err)

		assert.True(t, result.Existing)
		assert.Len(t, customers.customers, 1)
	})

	t.Run("unknown branch", func(t *testing.T) {
		svc := NewCustomerIntakeService(newFakeCustomerRepo(), newFakeCompanyRepo(), zap.NewNop())

		_, err := svc.Create(context.Background(), CustomerIntakeRequest{
			RemoteCustomerID: "cu-1",
			BranchRemoteID:   "b-9",
		})
		assert.EqualError(t, err, "tenant branch b-9 not found or not synced yet ")
	})
}
