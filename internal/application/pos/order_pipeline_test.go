package pos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/pos"
)

type memoryOrderRepo struct {
	orders map[int64]*pos.Order
	nextID int64
	err    error
}

func (r *memoryOrderRepo) FindByID(_ context.Context, id int64) (*pos.Order, error) {
	return r.orders[id], nil
}

func (r *memoryOrderRepo) FindByIDs(_ context.Context, ids []int64) ([]*pos.Order, error) {
	out := make([]*pos.Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memoryOrderRepo) FindByRemoteID(_ context.Context, _ string) (*pos.Order, error) {
	return nil, nil
}

func (r *memoryOrderRepo) Save(_ context.Context, order *pos.Order) error {
	if r.err != nil {
		return r.err
	}
	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
	}
	if r.orders == nil {
		r.orders = make(map[int64]*pos.Order)
	}
	r.orders[order.ID] = order
	return nil
}

func TestOrderPipelineProcess(t *testing.T) {
	t.Run("assigns tracking number and receipt reference", func(t *testing.T) {
		repo := &memoryOrderRepo{}
		pipeline := NewOrderPipeline(repo, zap.NewNop())

		order := &pos.Order{
			SessionID:      7,
			SequenceNumber: 12,
			Name:           "Order 00007-003-0012",
		}
		processed, err := pipeline.Process(context.Background(), order)
		require.NoError(t, err)

		assert.Equal(t, "712", processed.TrackingNumber)
		assert.Equal(t, "Order 00007-003-0012", processed.ReceiptRef)
		assert.NotZero(t, processed.ID)
	})

	t.Run("tracking number folds session and sequence mod 100", func(t *testing.T) {
		repo := &memoryOrderRepo{}
		pipeline := NewOrderPipeline(repo, zap.NewNop())

		cases := []struct {
			sessionID int64
			sequence  int
			want      string
		}{
			{1, 1, "101"},
			{10, 5, "005"},
			{23, 107, "307"},
			{5, 100, "500"},
		}
		for _, tc := range cases {
			order := &pos.Order{SessionID: tc.sessionID, SequenceNumber: tc.sequence}
			processed, err := pipeline.Process(context.Background(), order)
			require.NoError(t, err)
			assert.Equal(t, tc.want, processed.TrackingNumber)
		}
	})

	t.Run("save failure propagates", func(t *testing.T) {
		repo := &memoryOrderRepo{err: assert.AnError}
		pipeline := NewOrderPipeline(repo, zap.NewNop())

		_, err := pipeline.Process(context.Background(), &pos.Order{})
		assert.ErrorIs(t, err, assert.AnError)
	})
}
