package pos

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/pos"
)

// OrderPipeline is the local order-assembly pipeline. It finalizes an
// assembled order (tracking number, receipt reference) and persists it with
// its lines.
type OrderPipeline struct {
	orders pos.OrderRepository
	logger *zap.Logger
}

// NewOrderPipeline creates a new OrderPipeline
func NewOrderPipeline(orders pos.OrderRepository, logger *zap.Logger) *OrderPipeline {
	return &OrderPipeline{orders: orders, logger: logger}
}

var _ pos.OrderProcessor = (*OrderPipeline)(nil)

// Process assigns the kitchen tracking number and receipt reference, then
// persists the order. The tracking number folds the session id and sequence
// into a short three-digit display number.
func (p *OrderPipeline) Process(ctx context.Context, order *pos.Order) (*pos.Order, error) {
	order.TrackingNumber = fmt.Sprintf("%03d", (order.SessionID%10)*100+int64(order.SequenceNumber)%100)
	order.ReceiptRef = order.Name

	if err := p.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	p.logger.Info("order processed",
		zap.Int64("order_id", order.ID),
		zap.String("tracking_number", order.TrackingNumber),
		zap.Int("sequence", order.SequenceNumber))
	return order, nil
}
