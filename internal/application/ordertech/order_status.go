package ordertech

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
)

// OrderStatusNotifier posts preparation-stage transitions to the platform's
// order-status webhook. Only orders carrying a remote order id are notified;
// failures are logged and swallowed.
type OrderStatusNotifier struct {
	orders       pos.OrderRepository
	settingsRepo ordertech.SettingsRepository
	client       ordertech.Client
	logger       *zap.Logger
}

// NewOrderStatusNotifier creates a new OrderStatusNotifier
func NewOrderStatusNotifier(
	orders pos.OrderRepository,
	settingsRepo ordertech.SettingsRepository,
	client ordertech.Client,
	logger *zap.Logger,
) *OrderStatusNotifier {
	return &OrderStatusNotifier{
		orders:       orders,
		settingsRepo: settingsRepo,
		client:       client,
		logger:       logger,
	}
}

// NotifyStageChange reports that the given orders moved to the stage. The
// stage name is lowercased on the wire.
func (n *OrderStatusNotifier) NotifyStageChange(ctx context.Context, orderIDs []int64, stage *pos.PreparationStage) {
	n.notify(ctx, orderIDs, stage.Name)
}

// NotifyDone reports order completion using the display's last stage name.
func (n *OrderStatusNotifier) NotifyDone(ctx context.Context, orderIDs []int64, lastStage *pos.PreparationStage) {
	n.notify(ctx, orderIDs, lastStage.Name)
}

// NotifyPreparing reports that a single order entered preparation.
func (n *OrderStatusNotifier) NotifyPreparing(ctx context.Context, orderID int64) {
	n.notify(ctx, []int64{orderID}, "preparing")
}

func (n *OrderStatusNotifier) notify(ctx context.Context, orderIDs []int64, status string) {
	if !tokenReady(ctx, n.settingsRepo, n.logger) {
		return
	}
	orders, err := n.orders.FindByIDs(ctx, orderIDs)
	if err != nil {
		n.logger.Error("order lookup failed", zap.Int64s("order_ids", orderIDs), zap.Error(err))
		return
	}
	for _, order := range orders {
		if order.OrderTechOrderID == "" {
			continue
		}
		payload := ordertech.OrderStatusPayload{
			OrderID: order.OrderTechOrderID,
			Status:  strings.ToLower(status),
		}
		if err := n.client.NotifyOrderStatus(ctx, payload); err != nil {
			n.logger.Error("order status update failed",
				zap.Int64("order_id", order.ID), zap.Error(err))
			continue
		}
		n.logger.Info("updated order status", zap.Int64("order_id", order.ID),
			zap.String("status", payload.Status))
	}
}
