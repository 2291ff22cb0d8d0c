package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements pos.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

var _ pos.OrderRepository = (*GormOrderRepository)(nil)

// FindByID finds an order with its lines by local id
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*pos.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Preload("Lines").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs retrieves orders with their lines by local id
func (r *GormOrderRepository) FindByIDs(ctx context.Context, ids []int64) ([]*pos.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	orders := make([]*pos.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToDomain()
	}
	return orders, nil
}

// FindByRemoteID finds the order carrying the remote order id
func (r *GormOrderRepository) FindByRemoteID(ctx context.Context, remoteID string) (*pos.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Preload("Lines").First(&model, "order_tech_order_id = ?", remoteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the order and its lines in one transaction
func (r *GormOrderRepository) Save(ctx context.Context, order *pos.Order) error {
	var model models.OrderModel
	model.FromDomain(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&model).Error
	})
	if err != nil {
		return err
	}
	order.ID = model.ID
	for i := range model.Lines {
		if i < len(order.Lines) {
			order.Lines[i].ID = model.Lines[i].ID
		}
	}
	return nil
}
