package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
)

// GormCustomerRepository implements pos.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

var _ pos.CustomerRepository = (*GormCustomerRepository)(nil)

// FindByID finds a customer by its local id
func (r *GormCustomerRepository) FindByID(ctx context.Context, id int64) (*pos.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByRemoteID finds the customer carrying the remote customer id
func (r *GormCustomerRepository) FindByRemoteID(ctx context.Context, remoteID string) (*pos.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "order_tech_customer_id = ?", remoteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindWithoutRemoteID lists customers not yet created remotely
func (r *GormCustomerRepository) FindWithoutRemoteID(ctx context.Context) ([]*pos.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("customer_rank > 0 AND order_tech_customer_id = ''").
		Order("id ASC").
		Find(&customerModels).Error; err != nil {
		return nil, err
	}
	customers := make([]*pos.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = customerModels[i].ToDomain()
	}
	return customers, nil
}

// Save persists the customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *pos.Customer) error {
	var model models.CustomerModel
	model.FromDomain(customer)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}
	customer.ID = model.ID
	return nil
}

// SetRemoteID writes the remote customer id onto the customer
func (r *GormCustomerRepository) SetRemoteID(ctx context.Context, id int64, remoteID string) error {
	return r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("id = ?", id).
		Update("order_tech_customer_id", remoteID).Error
}
