package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
)

// GormProductRepository implements pos.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

var _ pos.ProductRepository = (*GormProductRepository)(nil)

func (r *GormProductRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Categories").
		Preload("AttributeLines.Values")
}

// FindByID finds a product by its local id
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*pos.Product, error) {
	var model models.ProductModel
	if err := r.withAssociations(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByRemoteID finds the product carrying the remote product id
func (r *GormProductRepository) FindByRemoteID(ctx context.Context, remoteID string) (*pos.Product, error) {
	var model models.ProductModel
	if err := r.withAssociations(ctx).First(&model, "order_tech_product_id = ?", remoteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPOSWithoutRemoteID lists POS products not yet created remotely
func (r *GormProductRepository) FindPOSWithoutRemoteID(ctx context.Context) ([]*pos.Product, error) {
	var productModels []models.ProductModel
	if err := r.withAssociations(ctx).
		Where("available_in_pos = ? AND order_tech_product_id = ''", true).
		Order("id ASC").
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	products := make([]*pos.Product, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToDomain()
	}
	return products, nil
}

// SetRemoteID writes the remote product id onto the product
func (r *GormProductRepository) SetRemoteID(ctx context.Context, id int64, remoteID string) error {
	return r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", id).
		Update("order_tech_product_id", remoteID).Error
}
