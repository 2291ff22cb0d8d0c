package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
)

// GormCategoryRepository implements pos.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

var _ pos.CategoryRepository = (*GormCategoryRepository)(nil)

// FindByID finds a category by its local id
func (r *GormCategoryRepository) FindByID(ctx context.Context, id int64) (*pos.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindWithoutRemoteID lists categories not yet created remotely
func (r *GormCategoryRepository) FindWithoutRemoteID(ctx context.Context) ([]*pos.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.db.WithContext(ctx).
		Where("order_tech_category_id = ''").
		Order("id ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	categories := make([]*pos.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToDomain()
	}
	return categories, nil
}

// SetRemoteID writes the remote category id onto the category
func (r *GormCategoryRepository) SetRemoteID(ctx context.Context, id int64, remoteID string) error {
	return r.db.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("id = ?", id).
		Update("order_tech_category_id", remoteID).Error
}
