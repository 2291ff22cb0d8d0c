package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
)

// GormAttributeGroupRepository implements pos.AttributeGroupRepository using GORM
type GormAttributeGroupRepository struct {
	db *gorm.DB
}

// NewGormAttributeGroupRepository creates a new GormAttributeGroupRepository
func NewGormAttributeGroupRepository(db *gorm.DB) *GormAttributeGroupRepository {
	return &GormAttributeGroupRepository{db: db}
}

var _ pos.AttributeGroupRepository = (*GormAttributeGroupRepository)(nil)

// FindByID finds an attribute group by its local id
func (r *GormAttributeGroupRepository) FindByID(ctx context.Context, id int64) (*pos.AttributeGroup, error) {
	var model models.AttributeGroupModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAddonsWithoutRemoteID lists addon groups not yet created remotely
func (r *GormAttributeGroupRepository) FindAddonsWithoutRemoteID(ctx context.Context) ([]*pos.AttributeGroup, error) {
	var groupModels []models.AttributeGroupModel
	if err := r.db.WithContext(ctx).
		Where("is_addons = ? AND order_tech_group_id = ''", true).
		Order("id ASC").
		Find(&groupModels).Error; err != nil {
		return nil, err
	}
	groups := make([]*pos.AttributeGroup, len(groupModels))
	for i := range groupModels {
		groups[i] = groupModels[i].ToDomain()
	}
	return groups, nil
}

// SetRemoteID writes the remote group id onto the attribute group
func (r *GormAttributeGroupRepository) SetRemoteID(ctx context.Context, id int64, remoteID string) error {
	return r.db.WithContext(ctx).
		Model(&models.AttributeGroupModel{}).
		Where("id = ?", id).
		Update("order_tech_group_id", remoteID).Error
}

// GormAttributeValueRepository implements pos.AttributeValueRepository using GORM
type GormAttributeValueRepository struct {
	db *gorm.DB
}

// NewGormAttributeValueRepository creates a new GormAttributeValueRepository
func NewGormAttributeValueRepository(db *gorm.DB) *GormAttributeValueRepository {
	return &GormAttributeValueRepository{db: db}
}

var _ pos.AttributeValueRepository = (*GormAttributeValueRepository)(nil)

// FindByID finds an attribute value by its local id
func (r *GormAttributeValueRepository) FindByID(ctx context.Context, id int64) (*pos.AttributeValue, error) {
	var model models.AttributeValueModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs retrieves values by local id, preserving input order
func (r *GormAttributeValueRepository) FindByIDs(ctx context.Context, ids []int64) ([]*pos.AttributeValue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var valueModels []models.AttributeValueModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&valueModels).Error; err != nil {
		return nil, err
	}
	byID := make(map[int64]*pos.AttributeValue, len(valueModels))
	for i := range valueModels {
		byID[valueModels[i].ID] = valueModels[i].ToDomain()
	}
	values := make([]*pos.AttributeValue, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			values = append(values, v)
		}
	}
	return values, nil
}

// FindByGroupID lists the values of an attribute group
func (r *GormAttributeValueRepository) FindByGroupID(ctx context.Context, groupID int64) ([]*pos.AttributeValue, error) {
	var valueModels []models.AttributeValueModel
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("id ASC").
		Find(&valueModels).Error; err != nil {
		return nil, err
	}
	values := make([]*pos.AttributeValue, len(valueModels))
	for i := range valueModels {
		values[i] = valueModels[i].ToDomain()
	}
	return values, nil
}

// SetRemoteID writes the remote item id onto the attribute value
func (r *GormAttributeValueRepository) SetRemoteID(ctx context.Context, id int64, remoteID string) error {
	return r.db.WithContext(ctx).
		Model(&models.AttributeValueModel{}).
		Where("id = ?", id).
		Update("order_tech_item_id", remoteID).Error
}
