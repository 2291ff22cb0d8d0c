package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
)

// GormSettingsRepository implements ordertech.SettingsRepository using GORM.
// A single settings row is expected; Get returns the most recent one.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

var _ ordertech.SettingsRepository = (*GormSettingsRepository)(nil)

// Get retrieves the settings record, ordertech.ErrSettingsMissing when absent
func (r *GormSettingsRepository) Get(ctx context.Context) (*ordertech.Settings, error) {
	var model models.OrderTechSettingsModel
	if err := r.db.WithContext(ctx).Order("id DESC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ordertech.ErrSettingsMissing
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the settings record
func (r *GormSettingsRepository) Save(ctx context.Context, settings *ordertech.Settings) error {
	var model models.OrderTechSettingsModel
	model.FromDomain(settings)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}
	settings.ID = model.ID
	return nil
}

// SetBearerToken stores a newly registered platform token on the settings row
func (r *GormSettingsRepository) SetBearerToken(ctx context.Context, token string) error {
	settings, err := r.Get(ctx)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&models.OrderTechSettingsModel{}).
		Where("id = ?", settings.ID).
		Update("bearer_token", token).Error
}
