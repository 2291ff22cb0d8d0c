package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
)

// GormSessionRepository implements pos.SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

var _ pos.SessionRepository = (*GormSessionRepository)(nil)

// FindOpenByCompanyID finds the open session of a branch, if any
func (r *GormSessionRepository) FindOpenByCompanyID(ctx context.Context, companyID int64) (*pos.Session, error) {
	var model models.SessionModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND state = ?", companyID, pos.SessionOpened).
		Order("id DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// MaxSequenceNumber returns the highest order sequence in a session,
// 0 when the session has no orders yet
func (r *GormSessionRepository) MaxSequenceNumber(ctx context.Context, sessionID int64) (int, error) {
	var maxSeq int
	err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(MAX(sequence_number), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}
	return maxSeq, nil
}
