package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
)

// GormCompanyRepository implements pos.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

var _ pos.CompanyRepository = (*GormCompanyRepository)(nil)

// FindByID finds a company by its local id
func (r *GormCompanyRepository) FindByID(ctx context.Context, id int64) (*pos.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindRestaurant finds the root restaurant company
func (r *GormCompanyRepository) FindRestaurant(ctx context.Context) (*pos.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "is_restaurant = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByRemoteBranchID finds the branch carrying the remote branch id
func (r *GormCompanyRepository) FindByRemoteBranchID(ctx context.Context, remoteID string) (*pos.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "order_tech_branch_id = ?", remoteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBranchesWithoutRemoteID lists branches not yet created remotely
func (r *GormCompanyRepository) FindBranchesWithoutRemoteID(ctx context.Context) ([]*pos.Company, error) {
	var companyModels []models.CompanyModel
	if err := r.db.WithContext(ctx).
		Where("is_branch = ? AND order_tech_branch_id = ''", true).
		Order("id ASC").
		Find(&companyModels).Error; err != nil {
		return nil, err
	}
	companies := make([]*pos.Company, len(companyModels))
	for i := range companyModels {
		companies[i] = companyModels[i].ToDomain()
	}
	return companies, nil
}

// Save persists the company
func (r *GormCompanyRepository) Save(ctx context.Context, company *pos.Company) error {
	var model models.CompanyModel
	model.FromDomain(company)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}
	company.ID = model.ID
	return nil
}

// SetRemoteTenantID writes the remote tenant id onto the company
func (r *GormCompanyRepository) SetRemoteTenantID(ctx context.Context, id int64, remoteID string) error {
	return r.db.WithContext(ctx).
		Model(&models.CompanyModel{}).
		Where("id = ?", id).
		Update("order_tech_tenant_id", remoteID).Error
}

// SetRemoteBranchID writes the remote branch id onto the company
func (r *GormCompanyRepository) SetRemoteBranchID(ctx context.Context, id int64, remoteID string) error {
	return r.db.WithContext(ctx).
		Model(&models.CompanyModel{}).
		Where("id = ?", id).
		Update("order_tech_branch_id", remoteID).Error
}
