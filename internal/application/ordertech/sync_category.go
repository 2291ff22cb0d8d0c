package ordertech

import (
	"context"

	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
)

// CategorySyncService mirrors POS categories to remote menu categories.
type CategorySyncService struct {
	categories   pos.CategoryRepository
	companies    pos.CompanyRepository
	settingsRepo ordertech.SettingsRepository
	client       ordertech.Client
	logger       *zap.Logger
}

// NewCategorySyncService creates a new CategorySyncService
func NewCategorySyncService(
	categories pos.CategoryRepository,
	companies pos.CompanyRepository,
	settingsRepo ordertech.SettingsRepository,
	client ordertech.Client,
	logger *zap.Logger,
) *CategorySyncService {
	return &CategorySyncService{
		categories:   categories,
		companies:    companies,
		settingsRepo: settingsRepo,
		client:       client,
		logger:       logger,
	}
}

// tenantID resolves the remote tenant id of the category's owning company,
// empty when not synced.
func (s *CategorySyncService) tenantID(ctx context.Context, companyID int64) string {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return ""
	}
	return company.OrderTechTenantID
}

// OnCreate pushes newly created categories of a synced tenant through a
// remote category create, storing the returned id.
func (s *CategorySyncService) OnCreate(ctx context.Context, categoryIDs []int64) {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range categoryIDs {
		category, err := s.categories.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("category lookup failed", zap.Int64("category_id", id), zap.Error(err))
			continue
		}
		tenantID := s.tenantID(ctx, category.CompanyID)
		if !ordertech.CategoryCreateEligible(category, tenantID) {
			continue
		}
		s.createCategory(ctx, category, tenantID)
	}
}

func (s *CategorySyncService) createCategory(ctx context.Context, category *pos.Category, tenantID string) {
	payload := ordertech.BuildCategory(category)
	remoteID, err := s.client.CreateCategory(ctx, tenantID, payload)
	if err != nil {
		s.logger.Error("category sync failed",
			zap.Int64("category_id", category.ID), zap.Error(err))
		return
	}
	if err := s.categories.SetRemoteID(ctx, category.ID, remoteID); err != nil {
		s.logger.Error("storing remote category id failed",
			zap.Int64("category_id", category.ID), zap.Error(err))
		return
	}
	s.logger.Info("synced category data", zap.Int64("category_id", category.ID),
		zap.String("remote_id", remoteID))
}

// OnWrite reacts to a category write; only the name is tracked.
func (s *CategorySyncService) OnWrite(ctx context.Context, categoryIDs []int64, changedFields []string) {
	if !ordertech.ShouldSync(changedFields, ordertech.CategoryTrackedFields) {
		return
	}
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range categoryIDs {
		category, err := s.categories.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("category lookup failed", zap.Int64("category_id", id), zap.Error(err))
			continue
		}
		tenantID := s.tenantID(ctx, category.CompanyID)
		if !ordertech.CategoryUpdateEligible(category, tenantID) {
			continue
		}
		payload := ordertech.BuildCategory(category)
		if err := s.client.UpdateCategory(ctx, category.OrderTechCategoryID, payload); err != nil {
			s.logger.Error("category sync failed",
				zap.Int64("category_id", id), zap.Error(err))
			continue
		}
		s.logger.Info("synced category update data", zap.Int64("category_id", id))
	}
}

// Resync is the manual reconciliation sweep for categories missing a remote
// id.
func (s *CategorySyncService) Resync(ctx context.Context) error {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return ordertech.ErrTokenMissing
	}
	categories, err := s.categories.FindWithoutRemoteID(ctx)
	if err != nil {
		return err
	}
	for _, category := range categories {
		tenantID := s.tenantID(ctx, category.CompanyID)
		if !ordertech.CategoryCreateEligible(category, tenantID) {
			continue
		}
		s.createCategory(ctx, category, tenantID)
	}
	return nil
}
