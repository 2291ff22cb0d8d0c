package ordertech

import (
	"context"

	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
)

// TenantSyncService mirrors the restaurant company to the remote tenant.
type TenantSyncService struct {
	companies    pos.CompanyRepository
	settingsRepo ordertech.SettingsRepository
	client       ordertech.Client
	logger       *zap.Logger
}

// NewTenantSyncService creates a new TenantSyncService
func NewTenantSyncService(
	companies pos.CompanyRepository,
	settingsRepo ordertech.SettingsRepository,
	client ordertech.Client,
	logger *zap.Logger,
) *TenantSyncService {
	return &TenantSyncService{
		companies:    companies,
		settingsRepo: settingsRepo,
		client:       client,
		logger:       logger,
	}
}

// tokenReady checks the settings record before any outbound batch. Sync is
// silently skipped (logged) when no token is registered yet.
func tokenReady(ctx context.Context, repo ordertech.SettingsRepository, logger *zap.Logger) bool {
	settings, err := repo.Get(ctx)
	if err != nil || !settings.HasToken() {
		logger.Error("ordertech instance missing, sync skipped", zap.Error(err))
		return false
	}
	return true
}

// parseClock converts a remote HH:MM value to fractional hours and rejects
// results outside [0, 24).
func parseClock(clock string) (float64, error) {
	value, err := ordertech.ClockToFloat(clock)
	if err != nil {
		return 0, err
	}
	if err := ordertech.ValidateClockFloat(value); err != nil {
		return 0, err
	}
	return value, nil
}

// PullRestaurant fetches the first restaurant visible to the bearer token
// and writes its profile onto the given company, marking it as the
// restaurant and storing the remote tenant id.
func (s *TenantSyncService) PullRestaurant(ctx context.Context, companyID int64) error {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return ordertech.ErrTokenMissing
	}
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return err
	}
	restaurants, err := s.client.PullRestaurants(ctx)
	if err != nil {
		s.logger.Error("restaurant pull failed",
			zap.Int64("company_id", companyID), zap.Error(err))
		return err
	}
	if len(restaurants) == 0 {
		s.logger.Warn("restaurant pull returned an empty list",
			zap.Int64("company_id", companyID))
		return ordertech.ErrEmptyRestaurantList
	}
	data := restaurants[0]
	opening, err := parseClock(data.OpeningTime)
	if err != nil {
		return err
	}
	closing, err := parseClock(data.ClosingTime)
	if err != nil {
		return err
	}
	company.IsRestaurant = true
	company.OrderTechTenantID = data.ID
	company.Name = data.NameDisplay
	company.Phone = data.Phone
	company.Email = data.Email
	company.OpeningTime = opening
	company.ClosingTime = closing
	if err := s.companies.Save(ctx, company); err != nil {
		return err
	}
	s.logger.Info("synced restaurant data", zap.Int64("company_id", companyID),
		zap.String("tenant_id", data.ID))
	return nil
}

// OnWrite reacts to a company write. When the touched fields intersect the
// tenant tracked set, each restaurant company carrying a remote tenant id is
// pushed through a tenant update; failures are logged per company and never
// propagate.
func (s *TenantSyncService) OnWrite(ctx context.Context, companyIDs []int64, changedFields []string) {
	if !ordertech.ShouldSync(changedFields, ordertech.TenantTrackedFields) {
		return
	}
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range companyIDs {
		company, err := s.companies.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("company lookup failed", zap.Int64("company_id", id), zap.Error(err))
			continue
		}
		if !company.IsRestaurant || !company.HasRemoteTenant() {
			continue
		}
		payload := ordertech.BuildTenant(company)
		if err := s.client.UpdateTenant(ctx, company.OrderTechTenantID, payload); err != nil {
			s.logger.Error("tenant sync failed",
				zap.Int64("company_id", id), zap.Error(err))
			continue
		}
		s.logger.Info("synced restaurant update data", zap.Int64("company_id", id))
	}
}
