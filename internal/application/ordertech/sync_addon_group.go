package ordertech

import (
	"context"

	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
)

// AddonGroupSyncService mirrors addons-flagged attribute groups to remote
// addon groups.
type AddonGroupSyncService struct {
	groups       pos.AttributeGroupRepository
	values       pos.AttributeValueRepository
	companies    pos.CompanyRepository
	settingsRepo ordertech.SettingsRepository
	client       ordertech.Client
	items        *AddonItemSyncService
	logger       *zap.Logger
}

// NewAddonGroupSyncService creates a new AddonGroupSyncService
func NewAddonGroupSyncService(
	groups pos.AttributeGroupRepository,
	values pos.AttributeValueRepository,
	companies pos.CompanyRepository,
	settingsRepo ordertech.SettingsRepository,
	client ordertech.Client,
	items *AddonItemSyncService,
	logger *zap.Logger,
) *AddonGroupSyncService {
	return &AddonGroupSyncService{
		groups:       groups,
		values:       values,
		companies:    companies,
		settingsRepo: settingsRepo,
		client:       client,
		items:        items,
		logger:       logger,
	}
}

func (s *AddonGroupSyncService) tenantID(ctx context.Context, companyID int64) string {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return ""
	}
	return company.OrderTechTenantID
}

// OnCreate pushes newly created addons groups of a synced tenant through a
// remote addon-group create, storing the returned id.
func (s *AddonGroupSyncService) OnCreate(ctx context.Context, groupIDs []int64) {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range groupIDs {
		group, err := s.groups.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("addon-group lookup failed", zap.Int64("group_id", id), zap.Error(err))
			continue
		}
		tenantID := s.tenantID(ctx, group.CompanyID)
		if !ordertech.AddonGroupCreateEligible(group, tenantID) {
			continue
		}
		s.createGroup(ctx, group, tenantID)
	}
}

func (s *AddonGroupSyncService) createGroup(ctx context.Context, group *pos.AttributeGroup, tenantID string) bool {
	payload := ordertech.BuildAddonGroup(group)
	remoteID, err := s.client.CreateAddonGroup(ctx, tenantID, payload)
	if err != nil {
		s.logger.Error("addon-group sync failed",
			zap.Int64("group_id", group.ID), zap.Error(err))
		return false
	}
	if err := s.groups.SetRemoteID(ctx, group.ID, remoteID); err != nil {
		s.logger.Error("storing remote addon-group id failed",
			zap.Int64("group_id", group.ID), zap.Error(err))
		return false
	}
	group.OrderTechGroupID = remoteID
	s.logger.Info("synced addon-group data", zap.Int64("group_id", group.ID),
		zap.String("remote_id", remoteID))
	return true
}

// OnWrite reacts to an attribute-group write when the touched fields
// intersect the addon-group tracked set.
func (s *AddonGroupSyncService) OnWrite(ctx context.Context, groupIDs []int64, changedFields []string) {
	if !ordertech.ShouldSync(changedFields, ordertech.AddonGroupTrackedFields) {
		return
	}
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range groupIDs {
		group, err := s.groups.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("addon-group lookup failed", zap.Int64("group_id", id), zap.Error(err))
			continue
		}
		tenantID := s.tenantID(ctx, group.CompanyID)
		if !ordertech.AddonGroupUpdateEligible(group, tenantID) {
			continue
		}
		payload := ordertech.BuildAddonGroup(group)
		if err := s.client.UpdateAddonGroup(ctx, group.OrderTechGroupID, payload); err != nil {
			s.logger.Error("addon-group sync failed",
				zap.Int64("group_id", id), zap.Error(err))
			continue
		}
		s.logger.Info("synced addon-group update data", zap.Int64("group_id", id))
	}
}

// Resync is the manual reconciliation sweep for addons groups missing a
// remote id. Each group created by the sweep also pushes its values through
// the addon-item create path, so a freshly reconciled group arrives complete.
func (s *AddonGroupSyncService) Resync(ctx context.Context) error {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return ordertech.ErrTokenMissing
	}
	groups, err := s.groups.FindAddonsWithoutRemoteID(ctx)
	if err != nil {
		return err
	}
	for _, group := range groups {
		tenantID := s.tenantID(ctx, group.CompanyID)
		if !ordertech.AddonGroupCreateEligible(group, tenantID) {
			continue
		}
		if !s.createGroup(ctx, group, tenantID) {
			continue
		}
		values, err := s.values.FindByGroupID(ctx, group.ID)
		if err != nil {
			s.logger.Error("addon-group values lookup failed",
				zap.Int64("group_id", group.ID), zap.Error(err))
			continue
		}
		for _, value := range values {
			s.items.createItem(ctx, value, group, tenantID)
		}
	}
	return nil
}
