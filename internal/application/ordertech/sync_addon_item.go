package ordertech

import (
	"context"

	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
)

// AddonItemSyncService mirrors attribute values to remote addon items.
type AddonItemSyncService struct {
	values       pos.AttributeValueRepository
	groups       pos.AttributeGroupRepository
	companies    pos.CompanyRepository
	settingsRepo ordertech.SettingsRepository
	client       ordertech.Client
	logger       *zap.Logger
}

// NewAddonItemSyncService creates a new AddonItemSyncService
func NewAddonItemSyncService(
	values pos.AttributeValueRepository,
	groups pos.AttributeGroupRepository,
	companies pos.CompanyRepository,
	settingsRepo ordertech.SettingsRepository,
	client ordertech.Client,
	logger *zap.Logger,
) *AddonItemSyncService {
	return &AddonItemSyncService{
		values:       values,
		groups:       groups,
		companies:    companies,
		settingsRepo: settingsRepo,
		client:       client,
		logger:       logger,
	}
}

// OnCreate pushes newly created attribute values whose parent group already
// exists remotely through an addon-item create.
func (s *AddonItemSyncService) OnCreate(ctx context.Context, valueIDs []int64) {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range valueIDs {
		value, err := s.values.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("addon-item lookup failed", zap.Int64("value_id", id), zap.Error(err))
			continue
		}
		group, err := s.groups.FindByID(ctx, value.GroupID)
		if err != nil {
			s.logger.Error("addon-item group lookup failed", zap.Int64("value_id", id), zap.Error(err))
			continue
		}
		if !ordertech.AddonItemCreateEligible(value, group) {
			continue
		}
		tenantID := s.tenantID(ctx, group.CompanyID)
		s.createItem(ctx, value, group, tenantID)
	}
}

func (s *AddonItemSyncService) tenantID(ctx context.Context, companyID int64) string {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return ""
	}
	return company.OrderTechTenantID
}

// createItem issues the addon-item create call. The remote API answers with
// a collection of created items; only the first item's id is persisted.
func (s *AddonItemSyncService) createItem(ctx context.Context, value *pos.AttributeValue, group *pos.AttributeGroup, tenantID string) {
	payload := ordertech.BuildAddonItem(value, group.OrderTechGroupID)
	remoteID, err := s.client.CreateAddonItem(ctx, tenantID, payload)
	if err != nil {
		s.logger.Error("addon-item sync failed",
			zap.Int64("value_id", value.ID), zap.Error(err))
		return
	}
	if remoteID == "" {
		s.logger.Warn("addon-item create returned no items", zap.Int64("value_id", value.ID))
		return
	}
	if err := s.values.SetRemoteID(ctx, value.ID, remoteID); err != nil {
		s.logger.Error("storing remote addon-item id failed",
			zap.Int64("value_id", value.ID), zap.Error(err))
		return
	}
	s.logger.Info("synced addon-item data", zap.Int64("value_id", value.ID),
		zap.String("remote_id", remoteID))
}

// OnWrite reacts to an attribute-value write touching the name or the
// default extra price.
func (s *AddonItemSyncService) OnWrite(ctx context.Context, valueIDs []int64, changedFields []string) {
	if !ordertech.ShouldSync(changedFields, ordertech.AddonItemTrackedFields) {
		return
	}
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range valueIDs {
		value, err := s.values.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("addon-item lookup failed", zap.Int64("value_id", id), zap.Error(err))
			continue
		}
		if !ordertech.AddonItemUpdateEligible(value) {
			continue
		}
		payload := ordertech.BuildAddonItem(value, "")
		if err := s.client.UpdateAddonItem(ctx, value.OrderTechItemID, payload); err != nil {
			s.logger.Error("addon-item sync failed",
				zap.Int64("value_id", id), zap.Error(err))
			continue
		}
		s.logger.Info("synced addon-item update data", zap.Int64("value_id", id))
	}
}
