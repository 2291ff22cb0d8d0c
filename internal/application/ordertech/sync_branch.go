package ordertech

import (
	"context"

	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
)

// BranchSyncService mirrors branch companies to remote branches.
type BranchSyncService struct {
	companies    pos.CompanyRepository
	settingsRepo ordertech.SettingsRepository
	client       ordertech.Client
	logger       *zap.Logger
}

// NewBranchSyncService creates a new BranchSyncService
func NewBranchSyncService(
	companies pos.CompanyRepository,
	settingsRepo ordertech.SettingsRepository,
	client ordertech.Client,
	logger *zap.Logger,
) *BranchSyncService {
	return &BranchSyncService{
		companies:    companies,
		settingsRepo: settingsRepo,
		client:       client,
		logger:       logger,
	}
}

// parent resolves the branch's parent company, nil when absent.
func (s *BranchSyncService) parent(ctx context.Context, branch *pos.Company) *pos.Company {
	if branch.ParentID == nil {
		return nil
	}
	parent, err := s.companies.FindByID(ctx, *branch.ParentID)
	if err != nil {
		return nil
	}
	return parent
}

// OnCreate pushes newly created eligible branches through a remote branch
// create. On 201 both the remote branch id and the response's tenant id are
// written back onto the branch.
func (s *BranchSyncService) OnCreate(ctx context.Context, companyIDs []int64) {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range companyIDs {
		branch, err := s.companies.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("branch lookup failed", zap.Int64("company_id", id), zap.Error(err))
			continue
		}
		parent := s.parent(ctx, branch)
		if !ordertech.BranchCreateEligible(branch, parent) {
			continue
		}
		s.createBranch(ctx, branch, parent)
	}
}

func (s *BranchSyncService) createBranch(ctx context.Context, branch, parent *pos.Company) {
	payload := ordertech.BuildBranch(branch, parent.OrderTechTenantID)
	created, err := s.client.CreateBranch(ctx, payload)
	if err != nil {
		s.logger.Error("branch sync failed",
			zap.Int64("company_id", branch.ID), zap.Error(err))
		return
	}
	if err := s.companies.SetRemoteBranchID(ctx, branch.ID, created.ID); err != nil {
		s.logger.Error("storing remote branch id failed",
			zap.Int64("company_id", branch.ID), zap.Error(err))
		return
	}
	if err := s.companies.SetRemoteTenantID(ctx, branch.ID, created.TenantID); err != nil {
		s.logger.Error("storing remote tenant id failed",
			zap.Int64("company_id", branch.ID), zap.Error(err))
		return
	}
	s.logger.Info("synced branch data", zap.Int64("company_id", branch.ID),
		zap.String("branch_id", created.ID))
}

// OnWrite reacts to a company write: when the touched fields intersect the
// branch tracked set, every eligible branch already created remotely is
// pushed through a branch update.
func (s *BranchSyncService) OnWrite(ctx context.Context, companyIDs []int64, changedFields []string) {
	if !ordertech.ShouldSync(changedFields, ordertech.BranchTrackedFields) {
		return
	}
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range companyIDs {
		branch, err := s.companies.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("branch lookup failed", zap.Int64("company_id", id), zap.Error(err))
			continue
		}
		parent := s.parent(ctx, branch)
		if !ordertech.BranchUpdateEligible(branch, parent) {
			continue
		}
		payload := ordertech.BuildBranch(branch, "")
		if err := s.client.UpdateBranch(ctx, branch.OrderTechBranchID, payload); err != nil {
			s.logger.Error("branch sync failed",
				zap.Int64("company_id", id), zap.Error(err))
			continue
		}
		s.logger.Info("synced branch update data", zap.Int64("company_id", id))
	}
}

// Resync is the manual reconciliation sweep: branches still missing a remote
// id are pushed through the create path.
func (s *BranchSyncService) Resync(ctx context.Context) error {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return ordertech.ErrTokenMissing
	}
	branches, err := s.companies.FindBranchesWithoutRemoteID(ctx)
	if err != nil {
		return err
	}
	for _, branch := range branches {
		parent := s.parent(ctx, branch)
		if !ordertech.BranchResyncEligible(branch, parent) {
			continue
		}
		s.createBranch(ctx, branch, parent)
	}
	return nil
}
