package ordertech

import (
	"context"

	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
)

// CustomerSyncService mirrors branch customers to remote customers.
type CustomerSyncService struct {
	customers    pos.CustomerRepository
	companies    pos.CompanyRepository
	settingsRepo ordertech.SettingsRepository
	client       ordertech.Client
	logger       *zap.Logger
}

// NewCustomerSyncService creates a new CustomerSyncService
func NewCustomerSyncService(
	customers pos.CustomerRepository,
	companies pos.CompanyRepository,
	settingsRepo ordertech.SettingsRepository,
	client ordertech.Client,
	logger *zap.Logger,
) *CustomerSyncService {
	return &CustomerSyncService{
		customers:    customers,
		companies:    companies,
		settingsRepo: settingsRepo,
		client:       client,
		logger:       logger,
	}
}

// resolve loads the customer's owning company and its parent.
func (s *CustomerSyncService) resolve(ctx context.Context, customer *pos.Customer) (company, parent *pos.Company) {
	company, err := s.companies.FindByID(ctx, customer.CompanyID)
	if err != nil || company == nil {
		return nil, nil
	}
	if company.ParentID != nil {
		parent, _ = s.companies.FindByID(ctx, *company.ParentID)
	}
	return company, parent
}

// OnCreate pushes newly created eligible customers through a remote customer
// create, storing the returned id.
func (s *CustomerSyncService) OnCreate(ctx context.Context, customerIDs []int64) {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range customerIDs {
		customer, err := s.customers.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("customer lookup failed", zap.Int64("customer_id", id), zap.Error(err))
			continue
		}
		company, parent := s.resolve(ctx, customer)
		if !ordertech.CustomerCreateEligible(customer, company, parent) {
			continue
		}
		s.createCustomer(ctx, customer, company.OrderTechTenantID)
	}
}

func (s *CustomerSyncService) createCustomer(ctx context.Context, customer *pos.Customer, tenantID string) {
	payload := ordertech.BuildCustomer(customer)
	remoteID, err := s.client.CreateCustomer(ctx, tenantID, payload)
	if err != nil {
		s.logger.Error("customer sync failed",
			zap.Int64("customer_id", customer.ID), zap.Error(err))
		return
	}
	if err := s.customers.SetRemoteID(ctx, customer.ID, remoteID); err != nil {
		s.logger.Error("storing remote customer id failed",
			zap.Int64("customer_id", customer.ID), zap.Error(err))
		return
	}
	s.logger.Info("synced customer data", zap.Int64("customer_id", customer.ID),
		zap.String("remote_id", remoteID))
}

// OnWrite reacts to a customer write when the touched fields intersect the
// customer tracked set.
func (s *CustomerSyncService) OnWrite(ctx context.Context, customerIDs []int64, changedFields []string) {
	if !ordertech.ShouldSync(changedFields, ordertech.CustomerTrackedFields) {
		return
	}
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range customerIDs {
		customer, err := s.customers.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("customer lookup failed", zap.Int64("customer_id", id), zap.Error(err))
			continue
		}
		company, parent := s.resolve(ctx, customer)
		if !ordertech.CustomerUpdateEligible(customer, company, parent) {
			continue
		}
		payload := ordertech.BuildCustomer(customer)
		err = s.client.UpdateCustomer(ctx, customer.OrderTechCustomerID, company.OrderTechTenantID, payload)
		if err != nil {
			s.logger.Error("customer sync failed",
				zap.Int64("customer_id", id), zap.Error(err))
			continue
		}
		s.logger.Info("synced customer update data", zap.Int64("customer_id", id))
	}
}

// Resync is the manual reconciliation sweep for customers missing a remote
// id.
func (s *CustomerSyncService) Resync(ctx context.Context) error {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return ordertech.ErrTokenMissing
	}
	customers, err := s.customers.FindWithoutRemoteID(ctx)
	if err != nil {
		return err
	}
	for _, customer := range customers {
		company, parent := s.resolve(ctx, customer)
		if !ordertech.CustomerCreateEligible(customer, company, parent) {
			continue
		}
		s.createCustomer(ctx, customer, company.OrderTechTenantID)
	}
	return nil
}
