package ordertech

import (
	"context"

	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
)

// CustomerIntakeRequest is a customer-create call from the ordering platform.
type CustomerIntakeRequest struct {
	// RemoteCustomerID is the platform's customer identifier
	RemoteCustomerID string
	// BranchRemoteID is the platform's branch identifier
	BranchRemoteID string
	// Name is the customer's full name
	Name string
	// Phone is the customer's phone in E.164 form
	Phone string
	// Email is the customer's email (optional)
	Email string
}

// CustomerIntakeResult reports the created or already existing customer.
type CustomerIntakeResult struct {
	// RemoteCustomerID is the platform's customer identifier
	RemoteCustomerID string
	// Name is the customer's name
	Name string
	// Existing is true when the remote customer id was already known
	Existing bool
}

// CustomerIntakeService creates local customers from platform calls.
type CustomerIntakeService struct {
	customers pos.CustomerRepository
	companies pos.CompanyRepository
	logger    *zap.Logger
}

// NewCustomerIntakeService creates a new CustomerIntakeService
func NewCustomerIntakeService(
	customers pos.CustomerRepository,
	companies pos.CompanyRepository,
	logger *zap.Logger,
) *CustomerIntakeService {
	return &CustomerIntakeService{
		customers: customers,
		companies: companies,
		logger:    logger,
	}
}

// Create registers a platform customer locally, scoped to the branch the
// remote branch id resolves to. Idempotent on the remote customer id.
func (s *CustomerIntakeService) Create(ctx context.Context, req CustomerIntakeRequest) (*CustomerIntakeResult, error) {
	existing, err := s.customers.FindByRemoteID(ctx, req.RemoteCustomerID)
	if err == nil && existing != nil {
		return &CustomerIntakeResult{
			RemoteCustomerID: existing.OrderTechCustomerID,
			Name:             existing.Name,
			Existing:         true,
		}, nil
	}
	company, err := s.companies.FindByRemoteBranchID(ctx, req.BranchRemoteID)
	if err != nil || company == nil {
		return nil, validationError(
			"tenant branch %s not found or not synced yet ", req.BranchRemoteID)
	}
	customer := &pos.Customer{
		CompanyID:           company.ID,
		Name:                req.Name,
		Phone:               req.Phone,
		Email:               req.Email,
		CustomerRank:        1,
		OrderTechCustomerID: req.RemoteCustomerID,
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		s.logger.Error("error creating customer from platform request", zap.Error(err))
		return nil, shared.NewDomainError(shared.ErrCodeValidation, err.Error())
	}
	return &CustomerIntakeResult{
		RemoteCustomerID: req.RemoteCustomerID,
		Name:             req.Name,
	}, nil
}
