package pos

import "context"

// CompanyRepository provides access to company records.
type CompanyRepository interface {
	// FindByID retrieves a company by its local id
	FindByID(ctx context.Context, id int64) (*Company, error)
	// FindRestaurant retrieves the root restaurant company
	FindRestaurant(ctx context.Context) (*Company, error)
	// FindByRemoteBranchID retrieves the branch carrying the remote branch id
	FindByRemoteBranchID(ctx context.Context, remoteID string) (*Company, error)
	// FindBranchesWithoutRemoteID lists branches not yet created remotely
	FindBranchesWithoutRemoteID(ctx context.Context) ([]*Company, error)
	// Save persists the company
	Save(ctx context.Context, company *Company) error
	// SetRemoteTenantID writes the remote tenant id onto the company
	SetRemoteTenantID(ctx context.Context, id int64, remoteID string) error
	// SetRemoteBranchID writes the remote branch id onto the company
	SetRemoteBranchID(ctx context.Context, id int64, remoteID string) error
}

// CustomerRepository provides access to customer records.
type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (*Customer, error)
	// FindByRemoteID retrieves the customer carrying the remote customer id
	FindByRemoteID(ctx context.Context, remoteID string) (*Customer, error)
	// FindWithoutRemoteID lists customers not yet created remotely
	FindWithoutRemoteID(ctx context.Context) ([]*Customer, error)
	Save(ctx context.Context, customer *Customer) error
	SetRemoteID(ctx context.Context, id int64, remoteID string) error
}

// CategoryRepository provides access to POS category records.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	// FindWithoutRemoteID lists categories not yet created remotely
	FindWithoutRemoteID(ctx context.Context) ([]*Category, error)
	SetRemoteID(ctx context.Context, id int64, remoteID string) error
}

// AttributeGroupRepository provides access to attribute group records.
type AttributeGroupRepository interface {
	FindByID(ctx context.Context, id int64) (*AttributeGroup, error)
	// FindAddonsWithoutRemoteID lists addon groups not yet created remotely
	FindAddonsWithoutRemoteID(ctx context.Context) ([]*AttributeGroup, error)
	SetRemoteID(ctx context.Context, id int64, remoteID string) error
}

// AttributeValueRepository provides access to attribute value records.
type AttributeValueRepository interface {
	FindByID(ctx context.Context, id int64) (*AttributeValue, error)
	// FindByIDs retrieves values by local id, preserving input order
	FindByIDs(ctx context.Context, ids []int64) ([]*AttributeValue, error)
	// FindByGroupID lists the values of an attribute group
	FindByGroupID(ctx context.Context, groupID int64) ([]*AttributeValue, error)
	SetRemoteID(ctx context.Context, id int64, remoteID string) error
}

// ProductRepository provides access to product records.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*Product, error)
	// FindByRemoteID retrieves the product carrying the remote product id
	FindByRemoteID(ctx context.Context, remoteID string) (*Product, error)
	// FindPOSWithoutRemoteID lists POS products not yet created remotely
	FindPOSWithoutRemoteID(ctx context.Context) ([]*Product, error)
	SetRemoteID(ctx context.Context, id int64, remoteID string) error
}

// SessionRepository provides access to POS session records.
type SessionRepository interface {
	// FindOpenByCompanyID retrieves the open session of a branch, if any
	FindOpenByCompanyID(ctx context.Context, companyID int64) (*Session, error)
	// MaxSequenceNumber returns the highest order sequence in a session,
	// 0 when the session has no orders yet
	MaxSequenceNumber(ctx context.Context, sessionID int64) (int, error)
}

// OrderRepository provides access to order records.
type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*Order, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*Order, error)
	// FindByRemoteID retrieves the order carrying the remote order id
	FindByRemoteID(ctx context.Context, remoteID string) (*Order, error)
	// Save persists the order with its lines
	Save(ctx context.Context, order *Order) error
}
