package ordertech

import "context"

// RemoteRestaurant is a tenant entry returned by the restaurant pull.
type RemoteRestaurant struct {
	// ID is the remote tenant identifier
	ID string `json:"id"`
	// NameDisplay is the tenant display name
	NameDisplay string `json:"name_display"`
	// Phone is the tenant phone
	Phone string `json:"phone"`
	// Email is the tenant email
	Email string `json:"email"`
	// OpeningTime is the opening time as HH:MM
	OpeningTime string `json:"opening_time"`
	// ClosingTime is the closing time as HH:MM
	ClosingTime string `json:"closing_time"`
}

// BranchCreated is the remote response to a branch create call.
type BranchCreated struct {
	// ID is the remote branch identifier
	ID string `json:"id"`
	// TenantID is the owning tenant identifier
	TenantID string `json:"tenantId"`
}

// Client is the outbound port to the OrderTech platform. Create calls return
// the remote-assigned identifier parsed from a 201 response; update calls
// succeed on 200. Any non-success status maps to ErrRemoteStatus, transport
// failures to ErrRemoteRequest.
type Client interface {
	// PullRestaurants fetches the tenants visible to the bearer token
	PullRestaurants(ctx context.Context) ([]RemoteRestaurant, error)
	// UpdateTenant updates the tenant profile
	UpdateTenant(ctx context.Context, tenantID string, p TenantPayload) error
	// CreateBranch creates a branch under the payload's tenant
	CreateBranch(ctx context.Context, p BranchPayload) (*BranchCreated, error)
	// UpdateBranch updates a branch
	UpdateBranch(ctx context.Context, branchID string, p BranchPayload) error
	// CreateCategory creates a menu category, returning its remote id
	CreateCategory(ctx context.Context, tenantID string, p CategoryPayload) (string, error)
	// UpdateCategory updates a menu category
	UpdateCategory(ctx context.Context, categoryID string, p CategoryPayload) error
	// CreateAddonGroup creates an addon group, returning its remote id
	CreateAddonGroup(ctx context.Context, tenantID string, p AddonGroupPayload) (string, error)
	// UpdateAddonGroup updates an addon group
	UpdateAddonGroup(ctx context.Context, groupID string, p AddonGroupPayload) error
	// CreateAddonItem creates an addon item. The remote API answers with a
	// collection of created items; only the first item's id is returned
	CreateAddonItem(ctx context.Context, tenantID string, p AddonItemPayload) (string, error)
	// UpdateAddonItem updates an addon item
	UpdateAddonItem(ctx context.Context, itemID string, p AddonItemPayload) error
	// CreateProduct creates a product, returning its remote id
	CreateProduct(ctx context.Context, tenantID string, p ProductPayload) (string, error)
	// UpdateProduct updates a product
	UpdateProduct(ctx context.Context, productID string, p ProductPayload) error
	// CreateCustomer creates a customer under the tenant, returning its
	// remote id
	CreateCustomer(ctx context.Context, tenantID string, p CustomerPayload) (string, error)
	// UpdateCustomer updates a customer
	UpdateCustomer(ctx context.Context, customerID, tenantID string, p CustomerPayload) error
	// NotifyOrderStatus posts an order stage transition to the platform
	// webhook; the remote side answers 201 on acceptance
	NotifyOrderStatus(ctx context.Context, p OrderStatusPayload) error
}
