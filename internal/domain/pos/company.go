package pos

import "time"

// Company represents a restaurant company record. A company with a parent is
// a branch; the root restaurant company is the OrderTech tenant.
type Company struct {
	// ID is the local record identifier
	ID int64
	// ParentID is the parent company ID (nil for the root restaurant company)
	ParentID *int64
	// Name is the company display name
	Name string
	// Phone is the public contact phone
	Phone string
	// Email is the contact email
	Email string
	// Street is the first address line
	Street string
	// Street2 is the second address line
	Street2 string
	// City is the city name
	City string
	// StateName is the state/province display name
	StateName string
	// Zip is the postal code
	Zip string
	// CountryCode is the ISO country code
	CountryCode string
	// Timezone is the IANA timezone of the branch
	Timezone string
	// IsRestaurant marks the root restaurant company
	IsRestaurant bool
	// IsBranch marks a child company
	IsBranch bool
	// OpeningTime is the daily opening time as fractional hours (e.g. 9.5 = 09:30)
	OpeningTime float64
	// ClosingTime is the daily closing time as fractional hours
	ClosingTime float64
	// DeliveryRadiusKm is the delivery radius in kilometers
	DeliveryRadiusKm int
	// Notes is free-form branch notes
	Notes string
	// OrderTechTenantID is the remote tenant identifier (set once on pull/create)
	OrderTechTenantID string
	// OrderTechBranchID is the remote branch identifier (set once on create)
	OrderTechBranchID string
	// CreatedAt is when the record was created
	CreatedAt time.Time
	// UpdatedAt is when the record was last updated
	UpdatedAt time.Time
}

// HasRemoteTenant returns true once the company carries a remote tenant id.
// A branch inherits the tenant id from its parent restaurant, which is
// resolved by the caller.
func (c *Company) HasRemoteTenant() bool {
	return c.OrderTechTenantID != ""
}

// HasRemoteBranch returns true once the branch has been created remotely.
func (c *Company) HasRemoteBranch() bool {
	return c.OrderTechBranchID != ""
}
