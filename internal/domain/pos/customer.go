package pos

import "time"

// Customer represents a local partner record that can place orders.
type Customer struct {
	// ID is the local record identifier
	ID int64
	// CompanyID is the branch company owning this customer
	CompanyID int64
	// Name is the customer's full name
	Name string
	// Phone is the customer's phone in E.164 form
	Phone string
	// Email is the customer's email (optional)
	Email string
	// CustomerRank is positive when the partner acts as a customer
	CustomerRank int
	// OrderTechCustomerID is the remote customer identifier
	OrderTechCustomerID string
	// CreatedAt is when the record was created
	CreatedAt time.Time
	// UpdatedAt is when the record was last updated
	UpdatedAt time.Time
}

// IsCustomer reports whether the partner ranks as a customer.
func (c *Customer) IsCustomer() bool {
	return c.CustomerRank > 0
}
