package pos

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a point-of-sale product category.
type Category struct {
	// ID is the local record identifier
	ID int64
	// CompanyID is the owning company
	CompanyID int64
	// Name is the category name (primary language)
	Name string
	// ArabicName is the localized category name
	ArabicName string
	// OrderTechCategoryID is the remote category identifier
	OrderTechCategoryID string
	// CreatedAt is when the record was created
	CreatedAt time.Time
	// UpdatedAt is when the record was last updated
	UpdatedAt time.Time
}

// AttributeGroup is a product attribute; groups flagged as add-ons are
// mirrored remotely as addon groups.
type AttributeGroup struct {
	// ID is the local record identifier
	ID int64
	// CompanyID is the owning company
	CompanyID int64
	// Name is the group name (primary language)
	Name string
	// ArabicName is the localized group name
	ArabicName string
	// IsAddons marks the group as a remote addon group
	IsAddons bool
	// LimitMin is the minimum number of selectable items
	LimitMin int
	// LimitMax is the maximum number of selectable items
	LimitMax int
	// IsRequired forces at least one selection
	IsRequired bool
	// DisplayType is the host platform's widget hint (radio, select, ...)
	DisplayType string
	// OrderTechGroupID is the remote addon-group identifier
	OrderTechGroupID string
	// CreatedAt is when the record was created
	CreatedAt time.Time
	// UpdatedAt is when the record was last updated
	UpdatedAt time.Time
}

// AttributeValue is a selectable value inside an attribute group.
type AttributeValue struct {
	// ID is the local record identifier
	ID int64
	// GroupID is the parent attribute group
	GroupID int64
	// Name is the value name (primary language)
	Name string
	// ArabicName is the localized value name
	ArabicName string
	// DefaultExtraPrice is the surcharge applied when the value is selected
	DefaultExtraPrice decimal.Decimal
	// OrderTechItemID is the remote addon-item identifier
	OrderTechItemID string
	// CreatedAt is when the record was created
	CreatedAt time.Time
	// UpdatedAt is when the record was last updated
	UpdatedAt time.Time
}

// AttributeLine links a product to an attribute group and the subset of
// its values offered on that product.
type AttributeLine struct {
	// GroupID is the linked attribute group
	GroupID int64
	// ValueIDs are the attribute values offered on the product
	ValueIDs []int64
}

// Product is a sellable product template.
type Product struct {
	// ID is the local record identifier
	ID int64
	// CompanyID is the owning company
	CompanyID int64
	// Name is the product name (primary language)
	Name string
	// ArabicName is the localized product name
	ArabicName string
	// SKU is the internal reference code
	SKU string
	// ListPrice is the base sales price
	ListPrice decimal.Decimal
	// HasImage is true when the product carries an image
	HasImage bool
	// AvailableInPOS gates the product into the point of sale
	AvailableInPOS bool
	// CategoryIDs are the linked POS categories, in configured order
	CategoryIDs []int64
	// AttributeLines are the product's attribute groups with offered values
	AttributeLines []AttributeLine
	// OrderTechProductID is the remote product identifier
	OrderTechProductID string
	// CreatedAt is when the record was created
	CreatedAt time.Time
	// UpdatedAt is when the record was last updated
	UpdatedAt time.Time
}

// OffersValue reports whether the given attribute value is offered on the
// product through any of its attribute lines.
func (p *Product) OffersValue(groupID, valueID int64) bool {
	for _, line := range p.AttributeLines {
		if line.GroupID != groupID {
			continue
		}
		for _, vid := range line.ValueIDs {
			if vid == valueID {
				return true
			}
		}
	}
	return false
}
