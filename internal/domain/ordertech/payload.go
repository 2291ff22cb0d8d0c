package ordertech

import "github.com/restopos/backend/internal/domain/pos"

// Payload builders convert local record state into the remote API's JSON
// shapes. Builders are pure: every remote id or related record they need is
// resolved by the orchestrator and passed in.

// TenantPayload updates the tenant profile.
type TenantPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

// BuildTenant builds the tenant update payload.
func BuildTenant(company *pos.Company) TenantPayload {
	return TenantPayload{
		Name:        company.Name,
		Email:       company.Email,
		Phone:       company.Phone,
		OpeningTime: FloatToClock(company.OpeningTime),
		ClosingTime: FloatToClock(company.ClosingTime),
	}
}

// BranchPayload creates or updates a branch. TenantID is sent on create only.
type BranchPayload struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	TenantID         string `json:"tenantId,omitempty"`
	Status           string `json:"status"`
	Timezone         string `json:"timezone"`
	AddressLine1     string `json:"addressLine1"`
	AddressLine2     string `json:"addressLine2"`
	City             string `json:"city"`
	Region           string `json:"region"`
	PostalCode       string `json:"postalCode"`
	CountryCode      string `json:"countryCode"`
	PhonePublic      string `json:"phonePublic"`
	Email            string `json:"email"`
	DeliveryRadiusKm int    `json:"deliveryRadiusKm"`
	Notes            string `json:"notes"`
	OpeningTime      string `json:"openingTime"`
	ClosingTime      string `json:"closingTime"`
}

// BuildBranch builds the branch payload. tenantID is the parent restaurant's
// remote id; pass "" on update. The remote "city" carries the local state
// name and "region" carries the local city (documented platform mapping).
func BuildBranch(branch *pos.Company, tenantID string) BranchPayload {
	return BranchPayload{
		Name:             branch.Name,
		Slug:             Slugify(branch.Name),
		TenantID:         tenantID,
		Status:           "open",
		Timezone:         branch.Timezone,
		AddressLine1:     branch.Street,
		AddressLine2:     branch.Street2,
		City:             branch.StateName,
		Region:           branch.City,
		PostalCode:       branch.Zip,
		CountryCode:      branch.CountryCode,
		PhonePublic:      branch.Phone,
		Email:            branch.Email,
		DeliveryRadiusKm: branch.DeliveryRadiusKm,
		Notes:            branch.Notes,
		OpeningTime:      FloatToClock(branch.OpeningTime),
		ClosingTime:      FloatToClock(branch.ClosingTime),
	}
}

// CategoryPayload creates or updates a menu category.
type CategoryPayload struct {
	NameEN    string `json:"name_en"`
	NameAR    string `json:"name_ar"`
	Slug      string `json:"slug"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// BuildCategory builds the category payload.
func BuildCategory(category *pos.Category) CategoryPayload {
	return CategoryPayload{
		NameEN:   category.Name,
		NameAR:   category.ArabicName,
		Slug:     Slugify(category.Name),
		IsActive: true,
	}
}

// AddonGroupPayload creates or updates an addon group.
type AddonGroupPayload struct {
	NameEN     string `json:"name_en"`
	NameAR     string `json:"name_ar"`
	Slug       string `json:"slug"`
	LimitMin   int    `json:"limit_min"`
	LimitMax   int    `json:"limit_max"`
	IsRequired bool   `json:"is_required"`
	SortOrder  int    `json:"sort_order"`
}

// BuildAddonGroup builds the addon-group payload.
func BuildAddonGroup(group *pos.AttributeGroup) AddonGroupPayload {
	return AddonGroupPayload{
		NameEN:     group.Name,
		NameAR:     group.ArabicName,
		Slug:       Slugify(group.Name),
		LimitMin:   group.LimitMin,
		LimitMax:   group.LimitMax,
		IsRequired: group.IsRequired,
	}
}

// AddonItemPayload creates or updates an addon item. GroupID is sent on
// create only.
type AddonItemPayload struct {
	NameEN         string  `json:"name_en"`
	NameAR         string  `json:"name_ar"`
	GroupID        string  `json:"group_id,omitempty"`
	PriceCentsBase float64 `json:"price_cents_base"`
	IsActive       bool    `json:"is_active"`
	SortOrder      int     `json:"sort_order"`
}

// BuildAddonItem builds the addon-item payload. remoteGroupID is the parent
// group's remote id; pass "" on update.
func BuildAddonItem(value *pos.AttributeValue, remoteGroupID string) AddonItemPayload {
	return AddonItemPayload{
		NameEN:         value.Name,
		NameAR:         value.ArabicName,
		GroupID:        remoteGroupID,
		PriceCentsBase: value.DefaultExtraPrice.InexactFloat64(),
		IsActive:       true,
	}
}

// ProductSize is one size entry on a product update.
type ProductSize struct {
	NameEN         string  `json:"name_en"`
	PriceCentsBase float64 `json:"price_cents_base"`
}

// ProductAddonGroupRef links a product to a synced addon group.
type ProductAddonGroupRef struct {
	AddonGroupID string `json:"addon_group_id"`
	SortOrder    int    `json:"sort_order"`
}

// ProductPayload creates or updates a product.
type ProductPayload struct {
	NameEN         string                 `json:"name_en"`
	NameAR         string                 `json:"name_ar"`
	Slug           string                 `json:"slug"`
	SKU            string                 `json:"sku"`
	CategoryID     string                 `json:"category_id"`
	ImageURL       string                 `json:"image_url,omitempty"`
	IsActive       bool                   `json:"is_active"`
	HasSizes       bool                   `json:"has_sizes"`
	HasAddons      bool                   `json:"has_addons"`
	SortOrder      int                    `json:"sort_order"`
	Sizes          []ProductSize          `json:"sizes,omitempty"`
	AddonGroups    []ProductAddonGroupRef `json:"addon_groups,omitempty"`
	BasePriceCents float64                `json:"base_price_cents"`
}

// ProductSyncData carries a product plus every remote reference the payload
// needs, resolved ahead of time by the orchestrator.
type ProductSyncData struct {
	// Product is the local product record
	Product *pos.Product
	// CategoryRemoteID is the remote id of the first linked category
	// carrying one (first-match policy, nondeterministic under multiple)
	CategoryRemoteID string
	// ImageURL is the public product image URL, empty when no image
	ImageURL string
	// SizeValues are the values of the designated sizes attribute line
	SizeValues []*pos.AttributeValue
	// AddonGroupRemoteIDs are the remote ids of linked addons groups
	AddonGroupRemoteIDs []string
}

// BuildProductCreate builds the create payload. Sizes and addon groups are
// never sent on create; they attach through the subsequent update call.
func BuildProductCreate(d ProductSyncData) ProductPayload {
	p := d.Product
	return ProductPayload{
		NameEN:         p.Name,
		NameAR:         p.ArabicName,
		Slug:           Slugify(p.Name),
		SKU:            p.SKU,
		CategoryID:     d.CategoryRemoteID,
		ImageURL:       d.ImageURL,
		IsActive:       true,
		BasePriceCents: p.ListPrice.InexactFloat64(),
	}
}

// BuildProductUpdate builds the update payload, attaching sizes (each at
// extra price plus base price) and synced addon groups.
func BuildProductUpdate(d ProductSyncData) ProductPayload {
	payload := BuildProductCreate(d)
	if len(d.SizeValues) > 0 {
		payload.HasSizes = true
		payload.Sizes = make([]ProductSize, 0, len(d.SizeValues))
		for _, v := range d.SizeValues {
			payload.Sizes = append(payload.Sizes, ProductSize{
				NameEN:         v.Name,
				PriceCentsBase: v.DefaultExtraPrice.Add(d.Product.ListPrice).InexactFloat64(),
			})
		}
	}
	if len(d.AddonGroupRemoteIDs) > 0 {
		payload.HasAddons = true
		payload.AddonGroups = make([]ProductAddonGroupRef, 0, len(d.AddonGroupRemoteIDs))
		for _, id := range d.AddonGroupRemoteIDs {
			payload.AddonGroups = append(payload.AddonGroups, ProductAddonGroupRef{
				AddonGroupID: id,
			})
		}
	}
	return payload
}

// CustomerPayload creates or updates a customer. Only name and phone cross
// the wire; email stays local.
type CustomerPayload struct {
	FullName  string `json:"full_name"`
	PhoneE164 string `json:"phone_e164"`
}

// BuildCustomer builds the customer payload.
func BuildCustomer(customer *pos.Customer) CustomerPayload {
	return CustomerPayload{
		FullName:  customer.Name,
		PhoneE164: customer.Phone,
	}
}

// OrderStatusPayload notifies the platform of an order stage transition.
type OrderStatusPayload struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
