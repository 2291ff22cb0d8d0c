package ordertech

import "github.com/restopos/backend/internal/domain/pos"

// Eligibility predicates deciding, per entity type, whether a sync call may
// be attempted. A child entity syncs only once its required parent carries a
// remote identity; updates additionally require the entity's own remote id.

// BranchCreateEligible reports whether the branch may be created remotely.
func BranchCreateEligible(branch, parent *pos.Company) bool {
	return branch.IsBranch && parent != nil && parent.HasRemoteTenant()
}

// BranchUpdateEligible reports whether the branch may be updated remotely.
func BranchUpdateEligible(branch, parent *pos.Company) bool {
	return BranchCreateEligible(branch, parent) && branch.HasRemoteBranch()
}

// BranchResyncEligible scopes the manual branch sweep to branches still
// missing a remote id.
func BranchResyncEligible(branch, parent *pos.Company) bool {
	return BranchCreateEligible(branch, parent) && !branch.HasRemoteBranch()
}

// CategoryCreateEligible reports whether the category may be created remotely.
func CategoryCreateEligible(category *pos.Category, tenantID string) bool {
	return category.CompanyID != 0 && tenantID != ""
}

// CategoryUpdateEligible reports whether the category may be updated remotely.
func CategoryUpdateEligible(category *pos.Category, tenantID string) bool {
	return category.OrderTechCategoryID != "" && tenantID != ""
}

// AddonGroupCreateEligible reports whether the attribute group may be created
// remotely as an addon group.
func AddonGroupCreateEligible(group *pos.AttributeGroup, tenantID string) bool {
	return group.IsAddons && tenantID != ""
}

// AddonGroupUpdateEligible reports whether the addon group may be updated.
func AddonGroupUpdateEligible(group *pos.AttributeGroup, tenantID string) bool {
	return AddonGroupCreateEligible(group, tenantID) && group.OrderTechGroupID != ""
}

// AddonItemCreateEligible reports whether the attribute value may be created
// remotely: the parent group must already exist there.
func AddonItemCreateEligible(value *pos.AttributeValue, group *pos.AttributeGroup) bool {
	return group != nil && group.OrderTechGroupID != ""
}

// AddonItemUpdateEligible reports whether the addon item may be updated.
func AddonItemUpdateEligible(value *pos.AttributeValue) bool {
	return value.OrderTechItemID != ""
}

// ProductCreateEligible reports whether the product may be created remotely.
// categoryRemoteID is the remote id of the first linked category carrying
// one, empty when none does.
func ProductCreateEligible(product *pos.Product, categoryRemoteID, tenantID string) bool {
	return product.AvailableInPOS && categoryRemoteID != "" && tenantID != ""
}

// ProductUpdateEligible reports whether the product may be updated remotely.
// Unlike creation, the update gate looks at the FIRST linked category only:
// the update is skipped while category index 0 has no remote id, even when a
// later category does.
func ProductUpdateEligible(product *pos.Product, firstCategoryRemoteID, tenantID string) bool {
	return ProductCreateEligible(product, firstCategoryRemoteID, tenantID) &&
		product.OrderTechProductID != ""
}

// CustomerCreateEligible reports whether the customer may be created
// remotely. The owning company must be a branch of the restaurant and carry
// both remote ids; customers already created remotely are excluded.
func CustomerCreateEligible(customer *pos.Customer, company, parent *pos.Company) bool {
	return customer.IsCustomer() &&
		parent != nil && parent.IsRestaurant &&
		company != nil && company.HasRemoteTenant() && company.HasRemoteBranch() &&
		customer.OrderTechCustomerID == ""
}

// CustomerUpdateEligible reports whether the customer may be updated remotely.
func CustomerUpdateEligible(customer *pos.Customer, company, parent *pos.Company) bool {
	return customer.IsCustomer() &&
		parent != nil && parent.IsRestaurant &&
		company != nil && company.HasRemoteTenant() && company.HasRemoteBranch() &&
		customer.OrderTechCustomerID != ""
}
