package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appordertech "github.com/restopos/backend/internal/application/ordertech"
)

// SyncHandler exposes the operator sync actions: the initial restaurant pull
// and the per-entity resync of records missing a remote id.
type SyncHandler struct {
	BaseHandler
	tenants     *appordertech.TenantSyncService
	branches    *appordertech.BranchSyncService
	categories  *appordertech.CategorySyncService
	addonGroups *appordertech.AddonGroupSyncService
	products    *appordertech.ProductSyncService
	customers   *appordertech.CustomerSyncService
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(
	tenants *appordertech.TenantSyncService,
	branches *appordertech.BranchSyncService,
	categories *appordertech.CategorySyncService,
	addonGroups *appordertech.AddonGroupSyncService,
	products *appordertech.ProductSyncService,
	customers *appordertech.CustomerSyncService,
) *SyncHandler {
	return &SyncHandler{
		tenants:     tenants,
		branches:    branches,
		categories:  categories,
		addonGroups: addonGroups,
		products:    products,
		customers:   customers,
	}
}

// PullRestaurant fetches the tenant profile from the platform and writes it
// onto the local restaurant company
func (h *SyncHandler) PullRestaurant(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "invalid company id")
		return
	}
	if err := h.tenants.PullRestaurant(c.Request.Context(), companyID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "restaurant data synced successfully", nil)
}

// resync runs one entity resync and reports completion. Per-record failures
// are logged by the sync service, not surfaced here.
func (h *SyncHandler) resync(c *gin.Context, run func() error, message string) {
	if err := run(); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, message, nil)
}

// ResyncBranches pushes branches missing a remote id
func (h *SyncHandler) ResyncBranches(c *gin.Context) {
	ctx := c.Request.Context()
	h.resync(c, func() error { return h.branches.Resync(ctx) }, "branch resync completed")
}

// ResyncCategories pushes categories missing a remote id
func (h *SyncHandler) ResyncCategories(c *gin.Context) {
	ctx := c.Request.Context()
	h.resync(c, func() error { return h.categories.Resync(ctx) }, "category resync completed")
}

// ResyncAddonGroups pushes addon groups missing a remote id, values included
func (h *SyncHandler) ResyncAddonGroups(c *gin.Context) {
	ctx := c.Request.Context()
	h.resync(c, func() error { return h.addonGroups.Resync(ctx) }, "addon group resync completed")
}

// ResyncProducts pushes POS products missing a remote id
func (h *SyncHandler) ResyncProducts(c *gin.Context) {
	ctx := c.Request.Context()
	h.resync(c, func() error { return h.products.Resync(ctx) }, "product resync completed")
}

// ResyncCustomers pushes customers missing a remote id
func (h *SyncHandler) ResyncCustomers(c *gin.Context) {
	ctx := c.Request.Context()
	h.resync(c, func() error { return h.customers.Resync(ctx) }, "customer resync completed")
}

// RegisterRoutes registers the sync action routes
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sync := rg.Group("/sync")
	sync.POST("/restaurant/:company_id/pull", h.PullRestaurant)
	sync.POST("/branches/resync", h.ResyncBranches)
	sync.POST("/categories/resync", h.ResyncCategories)
	sync.POST("/addon-groups/resync", h.ResyncAddonGroups)
	sync.POST("/products/resync", h.ResyncProducts)
	sync.POST("/customers/resync", h.ResyncCustomers)
}
