package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appordertech "github.com/restopos/backend/internal/application/ordertech"
	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
)

func syncTestRouter(t *testing.T, companies *stubCompanyRepo, client *stubClient) *gin.Engine {
	t.Helper()

	settings := stubSettingsWithToken()
	groups := stubGroupRepo{}
	values := stubValueRepo{}

	tenants := appordertech.NewTenantSyncService(companies, settings, client, testLogger)
	branches := appordertech.NewBranchSyncService(companies, settings, client, testLogger)
	categories := appordertech.NewCategorySyncService(stubCategoryRepo{}, companies, settings, client, testLogger)
	items := appordertech.NewAddonItemSyncService(values, groups, companies, settings, client, testLogger)
	addonGroups := appordertech.NewAddonGroupSyncService(groups, values, companies, settings, client, items, testLogger)
	products := appordertech.NewProductSyncService(newStubProductRepo(), stubCategoryRepo{}, groups, values,
		companies, settings, client, testLogger, "Sizes", "https://pos.example")
	customers := appordertech.NewCustomerSyncService(newStubCustomerRepo(), companies, settings, client, testLogger)

	router := gin.New()
	NewSyncHandler(tenants, branches, categories, addonGroups, products, customers).
		RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestSyncHandlerPullRestaurant(t *testing.T) {
	t.Run("pulls and stores the tenant profile", func(t *testing.T) {
		companies := newStubCompanyRepo(&pos.Company{ID: 1})
		client := &stubClient{restaurants: []ordertech.RemoteRestaurant{{
			ID:          "t-1",
			NameDisplay: "Big Slice",
			OpeningTime: "09:30",
			ClosingTime: "23:45",
		}}}
		router := syncTestRouter(t, companies, client)

		w := postJSON(t, router, "/api/v1/sync/restaurant/1/pull", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "restaurant data synced successfully", decodeEnvelope(t, w).Message)
		company := companies.companies[1]
		require.NotNil(t, company)
		assert.True(t, company.IsRestaurant)
		assert.Equal(t, "t-1", company.OrderTechTenantID)
	})

	t.Run("non-numeric company id answers 400", func(t *testing.T) {
		router := syncTestRouter(t, newStubCompanyRepo(), &stubClient{})

		w := postJSON(t, router, "/api/v1/sync/restaurant/abc/pull", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid company id", decodeEnvelope(t, w).Error)
	})
}

func TestSyncHandlerResync(t *testing.T) {
	t.Run("branch resync reports completion", func(t *testing.T) {
		parentID := int64(1)
		companies := newStubCompanyRepo(
			&pos.Company{ID: 1, IsRestaurant: true, OrderTechTenantID: "t-1"},
			&pos.Company{ID: 2, IsBranch: true, ParentID: &parentID},
		)
		router := syncTestRouter(t, companies, &stubClient{})

		w := postJSON(t, router, "/api/v1/sync/branches/resync", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "branch resync completed", decodeEnvelope(t, w).Message)
		assert.Equal(t, "b-1", companies.companies[2].OrderTechBranchID)
	})

	t.Run("every entity sweep is routed", func(t *testing.T) {
		companies := newStubCompanyRepo(&pos.Company{ID: 1, IsRestaurant: true, OrderTechTenantID: "t-1"})
		router := syncTestRouter(t, companies, &stubClient{})

		paths := []string{
			"/api/v1/sync/categories/resync",
			"/api/v1/sync/addon-groups/resync",
			"/api/v1/sync/products/resync",
			"/api/v1/sync/customers/resync",
		}
		for _, path := range paths {
			w := postJSON(t, router, path, nil)
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})
}

func TestSyncHandlerRoutesAreMethodScoped(t *testing.T) {
	router := syncTestRouter(t, newStubCompanyRepo(), &stubClient{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync/branches/resync", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
