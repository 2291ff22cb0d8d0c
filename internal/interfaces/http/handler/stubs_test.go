package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// postJSON runs a POST request with a JSON body against the router.
func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Envelope {
	t.Helper()
	var envelope dto.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

// Minimal stub ports backing the real application services in handler tests.

type stubSettingsRepo struct {
	settings *ordertech.Settings
	token    string
}

func (r *stubSettingsRepo) Get(context.Context) (*ordertech.Settings, error) {
	if r.settings == nil {
		return nil, ordertech.ErrSettingsMissing
	}
	return r.settings, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, settings *ordertech.Settings) error {
	r.settings = settings
	return nil
}

func (r *stubSettingsRepo) SetBearerToken(_ context.Context, token string) error {
	r.token = token
	return nil
}

func stubSettingsWithToken() *stubSettingsRepo {
	return &stubSettingsRepo{settings: &ordertech.Settings{
		ID: 1, APIKey: "key", BearerToken: "token",
	}}
}

type stubCompanyRepo struct {
	companies map[int64]*pos.Company
}

func newStubCompanyRepo(companies ...*pos.Company) *stubCompanyRepo {
	r := &stubCompanyRepo{companies: make(map[int64]*pos.Company)}
	for _, c := range companies {
		r.companies[c.ID] = c
	}
	return r
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id int64) (*pos.Company, error) {
	if c, ok := r.companies[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubCompanyRepo) FindRestaurant(context.Context) (*pos.Company, error) {
	for _, c := range r.companies {
		if c.IsRestaurant {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubCompanyRepo) FindByRemoteBranchID(_ context.Context, remoteID string) (*pos.Company, error) {
	for _, c := range r.companies {
		if remoteID != "" && c.OrderTechBranchID == remoteID {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubCompanyRepo) FindBranchesWithoutRemoteID(context.Context) ([]*pos.Company, error) {
	var branches []*pos.Company
	for _, c := range r.companies {
		if c.IsBranch && c.OrderTechBranchID == "" {
			branches = append(branches, c)
		}
	}
	return branches, nil
}

func (r *stubCompanyRepo) Save(_ context.Context, company *pos.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *stubCompanyRepo) SetRemoteTenantID(_ context.Context, id int64, remoteID string) error {
	r.companies[id].OrderTechTenantID = remoteID
	return nil
}

func (r *stubCompanyRepo) SetRemoteBranchID(_ context.Context, id int64, remoteID string) error {
	r.companies[id].OrderTechBranchID = remoteID
	return nil
}

type stubCustomerRepo struct {
	customers map[int64]*pos.Customer
	nextID    int64
}

func newStubCustomerRepo(customers ...*pos.Customer) *stubCustomerRepo {
	r := &stubCustomerRepo{customers: make(map[int64]*pos.Customer), nextID: 100}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int64) (*pos.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubCustomerRepo) FindByRemoteID(_ context.Context, remoteID string) (*pos.Customer, error) {
	for _, c := range r.customers {
		if remoteID != "" && c.OrderTechCustomerID == remoteID {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubCustomerRepo) FindWithoutRemoteID(context.Context) ([]*pos.Customer, error) {
	return nil, nil
}

func (r *stubCustomerRepo) Save(_ context.Context, customer *pos.Customer) error {
	if customer.ID == 0 {
		r.nextID++
		customer.ID = r.nextID
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *stubCustomerRepo) SetRemoteID(_ context.Context, id int64, remoteID string) error {
	r.customers[id].OrderTechCustomerID = remoteID
	return nil
}

type stubSessionRepo struct {
	session *pos.Session
}

func (r *stubSessionRepo) FindOpenByCompanyID(_ context.Context, companyID int64) (*pos.Session, error) {
	if r.session == nil || r.session.CompanyID != companyID {
		return nil, shared.ErrNoOpenSession
	}
	return r.session, nil
}

func (r *stubSessionRepo) MaxSequenceNumber(context.Context, int64) (int, error) {
	return 0, nil
}

type stubProductRepo struct {
	products map[int64]*pos.Product
}

func newStubProductRepo(products ...*pos.Product) *stubProductRepo {
	r := &stubProductRepo{products: make(map[int64]*pos.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*pos.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubProductRepo) FindByRemoteID(_ context.Context, remoteID string) (*pos.Product, error) {
	for _, p := range r.products {
		if remoteID != "" && p.OrderTechProductID == remoteID {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubProductRepo) FindPOSWithoutRemoteID(context.Context) ([]*pos.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) SetRemoteID(_ context.Context, id int64, remoteID string) error {
	r.products[id].OrderTechProductID = remoteID
	return nil
}

type stubGroupRepo struct{}

func (stubGroupRepo) FindByID(context.Context, int64) (*pos.AttributeGroup, error) {
	return nil, shared.ErrNotFound
}

func (stubGroupRepo) FindAddonsWithoutRemoteID(context.Context) ([]*pos.AttributeGroup, error) {
	return nil, nil
}

func (stubGroupRepo) SetRemoteID(context.Context, int64, string) error { return nil }

type stubValueRepo struct{}

func (stubValueRepo) FindByID(context.Context, int64) (*pos.AttributeValue, error) {
	return nil, shared.ErrNotFound
}

func (stubValueRepo) FindByIDs(context.Context, []int64) ([]*pos.AttributeValue, error) {
	return nil, nil
}

func (stubValueRepo) FindByGroupID(context.Context, int64) ([]*pos.AttributeValue, error) {
	return nil, nil
}

func (stubValueRepo) SetRemoteID(context.Context, int64, string) error { return nil }

type stubCategoryRepo struct{}

func (stubCategoryRepo) FindByID(context.Context, int64) (*pos.Category, error) {
	return nil, shared.ErrNotFound
}

func (stubCategoryRepo) FindWithoutRemoteID(context.Context) ([]*pos.Category, error) {
	return nil, nil
}

func (stubCategoryRepo) SetRemoteID(context.Context, int64, string) error { return nil }

type stubOrderRepo struct {
	orders map[int64]*pos.Order
	nextID int64
}

func newStubOrderRepo(orders ...*pos.Order) *stubOrderRepo {
	r := &stubOrderRepo{orders: make(map[int64]*pos.Order), nextID: 500}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int64) (*pos.Order, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubOrderRepo) FindByIDs(_ context.Context, ids []int64) ([]*pos.Order, error) {
	out := make([]*pos.Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) FindByRemoteID(_ context.Context, remoteID string) (*pos.Order, error) {
	for _, o := range r.orders {
		if remoteID != "" && o.OrderTechOrderID == remoteID {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubOrderRepo) Save(_ context.Context, order *pos.Order) error {
	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
	}
	r.orders[order.ID] = order
	return nil
}

// stubClient answers remote calls with fixed ids and records webhook posts.
type stubClient struct {
	restaurants    []ordertech.RemoteRestaurant
	statusPayloads []ordertech.OrderStatusPayload
}

func (c *stubClient) PullRestaurants(context.Context) ([]ordertech.RemoteRestaurant, error) {
	return c.restaurants, nil
}

func (c *stubClient) UpdateTenant(context.Context, string, ordertech.TenantPayload) error {
	return nil
}

func (c *stubClient) CreateBranch(context.Context, ordertech.BranchPayload) (*ordertech.BranchCreated, error) {
	return &ordertech.BranchCreated{ID: "b-1", TenantID: "t-1"}, nil
}

func (c *stubClient) UpdateBranch(context.Context, string, ordertech.BranchPayload) error {
	return nil
}

func (c *stubClient) CreateCategory(context.Context, string, ordertech.CategoryPayload) (string, error) {
	return "c-1", nil
}

func (c *stubClient) UpdateCategory(context.Context, string, ordertech.CategoryPayload) error {
	return nil
}

func (c *stubClient) CreateAddonGroup(context.Context, string, ordertech.AddonGroupPayload) (string, error) {
	return "g-1", nil
}

func (c *stubClient) UpdateAddonGroup(context.Context, string, ordertech.AddonGroupPayload) error {
	return nil
}

func (c *stubClient) CreateAddonItem(context.Context, string, ordertech.AddonItemPayload) (string, error) {
	return "i-1", nil
}

func (c *stubClient) UpdateAddonItem(context.Context, string, ordertech.AddonItemPayload) error {
	return nil
}

func (c *stubClient) CreateProduct(context.Context, string, ordertech.ProductPayload) (string, error) {
	return "p-1", nil
}

func (c *stubClient) UpdateProduct(context.Context, string, ordertech.ProductPayload) error {
	return nil
}

func (c *stubClient) CreateCustomer(context.Context, string, ordertech.CustomerPayload) (string, error) {
	return "cu-1", nil
}

func (c *stubClient) UpdateCustomer(context.Context, string, string, ordertech.CustomerPayload) error {
	return nil
}

func (c *stubClient) NotifyOrderStatus(_ context.Context, p ordertech.OrderStatusPayload) error {
	c.statusPayloads = append(c.statusPayloads, p)
	return nil
}

var _ ordertech.Client = (*stubClient)(nil)

type stubIdemStore struct {
	entries map[string]int64
}

func newStubIdemStore() *stubIdemStore {
	return &stubIdemStore{entries: make(map[string]int64)}
}

func (s *stubIdemStore) Get(_ context.Context, remoteOrderID string) (int64, bool) {
	id, ok := s.entries[remoteOrderID]
	return id, ok
}

func (s *stubIdemStore) Set(_ context.Context, remoteOrderID string, orderID int64) {
	s.entries[remoteOrderID] = orderID
}

var testLogger = zap.NewNop()
