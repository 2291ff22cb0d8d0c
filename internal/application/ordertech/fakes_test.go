package ordertech

import (
	"context"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
)

// Shared in-memory fakes for the application services. Each fake records the
// mutations the service under test performs.

type fakeCompanyRepo struct {
	companies       map[int64]*pos.Company
	remoteTenantIDs map[int64]string
	remoteBranchIDs map[int64]string
}

func newFakeCompanyRepo(companies ...*pos.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{
		companies:       make(map[int64]*pos.Company),
		remoteTenantIDs: make(map[int64]string),
		remoteBranchIDs: make(map[int64]string),
	}
	for _, c := range companies {
		r.companies[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id int64) (*pos.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (r *fakeCompanyRepo) FindRestaurant(_ context.Context) (*pos.Company, error) {
	for _, c := range r.companies {
		if c.IsRestaurant {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCompanyRepo) FindByRemoteBranchID(_ context.Context, remoteID string) (*pos.Company, error) {
	for _, c := range r.companies {
		if c.OrderTechBranchID == remoteID && remoteID != "" {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCompanyRepo) FindBranchesWithoutRemoteID(_ context.Context) ([]*pos.Company, error) {
	var out []*pos.Company
	for _, c := range r.companies {
		if c.IsBranch && c.OrderTechBranchID == "" {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Save(_ context.Context, company *pos.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) SetRemoteTenantID(_ context.Context, id int64, remoteID string) error {
	r.remoteTenantIDs[id] = remoteID
	if c, ok := r.companies[id]; ok {
		c.OrderTechTenantID = remoteID
	}
	return nil
}

func (r *fakeCompanyRepo) SetRemoteBranchID(_ context.Context, id int64, remoteID string) error {
	r.remoteBranchIDs[id] = remoteID
	if c, ok := r.companies[id]; ok {
		c.OrderTechBranchID = remoteID
	}
	return nil
}

type fakeCustomerRepo struct {
	customers map[int64]*pos.Customer
	nextID    int64
	remoteIDs map[int64]string
}

func newFakeCustomerRepo(customers ...*pos.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{
		customers: make(map[int64]*pos.Customer),
		remoteIDs: make(map[int64]string),
		nextID:    1000,
	}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id int64) (*pos.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) FindByRemoteID(_ context.Context, remoteID string) (*pos.Customer, error) {
	for _, c := range r.customers {
		if c.OrderTechCustomerID == remoteID && remoteID != "" {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCustomerRepo) FindWithoutRemoteID(_ context.Context) ([]*pos.Customer, error) {
	var out []*pos.Customer
	for _, c := range r.customers {
		if c.IsCustomer() && c.OrderTechCustomerID == "" {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Save(_ context.Context, customer *pos.Customer) error {
	if customer.ID == 0 {
		r.nextID++
		customer.ID = r.nextID
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) SetRemoteID(_ context.Context, id int64, remoteID string) error {
	r.remoteIDs[id] = remoteID
	if c, ok := r.customers[id]; ok {
		c.OrderTechCustomerID = remoteID
	}
	return nil
}

type fakeCategoryRepo struct {
	categories map[int64]*pos.Category
	remoteIDs  map[int64]string
}

func newFakeCategoryRepo(categories ...*pos.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{
		categories: make(map[int64]*pos.Category),
		remoteIDs:  make(map[int64]string),
	}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id int64) (*pos.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindWithoutRemoteID(_ context.Context) ([]*pos.Category, error) {
	var out []*pos.Category
	for _, c := range r.categories {
		if c.OrderTechCategoryID == "" {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) SetRemoteID(_ context.Context, id int64, remoteID string) error {
	r.remoteIDs[id] = remoteID
	if c, ok := r.categories[id]; ok {
		c.OrderTechCategoryID = remoteID
	}
	return nil
}

type fakeGroupRepo struct {
	groups    map[int64]*pos.AttributeGroup
	remoteIDs map[int64]string
}

func newFakeGroupRepo(groups ...*pos.AttributeGroup) *fakeGroupRepo {
	r := &fakeGroupRepo{
		groups:    make(map[int64]*pos.AttributeGroup),
		remoteIDs: make(map[int64]string),
	}
	for _, g := range groups {
		r.groups[g.ID] = g
	}
	return r
}

func (r *fakeGroupRepo) FindByID(_ context.Context, id int64) (*pos.AttributeGroup, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return g, nil
}

func (r *fakeGroupRepo) FindAddonsWithoutRemoteID(_ context.Context) ([]*pos.AttributeGroup, error) {
	var out []*pos.AttributeGroup
	for _, g := range r.groups {
		if g.IsAddons && g.OrderTechGroupID == "" {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) SetRemoteID(_ context.Context, id int64, remoteID string) error {
	r.remoteIDs[id] = remoteID
	if g, ok := r.groups[id]; ok {
		g.OrderTechGroupID = remoteID
	}
	return nil
}

type fakeValueRepo struct {
	values    map[int64]*pos.AttributeValue
	remoteIDs map[int64]string
}

func newFakeValueRepo(values ...*pos.AttributeValue) *fakeValueRepo {
	r := &fakeValueRepo{
		values:    make(map[int64]*pos.AttributeValue),
		remoteIDs: make(map[int64]string),
	}
	for _, v := range values {
		r.values[v.ID] = v
	}
	return r
}

func (r *fakeValueRepo) FindByID(_ context.Context, id int64) (*pos.AttributeValue, error) {
	v, ok := r.values[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return v, nil
}

func (r *fakeValueRepo) FindByIDs(_ context.Context, ids []int64) ([]*pos.AttributeValue, error) {
	out := make([]*pos.AttributeValue, 0, len(ids))
	for _, id := range ids {
		if v, ok := r.values[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeValueRepo) FindByGroupID(_ context.Context, groupID int64) ([]*pos.AttributeValue, error) {
	var out []*pos.AttributeValue
	for _, v := range r.values {
		if v.GroupID == groupID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeValueRepo) SetRemoteID(_ context.Context, id int64, remoteID string) error {
	r.remoteIDs[id] = remoteID
	if v, ok := r.values[id]; ok {
		v.OrderTechItemID = remoteID
	}
	return nil
}

type fakeProductRepo struct {
	products  map[int64]*pos.Product
	remoteIDs map[int64]string
}

func newFakeProductRepo(products ...*pos.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products:  make(map[int64]*pos.Product),
		remoteIDs: make(map[int64]string),
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int64) (*pos.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindByRemoteID(_ context.Context, remoteID string) (*pos.Product, error) {
	for _, p := range r.products {
		if p.OrderTechProductID == remoteID && remoteID != "" {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindPOSWithoutRemoteID(_ context.Context) ([]*pos.Product, error) {
	var out []*pos.Product
	for _, p := range r.products {
		if p.AvailableInPOS && p.OrderTechProductID == "" {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) SetRemoteID(_ context.Context, id int64, remoteID string) error {
	r.remoteIDs[id] = remoteID
	if p, ok := r.products[id]; ok {
		p.OrderTechProductID = remoteID
	}
	return nil
}

type fakeSessionRepo struct {
	session *pos.Session
	maxSeq  int
}

func (r *fakeSessionRepo) FindOpenByCompanyID(_ context.Context, companyID int64) (*pos.Session, error) {
	if r.session == nil || r.session.CompanyID != companyID {
		return nil, shared.ErrNoOpenSession
	}
	return r.session, nil
}

func (r *fakeSessionRepo) MaxSequenceNumber(_ context.Context, _ int64) (int, error) {
	return r.maxSeq, nil
}

type fakeOrderRepo struct {
	orders map[int64]*pos.Order
	nextID int64
}

func newFakeOrderRepo(orders ...*pos.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[int64]*pos.Order), nextID: 5000}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id int64) (*pos.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) FindByIDs(_ context.Context, ids []int64) ([]*pos.Order, error) {
	out := make([]*pos.Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindByRemoteID(_ context.Context, remoteID string) (*pos.Order, error) {
	for _, o := range r.orders {
		if o.OrderTechOrderID == remoteID && remoteID != "" {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) Save(_ context.Context, order *pos.Order) error {
	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
	}
	r.orders[order.ID] = order
	return nil
}

type fakeSettingsRepo struct {
	settings *ordertech.Settings
	err      error
	token    string
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*ordertech.Settings, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, settings *ordertech.Settings) error {
	r.settings = settings
	return nil
}

func (r *fakeSettingsRepo) SetBearerToken(_ context.Context, token string) error {
	r.token = token
	if r.settings != nil {
		r.settings.BearerToken = token
	}
	return nil
}

func readySettings() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: &ordertech.Settings{
		ID:          1,
		Name:        "restopos",
		APIKey:      "key",
		BearerToken: "token",
	}}
}

// fakeClient records every outbound call and answers with configured ids.
type fakeClient struct {
	restaurants []ordertech.RemoteRestaurant
	pullErr     error

	branchCreated *ordertech.BranchCreated
	createdID     string
	callErr       error

	tenantUpdates   []string
	branchCreates   []ordertech.BranchPayload
	branchUpdates   []string
	categoryCreates []ordertech.CategoryPayload
	categoryUpdates []string
	groupCreates    []ordertech.AddonGroupPayload
	groupUpdates    []string
	itemCreates     []ordertech.AddonItemPayload
	itemUpdates     []string
	productCreates  []ordertech.ProductPayload
	productUpdates  []ordertech.ProductPayload
	customerCreates []ordertech.CustomerPayload
	customerUpdates []string
	statusPayloads  []ordertech.OrderStatusPayload
}

func (c *fakeClient) PullRestaurants(_ context.Context) ([]ordertech.RemoteRestaurant, error) {
	return c.restaurants, c.pullErr
}

func (c *fakeClient) UpdateTenant(_ context.Context, tenantID string, _ ordertech.TenantPayload) error {
	c.tenantUpdates = append(c.tenantUpdates, tenantID)
	return c.callErr
}

func (c *fakeClient) CreateBranch(_ context.Context, p ordertech.BranchPayload) (*ordertech.BranchCreated, error) {
	c.branchCreates = append(c.branchCreates, p)
	if c.callErr != nil {
		return nil, c.callErr
	}
	return c.branchCreated, nil
}

func (c *fakeClient) UpdateBranch(_ context.Context, branchID string, _ ordertech.BranchPayload) error {
	c.branchUpdates = append(c.branchUpdates, branchID)
	return c.callErr
}

func (c *fakeClient) CreateCategory(_ context.Context, _ string, p ordertech.CategoryPayload) (string, error) {
	c.categoryCreates = append(c.categoryCreates, p)
	return c.createdID, c.callErr
}

func (c *fakeClient) UpdateCategory(_ context.Context, categoryID string, _ ordertech.CategoryPayload) error {
	c.categoryUpdates = append(c.categoryUpdates, categoryID)
	return c.callErr
}

func (c *fakeClient) CreateAddonGroup(_ context.Context, _ string, p ordertech.AddonGroupPayload) (string, error) {
	c.groupCreates = append(c.groupCreates, p)
	return c.createdID, c.callErr
}

func (c *fakeClient) UpdateAddonGroup(_ context.Context, groupID string, _ ordertech.AddonGroupPayload) error {
	c.groupUpdates = append(c.groupUpdates, groupID)
	return c.callErr
}

func (c *fakeClient) CreateAddonItem(_ context.Context, _ string, p ordertech.AddonItemPayload) (string, error) {
	c.itemCreates = append(c.itemCreates, p)
	return c.createdID, c.callErr
}

func (c *fakeClient) UpdateAddonItem(_ context.Context, itemID string, _ ordertech.AddonItemPayload) error {
	c.itemUpdates = append(c.itemUpdates, itemID)
	return c.callErr
}

func (c *fakeClient) CreateProduct(_ context.Context, _ string, p ordertech.ProductPayload) (string, error) {
	c.productCreates = append(c.productCreates, p)
	return c.createdID, c.callErr
}

func (c *fakeClient) UpdateProduct(_ context.Context, _ string, p ordertech.ProductPayload) error {
	c.productUpdates = append(c.productUpdates, p)
	return c.callErr
}

func (c *fakeClient) CreateCustomer(_ context.Context, _ string, p ordertech.CustomerPayload) (string, error) {
	c.customerCreates = append(c.customerCreates, p)
	return c.createdID, c.callErr
}

func (c *fakeClient) UpdateCustomer(_ context.Context, customerID, _ string, _ ordertech.CustomerPayload) error {
	c.customerUpdates = append(c.customerUpdates, customerID)
	return c.callErr
}

func (c *fakeClient) NotifyOrderStatus(_ context.Context, p ordertech.OrderStatusPayload) error {
	c.statusPayloads = append(c.statusPayloads, p)
	return c.callErr
}

var _ ordertech.Client = (*fakeClient)(nil)

// fakeProcessor assigns ids the way the order pipeline would.
type fakeProcessor struct {
	orders *fakeOrderRepo
	err    error
}

func (p *fakeProcessor) Process(ctx context.Context, order *pos.Order) (*pos.Order, error) {
	if p.err != nil {
		return nil, p.err
	}
	order.TrackingNumber = "001"
	order.ReceiptRef = order.Name
	if err := p.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

type fakeIdemStore struct {
	entries map[string]int64
}

func newFakeIdemStore() *fakeIdemStore {
	return &fakeIdemStore{entries: make(map[string]int64)}
}

func (s *fakeIdemStore) Get(_ context.Context, remoteOrderID string) (int64, bool) {
	id, ok := s.entries[remoteOrderID]
	return id, ok
}

func (s *fakeIdemStore) Set(_ context.Context, remoteOrderID string, orderID int64) {
	s.entries[remoteOrderID] = orderID
}
