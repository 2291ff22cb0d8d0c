package ordertech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/restopos/backend/internal/domain/ordertech"
)

// maxResponseSize limits the response body size to prevent memory exhaustion
const maxResponseSize = 10 * 1024 * 1024 // 10MB max response

// HTTPClient implements ordertech.Client over the platform's REST API. The
// bearer token is read from the settings record on every call so a freshly
// registered token takes effect without a restart.
type HTTPClient struct {
	baseURL    string
	settings   ordertech.SettingsRepository
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTPClient
func NewHTTPClient(baseURL string, timeout time.Duration, settings ordertech.SettingsRepository) *HTTPClient {
	return &HTTPClient{
		baseURL:  baseURL,
		settings: settings,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

var _ ordertech.Client = (*HTTPClient)(nil)

// bearer reads the current platform token from the settings record
func (c *HTTPClient) bearer(ctx context.Context) (string, error) {
	settings, err := c.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	if !settings.HasToken() {
		return "", ordertech.ErrTokenMissing
	}
	return settings.BearerToken, nil
}

// do performs one API call and returns the response body. The call succeeds
// only when the remote answers wantStatus; any other status maps to
// ErrRemoteStatus carrying the response text.
func (c *HTTPClient) do(ctx context.Context, method, path string, payload any, wantStatus int) ([]byte, error) {
	token, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("ordertech: failed to encode payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ordertech.ErrRemoteRequest, err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ordertech.ErrRemoteRequest, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ordertech.ErrRemoteRequest, err)
	}
	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("%w: %s %s: %d %s",
			ordertech.ErrRemoteStatus, method, path, resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// idResponse is the remote answer to most create calls.
type idResponse struct {
	ID string `json:"id"`
}

// createID performs a create call and parses the remote-assigned id
func (c *HTTPClient) createID(ctx context.Context, path string, payload any) (string, error) {
	respBody, err := c.do(ctx, http.MethodPost, path, payload, http.StatusCreated)
	if err != nil {
		return "", err
	}
	var data idResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return "", fmt.Errorf("ordertech: failed to parse create response: %w", err)
	}
	return data.ID, nil
}

// PullRestaurants fetches the tenants visible to the bearer token
func (c *HTTPClient) PullRestaurants(ctx context.Context) ([]ordertech.RemoteRestaurant, error) {
	respBody, err := c.do(ctx, http.MethodGet, "/api/tenants/my-restaurants", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var restaurants []ordertech.RemoteRestaurant
	if err := json.Unmarshal(respBody, &restaurants); err != nil {
		return nil, fmt.Errorf("ordertech: failed to parse restaurant list: %w", err)
	}
	if len(restaurants) == 0 {
		return nil, ordertech.ErrEmptyRestaurantList
	}
	return restaurants, nil
}

// UpdateTenant updates the tenant profile
func (c *HTTPClient) UpdateTenant(ctx context.Context, tenantID string, p ordertech.TenantPayload) error {
	_, err := c.do(ctx, http.MethodPut, "/api/tenants/"+tenantID, p, http.StatusOK)
	return err
}

// CreateBranch creates a branch under the payload's tenant
func (c *HTTPClient) CreateBranch(ctx context.Context, p ordertech.BranchPayload) (*ordertech.BranchCreated, error) {
	respBody, err := c.do(ctx, http.MethodPost, "/api/branches", p, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	var created ordertech.BranchCreated
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("ordertech: failed to parse branch response: %w", err)
	}
	return &created, nil
}

// UpdateBranch updates a branch
func (c *HTTPClient) UpdateBranch(ctx context.Context, branchID string, p ordertech.BranchPayload) error {
	_, err := c.do(ctx, http.MethodPut, "/api/branches/"+branchID, p, http.StatusOK)
	return err
}

// CreateCategory creates a menu category, returning its remote id
func (c *HTTPClient) CreateCategory(ctx context.Context, tenantID string, p ordertech.CategoryPayload) (string, error) {
	return c.createID(ctx, "/api/menu/categories/"+tenantID, p)
}

// UpdateCategory updates a menu category
func (c *HTTPClient) UpdateCategory(ctx context.Context, categoryID string, p ordertech.CategoryPayload) error {
	_, err := c.do(ctx, http.MethodPut, "/api/menu/categories/"+categoryID, p, http.StatusOK)
	return err
}

// CreateAddonGroup creates an addon group, returning its remote id
func (c *HTTPClient) CreateAddonGroup(ctx context.Context, tenantID string, p ordertech.AddonGroupPayload) (string, error) {
	return c.createID(ctx, "/api/menu/addon-groups/"+tenantID, p)
}

// UpdateAddonGroup updates an addon group
func (c *HTTPClient) UpdateAddonGroup(ctx context.Context, groupID string, p ordertech.AddonGroupPayload) error {
	_, err := c.do(ctx, http.MethodPut, "/api/menu/addon-groups/"+groupID, p, http.StatusOK)
	return err
}

// CreateAddonItem creates an addon item. The remote API answers with the
// collection of created items; the first item's id is the one stored locally.
func (c *HTTPClient) CreateAddonItem(ctx context.Context, tenantID string, p ordertech.AddonItemPayload) (string, error) {
	respBody, err := c.do(ctx, http.MethodPost, "/api/menu/addon-items/"+tenantID, p, http.StatusCreated)
	if err != nil {
		return "", err
	}
	var data struct {
		Items []idResponse `json:"items"`
	}
	if err := json.Unmarshal(respBody, &data); err != nil {
		return "", fmt.Errorf("ordertech: failed to parse addon-item response: %w", err)
	}
	if len(data.Items) == 0 {
		return "", fmt.Errorf("%w: addon-item response carries no items", ordertech.ErrRemoteStatus)
	}
	return data.Items[0].ID, nil
}

// UpdateAddonItem updates an addon item
func (c *HTTPClient) UpdateAddonItem(ctx context.Context, itemID string, p ordertech.AddonItemPayload) error {
	_, err := c.do(ctx, http.MethodPut, "/api/menu/addon-items/"+itemID, p, http.StatusOK)
	return err
}

// CreateProduct creates a product, returning its remote id
func (c *HTTPClient) CreateProduct(ctx context.Context, tenantID string, p ordertech.ProductPayload) (string, error) {
	return c.createID(ctx, "/api/menu/products/"+tenantID, p)
}

// UpdateProduct updates a product
func (c *HTTPClient) UpdateProduct(ctx context.Context, productID string, p ordertech.ProductPayload) error {
	_, err := c.do(ctx, http.MethodPut, "/api/menu/products/"+productID, p, http.StatusOK)
	return err
}

// CreateCustomer creates a customer under the tenant, returning its remote id
func (c *HTTPClient) CreateCustomer(ctx context.Context, tenantID string, p ordertech.CustomerPayload) (string, error) {
	return c.createID(ctx, "/api/customers/tenant/"+tenantID, p)
}

// UpdateCustomer updates a customer
func (c *HTTPClient) UpdateCustomer(ctx context.Context, customerID, tenantID string, p ordertech.CustomerPayload) error {
	_, err := c.do(ctx, http.MethodPut, "/api/customers/"+customerID+"/tenant/"+tenantID, p, http.StatusOK)
	return err
}

// NotifyOrderStatus posts an order stage transition to the platform webhook
func (c *HTTPClient) NotifyOrderStatus(ctx context.Context, p ordertech.OrderStatusPayload) error {
	_, err := c.do(ctx, http.MethodPost, "/api/integrations/odoo/webhook/order-status", p, http.StatusCreated)
	return err
}
