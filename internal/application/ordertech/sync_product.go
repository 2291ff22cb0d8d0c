package ordertech

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/pos"
)

// ProductSyncService mirrors POS products to remote menu products. Creation
// is two-phase: the create call never carries sizes or addon groups; those
// attach through the subsequent update call.
type ProductSyncService struct {
	products     pos.ProductRepository
	categories   pos.CategoryRepository
	groups       pos.AttributeGroupRepository
	values       pos.AttributeValueRepository
	companies    pos.CompanyRepository
	settingsRepo ordertech.SettingsRepository
	client       ordertech.Client
	logger       *zap.Logger

	// sizesAttribute is the name of the designated sizes attribute,
	// matched case-insensitively against the product's attribute groups
	sizesAttribute string
	// imageBaseURL prefixes public product image URLs
	imageBaseURL string
}

// NewProductSyncService creates a new ProductSyncService
func NewProductSyncService(
	products pos.ProductRepository,
	categories pos.CategoryRepository,
	groups pos.AttributeGroupRepository,
	values pos.AttributeValueRepository,
	companies pos.CompanyRepository,
	settingsRepo ordertech.SettingsRepository,
	client ordertech.Client,
	logger *zap.Logger,
	sizesAttribute string,
	imageBaseURL string,
) *ProductSyncService {
	return &ProductSyncService{
		products:       products,
		categories:     categories,
		groups:         groups,
		values:         values,
		companies:      companies,
		settingsRepo:   settingsRepo,
		client:         client,
		logger:         logger,
		sizesAttribute: sizesAttribute,
		imageBaseURL:   imageBaseURL,
	}
}

func (s *ProductSyncService) tenantID(ctx context.Context, companyID int64) string {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return ""
	}
	return company.OrderTechTenantID
}

// categoryRemoteID returns the remote id of the first linked category
// carrying one. First-match policy: nondeterministic under multiple synced
// categories.
func (s *ProductSyncService) categoryRemoteID(ctx context.Context, product *pos.Product) string {
	for _, id := range product.CategoryIDs {
		category, err := s.categories.FindByID(ctx, id)
		if err != nil {
			continue
		}
		if category.OrderTechCategoryID != "" {
			return category.OrderTechCategoryID
		}
	}
	return ""
}

// firstCategoryRemoteID returns the remote id of the product's first linked
// category, empty when there are no categories or the first one is unsynced.
// The update gate uses this stricter resolution.
func (s *ProductSyncService) firstCategoryRemoteID(ctx context.Context, product *pos.Product) string {
	if len(product.CategoryIDs) == 0 {
		return ""
	}
	category, err := s.categories.FindByID(ctx, product.CategoryIDs[0])
	if err != nil {
		return ""
	}
	return category.OrderTechCategoryID
}

func (s *ProductSyncService) imageURL(product *pos.Product) string {
	if !product.HasImage {
		return ""
	}
	return fmt.Sprintf("%s/products/%d/image", s.imageBaseURL, product.ID)
}

// syncData assembles the payload inputs for a product: resolved category
// remote id, image URL, the sizes attribute's values and the remote ids of
// linked addons groups.
func (s *ProductSyncService) syncData(ctx context.Context, product *pos.Product) ordertech.ProductSyncData {
	data := ordertech.ProductSyncData{
		Product:          product,
		CategoryRemoteID: s.categoryRemoteID(ctx, product),
		ImageURL:         s.imageURL(product),
	}
	for _, line := range product.AttributeLines {
		group, err := s.groups.FindByID(ctx, line.GroupID)
		if err != nil {
			continue
		}
		if strings.EqualFold(group.Name, s.sizesAttribute) {
			values, err := s.values.FindByIDs(ctx, line.ValueIDs)
			if err != nil {
				s.logger.Error("size values lookup failed",
					zap.Int64("product_id", product.ID), zap.Error(err))
				continue
			}
			data.SizeValues = append(data.SizeValues, values...)
			continue
		}
		if group.IsAddons && group.OrderTechGroupID != "" {
			data.AddonGroupRemoteIDs = append(data.AddonGroupRemoteIDs, group.OrderTechGroupID)
		}
	}
	return data
}

// OnCreate pushes newly created eligible products through a remote product
// create, storing the returned id.
func (s *ProductSyncService) OnCreate(ctx context.Context, productIDs []int64) {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range productIDs {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("product lookup failed", zap.Int64("product_id", id), zap.Error(err))
			continue
		}
		data := s.syncData(ctx, product)
		tenantID := s.tenantID(ctx, product.CompanyID)
		if !ordertech.ProductCreateEligible(product, data.CategoryRemoteID, tenantID) {
			continue
		}
		s.createProduct(ctx, data, tenantID)
	}
}

func (s *ProductSyncService) createProduct(ctx context.Context, data ordertech.ProductSyncData, tenantID string) bool {
	payload := ordertech.BuildProductCreate(data)
	remoteID, err := s.client.CreateProduct(ctx, tenantID, payload)
	if err != nil {
		s.logger.Error("product sync failed",
			zap.Int64("product_id", data.Product.ID), zap.Error(err))
		return false
	}
	if err := s.products.SetRemoteID(ctx, data.Product.ID, remoteID); err != nil {
		s.logger.Error("storing remote product id failed",
			zap.Int64("product_id", data.Product.ID), zap.Error(err))
		return false
	}
	data.Product.OrderTechProductID = remoteID
	s.logger.Info("synced product data", zap.Int64("product_id", data.Product.ID),
		zap.String("remote_id", remoteID))
	return true
}

// OnWrite reacts to a product write when the touched fields intersect the
// product tracked set: eligible products already created remotely are pushed
// through a product update carrying sizes and addon groups.
func (s *ProductSyncService) OnWrite(ctx context.Context, productIDs []int64, changedFields []string) {
	if !ordertech.ShouldSync(changedFields, ordertech.ProductTrackedFields) {
		return
	}
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return
	}
	for _, id := range productIDs {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("product lookup failed", zap.Int64("product_id", id), zap.Error(err))
			continue
		}
		data := s.syncData(ctx, product)
		tenantID := s.tenantID(ctx, product.CompanyID)
		if !ordertech.ProductUpdateEligible(product, s.firstCategoryRemoteID(ctx, product), tenantID) {
			continue
		}
		s.updateProduct(ctx, data)
	}
}

func (s *ProductSyncService) updateProduct(ctx context.Context, data ordertech.ProductSyncData) {
	payload := ordertech.BuildProductUpdate(data)
	if err := s.client.UpdateProduct(ctx, data.Product.OrderTechProductID, payload); err != nil {
		s.logger.Error("product sync failed",
			zap.Int64("product_id", data.Product.ID), zap.Error(err))
		return
	}
	s.logger.Info("synced product update data", zap.Int64("product_id", data.Product.ID))
}

// Resync is the manual reconciliation sweep for POS products missing a
// remote id. A reconciled product is created and then immediately updated,
// so its sizes and addon groups arrive in the same sweep.
func (s *ProductSyncService) Resync(ctx context.Context) error {
	if !tokenReady(ctx, s.settingsRepo, s.logger) {
		return ordertech.ErrTokenMissing
	}
	products, err := s.products.FindPOSWithoutRemoteID(ctx)
	if err != nil {
		return err
	}
	for _, product := range products {
		data := s.syncData(ctx, product)
		tenantID := s.tenantID(ctx, product.CompanyID)
		if !ordertech.ProductCreateEligible(product, data.CategoryRemoteID, tenantID) {
			continue
		}
		if !s.createProduct(ctx, data, tenantID) {
			continue
		}
		s.updateProduct(ctx, data)
	}
	return nil
}
