package ordertech

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/pos"
	"github.com/restopos/backend/internal/domain/shared"
)

// OrderIdempotencyStore is a fast-path cache mapping remote order ids to
// local order ids. The database remains the source of truth; a cache miss
// always falls through to a repository lookup.
type OrderIdempotencyStore interface {
	// Get returns the cached local order id for a remote order id
	Get(ctx context.Context, remoteOrderID string) (int64, bool)
	// Set remembers the local order id for a remote order id
	Set(ctx context.Context, remoteOrderID string, orderID int64)
}

// AttributeSelection is one requested add-on: a (group, item) pair of remote
// ids.
type AttributeSelection struct {
	GroupID string `json:"group_id"`
	ItemID  string `json:"item_id"`
}

// OrderIntakeRequest is an order-create call from the ordering platform.
type OrderIntakeRequest struct {
	// RemoteOrderID is the platform's order identifier
	RemoteOrderID string
	// BranchRemoteID is the platform's branch identifier
	BranchRemoteID string
	// CustomerRemoteID is the platform's customer identifier
	CustomerRemoteID string
	// ProductRemoteID is the platform's product identifier
	ProductRemoteID string
	// Qty is the ordered quantity
	Qty float64
	// Attributes are the requested add-on selections
	Attributes []AttributeSelection
	// SizeValue is the requested size name, empty when none
	SizeValue string
}

// OrderIntakeResult reports the created or already existing local order.
type OrderIntakeResult struct {
	// OrderID is the local order identifier
	OrderID int64
	// OrderNumber is the kitchen tracking number
	OrderNumber string
	// OrderRef is the composite order reference (existing orders only)
	OrderRef string
	// ReceiptNumber is the receipt reference
	ReceiptNumber string
	// Status is the order state
	Status string
	// Existing is true when the remote order id was already known
	Existing bool
}

// OrderIntakeService assembles local orders from platform order-create calls.
type OrderIntakeService struct {
	orders      pos.OrderRepository
	companies   pos.CompanyRepository
	sessions    pos.SessionRepository
	customers   pos.CustomerRepository
	products    pos.ProductRepository
	groups      pos.AttributeGroupRepository
	values      pos.AttributeValueRepository
	processor   pos.OrderProcessor
	idempotency OrderIdempotencyStore
	logger      *zap.Logger

	// sizesAttribute is the name of the designated sizes attribute
	sizesAttribute string
}

// NewOrderIntakeService creates a new OrderIntakeService
func NewOrderIntakeService(
	orders pos.OrderRepository,
	companies pos.CompanyRepository,
	sessions pos.SessionRepository,
	customers pos.CustomerRepository,
	products pos.ProductRepository,
	groups pos.AttributeGroupRepository,
	values pos.AttributeValueRepository,
	processor pos.OrderProcessor,
	idempotency OrderIdempotencyStore,
	logger *zap.Logger,
	sizesAttribute string,
) *OrderIntakeService {
	return &OrderIntakeService{
		orders:         orders,
		companies:      companies,
		sessions:       sessions,
		customers:      customers,
		products:       products,
		groups:         groups,
		values:         values,
		processor:      processor,
		idempotency:    idempotency,
		logger:         logger,
		sizesAttribute: sizesAttribute,
	}
}

func validationError(format string, args ...any) error {
	return shared.NewDomainError(shared.ErrCodeValidation, fmt.Sprintf(format, args...))
}

// existing looks the remote order id up, cache first, database second.
func (s *OrderIntakeService) existing(ctx context.Context, remoteOrderID string) *pos.Order {
	if id, ok := s.idempotency.Get(ctx, remoteOrderID); ok {
		if order, err := s.orders.FindByID(ctx, id); err == nil && order != nil {
			return order
		}
	}
	order, err := s.orders.FindByRemoteID(ctx, remoteOrderID)
	if err != nil || order == nil {
		return nil
	}
	s.idempotency.Set(ctx, remoteOrderID, order.ID)
	return order
}

// Create runs the order intake flow: idempotency check, reference
// resolution, add-on and size matching, composite reference generation and
// submission through the local order pipeline. At most one local order ever
// exists per remote order id.
func (s *OrderIntakeService) Create(ctx context.Context, req OrderIntakeRequest) (*OrderIntakeResult, error) {
	if order := s.existing(ctx, req.RemoteOrderID); order != nil {
		return &OrderIntakeResult{
			OrderID:       order.ID,
			OrderNumber:   order.TrackingNumber,
			OrderRef:      order.Name,
			ReceiptNumber: order.ReceiptRef,
			Status:        order.State,
			Existing:      true,
		}, nil
	}

	company, err := s.companies.FindByRemoteBranchID(ctx, req.BranchRemoteID)
	if err != nil || company == nil {
		return nil, validationError("Company not found with this id : %s", req.BranchRemoteID)
	}
	session, err := s.sessions.FindOpenByCompanyID(ctx, company.ID)
	if err != nil || session == nil {
		return nil, validationError("No open POS session")
	}
	customer, err := s.customers.FindByRemoteID(ctx, req.CustomerRemoteID)
	if err != nil || customer == nil {
		return nil, validationError("Customer not found with this id : %s", req.CustomerRemoteID)
	}
	product, err := s.products.FindByRemoteID(ctx, req.ProductRemoteID)
	if err != nil || product == nil {
		return nil, validationError("Product not found with this id : %s", req.ProductRemoteID)
	}

	valueIDs, priceExtra, err := s.resolveSelections(ctx, product, req)
	if err != nil {
		return nil, err
	}

	if req.Qty <= 0 {
		return nil, validationError("Invalid qty value must be greater than 0")
	}

	ref, nextSeq, err := s.orderReference(ctx, session)
	if err != nil {
		return nil, err
	}

	unitPrice := product.ListPrice.Add(priceExtra)
	subtotal := decimal.NewFromFloat(req.Qty).Mul(unitPrice)
	order := &pos.Order{
		SessionID:        session.ID,
		CompanyID:        session.CompanyID,
		CustomerID:       customer.ID,
		Name:             "Order " + ref,
		UUID:             uuid.New(),
		SequenceNumber:   nextSeq,
		State:            "draft",
		AmountTotal:      subtotal,
		OrderTechOrderID: req.RemoteOrderID,
		Lines: []pos.OrderLine{{
			ProductID:         product.ID,
			FullProductName:   product.Name,
			Qty:               req.Qty,
			UnitPrice:         unitPrice,
			ExtraPrice:        priceExtra,
			Subtotal:          subtotal,
			AttributeValueIDs: valueIDs,
			UUID:              uuid.New(),
		}},
	}

	processed, err := s.processor.Process(ctx, order)
	if err != nil {
		s.logger.Error("error creating order from platform request", zap.Error(err))
		return nil, shared.NewDomainError(shared.ErrCodeOrderProcessing, err.Error())
	}
	s.idempotency.Set(ctx, req.RemoteOrderID, processed.ID)
	return &OrderIntakeResult{
		OrderID:       processed.ID,
		OrderNumber:   processed.TrackingNumber,
		ReceiptNumber: processed.ReceiptRef,
		Status:        processed.State,
	}, nil
}

// resolveSelections matches the requested add-ons and size against the
// product's attribute values, accumulating extra prices. Add-ons match by
// (group remote id, item remote id); the size matches by case-insensitive
// trimmed name within the designated sizes attribute.
func (s *OrderIntakeService) resolveSelections(ctx context.Context, product *pos.Product, req OrderIntakeRequest) ([]int64, decimal.Decimal, error) {
	var valueIDs []int64
	priceExtra := decimal.Zero

	type lineValues struct {
		group  *pos.AttributeGroup
		values []*pos.AttributeValue
	}
	lines := make([]lineValues, 0, len(product.AttributeLines))
	for _, line := range product.AttributeLines {
		group, err := s.groups.FindByID(ctx, line.GroupID)
		if err != nil {
			continue
		}
		values, err := s.values.FindByIDs(ctx, line.ValueIDs)
		if err != nil {
			continue
		}
		lines = append(lines, lineValues{group: group, values: values})
	}

	for _, sel := range req.Attributes {
		var match *pos.AttributeValue
		for _, line := range lines {
			if line.group.OrderTechGroupID != sel.GroupID {
				continue
			}
			for _, v := range line.values {
				if v.OrderTechItemID == sel.ItemID {
					match = v
					break
				}
			}
		}
		if match == nil {
			return nil, decimal.Zero, validationError(
				"Not found addons group_id: %s or item_id: %s", sel.GroupID, sel.ItemID)
		}
		valueIDs = append(valueIDs, match.ID)
		priceExtra = priceExtra.Add(match.DefaultExtraPrice)
	}

	if req.SizeValue != "" {
		want := strings.ToLower(strings.TrimSpace(req.SizeValue))
		var match *pos.AttributeValue
		for _, line := range lines {
			if !strings.EqualFold(line.group.Name, s.sizesAttribute) {
				continue
			}
			for _, v := range line.values {
				if strings.ToLower(strings.TrimSpace(v.Name)) == want {
					match = v
					break
				}
			}
		}
		if match == nil {
			return nil, decimal.Zero, validationError("Size value %s not found", req.SizeValue)
		}
		valueIDs = append(valueIDs, match.ID)
		priceExtra = priceExtra.Add(match.DefaultExtraPrice)
	}

	return valueIDs, priceExtra, nil
}

// orderReference builds the composite order reference: zero-padded session
// id (5), responsible user id (3) and next per-session sequence number (4).
func (s *OrderIntakeService) orderReference(ctx context.Context, session *pos.Session) (string, int, error) {
	maxSeq, err := s.sessions.MaxSequenceNumber(ctx, session.ID)
	if err != nil {
		return "", 0, err
	}
	nextSeq := maxSeq + 1
	ref := fmt.Sprintf("%05d-%03d-%04d", session.ID, session.ResponsibleUserID, nextSeq)
	return ref, nextSeq, nil
}
