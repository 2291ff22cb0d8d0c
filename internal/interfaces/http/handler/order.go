package handler

import (
	"github.com/gin-gonic/gin"

	appordertech "github.com/restopos/backend/internal/application/ordertech"
	"github.com/restopos/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles inbound order creation from the ordering platform
type OrderHandler struct {
	BaseHandler
	intake *appordertech.OrderIntakeService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(intake *appordertech.OrderIntakeService) *OrderHandler {
	return &OrderHandler{intake: intake}
}

// CreateOrderRequest is the platform's order-create body
type CreateOrderRequest struct {
	RemoteOrderID string                            `json:"ordertech_orderId" binding:"required"`
	CompanyID     string                            `json:"company_id" binding:"required"`
	CustomerID    string                            `json:"customer_id" binding:"required"`
	ProductID     string                            `json:"product_id" binding:"required"`
	Qty           float64                           `json:"qty" binding:"required"`
	Attributes    []appordertech.AttributeSelection `json:"attributes"`
	SizeValue     string                            `json:"size_value"`
}

// existingOrderData is the response body when the remote order already exists
type existingOrderData struct {
	OrderID       int64  `json:"orderId"`
	OrderNumber   string `json:"order_number"`
	OrderRef      string `json:"order_ref"`
	ReceiptNumber string `json:"receipt_number"`
	Status        string `json:"status"`
}

// createdOrderData is the response body for a newly created order
type createdOrderData struct {
	OrderID       int64  `json:"orderId"`
	OrderNumber   string `json:"order_number"`
	ReceiptNumber string `json:"receipt_number"`
	Status        string `json:"status"`
}

// Create accepts a platform order. Idempotent on the remote order id: a known
// id answers 200 with the existing order, a new one runs the intake flow and
// answers 201.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.intake.Create(c.Request.Context(), appordertech.OrderIntakeRequest{
		RemoteOrderID:    req.RemoteOrderID,
		BranchRemoteID:   req.CompanyID,
		CustomerRemoteID: req.CustomerID,
		ProductRemoteID:  req.ProductID,
		Qty:              req.Qty,
		Attributes:       req.Attributes,
		SizeValue:        req.SizeValue,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if result.Existing {
		h.Success(c, "order already exists", existingOrderData{
			OrderID:       result.OrderID,
			OrderNumber:   result.OrderNumber,
			OrderRef:      result.OrderRef,
			ReceiptNumber: result.ReceiptNumber,
			Status:        result.Status,
		})
		return
	}
	h.Created(c, "order created successfully", createdOrderData{
		OrderID:       result.OrderID,
		OrderNumber:   result.OrderNumber,
		ReceiptNumber: result.ReceiptNumber,
		Status:        result.Status,
	})
}

// RegisterRoutes registers the order intake route
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/order", h.Create)
}
