package handler

import (
	"github.com/gin-gonic/gin"

	appordertech "github.com/restopos/backend/internal/application/ordertech"
	"github.com/restopos/backend/internal/interfaces/http/middleware"
)

// CustomerHandler handles inbound customer creation from the ordering platform
type CustomerHandler struct {
	BaseHandler
	intake *appordertech.CustomerIntakeService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(intake *appordertech.CustomerIntakeService) *CustomerHandler {
	return &CustomerHandler{intake: intake}
}

// CreateCustomerRequest is the platform's customer-create body
type CreateCustomerRequest struct {
	RemoteCustomerID string `json:"ordertech_customerId" binding:"required"`
	BranchRemoteID   string `json:"ordertech_tenant_branchId" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email"`
}

// existingCustomerData is the response body when the customer already exists
type existingCustomerData struct {
	RemoteCustomerID string `json:"ordertech_customerId"`
	Name             string `json:"name"`
}

// Create registers a platform customer locally. Idempotent on the remote
// customer id: a known id answers 200, a new one answers 201.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.intake.Create(c.Request.Context(), appordertech.CustomerIntakeRequest{
		RemoteCustomerID: req.RemoteCustomerID,
		BranchRemoteID:   req.BranchRemoteID,
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if result.Existing {
		h.Success(c, "Customer already exists", existingCustomerData{
			RemoteCustomerID: result.RemoteCustomerID,
			Name:             result.Name,
		})
		return
	}
	h.Created(c, "Customer created successfully", nil)
}

// RegisterRoutes registers the customer intake route
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/customer", h.Create)
}
