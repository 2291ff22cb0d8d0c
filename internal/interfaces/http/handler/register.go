package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appordertech "github.com/restopos/backend/internal/application/ordertech"
	"github.com/restopos/backend/internal/interfaces/http/middleware"
)

// RegisterHandler handles the platform token registration endpoint
type RegisterHandler struct {
	BaseHandler
	registration *appordertech.TokenRegistrationService
}

// NewRegisterHandler creates a new RegisterHandler
func NewRegisterHandler(registration *appordertech.TokenRegistrationService) *RegisterHandler {
	return &RegisterHandler{registration: registration}
}

// RegisterTokenRequest carries the platform-issued bearer token
type RegisterTokenRequest struct {
	PlatformJWTToken string `json:"platform_jwt_token" binding:"required"`
}

// Register stores the bearer token the platform hands over after onboarding.
// Outbound sync stays disabled until this call succeeds.
func (h *RegisterHandler) Register(c *gin.Context) {
	var req RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	if err := h.registration.Register(c.Request.Context(), req.PlatformJWTToken); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// RegisterRoutes registers the token registration route
func (h *RegisterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ordertech/register", h.Register)
}
