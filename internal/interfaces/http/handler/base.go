package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response in the gateway envelope
func (h *BaseHandler) Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessEnvelope(message, data))
}

// Created sends a 201 response in the gateway envelope
func (h *BaseHandler) Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessEnvelope(message, data))
}

// BadRequest sends a 400 error envelope
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(message))
}

// Unauthorized sends a 401 error envelope
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(message))
}

// InternalError sends a 500 error envelope
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, dto.NewErrorEnvelope(message))
}

// HandleDomainError converts domain errors to envelope responses, deriving
// the status from the error code
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewErrorEnvelope(domainErr.Message))
		return
	}
	h.InternalError(c, "An unexpected error occurred")
}
