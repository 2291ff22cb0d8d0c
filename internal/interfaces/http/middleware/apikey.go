package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restopos/backend/internal/interfaces/http/dto"
)

// APIKeyHeader is the header carrying the inbound gateway credential
const APIKeyHeader = "X-API-KEY"

// KeyProvider resolves the currently configured API key. An empty key means
// the gateway is not provisioned yet and every call is rejected.
type KeyProvider func(c *gin.Context) string

// APIKeyAuth authenticates inbound platform calls against the locally
// generated API key using a constant-time comparison.
func APIKeyAuth(provider KeyProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(APIKeyHeader)
		expected := provider(c)
		if expected == "" || presented == "" ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorEnvelope("Unauthorized"))
			return
		}
		c.Next()
	}
}
