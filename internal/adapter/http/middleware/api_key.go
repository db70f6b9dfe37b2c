package middleware

import (
	"net/http"

	"lazarus_guide/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errAPIKeyMissing = pkg.NewDomainErrorSimple("API_KEY_REQUIRED", "API key is required. Provide it via the X-API-Key header or the api_key query parameter", http.StatusUnauthorized)
	errAPIKeyInvalid = pkg.NewDomainErrorSimple("INVALID_API_KEY", "Invalid API key", http.StatusForbidden)
)

// APIKeyAuth guards a route group with a static key check. The key is read
// from the X-API-Key header first, then the api_key query parameter.
func APIKeyAuth(expectedKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			key = c.Query("api_key")
		}
		if key == "" {
			c.AbortWithStatusJSON(errAPIKeyMissing.HTTPStatus, errAPIKeyMissing.ToHTTPError())
			return
		}
		if key != expectedKey {
			c.AbortWithStatusJSON(errAPIKeyInvalid.HTTPStatus, errAPIKeyInvalid.ToHTTPError())
			return
		}
		c.Next()
	}
}
