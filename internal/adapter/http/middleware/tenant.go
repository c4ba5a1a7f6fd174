package middleware

import (
	"net/http"
	"strings"

	"engclin_tse/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderTenantID is set by the upstream tenant resolver and trusted here.
const HeaderTenantID = "X-Tenant-ID"

const tenantContextKey = "tenant_id"

var errMissingTenant = pkg.NewDomainErrorSimple("MISSING_TENANT", "X-Tenant-ID header is required", http.StatusBadRequest)

// RequireTenant rejects requests without a tenant and stores it on the context.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(HeaderTenantID))
		if tenantID == "" {
			c.AbortWithStatusJSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
			return
		}
		c.Set(tenantContextKey, tenantID)
		c.Next()
	}
}

// TenantID returns the request tenant, falling back to the header when the
// middleware did not run.
func TenantID(c *gin.Context) string {
	if v := c.GetString(tenantContextKey); v != "" {
		return v
	}
	return strings.TrimSpace(c.GetHeader(HeaderTenantID))
}
