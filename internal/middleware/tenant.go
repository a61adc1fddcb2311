package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// TenantIDHeader carries the school the caller acts for.
	TenantIDHeader = "X-Tenant-ID"
	// ActorIDHeader carries the authenticated user.
	ActorIDHeader = "X-Actor-ID"

	TenantIDKey = "tenant_id"
	ActorIDKey  = "actor_id"
)

// Tenant requires the tenant and actor headers set by the gateway and stores
// them on the context. Requests without them are rejected with 401.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(TenantIDHeader))
		actorID := strings.TrimSpace(c.GetHeader(ActorIDHeader))
		if tenantID == "" || actorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "X-Tenant-ID and X-Actor-ID headers are required",
			})
			return
		}

		c.Set(TenantIDKey, tenantID)
		c.Set(ActorIDKey, actorID)
		c.Next()
	}
}

// GetTenantID returns the tenant of the request.
func GetTenantID(c *gin.Context) string {
	return c.GetString(TenantIDKey)
}

// GetActorID returns the actor of the request.
func GetActorID(c *gin.Context) string {
	return c.GetString(ActorIDKey)
}
