package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/middleware"
)

func TestTenant(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Tenant())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenant": middleware.GetTenantID(c),
			"actor":  middleware.GetActorID(c),
		})
	})

	tests := []struct {
		name   string
		tenant string
		actor  string
		want   int
	}{
		{"both headers", "school-1", "user-9", http.StatusOK},
		{"missing tenant", "", "user-9", http.StatusUnauthorized},
		{"missing actor", "school-1", "", http.StatusUnauthorized},
		{"blank tenant", "   ", "user-9", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.tenant != "" {
				req.Header.Set(middleware.TenantIDHeader, tt.tenant)
			}
			if tt.actor != "" {
				req.Header.Set(middleware.ActorIDHeader, tt.actor)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"tenant":"school-1","actor":"user-9"}`, w.Body.String())
			}
		})
	}
}
