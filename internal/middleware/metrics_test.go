package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records request metrics by route", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/v1/imports/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/imports/:id", "200"))
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/imports/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/imports/:id", "200"))
		assert.Equal(t, initialTotal+1, newTotal, "Request counter should increment")
		assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight),
			"In-flight should return to initial after request")
	})

	t.Run("records rejections", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.POST("/api/v1/imports/students", func(c *gin.Context) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "rejected"})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/imports/students", "422"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/students", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/imports/students", "422"))
		assert.Equal(t, initialTotal+1, newTotal)
	})

	t.Run("labels unmatched routes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

		req := httptest.NewRequest(http.MethodGet, "/nope/123", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
		assert.Equal(t, initialTotal+1, newTotal)
	})

	t.Run("skips metrics and progress streams", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/metrics", func(c *gin.Context) {
			c.String(http.StatusOK, "metrics data")
		})
		router.GET("/api/v1/imports/:id/ws", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		for _, path := range []string{"/metrics", "/api/v1/imports/abc/ws"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		assert.Equal(t, 0.0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
		assert.Equal(t, 0.0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/imports/:id/ws", "200")))
	})
}
