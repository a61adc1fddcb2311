package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/middleware"
)

const (
	testTenant = "school-1"
	testActor  = "admin-1"
	testJobID  = "6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter returns a router with the tenant middleware the API group uses.
func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Tenant())
	return router
}

func tenantRequest(method, target string, body *bytes.Buffer) *http.Request {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(middleware.TenantIDHeader, testTenant)
	req.Header.Set(middleware.ActorIDHeader, testActor)
	return req
}

// uploadRequest builds a multipart submission with the given file and form
// fields.
func uploadRequest(t *testing.T, target, fileName string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile(formFile, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := tenantRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
