package respond

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/telemetry"
)

func TestFailMapsErrorKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(prev) })

	r := gin.New()
	r.POST("/checkout", func(c *gin.Context) {
		Fail(c, fmt.Errorf("product %q: %w", "vip", apperr.ErrInvalidProduct), "Invalid product type")
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/checkout", nil))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "invalid_product", body.Error.Code)
	assert.Equal(t, "Invalid product type", body.Error.Message)
}

func TestAttachmentSetsDownloadHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/file", func(c *gin.Context) {
		Attachment(c, "application/pdf", "resume-ats.pdf", []byte("%PDF-1.3"))
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/file", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, `attachment; filename="resume-ats.pdf"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, "8", resp.Header().Get("Content-Length"))
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
}
