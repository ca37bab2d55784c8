package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/metrics"
	"resume-roast/internal/shared/server/respond"
	"resume-roast/internal/shared/telemetry"
)

type exportRequest struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// Handler serves PDF exports.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/export", h.Export)
}

// Export renders the posted text as a PDF attachment.
func (h *Handler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		metrics.IncRequest("export", metrics.OutcomeEmpty)
		respond.Fail(c, fmt.Errorf("export: %w", apperr.ErrMissingInput), "No content to export")
		return
	}

	var buf bytes.Buffer
	if err := RenderPDF(&buf, req.Label, req.Content); err != nil {
		metrics.IncRequest("export", metrics.OutcomeFailed)
		respond.Fail(c, err, "Failed to render PDF")
		return
	}

	name := FileName(req.Label)
	telemetry.Info("export.rendered", map[string]any{
		"request_id": telemetry.RequestID(c.Request.Context()),
		"file_name":  name,
		"size_bytes": buf.Len(),
	})
	metrics.IncRequest("export", metrics.OutcomeOK)
	respond.Attachment(c, "application/pdf", name, buf.Bytes())
}
