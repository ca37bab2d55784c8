package rebuilds

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-roast/internal/extract"
	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/server/respond"
	"resume-roast/internal/shared/telemetry"
	"resume-roast/internal/uploads"
)

// Handler wires HTTP handlers to the rebuild service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches rebuild routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/rebuild", h.Rebuild)
}

// Rebuild handles the multipart resume submission and returns three rewrites.
func (h *Handler) Rebuild(c *gin.Context) {
	ctx := c.Request.Context()

	doc, err := uploads.FromRequest(c, uploads.FieldResume, h.MaxUploadBytes)
	if err != nil {
		respond.Fail(c, err, uploads.FailureMessage(err))
		return
	}

	text, err := extract.Text(ctx, doc.Data, doc.MimeType)
	if err != nil {
		respond.Fail(c, err, "Failed to parse file")
		return
	}
	if strings.TrimSpace(text) == "" {
		respond.Fail(c, fmt.Errorf("rebuild: extracted text is empty: %w", apperr.ErrMissingInput), "No text could be extracted from the file")
		return
	}

	req := Request{
		ResumeText: text,
		Industry:   strings.TrimSpace(c.PostForm("industry")),
	}.normalized()
	telemetry.Info("document.parsed", map[string]any{
		"request_id":  telemetry.RequestID(ctx),
		"text_length": len(text),
		"industry":    req.Industry,
	})

	if !h.Svc.Configured() {
		respond.Fail(c, fmt.Errorf("rebuild: %w", apperr.ErrConfiguration), "Completion service API key not configured")
		return
	}

	result, err := h.Svc.Rebuild(ctx, req)
	if err != nil {
		respond.Fail(c, err, "Resume rebuild failed")
		return
	}

	respond.JSON(c, http.StatusOK, result)
}
