package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/telemetry"
)

// FieldResume is the multipart field carrying the resume file.
const FieldResume = "resume"

// Document is an uploaded file held in memory for the duration of one request.
type Document struct {
	Data     []byte
	MimeType string
	FileName string
}

// FailureMessage is the client-facing message for a FromRequest error.
func FailureMessage(err error) string {
	if errors.Is(err, apperr.ErrPayloadTooLarge) {
		return "File too large"
	}
	return "No file uploaded"
}

// FromRequest reads the named multipart file, capping the request body at maxBytes.
func FromRequest(c *gin.Context, field string, maxBytes int64) (Document, error) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return Document{}, fmt.Errorf("upload exceeds %d bytes: %w", tooLarge.Limit, apperr.ErrPayloadTooLarge)
		}
		return Document{}, fmt.Errorf("%s file is required: %w", field, apperr.ErrMissingInput)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %v: %w", field, err, apperr.ErrMissingInput)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %v: %w", field, err, apperr.ErrMissingInput)
	}

	doc := Document{
		Data:     data,
		MimeType: strings.TrimSpace(fileHeader.Header.Get("Content-Type")),
		FileName: cleanFileName(fileHeader.Filename),
	}
	telemetry.Info("upload.received", map[string]any{
		"request_id": telemetry.RequestID(c.Request.Context()),
		"file_name":  doc.FileName,
		"mime_type":  doc.MimeType,
		"size_bytes": len(doc.Data),
	})
	return doc, nil
}

// cleanFileName keeps the base name of a client-supplied file name. Path
// separators and traversal segments never reach logs.
func cleanFileName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || name == "." || name == ".." {
		return "upload"
	}
	return name
}
