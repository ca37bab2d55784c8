package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-roast/internal/shared/apperr"
)

const mimePDF = "application/pdf"

// Text returns the plain text of an uploaded document. PDFs go through
// github.com/ledongthuc/pdf; every other declared type is taken as UTF-8 verbatim.
func Text(ctx context.Context, data []byte, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !IsPDF(mimeType) {
		return string(data), nil
	}
	text, err := extractPDF(data)
	if err != nil {
		return "", fmt.Errorf("extract pdf (%d bytes): %v: %w", len(data), err, apperr.ErrDocumentParse)
	}
	return text, nil
}

// IsPDF reports whether a declared content type names a portable document.
func IsPDF(mimeType string) bool {
	return normalizeMimeType(mimeType) == mimePDF
}

func extractPDF(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", errors.New("empty pdf data")
	}
	// The parser panics on some truncated inputs.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("pdf reader panic: %v", rec)
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func normalizeMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}
