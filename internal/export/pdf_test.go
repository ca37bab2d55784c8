package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, "ATS", "**Summary**\n- Built pipelines"))

	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	reader, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, 1, reader.NumPage())

	plain, err := reader.GetPlainText()
	require.NoError(t, err)
	var text bytes.Buffer
	_, err = text.ReadFrom(plain)
	require.NoError(t, err)
	assert.Contains(t, text.String(), "ATS Resume")
	assert.Contains(t, text.String(), "Summary")
	assert.NotContains(t, text.String(), "**")
}

func TestRenderPDFPaginatesLongText(t *testing.T) {
	long := strings.Repeat("Shipped a very important feature that moved a metric.\n", 200)

	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, "Modern", long))

	reader, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Greater(t, reader.NumPage(), 1)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "resume-ats.pdf", FileName("ATS"))
	assert.Equal(t, "resume-industry-optimized.pdf", FileName("Industry  Optimized"))
	assert.Equal(t, "resume-roasted.pdf", FileName(" "))
}
