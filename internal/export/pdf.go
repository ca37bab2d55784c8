package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	marginMM     = 20.0
	bodyWidthMM  = 170.0
	lineHeightMM = 5.5
	titleSize    = 16
	bodySize     = 11
	fontFamily   = "Helvetica"
)

// DefaultLabel names exports submitted without a label.
const DefaultLabel = "Roasted"

// RenderPDF writes an A4 document titled "{label} Resume" with the cleaned
// text wrapped below it. Long text continues onto new pages.
func RenderPDF(w io.Writer, label, text string) error {
	label = normalizeLabel(label)

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginMM, marginMM, marginMM)
	doc.SetAutoPageBreak(true, marginMM)
	doc.SetTitle(label+" Resume", true)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont(fontFamily, "B", titleSize)
	doc.Text(marginMM, marginMM, tr(label+" Resume"))

	doc.SetFont(fontFamily, "", bodySize)
	doc.SetXY(marginMM, marginMM+10)
	doc.MultiCell(bodyWidthMM, lineHeightMM, tr(Clean(text)), "", "L", false)

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// FileName is the attachment name for a label: "resume-{label}.pdf", lowercased
// with whitespace runs turned into dashes.
func FileName(label string) string {
	return "resume-" + strings.Join(strings.Fields(strings.ToLower(normalizeLabel(label))), "-") + ".pdf"
}

func normalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return DefaultLabel
	}
	return label
}
