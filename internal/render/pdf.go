// Package render writes article text into a PDF document.
package render

import (
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer lays the formatted text out as a single flowing
// paragraph on letter pages.
type PDFRenderer struct{}

// New creates a PDFRenderer.
func New() *PDFRenderer {
	return &PDFRenderer{}
}

// Render writes content to the PDF file at path, overwriting any
// existing file. The text is one flowable paragraph; page breaks are
// automatic and no truncation is applied.
func (r *PDFRenderer) Render(content, path string) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)

	// Core fonts are cp1252; translate so common punctuation from the
	// model survives.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, 5, tr(content), "", "L", false)

	return pdf.OutputFileAndClose(path)
}
