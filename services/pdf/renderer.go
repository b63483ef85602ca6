package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"mensa/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	brandName     = "MENSA POWER CONTROLS"
	brandSubtitle = "Invoice / Service Confirmation"
	footerNote    = "This document confirms the service booking. Payment will be taken after the service is completed."
)

// Renderer produces a downloadable document for an invoice.
type Renderer interface {
	Render(invoice *models.Invoice) ([]byte, error)
}

// GofpdfRenderer renders the fixed single-page invoice layout.
type GofpdfRenderer struct{}

// NewRenderer returns the standard invoice renderer.
func NewRenderer() Renderer {
	return &GofpdfRenderer{}
}

// Render draws the brand header, the invoice body lines and the static
// payment footer. There are no computed totals or taxes and never more
// than one page.
func (r *GofpdfRenderer) Render(invoice *models.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 18, 18)
	doc.AddPage()

	// Header.
	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 9, brandName, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 13)
	doc.CellFormat(0, 7, brandSubtitle, "", 1, "L", false, 0, "")
	doc.Ln(2)
	doc.SetDrawColor(0, 0, 0)
	x, y := doc.GetX(), doc.GetY()
	pageWidth, _ := doc.GetPageSize()
	doc.Line(x, y, pageWidth-18, y)
	doc.Ln(8)

	// Body. The rupee glyph is outside the core font set, so amounts
	// carry the "Rs." prefix here.
	doc.SetFont("Helvetica", "", 12)
	bodyLine(doc, fmt.Sprintf("Invoice ID: %s", invoice.ID))
	bodyLine(doc, fmt.Sprintf("Company Name: %s", orDash(invoice.CompanyName)))
	bodyLine(doc, fmt.Sprintf("Service(s): %s", orDash(invoice.Service)))
	bodyLine(doc, fmt.Sprintf("Date: %s", invoice.CreatedAt.Format("Mon Jan 02 2006")))
	bodyLine(doc, fmt.Sprintf("Amount: Rs. %s", strconv.FormatFloat(invoice.Amount, 'f', -1, 64)))
	bodyLine(doc, "Status: Booking Confirmed")
	doc.Ln(6)

	// Footer note.
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(0, 5, footerNote, "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice %s: %w", invoice.ID, err)
	}
	return buf.Bytes(), nil
}

func bodyLine(doc *gofpdf.Fpdf, text string) {
	doc.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
