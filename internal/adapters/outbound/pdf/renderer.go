// Package pdf renders invoice records into PDF documents with gofpdf.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

const dateLayout = "January 2, 2006"

// Renderer implements domain.DocumentRenderer on top of gofpdf.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer { return &Renderer{} }

// Render draws one invoice as an A4 portrait PDF styled by the template
// preset and returns the document bytes.
func (r *Renderer) Render(inv *domain.Invoice, logoPath string, template domain.StyleTemplate) ([]byte, error) {
	style := template.Preset()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", inv.Number), true)
	pdf.AddPage()

	// Unicode text must pass through the code-page translator before
	// hitting the core fonts.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r.drawHeader(pdf, tr, inv, logoPath, style)
	r.drawParties(pdf, tr, inv, style)
	r.drawItems(pdf, tr, inv, style)
	r.drawTotals(pdf, inv, style)
	r.drawNotes(pdf, tr, inv, style)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, inv *domain.Invoice, logoPath string, style domain.StylePreset) {
	if logoPath != "" {
		pdf.ImageOptions(logoPath, 10, 12, 50, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		pdf.SetY(12)
	} else {
		pdf.SetFont(style.Font, "B", style.HeaderSize)
		setTextColor(pdf, style.Primary)
		pdf.SetXY(10, 12)
		pdf.CellFormat(110, 12, tr(inv.Company.Name), "", 0, "L", false, 0, "")
	}

	pdf.SetFont(style.Font, "B", style.HeaderSize+8)
	setTextColor(pdf, style.Primary)
	pdf.SetXY(120, 12)
	pdf.CellFormat(80, 12, "INVOICE", "", 1, "R", false, 0, "")
	pdf.Ln(10)
}

func (r *Renderer) drawParties(pdf *gofpdf.Fpdf, tr func(string) string, inv *domain.Invoice, style domain.StylePreset) {
	top := pdf.GetY()

	// Company block
	pdf.SetFont(style.Font, style.FontStyle, style.BodySize)
	setTextColor(pdf, style.Secondary)
	pdf.SetXY(10, top)
	for _, line := range partyLines(inv.Company) {
		pdf.CellFormat(60, 5, tr(line), "", 2, "L", false, 0, "")
	}
	companyEnd := pdf.GetY()

	// Bill To block
	pdf.SetXY(75, top)
	pdf.SetFont(style.Font, "B", style.BodySize)
	setTextColor(pdf, style.Primary)
	pdf.CellFormat(60, 5, "Bill To:", "", 2, "L", false, 0, "")
	pdf.SetFont(style.Font, style.FontStyle, style.BodySize)
	setTextColor(pdf, style.Secondary)
	for _, line := range partyLines(inv.Client) {
		pdf.SetX(75)
		pdf.CellFormat(60, 5, tr(line), "", 2, "L", false, 0, "")
	}
	clientEnd := pdf.GetY()

	// Invoice metadata block
	pdf.SetXY(140, top)
	setTextColor(pdf, style.Primary)
	meta := [][2]string{
		{"Invoice #:", inv.Number},
		{"Date:", inv.Date.Format(dateLayout)},
		{"Due Date:", inv.DueDate.Format(dateLayout)},
		{"Amount Due:", fmt.Sprintf("%s %s", inv.Currency, inv.Total.StringFixed(2))},
	}
	for _, kv := range meta {
		pdf.SetX(140)
		pdf.SetFont(style.Font, "B", style.BodySize)
		pdf.CellFormat(25, 5, kv[0], "", 0, "L", false, 0, "")
		pdf.SetFont(style.Font, style.FontStyle, style.BodySize)
		pdf.CellFormat(35, 5, kv[1], "", 2, "L", false, 0, "")
		pdf.SetY(pdf.GetY())
	}
	metaEnd := pdf.GetY()

	bottom := companyEnd
	if clientEnd > bottom {
		bottom = clientEnd
	}
	if metaEnd > bottom {
		bottom = metaEnd
	}

	// Accent rule under the info blocks
	setDrawColor(pdf, style.Accent)
	pdf.SetLineWidth(0.4)
	pdf.Line(10, bottom+4, 200, bottom+4)
	pdf.SetY(bottom + 12)
}

func (r *Renderer) drawItems(pdf *gofpdf.Fpdf, tr func(string) string, inv *domain.Invoice, style domain.StylePreset) {
	pdf.SetFont(style.Font, "B", style.BodySize+1)
	setFillColor(pdf, style.Primary)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(95, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont(style.Font, "", style.BodySize-1)
	setTextColor(pdf, style.Secondary)
	for _, item := range inv.Items {
		pdf.CellFormat(95, 7, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, item.Quantity.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%s %s", inv.Currency, item.Rate.StringFixed(2)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%s %s", inv.Currency, item.Amount().StringFixed(2)), "1", 1, "R", false, 0, "")
	}
}

func (r *Renderer) drawTotals(pdf *gofpdf.Fpdf, inv *domain.Invoice, style domain.StylePreset) {
	pdf.Ln(2)
	setTextColor(pdf, style.Secondary)
	pdf.SetFont(style.Font, "", style.BodySize)

	pdf.CellFormat(150, 7, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, fmt.Sprintf("%s %s", inv.Currency, inv.Subtotal.StringFixed(2)), "", 1, "R", false, 0, "")

	if !inv.TaxRate.IsZero() {
		pdf.CellFormat(150, 7, fmt.Sprintf("Tax (%s%%):", inv.TaxRate.String()), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%s %s", inv.Currency, inv.TaxAmount.StringFixed(2)), "", 1, "R", false, 0, "")
	}

	pdf.SetFont(style.Font, "B", style.BodySize+2)
	setTextColor(pdf, style.Primary)
	pdf.CellFormat(150, 9, "Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 9, fmt.Sprintf("%s %s", inv.Currency, inv.Total.StringFixed(2)), "T", 1, "R", false, 0, "")
}

func (r *Renderer) drawNotes(pdf *gofpdf.Fpdf, tr func(string) string, inv *domain.Invoice, style domain.StylePreset) {
	if inv.Notes == "" {
		return
	}
	pdf.Ln(8)
	pdf.SetFont(style.Font, "B", style.BodySize)
	setTextColor(pdf, style.Primary)
	pdf.CellFormat(190, 6, "Notes:", "", 1, "L", false, 0, "")
	pdf.SetFont(style.Font, "", style.BodySize-1)
	setTextColor(pdf, style.Secondary)
	pdf.MultiCell(190, 5, tr(inv.Notes), "", "L", false)
}

func partyLines(p domain.Party) []string {
	lines := []string{p.Name}
	if p.Address != "" {
		lines = append(lines, strings.Split(p.Address, "\n")...)
	}
	for _, v := range []string{p.Email, p.Phone} {
		if v != "" {
			lines = append(lines, v)
		}
	}
	return lines
}

func setTextColor(pdf *gofpdf.Fpdf, c domain.RGB) { pdf.SetTextColor(c.R, c.G, c.B) }
func setFillColor(pdf *gofpdf.Fpdf, c domain.RGB) { pdf.SetFillColor(c.R, c.G, c.B) }
func setDrawColor(pdf *gofpdf.Fpdf, c domain.RGB) { pdf.SetDrawColor(c.R, c.G, c.B) }
