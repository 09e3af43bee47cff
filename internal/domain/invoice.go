package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Party identifies one side of an invoice (the issuing company or the
// billed client).
type Party struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address,omitempty" yaml:"address"`
	Email   string `json:"email,omitempty" yaml:"email"`
	Phone   string `json:"phone,omitempty" yaml:"phone"`
}

// LineItem is a single billable line. Amount is always derived from
// Quantity and Rate, never stored.
type LineItem struct {
	Description string          `json:"description" yaml:"description"`
	Quantity    decimal.Decimal `json:"quantity" yaml:"quantity"`
	Rate        decimal.Decimal `json:"rate" yaml:"rate"`
}

// Amount returns quantity × rate at full precision.
func (i LineItem) Amount() decimal.Decimal { return Amount(i) }

// Invoice is the fully-resolved, renderer-ready description of one bill.
// Subtotal, TaxAmount and Total are recomputed from Items and TaxRate on
// assembly; they are never accepted from the caller.
type Invoice struct {
	Company   Party           `json:"company"`
	Client    Party           `json:"client"`
	Number    string          `json:"invoice_number"`
	Date      time.Time       `json:"invoice_date"`
	DueDate   time.Time       `json:"due_date"`
	Currency  string          `json:"currency"`
	Items     []LineItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
	Notes     string          `json:"notes,omitempty"`
}

// TotalDisplay formats the invoice total for summaries, e.g. "USD 250.00".
func (inv Invoice) TotalDisplay() string {
	return fmt.Sprintf("%s %s", inv.Currency, inv.Total.StringFixed(2))
}

// FileName returns the recommended PDF file name for the invoice:
// the invoice number plus the client name with spaces replaced by
// underscores. Numbers are unique within a run, so names are too.
func (inv Invoice) FileName() string {
	return fmt.Sprintf("%s_%s.pdf", inv.Number, strings.ReplaceAll(inv.Client.Name, " ", "_"))
}

// InvoiceDraft carries everything the assembler needs to build one Invoice.
// Totals are intentionally absent: they are always derived.
type InvoiceDraft struct {
	Company      Party
	Client       Party
	Number       string
	Date         time.Time
	PaymentTerms string
	Currency     string
	Items        []LineItem
	TaxRate      decimal.Decimal
	Notes        string
}

// AssembleInvoice validates a draft and produces the canonical Invoice,
// shared by the single and batch flows. Every missing required field is
// reported, not just the first.
func AssembleInvoice(d InvoiceDraft) (*Invoice, error) {
	var missing []string
	if strings.TrimSpace(d.Company.Name) == "" {
		missing = append(missing, "company_name")
	}
	if strings.TrimSpace(d.Client.Name) == "" {
		missing = append(missing, "client_name")
	}
	if len(missing) > 0 {
		return nil, &FieldError{Missing: missing}
	}

	if len(d.Items) == 0 {
		return nil, fmt.Errorf("invoice for %s has no line items", d.Client.Name)
	}
	for idx, item := range d.Items {
		if strings.TrimSpace(item.Description) == "" {
			return nil, fmt.Errorf("item %d: description cannot be empty", idx+1)
		}
		if item.Quantity.IsNegative() {
			return nil, fmt.Errorf("item %d: quantity cannot be negative", idx+1)
		}
		if item.Rate.IsNegative() {
			return nil, fmt.Errorf("item %d: rate cannot be negative", idx+1)
		}
	}
	if d.TaxRate.IsNegative() {
		return nil, fmt.Errorf("tax rate cannot be negative")
	}

	currency := d.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	subtotal := Subtotal(d.Items)
	tax := TaxAmount(subtotal, d.TaxRate)

	return &Invoice{
		Company:   d.Company,
		Client:    d.Client,
		Number:    d.Number,
		Date:      d.Date,
		DueDate:   DueDate(d.Date, d.PaymentTerms),
		Currency:  currency,
		Items:     d.Items,
		Subtotal:  subtotal,
		TaxRate:   d.TaxRate,
		TaxAmount: tax,
		Total:     Total(subtotal, tax),
		Notes:     d.Notes,
	}, nil
}

// InvoiceNumber builds the per-run invoice number: INV-YYYYMMDD-NNN.
// The sequence is monotonic within one run; runs on the same day restart
// from the caller-supplied start unless a persisted counter is passed in.
func InvoiceNumber(date time.Time, seq int) string {
	return fmt.Sprintf("INV-%s-%03d", date.Format("20060102"), seq)
}
