package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

// InvoiceRequest is a parsed single-invoice request file. The CLI
// merges it with the company profile before assembly.
type InvoiceRequest struct {
	Number       string
	Date         time.Time
	PaymentTerms string
	Currency     string
	TaxRate      decimal.Decimal
	Notes        string
	Template     string
	LogoPath     string
	Client       domain.Party
	Items        []domain.LineItem
}

type requestFile struct {
	Number       string       `yaml:"invoice_number"`
	Date         string       `yaml:"invoice_date"`
	PaymentTerms string       `yaml:"payment_terms"`
	Currency     string       `yaml:"currency"`
	TaxRate      string       `yaml:"tax_rate"`
	Notes        string       `yaml:"notes"`
	Template     string       `yaml:"template"`
	Logo         string       `yaml:"logo"`
	Client       domain.Party `yaml:"client"`
	Items        []struct {
		Description string `yaml:"description"`
		Quantity    string `yaml:"quantity"`
		Rate        string `yaml:"rate"`
	} `yaml:"items"`
}

// LoadRequest reads and converts a single-invoice YAML request.
// Field-level validation (required names, non-negative amounts) is the
// assembler's job; this only rejects values that cannot be parsed.
func LoadRequest(path string) (*InvoiceRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rf requestFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	req := &InvoiceRequest{
		Number:       rf.Number,
		PaymentTerms: rf.PaymentTerms,
		Currency:     rf.Currency,
		Notes:        rf.Notes,
		Template:     rf.Template,
		LogoPath:     rf.Logo,
		Client:       rf.Client,
	}

	if v := strings.TrimSpace(rf.Date); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid invoice_date %q, expected YYYY-MM-DD", path, v)
		}
		req.Date = date
	}
	if v := strings.TrimSpace(rf.TaxRate); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid tax_rate %q", path, v)
		}
		req.TaxRate = rate
	}

	for i, item := range rf.Items {
		qty, err := decimal.NewFromString(strings.TrimSpace(item.Quantity))
		if err != nil {
			return nil, fmt.Errorf("%s: item %d: invalid quantity %q", path, i+1, item.Quantity)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(item.Rate))
		if err != nil {
			return nil, fmt.Errorf("%s: item %d: invalid rate %q", path, i+1, item.Rate)
		}
		req.Items = append(req.Items, domain.LineItem{
			Description: item.Description,
			Quantity:    qty,
			Rate:        rate,
		})
	}

	return req, nil
}
