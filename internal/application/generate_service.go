package application

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

// SingleInvoiceRequest assembles one invoice from directly-supplied
// fields and items, merged with the company profile.
type SingleInvoiceRequest struct {
	Company      domain.CompanyProfile
	Client       domain.Party
	Number       string    // empty: INV-<today>-001
	Date         time.Time // zero: now
	PaymentTerms string
	Currency     string
	Items        []domain.LineItem
	TaxRate      decimal.Decimal
	Notes        string // empty: company default notes
	Template     domain.StyleTemplate
	LogoPath     string // empty: company logo
}

// GeneratedInvoice pairs a rendered document with its invoice record
// and recommended file name.
type GeneratedInvoice struct {
	Invoice  *domain.Invoice
	PDF      []byte
	FileName string
}

// GenerateService drives the single-invoice flow:
// merge profile -> assemble -> render.
type GenerateService struct {
	renderer domain.DocumentRenderer
	logger   *zap.Logger
	now      func() time.Time
}

func NewGenerateService(renderer domain.DocumentRenderer, logger *zap.Logger) *GenerateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateService{
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate produces one rendered invoice. Missing required fields are
// all named in the returned error; renderer failures surface directly.
func (s *GenerateService) Generate(req SingleInvoiceRequest) (*GeneratedInvoice, error) {
	date := req.Date
	if date.IsZero() {
		date = s.now()
	}
	number := req.Number
	if number == "" {
		number = domain.InvoiceNumber(date, 1)
	}
	terms := req.PaymentTerms
	if terms == "" {
		terms = domain.DefaultPaymentTerms
	}
	notes := req.Notes
	if notes == "" {
		notes = req.Company.DefaultNotes
	}

	inv, err := domain.AssembleInvoice(domain.InvoiceDraft{
		Company:      req.Company.Party(),
		Client:       req.Client,
		Number:       number,
		Date:         date,
		PaymentTerms: terms,
		Currency:     req.Currency,
		Items:        req.Items,
		TaxRate:      req.TaxRate,
		Notes:        notes,
	})
	if err != nil {
		return nil, err
	}

	logo := req.LogoPath
	if logo == "" {
		logo = req.Company.LogoPath
	}
	pdf, err := s.renderer.Render(inv, logo, req.Template)
	if err != nil {
		return nil, &domain.RenderError{Invoice: inv.Number, Err: err}
	}

	s.logger.Info("generated invoice",
		zap.String("number", inv.Number),
		zap.String("client", inv.Client.Name),
		zap.String("total", inv.TotalDisplay()),
	)

	return &GeneratedInvoice{Invoice: inv, PDF: pdf, FileName: inv.FileName()}, nil
}
