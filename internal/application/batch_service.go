package application

import (
	"time"

	"go.uber.org/zap"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

// BatchRequest drives one batch run over a validated table plus the
// run-wide company defaults.
type BatchRequest struct {
	Table    domain.Table
	Company  domain.CompanyProfile
	Template domain.StyleTemplate
	LogoPath string
	// StartSequence seeds invoice numbering; zero means 1. Numbers
	// restart per run unless the caller persists a counter.
	StartSequence int
}

// BatchResult is the ordered outcome of a completed batch run. The
// archive is built separately by the Archiver port.
type BatchResult struct {
	Invoices []GeneratedInvoice
	Summary  domain.BatchSummary
}

// BatchService orchestrates the batch pipeline:
// validate -> group -> assemble -> render, collecting the run summary.
type BatchService struct {
	renderer domain.DocumentRenderer
	logger   *zap.Logger
	now      func() time.Time
}

func NewBatchService(renderer domain.DocumentRenderer, logger *zap.Logger) *BatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchService{
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// Process generates one invoice per client group in stable first-seen
// order. The first per-group failure aborts the run; the partial result
// returned alongside the error covers only fully-completed groups.
func (s *BatchService) Process(req BatchRequest) (*BatchResult, error) {
	if err := req.Table.Validate(); err != nil {
		return nil, err
	}

	seq := req.StartSequence
	if seq <= 0 {
		seq = 1
	}
	date := s.now()

	groups := req.Table.Group()
	s.logger.Info("starting batch run",
		zap.Int("rows", len(req.Table.Rows)),
		zap.Int("clients", len(groups)),
	)

	result := &BatchResult{Invoices: make([]GeneratedInvoice, 0, len(groups))}
	for _, group := range groups {
		opts, err := group.Options(req.Company.DefaultNotes)
		if err != nil {
			return result, err
		}
		items, err := group.Items()
		if err != nil {
			return result, err
		}

		inv, err := domain.AssembleInvoice(domain.InvoiceDraft{
			Company: req.Company.Party(),
			Client: domain.Party{
				Name:    group.ClientName,
				Email:   group.ClientEmail,
				Address: opts.Address,
				Phone:   opts.Phone,
			},
			Number:       domain.InvoiceNumber(date, seq),
			Date:         date,
			PaymentTerms: opts.PaymentTerms,
			Currency:     opts.Currency,
			Items:        items,
			TaxRate:      opts.TaxRate,
			Notes:        opts.Notes,
		})
		if err != nil {
			return result, err
		}

		pdf, err := s.renderer.Render(inv, req.LogoPath, req.Template)
		if err != nil {
			return result, &domain.RenderError{Invoice: inv.Number, Err: err}
		}

		result.Invoices = append(result.Invoices, GeneratedInvoice{
			Invoice:  inv,
			PDF:      pdf,
			FileName: inv.FileName(),
		})
		result.Summary.Entries = append(result.Summary.Entries, domain.SummaryEntry{
			InvoiceNumber: inv.Number,
			ClientName:    inv.Client.Name,
			Total:         inv.TotalDisplay(),
		})

		s.logger.Info("generated invoice",
			zap.String("number", inv.Number),
			zap.String("client", inv.Client.Name),
			zap.String("total", inv.TotalDisplay()),
		)
		seq++
	}

	return result, nil
}
