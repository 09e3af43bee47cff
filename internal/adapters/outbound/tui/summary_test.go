package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

func TestRenderBatchSummary(t *testing.T) {
	out := RenderBatchSummary(domain.BatchSummary{
		Entries: []domain.SummaryEntry{
			{InvoiceNumber: "INV-20260301-001", ClientName: "ClientX", Total: "USD 250.00"},
			{InvoiceNumber: "INV-20260301-002", ClientName: "ClientY", Total: "USD 400.00"},
		},
	})

	assert.Contains(t, out, "2 invoices generated")
	assert.Contains(t, out, "INV-20260301-001")
	assert.Contains(t, out, "ClientY")
	assert.Contains(t, out, "USD 400.00")
}

func TestRenderBatchSummary_Empty(t *testing.T) {
	out := RenderBatchSummary(domain.BatchSummary{})
	assert.Contains(t, out, "0 invoices generated")
}
