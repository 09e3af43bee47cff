// Package tui renders run results for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

var (
	accent = lipgloss.Color("#D97706") // amber
	fg     = lipgloss.Color("#E8E6E3") // warm light gray
	dim    = lipgloss.Color("#6B7280") // muted gray
	green  = lipgloss.Color("#22C55E")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(58)

	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	numberStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	totalStyle  = lipgloss.NewStyle().Foreground(green)
)

// RenderBatchSummary formats the run summary: a header box with the
// invoice count, then one line per generated invoice in group order.
func RenderBatchSummary(summary domain.BatchSummary) string {
	var b strings.Builder

	title := headerStyle.Render("invoicer")
	subtitle := dimStyle.Render("Batch Run Summary")
	count := numberStyle.Render(fmt.Sprintf("%d invoices generated", len(summary.Entries)))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + count))
	b.WriteString("\n\n")

	for _, entry := range summary.Entries {
		b.WriteString("  ")
		b.WriteString(numberStyle.Render(entry.InvoiceNumber))
		b.WriteString(dimStyle.Render("  " + entry.ClientName + "  "))
		b.WriteString(totalStyle.Render(entry.Total))
		b.WriteString("\n")
	}

	return b.String()
}
