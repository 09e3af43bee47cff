// Package tabular parses batch input files (CSV, XLSX) into the domain
// table shape consumed by the grouper.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

// CSVReader implements domain.TableReader for comma-separated input
// with a header row. Input is treated as UTF-8; a leading BOM is
// tolerated.
type CSVReader struct{}

// NewCSV creates a CSVReader.
func NewCSV() *CSVReader { return &CSVReader{} }

// Read parses the full input into a Table. Ragged rows are rejected by
// the csv package itself, keeping the table rectangular.
func (cr *CSVReader) Read(r io.Reader) (domain.Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return domain.Table{}, fmt.Errorf("csv input is empty, expected a header row")
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}

	rows := make([]domain.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(domain.Row, len(columns))
		for i, col := range columns {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return domain.Table{Columns: columns, Rows: rows}, nil
}
