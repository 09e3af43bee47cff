package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

// XLSXReader implements domain.TableReader for Excel workbooks. The
// first sheet is read; row one is the header.
type XLSXReader struct{}

// NewXLSX creates an XLSXReader.
func NewXLSX() *XLSXReader { return &XLSXReader{} }

func (xr *XLSXReader) Read(r io.Reader) (domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return domain.Table{}, fmt.Errorf("workbook has no sheets")
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return domain.Table{}, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	if len(records) == 0 {
		return domain.Table{}, fmt.Errorf("sheet %s is empty, expected a header row", sheet)
	}

	columns := records[0]
	rows := make([]domain.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(domain.Row, len(columns))
		for i, col := range columns {
			// Trailing empty cells are dropped by GetRows; treat
			// them as empty values.
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return domain.Table{Columns: columns, Rows: rows}, nil
}
