package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Required batch table columns. Optional columns: client_address,
// client_phone, tax_rate, currency, payment_terms, notes.
var RequiredColumns = []string{
	"client_name",
	"client_email",
	"item_description",
	"quantity",
	"rate",
}

// Row is one line-item row of a batch table, keyed by column name.
type Row map[string]string

// Table is a rectangular batch input with a header row, as produced by
// the CSV and XLSX readers.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table schema contains the named column.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Validate checks the table shape before any grouping. All missing
// required columns are reported in one error, and every row must carry a
// client name and an item description. Validation failure aborts the
// entire batch; there is no partial success at this stage.
func (t Table) Validate() error {
	var missing []string
	for _, col := range RequiredColumns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}

	for i, row := range t.Rows {
		if strings.TrimSpace(row["client_name"]) == "" {
			return &RowError{Row: i + 1, Field: "client_name", Message: "client name cannot be empty"}
		}
		if strings.TrimSpace(row["item_description"]) == "" {
			return &RowError{Row: i + 1, Field: "item_description", Message: "item description cannot be empty"}
		}
	}
	return nil
}

// ClientGroup owns the rows belonging to one invoice. Two rows share a
// group iff client_name and client_email match exactly (case- and
// whitespace-sensitive).
type ClientGroup struct {
	ClientName  string
	ClientEmail string
	Rows        []Row
}

// Group partitions validated rows into client groups, preserving the
// order in which distinct clients first appear and the row order within
// each group.
func (t Table) Group() []ClientGroup {
	type key struct{ name, email string }

	index := make(map[key]int)
	var groups []ClientGroup
	for _, row := range t.Rows {
		k := key{name: row["client_name"], email: row["client_email"]}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, ClientGroup{ClientName: k.name, ClientEmail: k.email})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// GroupOptions are the per-client optional fields resolved from the
// first row of a group.
type GroupOptions struct {
	Address      string
	Phone        string
	PaymentTerms string
	Currency     string
	TaxRate      decimal.Decimal
	Notes        string
}

// Options reads the optional fields from the first row of the group.
// Later rows' values are deliberately ignored: operators must repeat
// optional fields consistently or only the first is honored. Absent or
// empty values fall back to the defaults, with defaultNotes supplied by
// the caller for the whole run.
func (g ClientGroup) Options(defaultNotes string) (GroupOptions, error) {
	opts := GroupOptions{
		PaymentTerms: DefaultPaymentTerms,
		Currency:     DefaultCurrency,
		TaxRate:      decimal.Zero,
		Notes:        defaultNotes,
	}
	if len(g.Rows) == 0 {
		return opts, nil
	}

	first := g.Rows[0]
	opts.Address = first["client_address"]
	opts.Phone = first["client_phone"]
	if v := strings.TrimSpace(first["payment_terms"]); v != "" {
		opts.PaymentTerms = v
	}
	if v := strings.TrimSpace(first["currency"]); v != "" {
		opts.Currency = v
	}
	if v := strings.TrimSpace(first["notes"]); v != "" {
		opts.Notes = v
	}
	if v := strings.TrimSpace(first["tax_rate"]); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return opts, fmt.Errorf("client %s: invalid tax_rate %q", g.ClientName, v)
		}
		opts.TaxRate = rate
	}
	return opts, nil
}

// Items converts the group's rows into line items, preserving row order.
func (g ClientGroup) Items() ([]LineItem, error) {
	items := make([]LineItem, 0, len(g.Rows))
	for _, row := range g.Rows {
		qty, err := decimal.NewFromString(strings.TrimSpace(row["quantity"]))
		if err != nil {
			return nil, fmt.Errorf("client %s: invalid quantity %q", g.ClientName, row["quantity"])
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(row["rate"]))
		if err != nil {
			return nil, fmt.Errorf("client %s: invalid rate %q", g.ClientName, row["rate"])
		}
		items = append(items, LineItem{
			Description: row["item_description"],
			Quantity:    qty,
			Rate:        rate,
		})
	}
	return items, nil
}
