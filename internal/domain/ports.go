package domain

import "io"

// DocumentRenderer turns a fully-resolved invoice into opaque document
// bytes. logoPath may be empty; template selects a style preset.
type DocumentRenderer interface {
	Render(inv *Invoice, logoPath string, template StyleTemplate) ([]byte, error)
}

// ArchiveEntry is one named file inside a batch archive.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// Archiver packages generated documents into a single archive.
// Entry names must be unique.
type Archiver interface {
	Archive(entries []ArchiveEntry) ([]byte, error)
}

// TableReader parses a tabular batch input (CSV, XLSX) into a Table.
type TableReader interface {
	Read(r io.Reader) (Table, error)
}

// CompanyProfile carries the run-wide company defaults applied to every
// invoice of a batch and merged into single-invoice requests.
type CompanyProfile struct {
	Name         string `yaml:"name"`
	Address      string `yaml:"address"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"phone"`
	DefaultNotes string `yaml:"default_notes"`
	LogoPath     string `yaml:"logo"`
	Template     string `yaml:"template"`
}

// Party returns the profile as the issuing party of an invoice.
func (p CompanyProfile) Party() Party {
	return Party{Name: p.Name, Address: p.Address, Email: p.Email, Phone: p.Phone}
}

// RunRecord is one completed batch run as kept in the run history.
// Date is the invoice date key (YYYYMMDD) the run numbered against.
type RunRecord struct {
	Timestamp    string `json:"timestamp"`
	Date         string `json:"date"`
	LastSequence int    `json:"last_sequence"`
	Invoices     int    `json:"invoices"`
	Archive      string `json:"archive"`
}

// RunHistory persists batch run records so invoice numbering can
// continue across runs on the same day.
type RunHistory interface {
	Save(dir string, rec RunRecord) error
	Load(dir string) ([]RunRecord, error)
}

// SummaryEntry records one successfully generated invoice of a batch run.
type SummaryEntry struct {
	InvoiceNumber string
	ClientName    string
	Total         string
}

// BatchSummary is the ordered, read-only record of a completed batch
// run, one entry per generated invoice in group order.
type BatchSummary struct {
	Entries []SummaryEntry
}
