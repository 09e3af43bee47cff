// Package archive packages generated invoice documents into a ZIP file.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

// ZipArchiver implements domain.Archiver with a deflate-compressed ZIP.
type ZipArchiver struct{}

// New creates a ZipArchiver.
func New() *ZipArchiver { return &ZipArchiver{} }

// Archive writes the entries into an in-memory ZIP. Entry names must be
// unique so no invoice silently overwrites another.
func (a *ZipArchiver) Archive(entries []domain.ArchiveEntry) ([]byte, error) {
	seen := make(map[string]bool, len(entries))

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, entry := range entries {
		if seen[entry.Name] {
			return nil, fmt.Errorf("duplicate archive entry %q", entry.Name)
		}
		seen[entry.Name] = true

		f, err := w.Create(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("adding %s to archive: %w", entry.Name, err)
		}
		if _, err := f.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("writing %s to archive: %w", entry.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
