package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

func TestArchive_RoundTrip(t *testing.T) {
	entries := []domain.ArchiveEntry{
		{Name: "INV-20260301-001_Acme_Corp.pdf", Data: []byte("pdf one")},
		{Name: "INV-20260301-002_Acme_Corp.pdf", Data: []byte("pdf two")},
	}

	out, err := New().Archive(entries)
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	require.Len(t, r.File, 2)

	assert.Equal(t, "INV-20260301-001_Acme_Corp.pdf", r.File[0].Name)
	rc, err := r.File[1].Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf two", string(data))
}

func TestArchive_RejectsDuplicateNames(t *testing.T) {
	entries := []domain.ArchiveEntry{
		{Name: "same.pdf", Data: []byte("a")},
		{Name: "same.pdf", Data: []byte("b")},
	}

	_, err := New().Archive(entries)
	assert.ErrorContains(t, err, "duplicate archive entry")
}

func TestArchive_EmptyIsValidZip(t *testing.T) {
	out, err := New().Archive(nil)
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	assert.Empty(t, r.File)
}
