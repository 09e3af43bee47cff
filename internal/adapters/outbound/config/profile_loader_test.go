package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeFile(t, "company.yaml", `
name: Your Company LLC
address: |-
  123 Business St
  City, State 12345
email: hello@company.com
phone: "+1 (555) 123-4567"
default_notes: Payment accepted via bank transfer or PayPal.
template: corporate_blue
`)

	profile, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Your Company LLC", profile.Name)
	assert.Equal(t, "123 Business St\nCity, State 12345", profile.Address)
	assert.Equal(t, "corporate_blue", profile.Template)
	assert.Equal(t, "Payment accepted via bank transfer or PayPal.", profile.DefaultNotes)
}

func TestLoadProfile_MissingExplicitPathFails(t *testing.T) {
	_, err := New().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadProfile_InvalidTemplate(t *testing.T) {
	path := writeFile(t, "company.yaml", "name: Co\ntemplate: neon_chrome\n")

	_, err := New().Load(path)
	assert.ErrorContains(t, err, "unknown template")
}

func TestLoadProfile_BadYAML(t *testing.T) {
	path := writeFile(t, "company.yaml", "name: [unclosed\n")

	_, err := New().Load(path)
	assert.ErrorContains(t, err, "parsing")
}

func TestDefaultProfile(t *testing.T) {
	profile := DefaultProfile()
	assert.Empty(t, profile.Name)
	assert.Equal(t, "Thank you for your business!", profile.DefaultNotes)
}
