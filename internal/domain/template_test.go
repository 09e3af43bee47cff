package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tmpl, err := ParseTemplate("corporate_blue")
	require.NoError(t, err)
	assert.Equal(t, StyleCorporateBlue, tmpl)

	tmpl, err = ParseTemplate("")
	require.NoError(t, err)
	assert.Equal(t, StyleModernMinimal, tmpl)

	_, err = ParseTemplate("neon_chrome")
	assert.ErrorContains(t, err, "unknown template")
}

func TestPreset_PerTemplate(t *testing.T) {
	minimal := StyleModernMinimal.Preset()
	assert.Equal(t, RGB{0, 0, 0}, minimal.Primary)
	assert.Equal(t, float64(24), minimal.HeaderSize)

	blue := StyleCorporateBlue.Preset()
	assert.Equal(t, RGB{0x00, 0x33, 0x66}, blue.Primary)
	assert.Equal(t, "B", blue.FontStyle)

	gradient := StyleCreativeGradient.Preset()
	assert.Equal(t, RGB{0xFF, 0x6B, 0x6B}, gradient.Primary)
	assert.Equal(t, float64(28), gradient.HeaderSize)
}

func TestPreset_UnknownFallsBackToMinimal(t *testing.T) {
	assert.Equal(t, StyleModernMinimal.Preset(), StyleTemplate("bogus").Preset())
}

func TestTemplates_ClosedSet(t *testing.T) {
	all := Templates()
	require.Len(t, all, 3)
	for _, tmpl := range all {
		assert.True(t, tmpl.Valid())
	}
}
