package domain

import "fmt"

// StyleTemplate selects one of the built-in invoice color/typography
// presets. The preset values are a presentation concern consumed by the
// PDF renderer.
type StyleTemplate string

const (
	StyleModernMinimal    StyleTemplate = "modern_minimal"
	StyleCorporateBlue    StyleTemplate = "corporate_blue"
	StyleCreativeGradient StyleTemplate = "creative_gradient"
)

// Templates lists all valid style templates.
func Templates() []StyleTemplate {
	return []StyleTemplate{StyleModernMinimal, StyleCorporateBlue, StyleCreativeGradient}
}

// Valid reports whether t names a known template.
func (t StyleTemplate) Valid() bool {
	switch t {
	case StyleModernMinimal, StyleCorporateBlue, StyleCreativeGradient:
		return true
	}
	return false
}

// ParseTemplate resolves a template name, defaulting to modern_minimal
// for the empty string and rejecting unknown names.
func ParseTemplate(name string) (StyleTemplate, error) {
	if name == "" {
		return StyleModernMinimal, nil
	}
	t := StyleTemplate(name)
	if !t.Valid() {
		return "", fmt.Errorf("unknown template %q (valid: modern_minimal, corporate_blue, creative_gradient)", name)
	}
	return t, nil
}

// RGB is a color channel triple for the renderer.
type RGB struct {
	R, G, B int
}

// StylePreset holds the colors and typography implied by a template.
type StylePreset struct {
	Primary    RGB
	Secondary  RGB
	Accent     RGB
	Background RGB
	Font       string
	FontStyle  string
	HeaderSize float64
	BodySize   float64
}

var presets = map[StyleTemplate]StylePreset{
	StyleModernMinimal: {
		Primary:    RGB{0x00, 0x00, 0x00},
		Secondary:  RGB{0x66, 0x66, 0x66},
		Accent:     RGB{0x00, 0x00, 0x00},
		Background: RGB{0xF8, 0xF9, 0xFA},
		Font:       "Helvetica",
		HeaderSize: 24,
		BodySize:   10,
	},
	StyleCorporateBlue: {
		Primary:    RGB{0x00, 0x33, 0x66},
		Secondary:  RGB{0x55, 0x88, 0xBB},
		Accent:     RGB{0x00, 0x33, 0x66},
		Background: RGB{0xE6, 0xF2, 0xFF},
		Font:       "Helvetica",
		FontStyle:  "B",
		HeaderSize: 26,
		BodySize:   11,
	},
	StyleCreativeGradient: {
		Primary:    RGB{0xFF, 0x6B, 0x6B},
		Secondary:  RGB{0x4E, 0xCD, 0xC4},
		Accent:     RGB{0xFF, 0xE6, 0x6D},
		Background: RGB{0xFF, 0xFF, 0xFF},
		Font:       "Helvetica",
		HeaderSize: 28,
		BodySize:   10,
	},
}

// Preset returns the style preset for t, falling back to modern_minimal
// for unknown templates.
func (t StyleTemplate) Preset() StylePreset {
	if p, ok := presets[t]; ok {
		return p
	}
	return presets[StyleModernMinimal]
}
