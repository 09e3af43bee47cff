// Package config loads the YAML company profile and single-invoice
// request files consumed by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

// DefaultProfileFile is looked up in the working directory when no
// explicit profile path is given.
const DefaultProfileFile = ".invoicer.yaml"

// DefaultProfile is used when no profile file exists.
func DefaultProfile() domain.CompanyProfile {
	return domain.CompanyProfile{
		DefaultNotes: "Thank you for your business!",
	}
}

// ProfileLoader reads a company profile from YAML.
type ProfileLoader struct{}

// New creates a ProfileLoader.
func New() *ProfileLoader { return &ProfileLoader{} }

// Load reads the profile at path. A missing file at the default path
// yields DefaultProfile; a missing explicit path is an error.
func (l *ProfileLoader) Load(path string) (domain.CompanyProfile, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultProfileFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return DefaultProfile(), nil
		}
		return domain.CompanyProfile{}, err
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return domain.CompanyProfile{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Catch template typos before a whole batch is generated with the
	// fallback style.
	if _, err := domain.ParseTemplate(profile.Template); err != nil {
		return domain.CompanyProfile{}, fmt.Errorf("invalid %s: %w", path, err)
	}

	return profile, nil
}
