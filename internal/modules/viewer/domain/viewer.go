package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	ErrViewerDisabled    = errors.New("viewer is disabled")
	ErrChecksumMismatch  = errors.New("viewer checksum mismatch")
	ErrFormatUnsupported = errors.New("viewer does not support format")
	ErrViewerTimeout     = errors.New("viewer timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one installed viewer: an external binary that renders
// tutorial problem files for the terminal.
type Manifest struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Binary  string   `yaml:"binary"`
	SHA256  string   `yaml:"sha256"`
	Enabled bool     `yaml:"enabled"`
	Formats []string `yaml:"formats"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("viewer name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("viewer version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("viewer binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("viewer sha256 must be lowercase 64-char hex")
	}
	if len(m.Formats) == 0 {
		return fmt.Errorf("viewer formats are required")
	}
	seen := map[string]struct{}{}
	for _, format := range m.Formats {
		if !strings.HasPrefix(format, ".") {
			return fmt.Errorf("viewer format must start with a dot: %s", format)
		}
		if _, ok := seen[format]; ok {
			return fmt.Errorf("duplicate viewer format: %s", format)
		}
		seen[format] = struct{}{}
	}
	return nil
}

// SupportsFile reports whether the viewer declares the file's extension.
func (m Manifest) SupportsFile(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	for _, format := range m.Formats {
		if strings.ToLower(format) == ext {
			return true
		}
	}
	return false
}

// Metadata is what a running viewer reports about itself.
type Metadata struct {
	Name    string
	Version string
	Formats []string
}

// RenderRequest carries one tutorial file to a viewer.
type RenderRequest struct {
	File    string
	Content string
	Width   int
}

func (r RenderRequest) Validate() error {
	if r.File == "" {
		return fmt.Errorf("render file is required")
	}
	if r.Width < 0 {
		return fmt.Errorf("render width must not be negative")
	}
	return nil
}

// RenderResult is a viewer's rendering plus any non-fatal warnings.
type RenderResult struct {
	Rendered string
	Warnings []string
}
