package domain

import (
	"strings"
	"testing"
)

func validManifest() Manifest {
	return Manifest{
		Name:    "textview",
		Version: "1.0.0",
		Binary:  "/opt/viewers/textview",
		SHA256:  strings.Repeat("ab", 32),
		Enabled: true,
		Formats: []string{".tut"},
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()

	if err := validManifest().Validate(); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}

	cases := map[string]func(*Manifest){
		"missing name":     func(m *Manifest) { m.Name = "" },
		"missing version":  func(m *Manifest) { m.Version = "" },
		"missing binary":   func(m *Manifest) { m.Binary = "" },
		"short sha256":     func(m *Manifest) { m.SHA256 = "abcd" },
		"uppercase sha256": func(m *Manifest) { m.SHA256 = strings.Repeat("AB", 32) },
		"no formats":       func(m *Manifest) { m.Formats = nil },
		"format no dot":    func(m *Manifest) { m.Formats = []string{"tut"} },
		"duplicate format": func(m *Manifest) { m.Formats = []string{".tut", ".tut"} },
	}
	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			manifest := validManifest()
			mutate(&manifest)
			if err := manifest.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSupportsFile(t *testing.T) {
	t.Parallel()

	manifest := validManifest()
	if !manifest.SupportsFile("intro.tut") {
		t.Error("intro.tut should be supported")
	}
	if !manifest.SupportsFile("shouting.TUT") {
		t.Error("extension match should be case-insensitive")
	}
	if manifest.SupportsFile("layout.gif") {
		t.Error("layout.gif should not be supported")
	}
}

func TestRenderRequestValidate(t *testing.T) {
	t.Parallel()

	if err := (RenderRequest{File: "intro.tut", Width: 80}).Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := (RenderRequest{Width: 80}).Validate(); err == nil {
		t.Error("missing file accepted")
	}
	if err := (RenderRequest{File: "intro.tut", Width: -1}).Validate(); err == nil {
		t.Error("negative width accepted")
	}
}
