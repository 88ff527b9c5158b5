package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mpt/internal/modules/viewer/adapter/out"
)

const manifestYAML = `viewers:
  - name: textview
    version: 1.0.0
    binary: bin/textview
    sha256: aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa
    enabled: true
    formats: [".tut"]
  - name: gifview
    version: 0.2.0
    binary: /usr/local/bin/gifview
    sha256: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb
    enabled: false
    formats: [".gif"]
`

func TestLoadResolvesRelativeBinaries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "viewers.yaml")
	if err := os.WriteFile(path, []byte(manifestYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	manifests, err := out.NewYAMLManifestStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(manifests) != 2 {
		t.Fatalf("got %d manifests, want 2", len(manifests))
	}
	if want := filepath.Join(dir, "bin", "textview"); manifests[0].Binary != want {
		t.Errorf("relative binary = %s, want %s", manifests[0].Binary, want)
	}
	if manifests[1].Binary != "/usr/local/bin/gifview" {
		t.Errorf("absolute binary rewritten: %s", manifests[1].Binary)
	}
	if manifests[1].Enabled {
		t.Error("gifview should be disabled")
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store := out.NewYAMLManifestStore(filepath.Join(t.TempDir(), "viewers.yaml"))
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(manifests) != 0 {
		t.Errorf("got %d manifests, want 0", len(manifests))
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "viewers.yaml")
	if err := os.WriteFile(path, []byte("viewers: [}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := out.NewYAMLManifestStore(path).Load(context.Background()); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}
