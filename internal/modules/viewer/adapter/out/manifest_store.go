package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"mpt/internal/modules/viewer/domain"
	viewerout "mpt/internal/modules/viewer/port/out"
)

// YAMLManifestStore reads viewer manifests from a single YAML file. Relative
// binary paths resolve against the manifest's directory so a viewers/ folder
// can be checked in next to its binaries.
type YAMLManifestStore struct {
	path string
}

func NewYAMLManifestStore(path string) viewerout.ManifestStore {
	return &YAMLManifestStore{path: path}
}

func (s *YAMLManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []domain.Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read viewer manifests: %w", err)
	}

	var doc struct {
		Viewers []domain.Manifest `yaml:"viewers"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode viewer manifests: %w", err)
	}

	base := filepath.Dir(s.path)
	for i := range doc.Viewers {
		if doc.Viewers[i].Binary != "" && !filepath.IsAbs(doc.Viewers[i].Binary) {
			doc.Viewers[i].Binary = filepath.Clean(filepath.Join(base, doc.Viewers[i].Binary))
		}
	}
	return doc.Viewers, nil
}
