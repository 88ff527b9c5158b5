package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	viewerout "mpt/internal/modules/viewer/port/out"
	apperrors "mpt/internal/platform/errors"
	"mpt/internal/platform/sanitize"
)

// FSContentStore reads tutorial problem files from the course directory.
type FSContentStore struct {
	coursePath string
}

func NewFSContentStore(coursePath string) viewerout.ContentStore {
	return &FSContentStore{coursePath: coursePath}
}

func (s *FSContentStore) Read(_ context.Context, file string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(s.coursePath, sanitize.Filename(file)))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("tutorial file %s: %w", file, apperrors.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read tutorial file: %w", err)
	}
	return string(raw), nil
}
