package out

import (
	"context"
	"fmt"
	"os"

	"mpt/internal/modules/catalog/domain"
	catalogout "mpt/internal/modules/catalog/port/out"
)

type FileCatalogStore struct {
	path string
}

func NewFileCatalogStore(path string) catalogout.CatalogStore {
	return &FileCatalogStore{path: path}
}

func (s *FileCatalogStore) Load(_ context.Context) (domain.Catalog, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	catalog, err := domain.Parse(file)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return catalog, nil
}
