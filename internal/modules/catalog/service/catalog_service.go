package service

import (
	"context"
	"fmt"

	"mpt/internal/modules/catalog/domain"
	catalogout "mpt/internal/modules/catalog/port/out"
	apperrors "mpt/internal/platform/errors"
)

type CatalogService struct {
	store     catalogout.CatalogStore
	projector catalogout.CatalogIndexProjector
}

func NewCatalogService(store catalogout.CatalogStore, projector catalogout.CatalogIndexProjector) *CatalogService {
	return &CatalogService{store: store, projector: projector}
}

func (s *CatalogService) Load(ctx context.Context) (domain.Catalog, error) {
	return s.store.Load(ctx)
}

func (s *CatalogService) GetSection(ctx context.Context, ordinal int) (domain.Section, error) {
	catalog, err := s.store.Load(ctx)
	if err != nil {
		return domain.Section{}, err
	}
	if ordinal < 1 || ordinal > len(catalog.Sections) {
		return domain.Section{}, fmt.Errorf("section %d: %w", ordinal, apperrors.ErrNotFound)
	}
	return catalog.Sections[ordinal-1], nil
}

func (s *CatalogService) FindExercise(ctx context.Context, file string) (domain.Section, domain.Exercise, error) {
	catalog, err := s.store.Load(ctx)
	if err != nil {
		return domain.Section{}, domain.Exercise{}, err
	}
	section, exercise, ok := catalog.FindExercise(file)
	if !ok {
		return domain.Section{}, domain.Exercise{}, fmt.Errorf("exercise %s: %w", file, apperrors.ErrNotFound)
	}
	return section, exercise, nil
}

func (s *CatalogService) Reindex(ctx context.Context) error {
	catalog, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	for i, section := range catalog.Sections {
		if err := s.projector.UpsertSection(ctx, i+1, section); err != nil {
			return err
		}
	}
	return nil
}
