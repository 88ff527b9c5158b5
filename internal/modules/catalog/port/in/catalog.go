package in

import (
	"context"

	"mpt/internal/modules/catalog/dto"
)

type Usecase interface {
	Show(ctx context.Context) (dto.CatalogOutput, error)
	ListSections(ctx context.Context) ([]dto.SectionOutput, error)
	GetSection(ctx context.Context, ordinal int) (dto.SectionDetailOutput, error)
	FindExercise(ctx context.Context, file string) (dto.ExerciseDetailOutput, error)
	Reindex(ctx context.Context) error
}
