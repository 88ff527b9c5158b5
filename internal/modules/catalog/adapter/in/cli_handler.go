package in

import (
	"context"

	"mpt/internal/modules/catalog/dto"
	catalogin "mpt/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.CatalogOutput, error) {
	return h.usecase.Show(ctx)
}

func (h CLIHandler) ListSections(ctx context.Context) ([]dto.SectionOutput, error) {
	return h.usecase.ListSections(ctx)
}

func (h CLIHandler) GetSection(ctx context.Context, ordinal int) (dto.SectionDetailOutput, error) {
	return h.usecase.GetSection(ctx, ordinal)
}

func (h CLIHandler) FindExercise(ctx context.Context, file string) (dto.ExerciseDetailOutput, error) {
	return h.usecase.FindExercise(ctx, file)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
