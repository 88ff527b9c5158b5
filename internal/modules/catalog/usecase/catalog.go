package usecase

import (
	"context"

	"mpt/internal/modules/catalog/domain"
	"mpt/internal/modules/catalog/dto"
	catalogin "mpt/internal/modules/catalog/port/in"
	"mpt/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Show(ctx context.Context) (dto.CatalogOutput, error) {
	catalog, err := i.svc.Load(ctx)
	if err != nil {
		return dto.CatalogOutput{}, err
	}
	out := dto.CatalogOutput{SourceURL: catalog.SourceURL}
	out.Sections = toSectionOutputs(catalog.Sections)
	return out, nil
}

func (i *Interactor) ListSections(ctx context.Context) ([]dto.SectionOutput, error) {
	catalog, err := i.svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return toSectionOutputs(catalog.Sections), nil
}

func (i *Interactor) GetSection(ctx context.Context, ordinal int) (dto.SectionDetailOutput, error) {
	section, err := i.svc.GetSection(ctx, ordinal)
	if err != nil {
		return dto.SectionDetailOutput{}, err
	}
	detail := dto.SectionDetailOutput{Ordinal: ordinal, Date: section.Date, Title: section.Title}
	for j, exercise := range section.Exercises {
		detail.Exercises = append(detail.Exercises, dto.ExerciseOutput{
			Ordinal: j + 1,
			Title:   exercise.Title,
			File:    exercise.File,
			Assets:  exercise.Assets,
		})
	}
	return detail, nil
}

func (i *Interactor) FindExercise(ctx context.Context, file string) (dto.ExerciseDetailOutput, error) {
	section, exercise, err := i.svc.FindExercise(ctx, file)
	if err != nil {
		return dto.ExerciseDetailOutput{}, err
	}
	return dto.ExerciseDetailOutput{
		SectionDate:  section.Date,
		SectionTitle: section.Title,
		Title:        exercise.Title,
		File:         exercise.File,
		Assets:       exercise.Assets,
	}, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toSectionOutputs(sections []domain.Section) []dto.SectionOutput {
	out := make([]dto.SectionOutput, 0, len(sections))
	for i, section := range sections {
		out = append(out, dto.SectionOutput{
			Ordinal:       i + 1,
			Date:          section.Date,
			Title:         section.Title,
			ExerciseCount: len(section.Exercises),
		})
	}
	return out
}
