package usecase

import (
	"context"

	"mpt/internal/modules/viewer/dto"
	viewerin "mpt/internal/modules/viewer/port/in"
	"mpt/internal/modules/viewer/service"
)

type Interactor struct {
	svc *service.ViewerService
}

func NewInteractor(svc *service.ViewerService) viewerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.ViewerInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	return i.svc.Render(ctx, input)
}
