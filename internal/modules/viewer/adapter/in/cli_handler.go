package in

import (
	"context"

	"mpt/internal/modules/viewer/dto"
	viewerin "mpt/internal/modules/viewer/port/in"
)

type CLIHandler struct {
	usecase viewerin.Usecase
}

func NewCLIHandler(usecase viewerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ViewerInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	return h.usecase.Render(ctx, input)
}
