package in

import (
	"context"

	"mpt/internal/modules/viewer/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.ViewerInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error)
}
