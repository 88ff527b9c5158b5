package in

import (
	"context"

	"mpt/internal/modules/roster/dto"
	rosterin "mpt/internal/modules/roster/port/in"
)

type CLIHandler struct {
	usecase rosterin.Usecase
}

func NewCLIHandler(usecase rosterin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, input dto.ListInput) ([]dto.UserOutput, error) {
	return h.usecase.List(ctx, input)
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.UserOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddUserInput) (bool, error) {
	return h.usecase.Add(ctx, input)
}
