package in

import (
	"context"

	"mpt/internal/modules/deploy/dto"
	deployin "mpt/internal/modules/deploy/port/in"
)

type CLIHandler struct {
	usecase deployin.Usecase
}

func NewCLIHandler(usecase deployin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context, input dto.RunInput) (dto.RunOutput, error) {
	return h.usecase.Run(ctx, input)
}

func (h CLIHandler) Provision(ctx context.Context, input dto.RunInput) (dto.ProvisionOutput, error) {
	return h.usecase.Provision(ctx, input)
}

func (h CLIHandler) Push(ctx context.Context, input dto.RunInput) (dto.PushOutput, error) {
	return h.usecase.Push(ctx, input)
}
