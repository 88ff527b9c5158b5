package in

import (
	"context"

	"mpt/internal/modules/deploy/dto"
)

type Usecase interface {
	// Run executes the full procedure: provision, wait, push.
	Run(ctx context.Context, input dto.RunInput) (dto.RunOutput, error)
	Provision(ctx context.Context, input dto.RunInput) (dto.ProvisionOutput, error)
	Push(ctx context.Context, input dto.RunInput) (dto.PushOutput, error)
}
