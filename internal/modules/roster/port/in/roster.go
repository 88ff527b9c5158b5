package in

import (
	"context"

	"mpt/internal/modules/roster/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) ([]dto.UserOutput, error)
	Get(ctx context.Context, id string) (dto.UserOutput, error)
	// Add records a new user. It reports false without error when the id is
	// already on the roster.
	Add(ctx context.Context, input dto.AddUserInput) (bool, error)
}
