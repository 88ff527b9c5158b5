package out

import (
	"context"

	"mpt/internal/modules/roster/domain"
)

type UserStore interface {
	All(ctx context.Context) ([]domain.User, error)
	Append(ctx context.Context, user domain.User) error
}
