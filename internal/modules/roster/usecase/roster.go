package usecase

import (
	"context"

	"mpt/internal/modules/roster/domain"
	"mpt/internal/modules/roster/dto"
	rosterin "mpt/internal/modules/roster/port/in"
	"mpt/internal/modules/roster/service"
)

type Interactor struct {
	svc *service.RosterService
}

func NewInteractor(svc *service.RosterService) rosterin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.UserOutput, error) {
	users, err := i.svc.List(ctx, input.Query, input.EnrolFilter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserOutput, 0, len(users))
	for _, user := range users {
		out = append(out, toOutput(user))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.UserOutput, error) {
	user, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Add(ctx context.Context, input dto.AddUserInput) (bool, error) {
	return i.svc.Add(ctx, domain.User{
		ID:       input.ID,
		Name:     input.Name,
		Email:    input.Email,
		Enrolled: input.Enrolled,
	})
}

func toOutput(user domain.User) dto.UserOutput {
	return dto.UserOutput{ID: user.ID, Name: user.Name, Email: user.Email, Enrolled: user.Enrolled}
}
