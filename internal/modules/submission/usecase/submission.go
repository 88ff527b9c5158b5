package usecase

import (
	"context"

	"mpt/internal/modules/submission/domain"
	"mpt/internal/modules/submission/dto"
	submissionin "mpt/internal/modules/submission/port/in"
	"mpt/internal/modules/submission/service"
)

type Interactor struct {
	svc *service.SubmissionService
}

func NewInteractor(svc *service.SubmissionService) submissionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	sub, err := i.svc.Submit(ctx, input.User, input.Hash, input.Code)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	return dto.SubmitOutput{User: input.User, Hash: sub.Hash, Date: sub.Date}, nil
}

func (i *Interactor) List(ctx context.Context, user string) ([]dto.SubmissionOutput, error) {
	subs, err := i.svc.List(ctx, user)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubmissionOutput, 0, len(subs))
	for _, sub := range subs {
		out = append(out, dto.SubmissionOutput{Hash: sub.Hash, Date: sub.Date, AllowLate: sub.AllowLate})
	}
	return out, nil
}

func (i *Interactor) Status(ctx context.Context, user string) ([]dto.StatusOutput, error) {
	report, err := i.svc.Report(ctx, user)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StatusOutput, 0, len(report))
	for _, entry := range report {
		out = append(out, dto.StatusOutput{
			Hash:       entry.Tutorial.Hash,
			ProblemSet: entry.Tutorial.ProblemSet,
			Tutorial:   entry.Tutorial.Tutorial,
			Due:        entry.Tutorial.Due,
			Status:     string(entry.Status),
		})
	}
	return out, nil
}

func (i *Interactor) AllowLate(ctx context.Context, user, hash string) error {
	return i.svc.AllowLate(ctx, user, hash)
}

func (i *Interactor) ReadAnswer(ctx context.Context, input dto.AnswerInput) (dto.AnswerOutput, error) {
	code, hash, modTime, err := i.svc.ReadAnswer(ctx, toRef(input))
	if err != nil {
		return dto.AnswerOutput{}, err
	}
	return dto.AnswerOutput{Code: code, Hash: hash, ModTime: modTime}, nil
}

func (i *Interactor) WriteAnswer(ctx context.Context, input dto.AnswerInput, code string) error {
	return i.svc.WriteAnswer(ctx, toRef(input), code)
}

func (i *Interactor) SubmittedCode(ctx context.Context, user, hash string) (string, error) {
	return i.svc.SubmittedCode(ctx, user, hash)
}

func toRef(input dto.AnswerInput) domain.AnswerRef {
	return domain.AnswerRef{
		User:       input.User,
		Package:    input.Package,
		ProblemSet: input.ProblemSet,
		Tutorial:   input.Tutorial,
	}
}
