package in

import (
	"context"

	"mpt/internal/modules/submission/dto"
	submissionin "mpt/internal/modules/submission/port/in"
)

type CLIHandler struct {
	usecase submissionin.Usecase
}

func NewCLIHandler(usecase submissionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, input)
}

func (h CLIHandler) List(ctx context.Context, user string) ([]dto.SubmissionOutput, error) {
	return h.usecase.List(ctx, user)
}

func (h CLIHandler) Status(ctx context.Context, user string) ([]dto.StatusOutput, error) {
	return h.usecase.Status(ctx, user)
}

func (h CLIHandler) AllowLate(ctx context.Context, user, hash string) error {
	return h.usecase.AllowLate(ctx, user, hash)
}

func (h CLIHandler) ReadAnswer(ctx context.Context, input dto.AnswerInput) (dto.AnswerOutput, error) {
	return h.usecase.ReadAnswer(ctx, input)
}

func (h CLIHandler) WriteAnswer(ctx context.Context, input dto.AnswerInput, code string) error {
	return h.usecase.WriteAnswer(ctx, input, code)
}

func (h CLIHandler) SubmittedCode(ctx context.Context, user, hash string) (string, error) {
	return h.usecase.SubmittedCode(ctx, user, hash)
}
