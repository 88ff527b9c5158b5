package in

import (
	"context"

	"mpt/internal/modules/submission/dto"
)

type Usecase interface {
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
	List(ctx context.Context, user string) ([]dto.SubmissionOutput, error)
	Status(ctx context.Context, user string) ([]dto.StatusOutput, error)
	AllowLate(ctx context.Context, user, hash string) error
	ReadAnswer(ctx context.Context, input dto.AnswerInput) (dto.AnswerOutput, error)
	WriteAnswer(ctx context.Context, input dto.AnswerInput, code string) error
	SubmittedCode(ctx context.Context, user, hash string) (string, error)
}
