package service

import (
	"context"
	"fmt"
	"time"

	"mpt/internal/modules/submission/domain"
	submissionout "mpt/internal/modules/submission/port/out"
	"mpt/internal/platform/clock"
	apperrors "mpt/internal/platform/errors"
	"mpt/internal/platform/hashing"
	"mpt/internal/platform/sanitize"
)

type SubmissionService struct {
	clock   clock.Clock
	answers submissionout.AnswerStore
	index   submissionout.HashIndex
	log     submissionout.SubmissionLog
	codes   submissionout.CodeStore
}

func NewSubmissionService(clk clock.Clock, answers submissionout.AnswerStore, index submissionout.HashIndex, log submissionout.SubmissionLog, codes submissionout.CodeStore) *SubmissionService {
	return &SubmissionService{clock: clk, answers: answers, index: index, log: log, codes: codes}
}

// Submit records a submission: one log line, one code blob. The log is
// append-only; resubmitting the same tutorial overwrites only the blob.
func (s *SubmissionService) Submit(ctx context.Context, user, hash, code string) (domain.Submission, error) {
	resolved, err := s.index.Resolved(ctx)
	if err != nil {
		return domain.Submission{}, err
	}
	if _, ok := resolved[hash]; !ok {
		return domain.Submission{}, fmt.Errorf("tutorial hash %s: %w", hash, apperrors.ErrNotFound)
	}

	// A base32 hash never needs sanitising beyond its padding; if it does,
	// the input is not a hash at all.
	key := hashing.FileKey(hash)
	if key != sanitize.Filename(key) {
		return domain.Submission{}, fmt.Errorf("%w: malformed tutorial hash", apperrors.ErrInvalidInput)
	}

	sub := domain.Submission{Hash: hash, Date: s.clock.Now()}
	if err := s.log.Append(ctx, user, sub); err != nil {
		return domain.Submission{}, err
	}
	if err := s.codes.Put(ctx, user, key, code); err != nil {
		return domain.Submission{}, err
	}
	return sub, nil
}

func (s *SubmissionService) List(ctx context.Context, user string) ([]domain.Submission, error) {
	return s.log.List(ctx, user)
}

// Report computes the user's standing for every tutorial in the index.
func (s *SubmissionService) Report(ctx context.Context, user string) ([]domain.StatusEntry, error) {
	index, err := s.index.Tutorials(ctx)
	if err != nil {
		return nil, err
	}
	resolved, err := s.index.Resolved(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.log.List(ctx, user)
	if err != nil {
		return nil, err
	}
	return domain.BuildReport(index, resolved, subs)
}

func (s *SubmissionService) AllowLate(ctx context.Context, user, hash string) error {
	return s.log.GrantLate(ctx, user, hash)
}

func (s *SubmissionService) ReadAnswer(ctx context.Context, ref domain.AnswerRef) (string, string, time.Time, error) {
	if err := ref.Validate(); err != nil {
		return "", "", time.Time{}, err
	}
	code, err := s.answers.Read(ctx, ref)
	if err != nil {
		return "", "", time.Time{}, err
	}
	modTime, err := s.answers.ModTime(ctx, ref)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return code, hashing.AnswerHash(code), modTime, nil
}

func (s *SubmissionService) WriteAnswer(ctx context.Context, ref domain.AnswerRef, code string) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	return s.answers.Write(ctx, ref, code)
}

func (s *SubmissionService) SubmittedCode(ctx context.Context, user, hash string) (string, error) {
	return s.codes.Get(ctx, user, hashing.FileKey(hash))
}
