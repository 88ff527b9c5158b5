package out

import (
	"context"
	"time"

	"mpt/internal/modules/submission/domain"
)

// AnswerStore keeps the per-user answer tree
// (answers/<user>/<package>/<problem-set>/<tutorial>).
type AnswerStore interface {
	Read(ctx context.Context, ref domain.AnswerRef) (string, error)
	Write(ctx context.Context, ref domain.AnswerRef, code string) error
	ModTime(ctx context.Context, ref domain.AnswerRef) (time.Time, error)
}

// HashIndex exposes the tutorial hash index and its superseded-hash mappings.
type HashIndex interface {
	Tutorials(ctx context.Context) ([]domain.TutorialInfo, error)
	// Resolved maps every known hash, current or superseded, to the current
	// TutorialInfo it stands for.
	Resolved(ctx context.Context) (map[string]domain.TutorialInfo, error)
}

// SubmissionLog records what a user submitted and any admin late grants.
type SubmissionLog interface {
	List(ctx context.Context, user string) ([]domain.Submission, error)
	Append(ctx context.Context, user string, sub domain.Submission) error
	GrantLate(ctx context.Context, user, hash string) error
}

// CodeStore holds submitted code blobs keyed by user and stripped hash.
type CodeStore interface {
	Put(ctx context.Context, user, key, code string) error
	Get(ctx context.Context, user, key string) (string, error)
	Close() error
}
