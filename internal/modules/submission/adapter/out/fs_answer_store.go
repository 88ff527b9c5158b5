package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mpt/internal/modules/submission/domain"
	submissionout "mpt/internal/modules/submission/port/out"
	apperrors "mpt/internal/platform/errors"
	"mpt/internal/platform/sanitize"
)

// FSAnswerStore mirrors each user's local answers on the filesystem under
// data/answers/<user>/<package>/<problem-set>/<tutorial>.
type FSAnswerStore struct {
	dataPath string
}

func NewFSAnswerStore(dataPath string) submissionout.AnswerStore {
	return &FSAnswerStore{dataPath: dataPath}
}

func (s *FSAnswerStore) Read(_ context.Context, ref domain.AnswerRef) (string, error) {
	raw, err := os.ReadFile(s.answerPath(ref))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("answer %s/%s: %w", ref.User, ref.Tutorial, apperrors.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return string(raw), nil
}

func (s *FSAnswerStore) Write(_ context.Context, ref domain.AnswerRef, code string) error {
	path := s.answerPath(ref)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create answer directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return fmt.Errorf("write answer: %w", err)
	}
	return nil
}

func (s *FSAnswerStore) ModTime(_ context.Context, ref domain.AnswerRef) (time.Time, error) {
	info, err := os.Stat(s.answerPath(ref))
	if os.IsNotExist(err) {
		return time.Time{}, fmt.Errorf("answer %s/%s: %w", ref.User, ref.Tutorial, apperrors.ErrNotFound)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("stat answer: %w", err)
	}
	return info.ModTime(), nil
}

// Students can rename their tutorial package, so every component they control
// is sanitised before it becomes a path element.
func (s *FSAnswerStore) answerPath(ref domain.AnswerRef) string {
	return filepath.Join(
		s.dataPath,
		"answers",
		sanitize.Filename(ref.User),
		sanitize.Filename(ref.Package),
		sanitize.Filename(ref.ProblemSet),
		sanitize.Filename(ref.Tutorial),
	)
}
