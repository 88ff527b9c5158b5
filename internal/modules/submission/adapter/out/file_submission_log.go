package out

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mpt/internal/modules/submission/domain"
	submissionout "mpt/internal/modules/submission/port/out"
	"mpt/internal/platform/sanitize"
)

const (
	submissionLogName = "submission_log"
	adminLogName      = "admin_log"
	allowLateAction   = "allow_late"
)

// FileSubmissionLog keeps one directory per user under data/submissions with
// two append-only files: the submission log (`hash date` rows) and the admin
// log (`allow_late <hash>` rows). Nothing is ever rewritten in place.
type FileSubmissionLog struct {
	dataPath string
}

func NewFileSubmissionLog(dataPath string) submissionout.SubmissionLog {
	return &FileSubmissionLog{dataPath: dataPath}
}

func (s *FileSubmissionLog) List(_ context.Context, user string) ([]domain.Submission, error) {
	dir := s.userDir(user)

	grants, err := readAdminGrants(filepath.Join(dir, adminLogName))
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(dir, submissionLogName))
	if os.IsNotExist(err) {
		return []domain.Submission{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open submission log: %w", err)
	}
	defer func() { _ = file.Close() }()

	var subs []domain.Submission
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("submission log line %d: expected `hash date`", lineNo)
		}
		date, err := time.Parse(time.RFC3339, fields[1])
		if err != nil {
			return nil, fmt.Errorf("submission log line %d: %w", lineNo, err)
		}
		subs = append(subs, domain.Submission{
			Hash:      fields[0],
			Date:      date,
			AllowLate: grants[fields[0]],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read submission log: %w", err)
	}
	return subs, nil
}

func (s *FileSubmissionLog) Append(_ context.Context, user string, sub domain.Submission) error {
	line := sub.Hash + " " + sub.Date.Format(time.RFC3339) + "\n"
	return s.appendLine(user, submissionLogName, line)
}

func (s *FileSubmissionLog) GrantLate(_ context.Context, user, hash string) error {
	return s.appendLine(user, adminLogName, allowLateAction+" "+hash+"\n")
}

func (s *FileSubmissionLog) appendLine(user, name, line string) error {
	dir := s.userDir(user)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create user submissions dir: %w", err)
	}
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()
	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("append to %s: %w", name, err)
	}
	return nil
}

func (s *FileSubmissionLog) userDir(user string) string {
	return filepath.Join(s.dataPath, "submissions", sanitize.Filename(user))
}

func readAdminGrants(path string) (map[string]bool, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open admin log: %w", err)
	}
	defer func() { _ = file.Close() }()

	grants := map[string]bool{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[0] == allowLateAction {
			grants[fields[1]] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read admin log: %w", err)
	}
	return grants, nil
}
