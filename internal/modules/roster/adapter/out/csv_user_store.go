package out

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mpt/internal/modules/roster/domain"
	rosterout "mpt/internal/modules/roster/port/out"
)

// CSVUserStore reads and appends the roster file: one `id,name,email,enrolled`
// row per user, lines starting with # ignored. The file may not exist yet.
type CSVUserStore struct {
	path string
}

func NewCSVUserStore(path string) rosterout.UserStore {
	return &CSVUserStore{path: path}
}

func (s *CSVUserStore) All(_ context.Context) ([]domain.User, error) {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return []domain.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer func() { _ = file.Close() }()

	var users []domain.User
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("roster line %d: expected 4 fields, got %d", lineNo, len(fields))
		}
		users = append(users, domain.User{
			ID:       fields[0],
			Name:     fields[1],
			Email:    fields[2],
			Enrolled: fields[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return users, nil
}

func (s *CSVUserStore) Append(_ context.Context, user domain.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create roster dir: %w", err)
	}
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open roster for append: %w", err)
	}
	defer func() { _ = file.Close() }()

	line := strings.Join([]string{user.ID, user.Name, user.Email, user.Enrolled}, ",") + "\n"
	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("append to roster: %w", err)
	}
	return nil
}
