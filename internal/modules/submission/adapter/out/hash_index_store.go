package out

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mpt/internal/modules/submission/domain"
	submissionout "mpt/internal/modules/submission/port/out"
)

// FileHashIndex reads the tutorial hash index file
// (data/submissions/tutorial_hashes, whitespace-separated rows of
// `hash due package problem_set tutorial`) and the JSON mapping file that
// redirects superseded hashes to their replacements.
type FileHashIndex struct {
	indexPath    string
	mappingsPath string
}

func NewFileHashIndex(dataPath string) submissionout.HashIndex {
	submissions := filepath.Join(dataPath, "submissions")
	return &FileHashIndex{
		indexPath:    filepath.Join(submissions, "tutorial_hashes"),
		mappingsPath: filepath.Join(submissions, "tutorial_hash_mappings"),
	}
}

func (s *FileHashIndex) Tutorials(_ context.Context) ([]domain.TutorialInfo, error) {
	file, err := os.Open(s.indexPath)
	if err != nil {
		return nil, fmt.Errorf("open tutorial hash index: %w", err)
	}
	defer func() { _ = file.Close() }()

	var infos []domain.TutorialInfo
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("tutorial_hashes line %d: expected 5 fields, got %d", lineNo, len(fields))
		}
		due, err := time.Parse(domain.DueLayout, fields[1])
		if err != nil {
			return nil, fmt.Errorf("tutorial_hashes line %d: %w", lineNo, err)
		}
		infos = append(infos, domain.TutorialInfo{
			Hash:       fields[0],
			Due:        due,
			Package:    fields[2],
			ProblemSet: fields[3],
			Tutorial:   fields[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tutorial hash index: %w", err)
	}
	return infos, nil
}

func (s *FileHashIndex) Resolved(ctx context.Context) (map[string]domain.TutorialInfo, error) {
	infos, err := s.Tutorials(ctx)
	if err != nil {
		return nil, err
	}
	resolved := make(map[string]domain.TutorialInfo, len(infos))
	for _, info := range infos {
		resolved[info.Hash] = info
	}

	mappings, err := s.loadMappings()
	if err != nil {
		return nil, err
	}

	// Follow mapping chains to a current hash; chains pointing at removed
	// tutorials resolve to nothing and are dropped.
	var resolve func(hash string, seen map[string]bool) (domain.TutorialInfo, bool)
	resolve = func(hash string, seen map[string]bool) (domain.TutorialInfo, bool) {
		if info, ok := resolved[hash]; ok {
			return info, true
		}
		next, ok := mappings[hash]
		if !ok || seen[hash] {
			return domain.TutorialInfo{}, false
		}
		seen[hash] = true
		return resolve(next, seen)
	}
	for hash := range mappings {
		if info, ok := resolve(hash, map[string]bool{}); ok {
			resolved[hash] = info
		}
	}
	return resolved, nil
}

func (s *FileHashIndex) loadMappings() (map[string]string, error) {
	raw, err := os.ReadFile(s.mappingsPath)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read hash mappings: %w", err)
	}
	mappings := map[string]string{}
	if err := json.Unmarshal(raw, &mappings); err != nil {
		return nil, fmt.Errorf("decode hash mappings: %w", err)
	}
	return mappings, nil
}
