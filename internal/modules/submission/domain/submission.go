package domain

import (
	"fmt"
	"strings"
	"time"
)

// DueLayout is the due-date format used in the tutorial hash index,
// hour_day/month/year (eg "16_24/03/17").
const DueLayout = "15_02/01/06"

// TutorialInfo is one row of the tutorial hash index: the current hash of a
// tutorial problem, its due date, and where it sits in the package.
type TutorialInfo struct {
	Hash       string
	Due        time.Time
	Package    string
	ProblemSet string
	Tutorial   string
}

// Submission is one submission-log entry for a user. AllowLate reflects an
// admin grant recorded separately from the log itself.
type Submission struct {
	Hash      string
	Date      time.Time
	AllowLate bool
}

// AnswerRef addresses one stored answer file.
type AnswerRef struct {
	User       string
	Package    string
	ProblemSet string
	Tutorial   string
}

func (r AnswerRef) Validate() error {
	for _, part := range []struct{ name, value string }{
		{"user", r.User},
		{"package", r.Package},
		{"problem set", r.ProblemSet},
		{"tutorial", r.Tutorial},
	} {
		if strings.TrimSpace(part.value) == "" {
			return fmt.Errorf("answer %s is required", part.name)
		}
	}
	return nil
}

type Status string

const (
	StatusMissing Status = "MISSING"
	StatusOK      Status = "OK"
	StatusLate    Status = "LATE"
	StatusLateOK  Status = "LATE_OK"
)

// StatusFor classifies a single submission against the tutorial it answers.
func StatusFor(sub Submission, info TutorialInfo) Status {
	switch {
	case !sub.Date.After(info.Due):
		return StatusOK
	case sub.AllowLate:
		return StatusLateOK
	default:
		return StatusLate
	}
}

// StatusEntry pairs a tutorial with the user's standing on it.
type StatusEntry struct {
	Tutorial TutorialInfo
	Status   Status
}

// BuildReport computes the per-tutorial standing for one user. Every tutorial
// in the current index starts MISSING; each submission upgrades the tutorial
// its hash resolves to. A submission whose hash is unknown to the resolved
// index means the store is inconsistent and is reported as an error.
func BuildReport(index []TutorialInfo, resolved map[string]TutorialInfo, subs []Submission) ([]StatusEntry, error) {
	statuses := make(map[string]Status, len(index))
	for _, info := range index {
		statuses[info.Hash] = StatusMissing
	}

	for _, sub := range subs {
		info, ok := resolved[sub.Hash]
		if !ok {
			return nil, fmt.Errorf("submission references unknown tutorial hash %s", sub.Hash)
		}
		statuses[info.Hash] = StatusFor(sub, info)
	}

	report := make([]StatusEntry, 0, len(index))
	for _, info := range index {
		report = append(report, StatusEntry{Tutorial: info, Status: statuses[info.Hash]})
	}
	return report, nil
}
