package domain_test

import (
	"testing"
	"time"

	"mpt/internal/modules/submission/domain"
)

func mustDue(t *testing.T, value string) time.Time {
	t.Helper()
	due, err := time.Parse(domain.DueLayout, value)
	if err != nil {
		t.Fatalf("parse due date: %v", err)
	}
	return due
}

func TestStatusFor(t *testing.T) {
	t.Parallel()
	info := domain.TutorialInfo{Hash: "H1", Due: mustDue(t, "16_24/03/17")}

	onTime := domain.Submission{Hash: "H1", Date: info.Due.Add(-time.Hour)}
	if got := domain.StatusFor(onTime, info); got != domain.StatusOK {
		t.Fatalf("expected OK, got %s", got)
	}

	atDeadline := domain.Submission{Hash: "H1", Date: info.Due}
	if got := domain.StatusFor(atDeadline, info); got != domain.StatusOK {
		t.Fatalf("a submission exactly at the deadline is on time, got %s", got)
	}

	late := domain.Submission{Hash: "H1", Date: info.Due.Add(time.Minute)}
	if got := domain.StatusFor(late, info); got != domain.StatusLate {
		t.Fatalf("expected LATE, got %s", got)
	}

	lateOK := domain.Submission{Hash: "H1", Date: info.Due.Add(time.Minute), AllowLate: true}
	if got := domain.StatusFor(lateOK, info); got != domain.StatusLateOK {
		t.Fatalf("expected LATE_OK, got %s", got)
	}
}

func TestBuildReport(t *testing.T) {
	t.Parallel()
	due := mustDue(t, "16_24/03/17")
	index := []domain.TutorialInfo{
		{Hash: "H1", Due: due, Tutorial: "intro"},
		{Hash: "H2", Due: due, Tutorial: "functions"},
	}
	// H2OLD is a superseded hash that resolves to the current H2.
	resolved := map[string]domain.TutorialInfo{
		"H1":    index[0],
		"H2":    index[1],
		"H2OLD": index[1],
	}
	subs := []domain.Submission{
		{Hash: "H2OLD", Date: due.Add(-time.Hour)},
	}

	report, err := domain.BuildReport(index, resolved, subs)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(report))
	}
	if report[0].Status != domain.StatusMissing {
		t.Fatalf("expected intro MISSING, got %s", report[0].Status)
	}
	if report[1].Status != domain.StatusOK {
		t.Fatalf("expected functions OK via superseded hash, got %s", report[1].Status)
	}
}

func TestBuildReportRejectsUnknownHash(t *testing.T) {
	t.Parallel()
	subs := []domain.Submission{{Hash: "NOPE", Date: time.Now()}}
	if _, err := domain.BuildReport(nil, map[string]domain.TutorialInfo{}, subs); err == nil {
		t.Fatal("expected error for unknown submission hash")
	}
}
