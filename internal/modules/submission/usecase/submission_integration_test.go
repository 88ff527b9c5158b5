package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mpt/internal/modules/submission/adapter/out"
	"mpt/internal/modules/submission/dto"
	submissionin "mpt/internal/modules/submission/port/in"
	"mpt/internal/modules/submission/service"
	"mpt/internal/modules/submission/usecase"
	"mpt/internal/platform/clock"
	apperrors "mpt/internal/platform/errors"
	"mpt/internal/platform/hashing"
)

const (
	hashIntro   = "MFRGGZDFMZTWQ2LK"
	hashLoops   = "GEZDGNBVGY3TQOJQ"
	hashClasses = "ONSWG4TFOQFAAAAA"
	hashOld     = "OLDHASHAAAAAAAAA"
)

const hashIndexFile = hashIntro + " 17_01/04/26 CSSE1001Tutorials tut01 intro.tut\n" +
	hashLoops + " 17_01/02/26 CSSE1001Tutorials tut01 loops.tut\n" +
	"\n" +
	hashClasses + " 17_01/05/26 CSSE1001Tutorials tut02 classes.tut\n"

func newSubmissionUsecase(t *testing.T, now time.Time) (submissionin.Usecase, string) {
	t.Helper()

	dataPath := t.TempDir()
	subsDir := filepath.Join(dataPath, "submissions")
	if err := os.MkdirAll(subsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(subsDir, "tutorial_hashes"), []byte(hashIndexFile), 0o644); err != nil {
		t.Fatal(err)
	}
	mappings := `{"` + hashOld + `": "` + hashIntro + `"}`
	if err := os.WriteFile(filepath.Join(subsDir, "tutorial_hash_mappings"), []byte(mappings), 0o644); err != nil {
		t.Fatal(err)
	}

	codes, err := out.NewBadgerCodeStore(filepath.Join(t.TempDir(), "codes"))
	if err != nil {
		t.Fatalf("open code store: %v", err)
	}
	t.Cleanup(func() { _ = codes.Close() })

	svc := service.NewSubmissionService(
		clock.Fixed{At: now},
		out.NewFSAnswerStore(dataPath),
		out.NewFileHashIndex(dataPath),
		out.NewFileSubmissionLog(dataPath),
		codes,
	)
	return usecase.NewInteractor(svc), dataPath
}

func TestSubmitAndStatusLifecycle(t *testing.T) {
	t.Parallel()

	// After the loops deadline, before the other two.
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	uc, dataPath := newSubmissionUsecase(t, now)
	ctx := context.Background()

	// Submitting via a superseded hash still counts for the tutorial the
	// mapping chain resolves to.
	introCode := "def add(a, b):\n    return a + b\n"
	if _, err := uc.Submit(ctx, dto.SubmitInput{User: "s4123456", Hash: hashOld, Code: introCode}); err != nil {
		t.Fatalf("submit intro: %v", err)
	}
	if _, err := uc.Submit(ctx, dto.SubmitInput{User: "s4123456", Hash: hashLoops, Code: "while True:\n    pass\n"}); err != nil {
		t.Fatalf("submit loops: %v", err)
	}

	report, err := uc.Status(ctx, "s4123456")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	want := map[string]string{
		"intro.tut":   "OK",
		"loops.tut":   "LATE",
		"classes.tut": "MISSING",
	}
	if len(report) != len(want) {
		t.Fatalf("report has %d entries, want %d", len(report), len(want))
	}
	for _, entry := range report {
		if got := want[entry.Tutorial]; entry.Status != got {
			t.Errorf("%s status = %s, want %s", entry.Tutorial, entry.Status, got)
		}
	}

	if err := uc.AllowLate(ctx, "s4123456", hashLoops); err != nil {
		t.Fatalf("allow late: %v", err)
	}
	report, err = uc.Status(ctx, "s4123456")
	if err != nil {
		t.Fatalf("status after grant: %v", err)
	}
	for _, entry := range report {
		if entry.Tutorial == "loops.tut" && entry.Status != "LATE_OK" {
			t.Errorf("loops.tut status after grant = %s, want LATE_OK", entry.Status)
		}
	}

	code, err := uc.SubmittedCode(ctx, "s4123456", hashOld)
	if err != nil {
		t.Fatalf("submitted code: %v", err)
	}
	if code != introCode {
		t.Errorf("submitted code = %q, want %q", code, introCode)
	}

	raw, err := os.ReadFile(filepath.Join(dataPath, "submissions", "s4123456", "submission_log"))
	if err != nil {
		t.Fatalf("read submission log: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(string(raw)), "\n"); len(lines) != 2 {
		t.Errorf("submission log has %d lines, want 2", len(lines))
	}
}

func TestSubmitRejectsUnknownHash(t *testing.T) {
	t.Parallel()

	uc, _ := newSubmissionUsecase(t, time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	_, err := uc.Submit(context.Background(), dto.SubmitInput{User: "s4123456", Hash: "NOSUCHHASHAAAAAA", Code: "x = 1\n"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAnswerRoundTrip(t *testing.T) {
	t.Parallel()

	uc, dataPath := newSubmissionUsecase(t, time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	ref := dto.AnswerInput{User: "s4123456", Package: "CSSE1001Tutorials", ProblemSet: "tut01", Tutorial: "intro.tut"}
	code := "def add(a, b):\n    return a + b\n"
	if err := uc.WriteAnswer(ctx, ref, code); err != nil {
		t.Fatalf("write answer: %v", err)
	}

	answer, err := uc.ReadAnswer(ctx, ref)
	if err != nil {
		t.Fatalf("read answer: %v", err)
	}
	if answer.Code != code {
		t.Errorf("code = %q, want %q", answer.Code, code)
	}
	if answer.Hash != hashing.AnswerHash(code) {
		t.Errorf("hash = %q, want computed answer hash", answer.Hash)
	}
	if answer.ModTime.IsZero() {
		t.Error("mod time is zero")
	}

	path := filepath.Join(dataPath, "answers", "s4123456", "CSSE1001Tutorials", "tut01", "intro.tut")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("answer file not on disk: %v", err)
	}
}

func TestReadAnswerMissing(t *testing.T) {
	t.Parallel()

	uc, _ := newSubmissionUsecase(t, time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	ref := dto.AnswerInput{User: "s4123456", Package: "CSSE1001Tutorials", ProblemSet: "tut01", Tutorial: "never.tut"}
	_, err := uc.ReadAnswer(context.Background(), ref)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
