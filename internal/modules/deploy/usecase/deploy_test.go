package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mpt/internal/modules/deploy/dto"
	"mpt/internal/modules/deploy/service"
	"mpt/internal/modules/deploy/usecase"
	"mpt/internal/platform/config"
	apperrors "mpt/internal/platform/errors"
	"mpt/internal/platform/id"
	"mpt/internal/platform/logging"
)

type recorder struct {
	calls []string
}

type fakeShell struct {
	rec    *recorder
	script string
	host   string
	err    error
}

func (f *fakeShell) Run(_ context.Context, host, script string) error {
	f.rec.calls = append(f.rec.calls, "shell")
	f.host = host
	f.script = script
	return f.err
}

type fakeSyncer struct {
	rec     *recorder
	pattern string
	dest    string
	err     error
}

func (f *fakeSyncer) Push(_ context.Context, pattern, dest string) error {
	f.rec.calls = append(f.rec.calls, "sync")
	f.pattern = pattern
	f.dest = dest
	return f.err
}

type fakeSleeper struct {
	rec   *recorder
	slept time.Duration
}

func (f *fakeSleeper) Sleep(_ context.Context, d time.Duration) error {
	f.rec.calls = append(f.rec.calls, "sleep")
	f.slept = d
	return nil
}

func defaults() config.DeployConfig {
	return config.DeployConfig{
		Host:     "csse1001.uqcloud.net",
		BasePath: "/opt/local/share/MyPyTutor/MPT3_CSSE1001",
		Pattern:  "tutorial_*",
		Delay:    3 * time.Second,
	}
}

func newFixture(shellErr, syncErr error) (*fakeShell, *fakeSyncer, *fakeSleeper, *usecase.Interactor) {
	rec := &recorder{}
	shell := &fakeShell{rec: rec, err: shellErr}
	syncer := &fakeSyncer{rec: rec, err: syncErr}
	sleeper := &fakeSleeper{rec: rec}
	svc := service.NewDeployService(shell, syncer, sleeper, &id.Sequential{}, logging.Discard())
	uc := usecase.NewInteractor(svc, defaults()).(*usecase.Interactor)
	return shell, syncer, sleeper, uc
}

func TestRunInvokesStepsInOrder(t *testing.T) {
	t.Parallel()
	shell, syncer, sleeper, uc := newFixture(nil, nil)

	out, err := uc.Run(context.Background(), dto.RunInput{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	wantOrder := []string{"shell", "sleep", "sync"}
	if fmt.Sprint(shell.rec.calls) != fmt.Sprint(wantOrder) {
		t.Fatalf("expected call order %v, got %v", wantOrder, shell.rec.calls)
	}
	if shell.host != "csse1001.uqcloud.net" {
		t.Fatalf("unexpected host: %s", shell.host)
	}
	if shell.script != "cd /opt/local/share/MyPyTutor/MPT3_CSSE1001 && mkdir -p data/answers data/submissions data/feedback" {
		t.Fatalf("unexpected provision script: %q", shell.script)
	}
	if sleeper.slept != 3*time.Second {
		t.Fatalf("expected a 3s delay, got %s", sleeper.slept)
	}
	if syncer.pattern != "tutorial_*" {
		t.Fatalf("expected pattern tutorial_*, got %q", syncer.pattern)
	}
	if syncer.dest != "csse1001.uqcloud.net:/opt/local/share/MyPyTutor/MPT3_CSSE1001/data/submissions" {
		t.Fatalf("unexpected destination: %q", syncer.dest)
	}
	if out.RunID == "" {
		t.Fatal("expected a run id")
	}
}

func TestRunAbortsWhenProvisionFails(t *testing.T) {
	t.Parallel()
	connErr := fmt.Errorf("%w: ssh: exit 255", apperrors.ErrConnection)
	shell, syncer, _, uc := newFixture(connErr, nil)

	_, err := uc.Run(context.Background(), dto.RunInput{})
	if !errors.Is(err, apperrors.ErrConnection) {
		t.Fatalf("expected connection error, got %v", err)
	}
	if len(shell.rec.calls) != 1 || shell.rec.calls[0] != "shell" {
		t.Fatalf("expected only the shell step to run, got %v", shell.rec.calls)
	}
	if syncer.pattern != "" {
		t.Fatal("sync must never be invoked when provisioning fails")
	}
}

func TestRunSurfacesTransferError(t *testing.T) {
	t.Parallel()
	transferErr := fmt.Errorf("%w: rsync: exit 23", apperrors.ErrTransfer)
	_, _, _, uc := newFixture(nil, transferErr)

	_, err := uc.Run(context.Background(), dto.RunInput{})
	if !errors.Is(err, apperrors.ErrTransfer) {
		t.Fatalf("expected transfer error, got %v", err)
	}
}

func TestFlagOverridesReplaceDefaults(t *testing.T) {
	t.Parallel()
	shell, syncer, sleeper, uc := newFixture(nil, nil)

	zero := 0
	_, err := uc.Run(context.Background(), dto.RunInput{
		Host:     "other.example.edu",
		BasePath: "/srv/course",
		Pattern:  "week_*",
		DelaySec: &zero,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if shell.host != "other.example.edu" {
		t.Fatalf("host override ignored: %s", shell.host)
	}
	if shell.script != "cd /srv/course && mkdir -p data/answers data/submissions data/feedback" {
		t.Fatalf("base path override ignored: %q", shell.script)
	}
	if sleeper.slept != 0 {
		t.Fatalf("delay override ignored: %s", sleeper.slept)
	}
	if syncer.dest != "other.example.edu:/srv/course/data/submissions" {
		t.Fatalf("dest not rebuilt from overrides: %q", syncer.dest)
	}
}

func TestPushSkipsProvisionAndDelay(t *testing.T) {
	t.Parallel()
	shell, syncer, _, uc := newFixture(nil, nil)

	if _, err := uc.Push(context.Background(), dto.RunInput{}); err != nil {
		t.Fatalf("push: %v", err)
	}
	if fmt.Sprint(shell.rec.calls) != fmt.Sprint([]string{"sync"}) {
		t.Fatalf("expected only the sync step, got %v", shell.rec.calls)
	}
	if syncer.pattern != "tutorial_*" {
		t.Fatalf("unexpected pattern: %q", syncer.pattern)
	}
}
