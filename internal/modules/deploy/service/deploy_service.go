package service

import (
	"context"
	"fmt"
	"log/slog"

	"mpt/internal/modules/deploy/domain"
	deployout "mpt/internal/modules/deploy/port/out"
	"mpt/internal/platform/id"
)

type DeployService struct {
	shell   deployout.RemoteShell
	syncer  deployout.FileSyncer
	sleeper deployout.Sleeper
	ids     id.Generator
	logger  *slog.Logger
}

func NewDeployService(shell deployout.RemoteShell, syncer deployout.FileSyncer, sleeper deployout.Sleeper, ids id.Generator, logger *slog.Logger) *DeployService {
	return &DeployService{shell: shell, syncer: syncer, sleeper: sleeper, ids: ids, logger: logger}
}

// Run executes the deployment procedure in its strict order. Any failing step
// aborts the run; nothing already done is rolled back.
func (s *DeployService) Run(ctx context.Context, target domain.Target) (string, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	runID := s.ids.New()
	log := s.logger.With("run_id", runID, "host", target.Host)

	log.Info("provisioning remote directories", "script", target.ProvisionScript())
	if err := s.shell.Run(ctx, target.Host, target.ProvisionScript()); err != nil {
		log.Error("provision failed", "error", err)
		return runID, fmt.Errorf("provision %s: %w", target.Host, err)
	}

	log.Debug("waiting before transfer", "delay", target.Delay)
	if err := s.sleeper.Sleep(ctx, target.Delay); err != nil {
		return runID, fmt.Errorf("inter-step delay: %w", err)
	}

	log.Info("pushing tutorial files", "pattern", target.Pattern, "dest", target.PushDest())
	if err := s.syncer.Push(ctx, target.Pattern, target.PushDest()); err != nil {
		log.Error("push failed", "error", err)
		return runID, fmt.Errorf("push %s: %w", target.Pattern, err)
	}

	log.Info("deployment complete")
	return runID, nil
}

// Provision runs only the directory-creation step.
func (s *DeployService) Provision(ctx context.Context, target domain.Target) (string, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	runID := s.ids.New()
	if err := s.shell.Run(ctx, target.Host, target.ProvisionScript()); err != nil {
		return runID, fmt.Errorf("provision %s: %w", target.Host, err)
	}
	return runID, nil
}

// Push runs only the file-transfer step, with no delay. Intended for repeated
// pushes within an already warmed-up session window.
func (s *DeployService) Push(ctx context.Context, target domain.Target) (string, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	runID := s.ids.New()
	if err := s.syncer.Push(ctx, target.Pattern, target.PushDest()); err != nil {
		return runID, fmt.Errorf("push %s: %w", target.Pattern, err)
	}
	return runID, nil
}
