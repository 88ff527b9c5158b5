package usecase

import (
	"context"
	"time"

	"mpt/internal/modules/deploy/domain"
	"mpt/internal/modules/deploy/dto"
	deployin "mpt/internal/modules/deploy/port/in"
	"mpt/internal/modules/deploy/service"
	"mpt/internal/platform/config"
)

type Interactor struct {
	svc      *service.DeployService
	defaults config.DeployConfig
}

func NewInteractor(svc *service.DeployService, defaults config.DeployConfig) deployin.Usecase {
	return &Interactor{svc: svc, defaults: defaults}
}

func (i *Interactor) Run(ctx context.Context, input dto.RunInput) (dto.RunOutput, error) {
	target := i.target(input)
	runID, err := i.svc.Run(ctx, target)
	if err != nil {
		return dto.RunOutput{}, err
	}
	return dto.RunOutput{
		RunID:   runID,
		Host:    target.Host,
		Script:  target.ProvisionScript(),
		Pattern: target.Pattern,
		Dest:    target.PushDest(),
	}, nil
}

func (i *Interactor) Provision(ctx context.Context, input dto.RunInput) (dto.ProvisionOutput, error) {
	target := i.target(input)
	runID, err := i.svc.Provision(ctx, target)
	if err != nil {
		return dto.ProvisionOutput{}, err
	}
	return dto.ProvisionOutput{RunID: runID, Host: target.Host, Script: target.ProvisionScript()}, nil
}

func (i *Interactor) Push(ctx context.Context, input dto.RunInput) (dto.PushOutput, error) {
	target := i.target(input)
	runID, err := i.svc.Push(ctx, target)
	if err != nil {
		return dto.PushOutput{}, err
	}
	return dto.PushOutput{RunID: runID, Pattern: target.Pattern, Dest: target.PushDest()}, nil
}

// target overlays per-invocation flags on the configured defaults.
func (i *Interactor) target(input dto.RunInput) domain.Target {
	target := domain.Target{
		Host:     i.defaults.Host,
		BasePath: i.defaults.BasePath,
		Pattern:  i.defaults.Pattern,
		Delay:    i.defaults.Delay,
	}
	if input.Host != "" {
		target.Host = input.Host
	}
	if input.BasePath != "" {
		target.BasePath = input.BasePath
	}
	if input.Pattern != "" {
		target.Pattern = input.Pattern
	}
	if input.DelaySec != nil {
		target.Delay = time.Duration(*input.DelaySec) * time.Second
	}
	return target
}
