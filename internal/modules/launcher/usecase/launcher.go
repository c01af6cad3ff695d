package usecase

import (
	"context"

	"flatpick/internal/modules/launcher/domain"
	"flatpick/internal/modules/launcher/dto"
	launcherin "flatpick/internal/modules/launcher/port/in"
	"flatpick/internal/modules/launcher/service"
)

type Interactor struct {
	svc *service.LauncherService
}

func NewInteractor(svc *service.LauncherService) launcherin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) (dto.ListOutput, error) {
	entries, err := i.svc.ListApps(ctx)
	if err != nil {
		return dto.ListOutput{}, err
	}
	rows := make([]string, len(entries))
	for n, entry := range entries {
		rows[n] = entry.Display
	}
	return dto.ListOutput{Header: domain.Header(), Rows: rows}, nil
}

func (i *Interactor) Run(ctx context.Context) (dto.RunResult, error) {
	entries, err := i.svc.ListApps(ctx)
	if err != nil {
		return dto.RunResult{}, err
	}
	if len(entries) == 0 {
		return dto.RunResult{Outcome: dto.OutcomeNoApps}, nil
	}
	entry, ok, err := i.svc.Choose(ctx, entries)
	if err != nil {
		return dto.RunResult{}, err
	}
	if !ok {
		return dto.RunResult{Outcome: dto.OutcomeNoSelection}, nil
	}
	cmd, code, err := i.svc.Launch(ctx, entry.ID)
	result := dto.RunResult{
		Outcome:    dto.OutcomeLaunched,
		Identifier: entry.ID,
		Command:    cmd.String(),
		ExitCode:   code,
	}
	return result, err
}
