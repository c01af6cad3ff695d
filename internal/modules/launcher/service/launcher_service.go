package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"flatpick/internal/modules/launcher/domain"
	launcherout "flatpick/internal/modules/launcher/port/out"
)

type LauncherService struct {
	inventory launcherout.InventorySource
	selector  launcherout.Selector
	prompter  launcherout.ArgumentPrompter
	runner    launcherout.ShellRunner
	runPrefix string
	log       zerolog.Logger
}

func NewLauncherService(
	inventory launcherout.InventorySource,
	selector launcherout.Selector,
	prompter launcherout.ArgumentPrompter,
	runner launcherout.ShellRunner,
	runPrefix string,
	log zerolog.Logger,
) *LauncherService {
	return &LauncherService{
		inventory: inventory,
		selector:  selector,
		prompter:  prompter,
		runner:    runner,
		runPrefix: runPrefix,
		log:       log,
	}
}

// ListApps formats every non-empty inventory line, keeping inventory order.
func (s *LauncherService) ListApps(ctx context.Context) ([]domain.Entry, error) {
	lines, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, domain.ParseRecord(line))
	}
	s.log.Debug().Int("lines", len(lines)).Int("entries", len(entries)).Msg("inventory listed")
	return entries, nil
}

// Choose runs the selector. An entry without a usable identifier counts as no selection.
func (s *LauncherService) Choose(ctx context.Context, entries []domain.Entry) (domain.Entry, bool, error) {
	entry, ok, err := s.selector.Select(ctx, domain.Header(), entries)
	if err != nil || !ok {
		return domain.Entry{}, false, err
	}
	if entry.ID == "" {
		entry.ID = domain.ExtractIdentifier(entry.Display)
	}
	if entry.ID == "" {
		s.log.Debug().Str("row", entry.Display).Msg("selection has no identifier")
		return domain.Entry{}, false, nil
	}
	s.log.Debug().Str("id", entry.ID).Msg("application selected")
	return entry, true, nil
}

// Launch prompts for trailing arguments, then runs the assembled command and waits.
func (s *LauncherService) Launch(ctx context.Context, id string) (domain.RunCommand, int, error) {
	cmd := domain.RunCommand{Prefix: s.runPrefix, ID: id}
	args, err := s.prompter.Prompt(ctx, cmd.Preview())
	if err != nil {
		return cmd, 0, fmt.Errorf("read arguments: %w", err)
	}
	cmd.Args = args
	s.log.Debug().Str("command", cmd.String()).Msg("launching")
	code, err := s.runner.Run(ctx, cmd.String())
	return cmd, code, err
}
