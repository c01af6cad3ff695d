package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"flatpick/internal/modules/launcher/domain"
	"flatpick/internal/modules/launcher/service"
)

type staticInventory []string

func (s staticInventory) List(context.Context) ([]string, error) { return s, nil }

type firstSelector struct{}

func (firstSelector) Select(_ context.Context, _ string, entries []domain.Entry) (domain.Entry, bool, error) {
	if len(entries) == 0 {
		return domain.Entry{}, false, nil
	}
	return entries[0], true, nil
}

type brokenPrompter struct{}

func (brokenPrompter) Prompt(context.Context, string) (string, error) {
	return "", errors.New("stdin closed")
}

type countingRunner struct{ calls int }

func (r *countingRunner) Run(context.Context, string) (int, error) {
	r.calls++
	return 0, nil
}

func TestListAppsKeepsOrderAndDropsBlankLines(t *testing.T) {
	t.Parallel()
	lines := staticInventory{
		"Zed dev.zed.Zed 0.150 stable flathub user",
		"",
		"Calculator org.gnome.Calculator 1.0 stable flathub system",
		"\t",
	}
	svc := service.NewLauncherService(lines, firstSelector{}, brokenPrompter{}, &countingRunner{}, "flatpak run", zerolog.Nop())
	entries, err := svc.ListApps(context.Background())
	if err != nil {
		t.Fatalf("list apps: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != "dev.zed.Zed" || entries[1].ID != "org.gnome.Calculator" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestLaunchPromptFailureDoesNotRun(t *testing.T) {
	t.Parallel()
	runner := &countingRunner{}
	svc := service.NewLauncherService(staticInventory{}, firstSelector{}, brokenPrompter{}, runner, "flatpak run", zerolog.Nop())
	cmd, _, err := svc.Launch(context.Background(), "org.gnome.Calculator")
	if err == nil {
		t.Fatalf("expected prompt error")
	}
	if runner.calls != 0 {
		t.Fatalf("runner should not be called")
	}
	if cmd.Preview() != "flatpak run org.gnome.Calculator" {
		t.Fatalf("unexpected preview %q", cmd.Preview())
	}
}
