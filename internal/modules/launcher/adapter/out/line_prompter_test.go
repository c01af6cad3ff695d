package out_test

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	launcherout "flatpick/internal/modules/launcher/adapter/out"
)

func TestLinePrompterReadsOneLine(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	prompter := launcherout.NewLinePrompter(strings.NewReader("--verbose file.txt\nnext line\n"), &out)
	args, err := prompter.Prompt(context.Background(), "flatpak run org.gnome.Calculator")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if args != "--verbose file.txt" {
		t.Fatalf("unexpected args %q", args)
	}
	if out.String() != "flatpak run org.gnome.Calculator" {
		t.Fatalf("preview should be printed without newline, got %q", out.String())
	}
}

func TestLinePrompterEOFIsEmptyLine(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	args, err := launcherout.NewLinePrompter(strings.NewReader(""), &out).Prompt(context.Background(), "flatpak run x")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if args != "" {
		t.Fatalf("expected empty args, got %q", args)
	}
	args, err = launcherout.NewLinePrompter(strings.NewReader("--no-newline"), &out).Prompt(context.Background(), "flatpak run x")
	if err != nil || args != "--no-newline" {
		t.Fatalf("expected partial line, got %q %v", args, err)
	}
}

func TestLinePrompterFlushesBufferedOutput(t *testing.T) {
	t.Parallel()
	var sink bytes.Buffer
	w := bufio.NewWriter(&sink)
	if _, err := launcherout.NewLinePrompter(strings.NewReader("\r\n"), w).Prompt(context.Background(), "flatpak run x"); err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if sink.String() != "flatpak run x" {
		t.Fatalf("expected flushed preview, got %q", sink.String())
	}
}
