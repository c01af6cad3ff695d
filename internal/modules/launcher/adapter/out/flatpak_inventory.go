package out

import (
	"bytes"
	"context"
	"strings"

	"github.com/rs/zerolog"

	launcherout "flatpick/internal/modules/launcher/port/out"
	apperrors "flatpick/internal/platform/errors"
)

const listFailedMessage = "Failed to list Flatpak apps"

type FlatpakInventory struct {
	argv []string
	log  zerolog.Logger
}

func NewFlatpakInventory(argv []string, log zerolog.Logger) launcherout.InventorySource {
	return &FlatpakInventory{argv: argv, log: log}
}

func (i *FlatpakInventory) List(ctx context.Context) ([]string, error) {
	var stdout, stderr bytes.Buffer
	i.log.Debug().Strs("argv", i.argv).Msg("listing inventory")
	child, err := startChild(ctx, i.argv, childOptions{stdout: &stdout, stderr: &stderr})
	if err != nil {
		return nil, &apperrors.ExternalToolError{Tool: apperrors.ToolInventory, Message: listFailedMessage, Err: err}
	}
	if _, err := child.Release(); err != nil {
		return nil, &apperrors.ExternalToolError{Tool: apperrors.ToolInventory, Message: listFailedMessage, Err: withStderr(err, stderr.String())}
	}
	return splitLines(strings.ToValidUTF8(stdout.String(), "\uFFFD")), nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for n, line := range lines {
		lines[n] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
