package out

import (
	"context"

	"flatpick/internal/modules/launcher/domain"
)

// InventorySource returns the raw lines of the installed-application listing.
type InventorySource interface {
	List(ctx context.Context) ([]string, error)
}

// Selector lets the user pick one entry. ok is false when nothing was chosen.
type Selector interface {
	Select(ctx context.Context, header string, entries []domain.Entry) (entry domain.Entry, ok bool, err error)
}

// ArgumentPrompter shows the command preview and reads the trailing arguments.
type ArgumentPrompter interface {
	Prompt(ctx context.Context, preview string) (string, error)
}

// ShellRunner executes a command line through the host shell and waits for it.
type ShellRunner interface {
	Run(ctx context.Context, command string) (exitCode int, err error)
}
