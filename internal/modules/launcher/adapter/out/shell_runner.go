package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/rs/zerolog"

	launcherout "flatpick/internal/modules/launcher/port/out"
	apperrors "flatpick/internal/platform/errors"
)

type HostShellRunner struct {
	shell  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
}

// NewHostShellRunner runs commands as `shell -c command` attached to the given streams.
func NewHostShellRunner(shell string, stdin io.Reader, stdout, stderr io.Writer, log zerolog.Logger) launcherout.ShellRunner {
	return &HostShellRunner{shell: shell, stdin: stdin, stdout: stdout, stderr: stderr, log: log}
}

// Run returns the command's exit status. Failing to start or wait for the shell is
// ErrSpawnFatal; a command that ran and failed is not an error.
func (r *HostShellRunner) Run(ctx context.Context, command string) (int, error) {
	child, err := startChild(ctx, []string{r.shell, "-c", command}, childOptions{stdin: r.stdin, stdout: r.stdout, stderr: r.stderr})
	if err != nil {
		return exitSpawnFailed, fmt.Errorf("%w: start %s: %w", apperrors.ErrSpawnFatal, r.shell, err)
	}
	code, err := child.Release()
	r.log.Debug().Int("status", code).Msg("command finished")
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return code, fmt.Errorf("%w: wait %s: %w", apperrors.ErrSpawnFatal, r.shell, err)
	}
	if code < 0 {
		// killed by a signal
		return 1, nil
	}
	return code, nil
}
