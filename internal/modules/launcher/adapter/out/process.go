package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	apperrors "flatpick/internal/platform/errors"
)

// exitSpawnFailed mirrors the shell's status for a command that never started.
const exitSpawnFailed = 127

type childOptions struct {
	// pipeStdin opens a writable stream to the child; otherwise stdin is used as is.
	pipeStdin bool
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

// childProcess is a started command that must be released exactly once.
type childProcess struct {
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	released bool
	code     int
	err      error
}

func startChild(ctx context.Context, argv []string, opts childOptions) (*childProcess, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, fmt.Errorf("empty command: %w", apperrors.ErrInvalidInput)
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = opts.stdout
	cmd.Stderr = opts.stderr
	p := &childProcess{cmd: cmd}
	if opts.pipeStdin {
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return nil, fmt.Errorf("open stdin for %s: %w", argv[0], err)
		}
		p.stdin = stdin
	} else {
		cmd.Stdin = opts.stdin
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return p, nil
}

// Release closes the child's input stream and waits for it to exit.
func (p *childProcess) Release() (int, error) {
	if p.released {
		return p.code, p.err
	}
	p.released = true
	if p.stdin != nil {
		_ = p.stdin.Close()
	}
	p.err = p.cmd.Wait()
	p.code = exitStatus(p.err)
	return p.code, p.err
}

// exitStatus follows edgectl's runner: 0 on success, the process status when it
// exited, 127 when it could not run, -1 when it was killed by a signal.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return exitSpawnFailed
	}
	return -1
}

// withStderr appends the first line of captured stderr to err.
func withStderr(err error, stderr string) error {
	first, _, _ := strings.Cut(strings.TrimSpace(stderr), "\n")
	if first == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, first)
}
