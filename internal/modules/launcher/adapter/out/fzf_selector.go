package out

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"flatpick/internal/modules/launcher/domain"
	launcherout "flatpick/internal/modules/launcher/port/out"
	apperrors "flatpick/internal/platform/errors"
)

const (
	fzfExitNoMatch     = 1
	fzfExitInterrupted = 130

	fzfFailedMessage = "fzf failed"
	headerKey        = "header"
)

// Each line is "<index>\t<row>". fzf prints the original line, so the index maps the
// choice back to its entry however many words the name has.
var fzfEntryFlags = []string{"--delimiter=\t", "--with-nth=2..", "--header-lines=1"}

type FZFSelector struct {
	argv   []string
	stderr io.Writer
	log    zerolog.Logger
}

// NewFZFSelector runs argv with the entry flags appended. stderr is where fzf draws.
func NewFZFSelector(argv []string, stderr io.Writer, log zerolog.Logger) launcherout.Selector {
	return &FZFSelector{argv: argv, stderr: stderr, log: log}
}

func (s *FZFSelector) Select(ctx context.Context, header string, entries []domain.Entry) (domain.Entry, bool, error) {
	argv := make([]string, 0, len(s.argv)+len(fzfEntryFlags))
	argv = append(argv, s.argv...)
	argv = append(argv, fzfEntryFlags...)

	var stdout bytes.Buffer
	child, err := startChild(ctx, argv, childOptions{pipeStdin: true, stdout: &stdout, stderr: s.stderr})
	if err != nil {
		return domain.Entry{}, false, &apperrors.ExternalToolError{Tool: apperrors.ToolFinder, Message: fzfFailedMessage, Err: err}
	}
	writeErr := writeFinderInput(child.stdin, header, entries)
	code, err := child.Release()
	s.log.Debug().Int("status", code).AnErr("write", writeErr).Msg("fzf exited")
	switch {
	case err == nil:
	case code == fzfExitNoMatch || code == fzfExitInterrupted:
		return domain.Entry{}, false, nil
	default:
		return domain.Entry{}, false, &apperrors.ExternalToolError{Tool: apperrors.ToolFinder, Message: fzfFailedMessage, Err: err}
	}

	line, _, _ := strings.Cut(strings.TrimSpace(stdout.String()), "\n")
	if line == "" {
		return domain.Entry{}, false, nil
	}
	return parseSelection(line, entries), true, nil
}

// writeFinderInput writes the header line then one line per entry. fzf may exit
// before reading everything, so callers treat a write error as informational.
func writeFinderInput(w io.Writer, header string, entries []domain.Entry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\t%s\n", headerKey, header)
	for n, entry := range entries {
		fmt.Fprintf(bw, "%d\t%s\n", n, entry.Display)
	}
	return bw.Flush()
}

// parseSelection resolves a finder output line to an entry. Lines without a known
// index are returned as a bare display row with no identifier.
func parseSelection(line string, entries []domain.Entry) domain.Entry {
	key, row, found := strings.Cut(line, "\t")
	if !found {
		return domain.Entry{Display: strings.TrimSpace(line)}
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 0 && n < len(entries) {
		return entries[n]
	}
	return domain.Entry{Display: strings.TrimSpace(row)}
}
