package out

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"flatpick/internal/modules/launcher/domain"
	launcherout "flatpick/internal/modules/launcher/port/out"
	apperrors "flatpick/internal/platform/errors"
	"flatpick/internal/ui/picker"
)

const pickerFailedMessage = "picker failed"

var errNotTerminal = errors.New("stdin is not a terminal")

type BuiltinSelector struct {
	in  io.Reader
	out io.Writer
	log zerolog.Logger
}

// NewBuiltinSelector reads keys from in, which must be a terminal, and draws on out.
func NewBuiltinSelector(in io.Reader, out io.Writer, log zerolog.Logger) launcherout.Selector {
	return &BuiltinSelector{in: in, out: out, log: log}
}

func (s *BuiltinSelector) Select(ctx context.Context, header string, entries []domain.Entry) (domain.Entry, bool, error) {
	if f, ok := s.in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return domain.Entry{}, false, &apperrors.ExternalToolError{Tool: apperrors.ToolPicker, Message: pickerFailedMessage, Err: errNotTerminal}
	}
	rows := make([]string, len(entries))
	for n, entry := range entries {
		rows[n] = entry.Display
	}
	idx, ok, err := picker.Run(ctx, header, rows, s.in, s.out)
	if err != nil {
		return domain.Entry{}, false, &apperrors.ExternalToolError{Tool: apperrors.ToolPicker, Message: pickerFailedMessage, Err: err}
	}
	s.log.Debug().Int("index", idx).Bool("picked", ok).Msg("picker closed")
	if !ok || idx >= len(entries) {
		return domain.Entry{}, false, nil
	}
	return entries[idx], true, nil
}
