package out

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	launcherout "flatpick/internal/modules/launcher/port/out"
)

type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) launcherout.ArgumentPrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt prints preview without a newline and reads one line. EOF reads as an empty line.
func (p *LinePrompter) Prompt(_ context.Context, preview string) (string, error) {
	if _, err := io.WriteString(p.out, preview); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	if f, ok := p.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return "", fmt.Errorf("flush prompt: %w", err)
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
