// Package prompt implements interactive line input on a terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/equip/internal/ui/output"
	"go.trai.ch/equip/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

var _ ports.Prompter = (*TerminalPrompter)(nil)

// TerminalPrompter reads lines from in and writes the prompt marker to out.
// Secret prompts on a terminal disable echo through golang.org/x/term.
type TerminalPrompter struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewTerminalPrompter creates a prompter reading from in and writing to out.
func NewTerminalPrompter(in *os.File, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

type readResult struct {
	line string
	err  error
}

// Prompt writes marker and reads one line. The read runs on its own goroutine
// so that cancellation of ctx returns immediately; the terminal state saved
// before the read is restored in that case.
func (p *TerminalPrompter) Prompt(ctx context.Context, marker string, secret bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", zerr.Wrap(err, domain.ErrPromptInterrupted.Error())
	}

	out := output.New(p.out)
	styled := out.String(marker).Foreground(out.Color(string(style.Iris)))
	if _, err := io.WriteString(p.out, styled.String()+" "); err != nil {
		return "", zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}

	fd := int(p.in.Fd())
	noEcho := secret && output.IsTerminal(p.in)

	var saved *term.State
	if noEcho {
		state, err := term.GetState(fd)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrPromptFailed.Error())
		}
		saved = state
	}

	done := make(chan readResult, 1)
	go func() {
		if noEcho {
			line, err := term.ReadPassword(fd)
			done <- readResult{line: string(line), err: err}
			return
		}
		line, err := p.reader.ReadString('\n')
		done <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		if saved != nil {
			_ = term.Restore(fd, saved)
		}
		_, _ = io.WriteString(p.out, "\n")
		return "", zerr.Wrap(ctx.Err(), domain.ErrPromptInterrupted.Error())
	case res := <-done:
		if noEcho || !strings.HasSuffix(res.line, "\n") {
			// The input ended without an echoed newline.
			_, _ = io.WriteString(p.out, "\n")
		}
		if res.err != nil && !errors.Is(res.err, io.EOF) {
			return "", zerr.Wrap(res.err, domain.ErrPromptFailed.Error())
		}
		return trimNewline(res.line), nil
	}
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
