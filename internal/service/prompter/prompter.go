package prompter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/ragstart/internal/service/ui"
	"github.com/sandevgo/ragstart/pkg/log"
)

const (
	// Sentinel ends the loop without an instruction. Matched case-insensitively.
	Sentinel = "stop"

	promptText = "Please enter your next instruction (or 'stop' to exit): "
)

// ErrInputClosed is returned when input ends before a sentinel or an
// instruction was read.
var ErrInputClosed = errors.New("input closed before an instruction was entered")

type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	status *ui.Status
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		status: ui.NewStatus(out),
	}
}

// Run reads lines until it gets either the sentinel or a non-empty line.
// It returns the trimmed instruction and true, or "" and false when the
// operator typed the sentinel. Blank lines are rejected and the loop goes on.
func (p *Prompter) Run(ctx context.Context) (string, bool, error) {
	logger := log.FromCtx(ctx)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, strings.Repeat("=", 70))
	fmt.Fprintln(p.out, ui.TitleStyle.Render("INTERACTIVE TASK LOOP"))

	for {
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		default:
		}

		fmt.Fprint(p.out, "\n"+promptText)

		raw, err := p.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && raw != "") {
			if errors.Is(err, io.EOF) {
				return "", false, ErrInputClosed
			}
			return "", false, err
		}

		line := strings.TrimSpace(raw)
		switch {
		case strings.EqualFold(line, Sentinel):
			fmt.Fprintln(p.out)
			p.status.Step("👋", "Goodbye! Your chat application is ready to use.")
			p.status.Plain("Don't forget to set up your database and environment variables!")
			logger.Debug().Msg("prompter stopped by sentinel")
			return "", false, nil

		case line != "":
			fmt.Fprintln(p.out)
			p.status.Step("📝", "You entered: %s", line)
			p.status.Ok("Task noted!")
			p.status.Step("🔄", "Ready for your next instruction...")
			logger.Debug().Int("len", len(line)).Msg("instruction received")
			return line, true, nil

		default:
			p.status.Fail("Please enter a valid instruction or '%s' to exit.", Sentinel)
		}
	}
}
