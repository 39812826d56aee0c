package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"ledger/internal/commands"
	applog "ledger/internal/log"
)

const (
	prompt      = "input: "
	exitCommand = "exit"
)

// REPL reads commands, runs them one at a time and prints their outcome.
type REPL struct {
	dispatcher *commands.Dispatcher
	in         io.Reader
	out        io.Writer
	logger     *applog.Logger
	quiet      bool
}

// NewREPL returns a loop over in and out. With quiet set the menu is not
// printed before every prompt.
func NewREPL(d *commands.Dispatcher, in io.Reader, out io.Writer, logger *applog.Logger, quiet bool) *REPL {
	if logger == nil {
		logger = applog.Discard()
	}
	return &REPL{
		dispatcher: d,
		in:         in,
		out:        out,
		logger:     logger.WithComponent(applog.ComponentREPL),
		quiet:      quiet,
	}
}

// Run loops until exit, end of input or cancellation of ctx. Command
// failures are printed and never end the loop.
func (r *REPL) Run(ctx context.Context) error {
	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-readCtx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		if !r.quiet {
			PrintMenu(r.out)
		}
		fmt.Fprint(r.out, prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(r.out)
			select {
			case err := <-readErr:
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			default:
			}
			return nil
		}

		if strings.TrimSpace(line) == exitCommand {
			r.logger.Debug("Exit requested")
			return nil
		}

		res, err := r.dispatcher.Dispatch(ctx, line)
		if err != nil {
			fmt.Fprintln(r.out, err.Error())
			continue
		}
		PrintResult(r.out, res)
	}
}
