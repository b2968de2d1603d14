package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Prompt is written before each line of input
const Prompt = "Enter a command: "

// Run reads commands from in until skip, EOF, or ctx is cancelled,
// writing each handled message to out. Cancellation is seen even while a
// read is blocked; the reader goroutine is then left to finish on its own.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *Session) error {
	if _, err := fmt.Fprintln(out, Help()); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprint(out, Prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}
				return nil
			}
			line = l
		}

		res := Dispatch(s, line)
		if !res.Handled {
			slog.Debug("ignored input", "input", line)
			continue
		}
		slog.Debug("command handled", "command", string(res.Command), "turns", s.Turns)
		if res.Done {
			return nil
		}
		if _, err := fmt.Fprintln(out, res.Message); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
}

// readLines scans in on its own goroutine. The error channel receives the
// scanner error before lines is closed.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}
