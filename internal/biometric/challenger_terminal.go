package biometric

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// TerminalChallenger proves user presence over a text terminal. It
// stands in for a platform sensor: the prompt is printed and the user
// confirms or cancels with a single line of input.
type TerminalChallenger struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalChallenger reads confirmations from in and writes prompts
// to out.
func NewTerminalChallenger(in io.Reader, out io.Writer) *TerminalChallenger {
	return &TerminalChallenger{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (t *TerminalChallenger) Probe(_ context.Context) bool { return true }

func (t *TerminalChallenger) EnrolledKinds(_ context.Context) []Kind {
	return []Kind{KindOther}
}

func (t *TerminalChallenger) Challenge(ctx context.Context, prompt, fallbackLabel string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	fmt.Fprintf(t.out, "%s\n[y = confirm, anything else = cancel] (%s): ", prompt, fallbackLabel)

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("%w: %w", ErrFailed, err)
	}

	if strings.EqualFold(strings.TrimSpace(line), "y") {
		return nil
	}
	return ErrCancelled
}
