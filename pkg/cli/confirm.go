package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/interfaces"
)

// terminalConfirmer asks on out and reads one answer line from in
type terminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalConfirmer(in io.Reader, out io.Writer) *terminalConfirmer {
	return &terminalConfirmer{in: bufio.NewReader(in), out: out}
}

func (t *terminalConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(t.out, "%s [y/N]: ", prompt); err != nil {
		return false, goerr.Wrap(err, "failed to write prompt")
	}

	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, goerr.Wrap(err, "failed to read answer")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "بله", "آره":
		return true, nil
	default:
		return false, nil
	}
}

// confirmerFor returns a confirmer that skips the prompt when assumeYes is set
func confirmerFor(assumeYes bool, in io.Reader, out io.Writer) interfaces.Confirmer {
	if assumeYes {
		return interfaces.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
			return true, nil
		})
	}
	return newTerminalConfirmer(in, out)
}
