package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Clipboard supports best-effort copy of the summary.
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard writes to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}

// copyToClipboard copies text and reports the outcome on out. Failures are only warnings.
func copyToClipboard(out io.Writer, cb Clipboard, text string) {
	if err := cb.Copy(text); err != nil {
		_, _ = fmt.Fprintf(out, "Warning: Could not copy to clipboard: %v\n", err)
		return
	}
	_, _ = fmt.Fprintln(out, "\n✓ Summary copied to clipboard!")
}
