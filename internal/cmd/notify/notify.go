// Package notify prints client notices to the terminal, the CLI's stand-in
// for toast messages.
package notify

import (
	"fmt"
	"io"
	"os"

	eventtix "github.com/eventtix/eventtix"
	"github.com/eventtix/eventtix/internal/cmd/emoji"
)

// Printer writes notices with a symbol prefix. Informational notices go to
// Out, error notices to Err.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Quiet bool
}

// NewPrinter returns a Printer writing to stdout and stderr.
func NewPrinter(quiet bool) *Printer {
	return &Printer{
		Out:   os.Stdout,
		Err:   os.Stderr,
		Quiet: quiet,
	}
}

// Print writes the given notices. In quiet mode only error notices are
// written.
func (p *Printer) Print(notices []eventtix.Notice) {
	for _, n := range notices {
		if n.Error {
			fmt.Fprintf(p.Err, "%s %s\n", emoji.Error, n.Text)
			continue
		}
		if p.Quiet {
			continue
		}
		fmt.Fprintf(p.Out, "%s %s\n", emoji.Success, n.Text)
	}
}
