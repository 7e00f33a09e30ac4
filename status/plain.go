package status

import (
	"fmt"
	"io"
	"os"
)

// Plain is an uncolored backend suitable for pipes and logs. Notes go to
// stdout; warnings and errors go to stderr.
type Plain struct {
	chatter ChatterLevel
	stdout  io.Writer
	stderr  io.Writer
}

// NewPlain creates a plain backend writing to os.Stdout and os.Stderr.
func NewPlain(chatter ChatterLevel) *Plain {
	return &Plain{
		chatter: chatter,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// NewPlainWriters creates a plain backend with explicit writers.
func NewPlainWriters(chatter ChatterLevel, stdout, stderr io.Writer) *Plain {
	return &Plain{
		chatter: chatter,
		stdout:  stdout,
		stderr:  stderr,
	}
}

func (p *Plain) Report(kind MessageKind, message string, cause error) {
	if kind == Note && p.chatter <= ChatterMinimal {
		return
	}

	w := p.stderr
	if kind == Note {
		w = p.stdout
	}

	fmt.Fprintf(w, "%s: %s\n", kind, message)
	for ; cause != nil; cause = unwrap(cause) {
		fmt.Fprintf(w, "caused by: %s\n", cause)
	}
}

func (p *Plain) NoteHighlighted(before, highlighted, after string) {
	if p.chatter <= ChatterMinimal {
		return
	}
	fmt.Fprintf(p.stdout, "%s%s%s\n", before, highlighted, after)
}

func unwrap(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}
