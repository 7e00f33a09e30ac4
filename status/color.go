package status

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color is a styled backend for interactive terminals. Prefixes are
// colored by kind; highlighted note fragments are rendered bold.
type Color struct {
	chatter ChatterLevel
	stdout  io.Writer
	stderr  io.Writer

	note      lipgloss.Style
	warning   lipgloss.Style
	errstyle  lipgloss.Style
	highlight lipgloss.Style
}

// NewColor creates a color backend writing to os.Stdout and os.Stderr.
func NewColor(chatter ChatterLevel) *Color {
	return NewColorWriters(chatter, os.Stdout, os.Stderr)
}

// NewColorWriters creates a color backend with explicit writers.
func NewColorWriters(chatter ChatterLevel, stdout, stderr io.Writer) *Color {
	return &Color{
		chatter:   chatter,
		stdout:    stdout,
		stderr:    stderr,
		note:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		errstyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		highlight: lipgloss.NewStyle().Bold(true),
	}
}

func (c *Color) Report(kind MessageKind, message string, cause error) {
	if kind == Note && c.chatter <= ChatterMinimal {
		return
	}

	w := c.stderr
	if kind == Note {
		w = c.stdout
	}

	fmt.Fprintf(w, "%s %s\n", c.prefix(kind), message)
	for ; cause != nil; cause = unwrap(cause) {
		fmt.Fprintf(w, "%s %s\n", c.errstyle.Render("caused by:"), cause)
	}
}

func (c *Color) NoteHighlighted(before, highlighted, after string) {
	if c.chatter <= ChatterMinimal {
		return
	}
	fmt.Fprintf(c.stdout, "%s%s%s\n", before, c.highlight.Render(highlighted), after)
}

func (c *Color) prefix(kind MessageKind) string {
	label := kind.String() + ":"
	switch kind {
	case Note:
		return c.note.Render(label)
	case Warning:
		return c.warning.Render(label)
	default:
		return c.errstyle.Render(label)
	}
}
