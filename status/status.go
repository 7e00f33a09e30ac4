package status

import (
	"os"

	"golang.org/x/term"
)

// MessageKind classifies a reported message.
type MessageKind int

const (
	Note MessageKind = iota
	Warning
	Error
)

func (k MessageKind) String() string {
	switch k {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ChatterLevel controls how much non-essential output a backend emits.
type ChatterLevel int

const (
	// ChatterMinimal suppresses notes; warnings and errors still appear.
	ChatterMinimal ChatterLevel = iota
	ChatterNormal
)

// Backend receives messages produced during an engine run.
type Backend interface {
	// Report emits a message of the given kind. cause may be nil; when
	// present it is rendered as a "caused by" trailer.
	Report(kind MessageKind, message string, cause error)

	// NoteHighlighted emits a note with the middle fragment emphasized.
	NoteHighlighted(before, highlighted, after string)
}

// Autodetect returns a Color backend when stderr is a terminal and a
// Plain backend otherwise.
func Autodetect(chatter ChatterLevel) Backend {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return NewColor(chatter)
	}
	return NewPlain(chatter)
}
