package status

import (
	"strings"

	"github.com/texforge/bridge"
)

// Sink adapts a Backend to the diagnostic half of the bridge.Provider
// contract. Host providers embed it to satisfy BeginWarning, BeginError,
// IssueWarning, and IssueError.
type Sink struct {
	backend Backend
}

// NewSink creates a sink reporting to b.
func NewSink(b Backend) *Sink {
	return &Sink{backend: b}
}

func (s *Sink) BeginWarning() bridge.Diagnostic {
	return &sinkDiagnostic{kind: Warning, backend: s.backend}
}

func (s *Sink) BeginError() bridge.Diagnostic {
	return &sinkDiagnostic{kind: Error, backend: s.backend}
}

func (s *Sink) IssueWarning(text string) {
	s.backend.Report(Warning, text, nil)
}

func (s *Sink) IssueError(text string) {
	s.backend.Report(Error, text, nil)
}

// sinkDiagnostic accumulates appended text and reports it on Finish.
type sinkDiagnostic struct {
	kind    MessageKind
	backend Backend
	buf     strings.Builder
}

func (d *sinkDiagnostic) Append(text string) {
	d.buf.WriteString(text)
}

func (d *sinkDiagnostic) Finish() {
	d.backend.Report(d.kind, d.buf.String(), nil)
}
