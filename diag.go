package bridge

import (
	"fmt"

	"github.com/texforge/bridge/errors"
	"github.com/texforge/bridge/resource"
)

// BeginWarning allocates a warning-class diagnostic builder at the
// provider and returns its handle.
func (s *State) BeginWarning() resource.Handle {
	return s.table.Insert(resource.ClassDiagnostic, s.provider.BeginWarning())
}

// BeginError allocates an error-class diagnostic builder at the provider
// and returns its handle. The severity is fixed for the builder's
// lifetime.
func (s *State) BeginError() resource.Handle {
	return s.table.Insert(resource.ClassDiagnostic, s.provider.BeginError())
}

// DiagAppend attaches text to an in-flight diagnostic.
func (s *State) DiagAppend(h resource.Handle, text string) {
	s.diagnostic(h).Append(text)
}

// DiagPrintf renders into the bounded message buffer and appends the
// result to an in-flight diagnostic.
func (s *State) DiagPrintf(h resource.Handle, format string, args ...any) {
	s.diagnostic(h).Append(truncateMessage(fmt.Sprintf(format, args...)))
}

// DiagFinish emits the diagnostic and invalidates the handle. Using the
// handle afterward is caught at the boundary like any use-after-close.
func (s *State) DiagFinish(h resource.Handle) {
	v, ok := s.table.Remove(h, resource.ClassDiagnostic)
	if !ok {
		s.Abort("%v", errors.UseAfterClose(errors.PhaseDiagnostic, uint64(h)))
	}
	v.(Diagnostic).Finish()
}

// IssueWarning is the one-shot convenience path: it renders into the
// bounded buffer and performs begin+append+finish in a single call.
func (s *State) IssueWarning(format string, args ...any) {
	s.provider.IssueWarning(truncateMessage(fmt.Sprintf(format, args...)))
}

// IssueError is the error-class one-shot convenience path.
func (s *State) IssueError(format string, args ...any) {
	s.provider.IssueError(truncateMessage(fmt.Sprintf(format, args...)))
}

func (s *State) diagnostic(h resource.Handle) Diagnostic {
	v, ok := s.table.Get(h, resource.ClassDiagnostic)
	if !ok {
		s.Abort("%v", errors.InvalidHandle(errors.PhaseDiagnostic, uint64(h)))
	}
	return v.(Diagnostic)
}
