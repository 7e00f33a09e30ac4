package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in an invocation the error occurred
type Phase string

const (
	PhaseInstall    Phase = "install"    // provider installation
	PhaseInput      Phase = "input"      // input stream operations
	PhaseOutput     Phase = "output"     // output stream operations
	PhaseSeek       Phase = "seek"       // input seek
	PhaseClose      Phase = "close"      // stream close
	PhaseDiagnostic Phase = "diagnostic" // diagnostic channel
	PhaseDigest     Phase = "digest"     // content digests
	PhaseEngine     Phase = "engine"     // engine entry points
)

// Kind categorizes the error
type Kind string

const (
	KindAlreadyInstalled Kind = "already_installed"
	KindNotInstalled     Kind = "not_installed"
	KindInvalidHandle    Kind = "invalid_handle"
	KindUseAfterClose    Kind = "use_after_close"
	KindProviderFailure  Kind = "provider_failure"
	KindNotFound         Kind = "not_found"
	KindAborted          Kind = "aborted"
	KindInvalidInput     Kind = "invalid_input"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string
	Handle   uint64
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Resource != "" {
		b.WriteString(" on ")
		b.WriteString(e.Resource)
	}

	if e.Handle != 0 {
		fmt.Fprintf(&b, " (handle %d)", e.Handle)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Resource sets the resource name involved
func (b *Builder) Resource(name string) *Builder {
	b.err.Resource = name
	return b
}

// Handle sets the handle involved
func (b *Builder) Handle(h uint64) *Builder {
	b.err.Handle = h
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// AlreadyInstalled reports a second Install while an invocation is active
func AlreadyInstalled() *Error {
	return &Error{
		Phase:  PhaseInstall,
		Kind:   KindAlreadyInstalled,
		Detail: "a provider is already installed; entry points must not be invoked reentrantly",
	}
}

// NotInstalled reports a bridge operation with no active provider
func NotInstalled(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInstalled,
		Detail: "no provider installed",
	}
}

// InvalidHandle reports an operation on an unknown or wrong-class handle
func InvalidHandle(phase Phase, handle uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidHandle,
		Handle: handle,
	}
}

// UseAfterClose reports an operation on a handle that was already closed
func UseAfterClose(phase Phase, handle uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUseAfterClose,
		Handle: handle,
	}
}

// ProviderFailure wraps a failure reported by the provider
func ProviderFailure(phase Phase, resource string, cause error) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindProviderFailure,
		Resource: resource,
		Cause:    cause,
	}
}

// InvalidInput reports a malformed argument
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
