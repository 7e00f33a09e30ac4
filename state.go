package bridge

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/texforge/bridge/errors"
	"github.com/texforge/bridge/resource"
)

// MessageBufferSize bounds every rendered diagnostic, abort, and formatted
// write. Longer messages are truncated to MessageBufferSize-1 content
// bytes, never rejected.
const MessageBufferSize = 1024

// EOF is the sentinel returned by Getc and Read at end of input.
const EOF = -1

// AbortError is the panic value carried by a fatal abort. It unwinds from
// wherever Abort was called straight to the entry point that installed the
// provider; intermediate frames neither see nor handle it.
type AbortError struct {
	Message string
}

func (e *AbortError) Error() string {
	return e.Message
}

// The single active invocation. The bridge is single-threaded by contract
// (see the package documentation), so this is a plain slot guarded by a
// fail-fast check in Install rather than a lock.
var active *State

// State binds the active provider for one entry-point invocation. All
// engine-side I/O, diagnostics, and abort signaling go through it.
type State struct {
	provider Provider
	table    *resource.Table
	logger   *zap.Logger
	id       string
	errMsg   string
	closed   bool
}

// Option configures a State at install time.
type Option func(*State)

// WithLogger attaches a logger to the invocation. The default is a nop
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// Install binds the provider as the process-wide active provider and
// returns the invocation state. It fails if a provider is already
// installed: entry points must not be invoked reentrantly or concurrently,
// and a second Install is a programming-contract violation rather than a
// recoverable condition.
func Install(p Provider, opts ...Option) (*State, error) {
	if p == nil {
		return nil, errors.InvalidInput(errors.PhaseInstall, "nil provider")
	}
	if active != nil {
		return nil, errors.AlreadyInstalled()
	}

	s := &State{
		provider: p,
		table:    resource.NewTable(),
		logger:   zap.NewNop(),
		id:       uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}

	active = s
	s.logger.Debug("provider installed", zap.String("invocation", s.id))
	return s, nil
}

// Active reports whether a provider is currently installed.
func Active() bool {
	return active != nil
}

// Current returns the state of the running invocation, or nil if no
// provider is installed.
func Current() *State {
	return active
}

// Close clears the provider binding. It is idempotent and runs on every
// exit path, including abort, so a subsequent invocation can never observe
// a stale provider.
//
// Handles still open at this point are only invalidated, not closed:
// after an abort the provider owns cleanup of whatever it still has open.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if n := s.table.Len(); n > 0 {
		s.logger.Warn("handles still open at teardown",
			zap.String("invocation", s.id),
			zap.Int("count", n))
	}
	s.table.Clear()

	if active == s {
		active = nil
	}
	s.logger.Debug("provider cleared", zap.String("invocation", s.id))
}

// ID returns the unique identifier of this invocation.
func (s *State) ID() string {
	return s.id
}

// Logger returns the invocation's logger.
func (s *State) Logger() *zap.Logger {
	return s.logger
}

// Provider returns the installed provider.
func (s *State) Provider() Provider {
	return s.provider
}

// Abort records a bounded, formatted message and unwinds directly to the
// entry point. It never returns. Intermediate frames are skipped without
// their cooperation; the entry point clears the context and reports the
// engine's fatal status.
func (s *State) Abort(format string, args ...any) {
	s.errMsg = truncateMessage(fmt.Sprintf(format, args...))
	s.logger.Error("fatal abort",
		zap.String("invocation", s.id),
		zap.String("message", s.errMsg))
	panic(&AbortError{Message: s.errMsg})
}

// ErrorMessage returns the text recorded by the most recent Abort, or ""
// if none was raised.
func (s *State) ErrorMessage() string {
	return s.errMsg
}

// input resolves an input handle or aborts. A handle that does not
// resolve is either forged, closed, or of the wrong class; continuing
// would operate on a resource the provider no longer vouches for.
func (s *State) input(h resource.Handle, phase errors.Phase) *inputEntry {
	v, ok := s.table.Get(h, resource.ClassInput)
	if !ok {
		s.Abort("%v", errors.InvalidHandle(phase, uint64(h)))
	}
	return v.(*inputEntry)
}

func (s *State) output(h resource.Handle, phase errors.Phase) OutputStream {
	v, ok := s.table.Get(h, resource.ClassOutput)
	if !ok {
		s.Abort("%v", errors.InvalidHandle(phase, uint64(h)))
	}
	return v.(OutputStream)
}

func truncateMessage(msg string) string {
	if len(msg) > MessageBufferSize-1 {
		return msg[:MessageBufferSize-1]
	}
	return msg
}
