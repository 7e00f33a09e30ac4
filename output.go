package bridge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/texforge/bridge/errors"
	"github.com/texforge/bridge/resource"
)

// OpenOutput asks the provider for a writable stream backing name and
// returns its handle, or 0 if the provider cannot open it. Engine code
// treats 0 as an ordinary failure and carries on.
func (s *State) OpenOutput(name string, gzip bool) resource.Handle {
	st, err := s.provider.OpenOutput(name, gzip)
	if err != nil || st == nil {
		s.logger.Debug("output open failed",
			zap.String("name", name),
			zap.Error(err))
		return 0
	}
	return s.table.Insert(resource.ClassOutput, st)
}

// OpenOutputStdout opens the host's standard-output analogue.
func (s *State) OpenOutputStdout() resource.Handle {
	st, err := s.provider.OpenOutputStdout()
	if err != nil || st == nil {
		s.logger.Debug("stdout open failed", zap.Error(err))
		return 0
	}
	return s.table.Insert(resource.ClassOutput, st)
}

// Write forwards bytes to the provider and returns how many were
// accepted. A short count signals ordinary failure; it does not abort.
func (s *State) Write(h resource.Handle, p []byte) int {
	st := s.output(h, errors.PhaseOutput)
	n, err := st.Write(p)
	if err != nil {
		s.logger.Debug("output write failed", zap.Error(err))
	}
	return n
}

// Putc writes a single byte and returns it, or EOF on failure.
func (s *State) Putc(h resource.Handle, c byte) int {
	st := s.output(h, errors.PhaseOutput)
	if n, err := st.Write([]byte{c}); err != nil || n != 1 {
		return EOF
	}
	return int(c)
}

// Printf renders the format into the bounded message buffer and writes
// the result. Text beyond MessageBufferSize-1 bytes is dropped silently.
// Returns the number of bytes written.
func (s *State) Printf(h resource.Handle, format string, args ...any) int {
	msg := truncateMessage(fmt.Sprintf(format, args...))
	if len(msg) == 0 {
		return 0
	}
	return s.Write(h, []byte(msg))
}

// Flush drains provider-side buffering. Returns 0 on success, EOF on
// failure; flush failure is ordinary and does not abort.
func (s *State) Flush(h resource.Handle) int {
	st := s.output(h, errors.PhaseOutput)
	if err := st.Flush(); err != nil {
		s.logger.Debug("output flush failed", zap.Error(err))
		return EOF
	}
	return 0
}

// CloseOutput invalidates the handle and closes the provider stream.
// Returns 0 on success, EOF if the provider reported failure. Unlike
// input close, an output close failure is reported as a sentinel; the
// asymmetry matches what existing engine code expects.
func (s *State) CloseOutput(h resource.Handle) int {
	v, ok := s.table.Remove(h, resource.ClassOutput)
	if !ok {
		s.Abort("%v", errors.UseAfterClose(errors.PhaseClose, uint64(h)))
	}
	if err := v.(OutputStream).Close(); err != nil {
		s.logger.Debug("output close failed", zap.Error(err))
		return EOF
	}
	return 0
}
