package bridge

import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/texforge/bridge/errors"
	"github.com/texforge/bridge/resource"
)

// inputEntry wraps a provider stream with the one-byte pushback that
// Ungetc needs. The pushback is bridge-side state, invisible to the
// provider, and is discarded by Seek.
type inputEntry struct {
	stream  InputStream
	name    string
	peek    byte
	hasPeek bool
}

// OpenInput asks the provider to resolve name as a resource of the given
// format and returns a readable handle, or 0 if the provider cannot find
// or open it. Engine code treats 0 as an ordinary failure.
func (s *State) OpenInput(name string, format FileFormat, gzip bool) resource.Handle {
	st, err := s.provider.OpenInput(name, format, gzip)
	if err != nil || st == nil {
		s.logger.Debug("input open failed",
			zap.String("name", name),
			zap.Stringer("format", format),
			zap.Error(err))
		return 0
	}
	return s.table.Insert(resource.ClassInput, &inputEntry{stream: st, name: name})
}

// OpenPrimaryInput opens the host's primary top-level input.
func (s *State) OpenPrimaryInput() resource.Handle {
	st, err := s.provider.OpenPrimaryInput()
	if err != nil || st == nil {
		s.logger.Debug("primary input open failed", zap.Error(err))
		return 0
	}
	return s.table.Insert(resource.ClassInput, &inputEntry{stream: st, name: "<primary>"})
}

// InputSize returns the total byte count of the resource.
func (s *State) InputSize(h resource.Handle) uint64 {
	return s.input(h, errors.PhaseInput).stream.Size()
}

// InputMtime returns the resource's modification timestamp.
func (s *State) InputMtime(h resource.Handle) time.Time {
	return s.input(h, errors.PhaseInput).stream.Mtime()
}

// Seek repositions the stream and returns the new offset. A provider
// error here is an internal failure, not an ordinary EOF or range
// condition, and leaves engine-side buffering assumptions unsafe: it
// escalates to a fatal abort instead of returning a sentinel.
func (s *State) Seek(h resource.Handle, offset int64, whence int) int64 {
	in := s.input(h, errors.PhaseSeek)
	in.hasPeek = false
	pos, err := in.stream.Seek(offset, whence)
	if err != nil {
		s.Abort("%v", errors.ProviderFailure(errors.PhaseSeek, in.name, err))
	}
	return pos
}

// Read fills p and returns the byte count, or EOF at end of input.
// Ordinary read failures also return EOF; they do not abort.
func (s *State) Read(h resource.Handle, p []byte) int {
	in := s.input(h, errors.PhaseInput)
	if len(p) == 0 {
		return 0
	}

	n := 0
	if in.hasPeek {
		p[0] = in.peek
		in.hasPeek = false
		n = 1
		p = p[1:]
	}

	for len(p) > 0 {
		m, err := in.stream.Read(p)
		n += m
		p = p[m:]
		if err != nil {
			if err != io.EOF {
				s.logger.Debug("input read failed",
					zap.String("name", in.name),
					zap.Error(err))
			}
			break
		}
	}

	if n == 0 {
		return EOF
	}
	return n
}

// Getc returns the next byte, or EOF at end of input.
func (s *State) Getc(h resource.Handle) int {
	in := s.input(h, errors.PhaseInput)
	if in.hasPeek {
		in.hasPeek = false
		return int(in.peek)
	}

	var buf [1]byte
	for {
		n, err := in.stream.Read(buf[:])
		if n == 1 {
			return int(buf[0])
		}
		if err != nil {
			return EOF
		}
	}
}

// Ungetc pushes c back so the next Getc or Read returns it first.
// Only one byte of pushback is available; a second Ungetc without an
// intervening read returns EOF.
func (s *State) Ungetc(h resource.Handle, c byte) int {
	in := s.input(h, errors.PhaseInput)
	if in.hasPeek {
		return EOF
	}
	in.peek = c
	in.hasPeek = true
	return 0
}

// CloseInput invalidates the handle and closes the provider stream.
// A provider failure here means the provider may already consider the
// resource released; continuing is unsafe, so it escalates to a fatal
// abort. Returns 0 otherwise.
func (s *State) CloseInput(h resource.Handle) int {
	v, ok := s.table.Remove(h, resource.ClassInput)
	if !ok {
		s.Abort("%v", errors.UseAfterClose(errors.PhaseClose, uint64(h)))
	}
	in := v.(*inputEntry)
	if err := in.stream.Close(); err != nil {
		s.Abort("%v", errors.ProviderFailure(errors.PhaseClose, in.name, err))
	}
	return 0
}
