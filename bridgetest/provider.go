package bridgetest

import (
	"bytes"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/texforge/bridge"
)

// StdoutName is the pseudo-path under which stdout output is captured.
const StdoutName = "<stdout>"

// Injectable faults.
var (
	ErrSeekFault  = errors.New("injected seek failure")
	ErrCloseFault = errors.New("injected close failure")
	ErrOpenFault  = errors.New("injected open failure")
)

// Provider is an in-memory bridge.Provider.
//
// The zero value is not usable; call New.
type Provider struct {
	files   map[string][]byte
	mtimes  map[string]time.Time
	outputs map[string][]byte
	primary string

	// Recorded diagnostics, in issue order.
	Warnings []string
	Errors   []string

	// Fault injection. Each flag makes the corresponding provider
	// operation report failure.
	FailSeek        bool
	FailInputClose  bool
	FailOutputClose bool
	FailOpenInput   bool
	FailOpenOutput  bool
}

// New creates an empty in-memory provider.
func New() *Provider {
	return &Provider{
		files:   make(map[string][]byte),
		mtimes:  make(map[string]time.Time),
		outputs: make(map[string][]byte),
	}
}

// SetFile registers an input resource.
func (p *Provider) SetFile(name string, data []byte) {
	p.files[name] = data
	p.mtimes[name] = time.Unix(0, 0).UTC()
}

// SetFileMtime registers an input resource with an explicit timestamp.
func (p *Provider) SetFileMtime(name string, data []byte, mtime time.Time) {
	p.files[name] = data
	p.mtimes[name] = mtime
}

// SetPrimary registers the primary top-level input.
func (p *Provider) SetPrimary(name string, data []byte) {
	p.SetFile(name, data)
	p.primary = name
}

// Output returns the bytes written to a closed output handle.
func (p *Provider) Output(name string) ([]byte, bool) {
	data, ok := p.outputs[name]
	return data, ok
}

// Stdout returns everything written through stdout handles.
func (p *Provider) Stdout() []byte {
	return p.outputs[StdoutName]
}

func (p *Provider) OpenOutput(name string, gzip bool) (bridge.OutputStream, error) {
	if p.FailOpenOutput {
		return nil, ErrOpenFault
	}
	return &memOutput{provider: p, name: name}, nil
}

func (p *Provider) OpenOutputStdout() (bridge.OutputStream, error) {
	if p.FailOpenOutput {
		return nil, ErrOpenFault
	}
	return &memOutput{provider: p, name: StdoutName, appendMode: true}, nil
}

func (p *Provider) OpenInput(name string, format bridge.FileFormat, gzip bool) (bridge.InputStream, error) {
	if p.FailOpenInput {
		return nil, ErrOpenFault
	}
	data, ok := p.files[name]
	if !ok {
		// Closed outputs double as inputs so round trips work in memory.
		data, ok = p.outputs[name]
	}
	if !ok {
		return nil, fmt.Errorf("no such resource %q (format %v)", name, format)
	}
	return p.newInput(name, data), nil
}

func (p *Provider) OpenPrimaryInput() (bridge.InputStream, error) {
	if p.primary == "" {
		return nil, errors.New("no primary input registered")
	}
	return p.newInput(p.primary, p.files[p.primary]), nil
}

func (p *Provider) BeginWarning() bridge.Diagnostic {
	return &memDiagnostic{provider: p, isError: false}
}

func (p *Provider) BeginError() bridge.Diagnostic {
	return &memDiagnostic{provider: p, isError: true}
}

func (p *Provider) IssueWarning(text string) {
	p.Warnings = append(p.Warnings, text)
}

func (p *Provider) IssueError(text string) {
	p.Errors = append(p.Errors, text)
}

func (p *Provider) FileDigest(name string) (bridge.Digest, error) {
	data, ok := p.files[name]
	if !ok {
		data, ok = p.outputs[name]
	}
	if !ok {
		return bridge.Digest{}, fmt.Errorf("no such resource %q", name)
	}
	return bridge.Digest(md5.Sum(data)), nil
}

func (p *Provider) DataDigest(data []byte) (bridge.Digest, error) {
	return bridge.Digest(md5.Sum(data)), nil
}

func (p *Provider) newInput(name string, data []byte) bridge.InputStream {
	mtime, ok := p.mtimes[name]
	if !ok {
		mtime = time.Unix(0, 0).UTC()
	}
	return &memInput{
		provider: p,
		name:     name,
		reader:   bytes.NewReader(data),
		size:     uint64(len(data)),
		mtime:    mtime,
	}
}

type memInput struct {
	provider *Provider
	name     string
	reader   *bytes.Reader
	size     uint64
	mtime    time.Time
}

func (in *memInput) Read(p []byte) (int, error) {
	return in.reader.Read(p)
}

func (in *memInput) Seek(offset int64, whence int) (int64, error) {
	if in.provider.FailSeek {
		return 0, ErrSeekFault
	}
	return in.reader.Seek(offset, whence)
}

func (in *memInput) Size() uint64 {
	return in.size
}

func (in *memInput) Mtime() time.Time {
	return in.mtime
}

func (in *memInput) Close() error {
	if in.provider.FailInputClose {
		return ErrCloseFault
	}
	return nil
}

type memOutput struct {
	provider   *Provider
	name       string
	buf        bytes.Buffer
	appendMode bool
}

func (out *memOutput) Write(p []byte) (int, error) {
	return out.buf.Write(p)
}

func (out *memOutput) Flush() error {
	return nil
}

func (out *memOutput) Close() error {
	if out.appendMode {
		out.provider.outputs[out.name] = append(out.provider.outputs[out.name], out.buf.Bytes()...)
	} else {
		out.provider.outputs[out.name] = out.buf.Bytes()
	}
	if out.provider.FailOutputClose {
		return ErrCloseFault
	}
	return nil
}

type memDiagnostic struct {
	provider *Provider
	isError  bool
	buf      strings.Builder
}

func (d *memDiagnostic) Append(text string) {
	d.buf.WriteString(text)
}

func (d *memDiagnostic) Finish() {
	if d.isError {
		d.provider.Errors = append(d.provider.Errors, d.buf.String())
	} else {
		d.provider.Warnings = append(d.provider.Warnings, d.buf.String())
	}
}
