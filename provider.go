package bridge

import "time"

// DigestSize is the size of a content digest in bytes (MD5).
const DigestSize = 16

// Digest is a fixed-size content digest computed by the provider.
type Digest [DigestSize]byte

// InputStream is an open input resource owned by the provider.
//
// Read follows io.Reader semantics. Seek must return a non-nil error only
// for internal failures: an internal seek failure leaves engine-side
// buffering assumptions unsafe, so the bridge escalates it to a fatal
// abort. Ordinary out-of-range positioning is the provider's business to
// clamp or report through the returned offset.
type InputStream interface {
	Read(p []byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	Size() uint64
	Mtime() time.Time
	Close() error
}

// OutputStream is an open output resource owned by the provider.
type OutputStream interface {
	Write(p []byte) (int, error)
	Flush() error
	Close() error
}

// Diagnostic is a provider-owned message builder. Begin allocates it,
// Append attaches text zero or more times, Finish emits it. The bridge
// invalidates the handle on Finish; the severity is fixed at begin time.
type Diagnostic interface {
	Append(text string)
	Finish()
}

// Provider implements every I/O, diagnostic, and hashing operation on
// behalf of the engines. Exactly one Provider is active at a time,
// process-wide; the bridge holds only a non-owning reference for the
// duration of one entry-point invocation.
//
// Open operations return (nil, error) on ordinary failure; the bridge
// translates that into the handle-0 sentinel the engines expect. The
// provider decides what actually backs a stream: local disk, an archive,
// a network bundle, or stdout.
type Provider interface {
	OpenOutput(name string, gzip bool) (OutputStream, error)
	OpenOutputStdout() (OutputStream, error)

	OpenInput(name string, format FileFormat, gzip bool) (InputStream, error)
	OpenPrimaryInput() (InputStream, error)

	BeginWarning() Diagnostic
	BeginError() Diagnostic
	IssueWarning(text string)
	IssueError(text string)

	FileDigest(name string) (Digest, error)
	DataDigest(data []byte) (Digest, error)
}
