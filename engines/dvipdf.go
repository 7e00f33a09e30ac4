package engines

import (
	"time"

	"go.uber.org/zap"

	"github.com/texforge/bridge"
	"github.com/texforge/bridge/errors"
)

// ComposerConfig carries the composition routine's arguments.
type ComposerConfig struct {
	DviPath string
	PdfPath string

	Compress bool

	// DeterministicTags replaces time-seeded PDF object tags with
	// content-derived ones so identical inputs yield identical output.
	DeterministicTags bool

	BuildDate time.Time
}

// ComposerRoutine is the DVI-to-PDF post-processor's top-level routine.
// It returns 0 on success or its own non-zero status.
type ComposerRoutine func(s *bridge.State, cfg ComposerConfig) int

// Composer runs the document-composition post-processor.
type Composer struct {
	routine           ComposerRoutine
	logger            *zap.Logger
	compress          bool
	deterministicTags bool
	buildDate         time.Time
}

// NewComposer binds the engine routine. Compression is on by default and
// the build date starts at the epoch.
func NewComposer(routine ComposerRoutine) *Composer {
	return &Composer{
		routine:   routine,
		logger:    zap.NewNop(),
		compress:  true,
		buildDate: time.Unix(0, 0).UTC(),
	}
}

// Compress controls PDF stream compression.
func (c *Composer) Compress(enabled bool) *Composer {
	c.compress = enabled
	return c
}

// DeterministicTags controls reproducible PDF object tagging.
func (c *Composer) DeterministicTags(enabled bool) *Composer {
	c.deterministicTags = enabled
	return c
}

// BuildDate sets the engine's build timestamp.
func (c *Composer) BuildDate(date time.Time) *Composer {
	c.buildDate = date
	return c
}

// Logger attaches a logger to subsequent Process calls.
func (c *Composer) Logger(l *zap.Logger) *Composer {
	if l != nil {
		c.logger = l
	}
	return c
}

// Process runs the post-processor once against the provider. Returns the
// routine's status unchanged on normal completion, or FatalStatus plus
// the abort as the error when the run aborted.
func (c *Composer) Process(p bridge.Provider, dviPath, pdfPath string) (int, error) {
	if c.routine == nil {
		return FatalStatus, errors.InvalidInput(errors.PhaseEngine, "no composition routine bound")
	}

	s, err := bridge.Install(p, bridge.WithLogger(c.logger))
	if err != nil {
		return FatalStatus, err
	}
	defer s.Close()

	c.logger.Info("composition started",
		zap.String("invocation", s.ID()),
		zap.String("dvi", dviPath),
		zap.String("pdf", pdfPath))

	status, err := runProtected(c.logger, "composition", s.ID(), FatalStatus, func() int {
		return c.routine(s, ComposerConfig{
			DviPath:           dviPath,
			PdfPath:           pdfPath,
			Compress:          c.compress,
			DeterministicTags: c.deterministicTags,
			BuildDate:         c.buildDate,
		})
	})

	c.logger.Info("composition finished",
		zap.String("invocation", s.ID()),
		zap.Int("status", status))
	return status, err
}
