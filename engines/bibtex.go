package engines

import (
	"go.uber.org/zap"

	"github.com/texforge/bridge"
	"github.com/texforge/bridge/errors"
)

// BibRoutine is the bibliography processor's top-level routine. It
// returns a history code: spotless, warnings issued, or errors issued.
// Fatal conditions abort instead of returning.
type BibRoutine func(s *bridge.State, auxName string) bridge.History

// Bibliographer runs the bibliography processor.
type Bibliographer struct {
	routine BibRoutine
	logger  *zap.Logger
}

// NewBibliographer binds the engine routine.
func NewBibliographer(routine BibRoutine) *Bibliographer {
	return &Bibliographer{
		routine: routine,
		logger:  zap.NewNop(),
	}
}

// Logger attaches a logger to subsequent Process calls.
func (b *Bibliographer) Logger(l *zap.Logger) *Bibliographer {
	if l != nil {
		b.logger = l
	}
	return b
}

// Process runs the bibliography processor once against the provider,
// resolving auxName as the root auxiliary file. The routine's history
// value passes through unchanged on normal completion; an abort yields
// FatalStatus plus the abort as the error.
func (b *Bibliographer) Process(p bridge.Provider, auxName string) (int, error) {
	if b.routine == nil {
		return FatalStatus, errors.InvalidInput(errors.PhaseEngine, "no bibliography routine bound")
	}

	s, err := bridge.Install(p, bridge.WithLogger(b.logger))
	if err != nil {
		return FatalStatus, err
	}
	defer s.Close()

	b.logger.Info("bibliography started",
		zap.String("invocation", s.ID()),
		zap.String("aux", auxName))

	status, err := runProtected(b.logger, "bibliography", s.ID(), FatalStatus, func() int {
		return int(b.routine(s, auxName))
	})

	b.logger.Info("bibliography finished",
		zap.String("invocation", s.ID()),
		zap.Int("status", status))
	return status, err
}
