package engines

import (
	"time"

	"go.uber.org/zap"

	"github.com/texforge/bridge"
	"github.com/texforge/bridge/errors"
)

// TexConfig carries the typesetting routine's arguments.
type TexConfig struct {
	DumpName  string
	InputName string

	HaltOnError        bool
	InitexMode         bool
	Synctex            bool
	SemanticPagination bool

	// BuildDate feeds the engine's notion of "now" (\today and friends).
	// Reproducible builds pin it; the default is the Unix epoch.
	BuildDate time.Time
}

// TexRoutine is the typesetting engine's top-level routine.
type TexRoutine func(s *bridge.State, cfg TexConfig) bridge.History

// Typesetter runs the typesetting engine. Configure it with the builder
// methods, then call Process once per attempt.
type Typesetter struct {
	routine            TexRoutine
	logger             *zap.Logger
	haltOnError        bool
	initexMode         bool
	synctex            bool
	semanticPagination bool
	buildDate          time.Time
}

// NewTypesetter binds the engine routine with default settings:
// halt-on-error enabled, everything else off, build date at the epoch.
func NewTypesetter(routine TexRoutine) *Typesetter {
	return &Typesetter{
		routine:     routine,
		logger:      zap.NewNop(),
		haltOnError: true,
		buildDate:   time.Unix(0, 0).UTC(),
	}
}

// HaltOnError controls whether engine errors are upgraded to fatals.
func (t *Typesetter) HaltOnError(halt bool) *Typesetter {
	t.haltOnError = halt
	return t
}

// InitexMode makes the engine generate a format dump that serializes its
// state instead of a document.
func (t *Typesetter) InitexMode(initex bool) *Typesetter {
	t.initexMode = initex
	return t
}

// Synctex enables SyncTeX data production.
func (t *Typesetter) Synctex(enabled bool) *Typesetter {
	t.synctex = enabled
	return t
}

// SemanticPagination disables the page builder and emits top-level boxes
// vertically as they are created.
func (t *Typesetter) SemanticPagination(enabled bool) *Typesetter {
	t.semanticPagination = enabled
	return t
}

// BuildDate sets the engine's build timestamp.
func (t *Typesetter) BuildDate(date time.Time) *Typesetter {
	t.buildDate = date
	return t
}

// Logger attaches a logger to subsequent Process calls.
func (t *Typesetter) Logger(l *zap.Logger) *Typesetter {
	if l != nil {
		t.logger = l
	}
	return t
}

// Process runs the typesetting engine once against the provider and
// returns its history code; HistoryFatalError plus the abort as the
// error when the run aborted.
func (t *Typesetter) Process(p bridge.Provider, dumpName, inputName string) (bridge.History, error) {
	if t.routine == nil {
		return bridge.HistoryFatalError, errors.InvalidInput(errors.PhaseEngine, "no typesetting routine bound")
	}

	s, err := bridge.Install(p, bridge.WithLogger(t.logger))
	if err != nil {
		return bridge.HistoryFatalError, err
	}
	defer s.Close()

	t.logger.Info("typesetting started",
		zap.String("invocation", s.ID()),
		zap.String("dump", dumpName),
		zap.String("input", inputName))

	status, err := runProtected(t.logger, "typesetting", s.ID(), int(bridge.HistoryFatalError), func() int {
		return int(t.routine(s, TexConfig{
			DumpName:           dumpName,
			InputName:          inputName,
			HaltOnError:        t.haltOnError,
			InitexMode:         t.initexMode,
			Synctex:            t.synctex,
			SemanticPagination: t.semanticPagination,
			BuildDate:          t.buildDate,
		}))
	})

	history := bridge.History(status)
	t.logger.Info("typesetting finished",
		zap.String("invocation", s.ID()),
		zap.Stringer("history", history))
	return history, err
}
