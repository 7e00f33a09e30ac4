package engines_test

import (
	"errors"
	"testing"
	"time"

	"github.com/texforge/bridge"
	"github.com/texforge/bridge/bridgetest"
	"github.com/texforge/bridge/engines"
)

func TestTypesetterSpotless(t *testing.T) {
	prov := bridgetest.New()
	prov.SetPrimary("main.tex", []byte(`\documentclass{article}`))

	eng := engines.NewTypesetter(func(s *bridge.State, cfg engines.TexConfig) bridge.History {
		h := s.OpenPrimaryInput()
		if h == 0 {
			s.Abort("cannot open primary input")
		}
		buf := make([]byte, int(s.InputSize(h)))
		if n := s.Read(h, buf); n <= 0 {
			s.Abort("empty primary input")
		}
		s.CloseInput(h)

		out := s.OpenOutput(cfg.DumpName+".log", false)
		s.Printf(out, "entering extended mode")
		s.CloseOutput(out)
		return bridge.HistorySpotless
	})

	history, err := eng.Process(prov, "xelatex", "main.tex")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if history != bridge.HistorySpotless {
		t.Fatalf("history = %v, want spotless", history)
	}
	if bridge.Active() {
		t.Fatal("provider still installed after Process")
	}
	if data, ok := prov.Output("xelatex.log"); !ok || string(data) != "entering extended mode" {
		t.Fatalf("log output = %q (%v)", data, ok)
	}
}

func TestTypesetterPrimaryOpenFailure(t *testing.T) {
	// No primary input registered: the engine must terminate with a
	// fatal code, not hang and not report spotless.
	prov := bridgetest.New()

	eng := engines.NewTypesetter(func(s *bridge.State, cfg engines.TexConfig) bridge.History {
		h := s.OpenPrimaryInput()
		if h == 0 {
			s.Abort("primary input not available")
		}
		return bridge.HistorySpotless
	})

	history, err := eng.Process(prov, "xelatex", "main.tex")
	if history != bridge.HistoryFatalError {
		t.Fatalf("history = %v, want fatal", history)
	}
	var ae *bridge.AbortError
	if !errors.As(err, &ae) || ae.Message != "primary input not available" {
		t.Fatalf("err = %v", err)
	}
	if bridge.Active() {
		t.Fatal("provider still installed after abort")
	}
}

func TestTypesetterConfigPlumbing(t *testing.T) {
	prov := bridgetest.New()
	date := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	var got engines.TexConfig
	eng := engines.NewTypesetter(func(s *bridge.State, cfg engines.TexConfig) bridge.History {
		got = cfg
		return bridge.HistorySpotless
	}).
		HaltOnError(false).
		InitexMode(true).
		Synctex(true).
		SemanticPagination(true).
		BuildDate(date)

	if _, err := eng.Process(prov, "plain", "story.tex"); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	want := engines.TexConfig{
		DumpName:           "plain",
		InputName:          "story.tex",
		HaltOnError:        false,
		InitexMode:         true,
		Synctex:            true,
		SemanticPagination: true,
		BuildDate:          date,
	}
	if got != want {
		t.Fatalf("cfg = %+v, want %+v", got, want)
	}
}

func TestTypesetterNoRoutine(t *testing.T) {
	history, err := engines.NewTypesetter(nil).Process(bridgetest.New(), "plain", "a.tex")
	if history != bridge.HistoryFatalError || err == nil {
		t.Fatalf("Process = %v, %v; want fatal history and error", history, err)
	}
}

func TestComposerStatusPassThrough(t *testing.T) {
	prov := bridgetest.New()
	prov.SetFile("doc.dvi", []byte("dvi bytes"))

	var got engines.ComposerConfig
	eng := engines.NewComposer(func(s *bridge.State, cfg engines.ComposerConfig) int {
		got = cfg
		in := s.OpenInput(cfg.DviPath, bridge.FormatBinary, false)
		if in == 0 {
			s.Abort("cannot open %s", cfg.DviPath)
		}
		s.CloseInput(in)

		out := s.OpenOutput(cfg.PdfPath, false)
		s.Write(out, []byte("%PDF-1.5"))
		s.CloseOutput(out)
		return 0
	}).Compress(false).DeterministicTags(true)

	status, err := eng.Process(prov, "doc.dvi", "doc.pdf")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if status != 0 {
		t.Fatalf("status = %d, want 0", status)
	}
	if got.Compress || !got.DeterministicTags {
		t.Fatalf("cfg = %+v", got)
	}
	if data, ok := prov.Output("doc.pdf"); !ok || string(data) != "%PDF-1.5" {
		t.Fatalf("pdf output = %q (%v)", data, ok)
	}
}

func TestComposerAbortYieldsFatalStatus(t *testing.T) {
	prov := bridgetest.New()
	prov.SetFile("doc.dvi", []byte("dvi"))
	prov.FailSeek = true

	eng := engines.NewComposer(func(s *bridge.State, cfg engines.ComposerConfig) int {
		in := s.OpenInput(cfg.DviPath, bridge.FormatBinary, false)
		s.Seek(in, 0, 0) // escalates through the abort controller
		return 0
	})

	status, err := eng.Process(prov, "doc.dvi", "doc.pdf")
	if status != engines.FatalStatus {
		t.Fatalf("status = %d, want %d", status, engines.FatalStatus)
	}
	var ae *bridge.AbortError
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want abort", err)
	}
	if bridge.Active() {
		t.Fatal("provider still installed after abort")
	}
}

func TestBibliographerHistoryPassThrough(t *testing.T) {
	tests := []struct {
		name    string
		history bridge.History
		status  int
	}{
		{"spotless", bridge.HistorySpotless, 0},
		{"warnings", bridge.HistoryWarningIssued, 1},
		{"errors", bridge.HistoryErrorIssued, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := engines.NewBibliographer(func(s *bridge.State, auxName string) bridge.History {
				return tt.history
			})
			status, err := eng.Process(bridgetest.New(), "paper.aux")
			if err != nil {
				t.Fatalf("Process failed: %v", err)
			}
			if status != tt.status {
				t.Fatalf("status = %d, want %d", status, tt.status)
			}
		})
	}
}

func TestBibliographerDistinguishesDiagnostics(t *testing.T) {
	prov := bridgetest.New()
	prov.SetFile("paper.aux", []byte(`\citation{knuth84}`))

	eng := engines.NewBibliographer(func(s *bridge.State, auxName string) bridge.History {
		in := s.OpenInput(auxName, bridge.FormatTex, false)
		if in == 0 {
			s.Abort("cannot open %s", auxName)
		}
		s.CloseInput(in)

		history := bridge.HistorySpotless
		s.IssueWarning("empty journal field in knuth84")
		if history < bridge.HistoryWarningIssued {
			history = bridge.HistoryWarningIssued
		}
		s.IssueError("missing year field in knuth84")
		if history < bridge.HistoryErrorIssued {
			history = bridge.HistoryErrorIssued
		}
		return history
	})

	status, err := eng.Process(prov, "paper.aux")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if status != int(bridge.HistoryErrorIssued) {
		t.Fatalf("status = %d, want %d", status, bridge.HistoryErrorIssued)
	}
	if len(prov.Warnings) != 1 || len(prov.Errors) != 1 {
		t.Fatalf("diagnostics = %q / %q", prov.Warnings, prov.Errors)
	}
}

func TestBibliographerAbort(t *testing.T) {
	eng := engines.NewBibliographer(func(s *bridge.State, auxName string) bridge.History {
		s.Abort("aux file %s is cyclic", auxName)
		return bridge.HistorySpotless
	})

	status, err := eng.Process(bridgetest.New(), "paper.aux")
	if status != engines.FatalStatus {
		t.Fatalf("status = %d, want %d", status, engines.FatalStatus)
	}
	var ae *bridge.AbortError
	if !errors.As(err, &ae) || ae.Message != "aux file paper.aux is cyclic" {
		t.Fatalf("err = %v", err)
	}
}

func TestReentrantInvocationFails(t *testing.T) {
	var nested error
	eng := engines.NewBibliographer(func(s *bridge.State, auxName string) bridge.History {
		_, nested = bridge.Install(bridgetest.New())
		return bridge.HistorySpotless
	})

	status, err := eng.Process(bridgetest.New(), "paper.aux")
	if err != nil || status != 0 {
		t.Fatalf("outer Process = %d, %v", status, err)
	}
	if nested == nil {
		t.Fatal("nested Install should have failed")
	}
	if bridge.Active() {
		t.Fatal("nested Install corrupted teardown")
	}
}

func TestNonAbortPanicPropagates(t *testing.T) {
	eng := engines.NewBibliographer(func(s *bridge.State, auxName string) bridge.History {
		panic("engine bug")
	})

	defer func() {
		if r := recover(); r != "engine bug" {
			t.Fatalf("recover = %v, want the original panic", r)
		}
		// The deferred Close must still have cleared the context.
		if bridge.Active() {
			t.Fatal("provider still installed after foreign panic")
		}
	}()
	eng.Process(bridgetest.New(), "paper.aux")
}
