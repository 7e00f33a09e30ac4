package bridge_test

import (
	"strings"
	"testing"

	"github.com/texforge/bridge"
	"github.com/texforge/bridge/bridgetest"
)

func TestDiagnosticLifecycle(t *testing.T) {
	prov := bridgetest.New()
	s := install(t, prov)

	w := s.BeginWarning()
	s.DiagAppend(w, "undefined reference")
	s.DiagAppend(w, " `fig:one'")
	s.DiagFinish(w)

	e := s.BeginError()
	s.DiagPrintf(e, "missing file %q on line %d", "chapter2.tex", 40)
	s.DiagFinish(e)

	if len(prov.Warnings) != 1 || prov.Warnings[0] != "undefined reference `fig:one'" {
		t.Fatalf("Warnings = %q", prov.Warnings)
	}
	if len(prov.Errors) != 1 || prov.Errors[0] != `missing file "chapter2.tex" on line 40` {
		t.Fatalf("Errors = %q", prov.Errors)
	}
}

func TestDiagnosticUseAfterFinishCaught(t *testing.T) {
	prov := bridgetest.New()
	s := install(t, prov)

	w := s.BeginWarning()
	s.DiagFinish(w)

	expectAbort(t, func() { s.DiagAppend(w, "late text") })
}

func TestDiagnosticDoubleFinishCaught(t *testing.T) {
	prov := bridgetest.New()
	s := install(t, prov)

	w := s.BeginWarning()
	s.DiagFinish(w)

	expectAbort(t, func() { s.DiagFinish(w) })
}

func TestIssueOneShots(t *testing.T) {
	prov := bridgetest.New()
	s := install(t, prov)

	s.IssueWarning("overfull hbox on page %d", 3)
	s.IssueError("emergency stop")

	if len(prov.Warnings) != 1 || prov.Warnings[0] != "overfull hbox on page 3" {
		t.Fatalf("Warnings = %q", prov.Warnings)
	}
	if len(prov.Errors) != 1 || prov.Errors[0] != "emergency stop" {
		t.Fatalf("Errors = %q", prov.Errors)
	}
}

func TestIssueTruncatesLongMessages(t *testing.T) {
	prov := bridgetest.New()
	s := install(t, prov)

	long := strings.Repeat("w", 5000)
	s.IssueWarning("%s", long)
	s.IssueError("%s", long)

	if len(prov.Warnings[0]) != bridge.MessageBufferSize-1 {
		t.Fatalf("warning length = %d, want %d", len(prov.Warnings[0]), bridge.MessageBufferSize-1)
	}
	if len(prov.Errors[0]) != bridge.MessageBufferSize-1 {
		t.Fatalf("error length = %d, want %d", len(prov.Errors[0]), bridge.MessageBufferSize-1)
	}
}

func TestDiagPrintfTruncates(t *testing.T) {
	prov := bridgetest.New()
	s := install(t, prov)

	e := s.BeginError()
	s.DiagPrintf(e, "%s", strings.Repeat("z", 2000))
	s.DiagFinish(e)

	if len(prov.Errors[0]) != bridge.MessageBufferSize-1 {
		t.Fatalf("length = %d, want %d", len(prov.Errors[0]), bridge.MessageBufferSize-1)
	}
}
