// Package bridgetest provides an in-memory bridge.Provider for tests.
//
// The Provider serves inputs from byte slices registered with SetFile,
// captures everything written through output handles, records issued
// diagnostics, and can inject faults (failing seek, failing close,
// missing primary input) to exercise the bridge's escalation paths.
//
// Outputs become readable as inputs once closed, so write-then-read-back
// round trips need no real filesystem.
package bridgetest
