// Package status provides terminal reporting backends for bridge
// diagnostics.
//
// A Backend receives note, warning, and error messages; Plain writes bare
// prefixed lines while Color styles them for interactive terminals.
// Autodetect picks between the two based on whether stderr is a terminal.
//
// Sink adapts a Backend to the diagnostic half of the bridge.Provider
// contract, so a host provider can embed it and get terminal reporting
// without writing its own builder plumbing:
//
//	type myProvider struct {
//	    *status.Sink
//	    // ... I/O state ...
//	}
//
//	prov := &myProvider{Sink: status.NewSink(status.Autodetect(status.ChatterNormal))}
package status
