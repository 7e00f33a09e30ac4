// Package bridge is the narrow-waist boundary between embedded document
// engines and the host process that runs them.
//
// Three synchronous, single-pass engines (a typesetting engine, a DVI-to-PDF
// composition post-processor, and a bibliography processor) perform all of
// their I/O, diagnostics, and fatal-error signaling through one swappable
// Provider supplied by the host. The bridge never touches disks, networks,
// or archives itself: it only mediates access and error signaling.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	bridge/          Provider contract, handles, formats, history codes, and
//	                 the State type (context, abort controller, I/O layer)
//	├── resource/    Generational handle table for open streams and diagnostics
//	├── errors/      Structured error types for debugging
//	├── engines/     Entry points: typesetting, composition, bibliography
//	├── status/      Terminal reporting backends (plain and color)
//	└── bridgetest/  In-memory Provider for tests and host experimentation
//
// # Quick Start
//
// Run the bibliography engine against a host-supplied provider:
//
//	prov := myProvider() // implements bridge.Provider
//
//	eng := engines.NewBibliographer(bibtexMain)
//	status, err := eng.Process(prov, "paper.aux")
//	if err != nil {
//	    log.Fatalf("engine aborted: %v", err)
//	}
//
// # Handles
//
// Open operations return opaque resource.Handle values backed by a
// generational table. The engine side never sees the provider's stream
// objects, and the provider never sees bridge handles; a stale or
// wrong-class handle is caught at the bridge boundary instead of
// corrupting provider state.
//
// # Aborts
//
// Engine code at any depth can call State.Abort to abandon the run. The
// abort unwinds directly to the entry point that installed the provider,
// which clears the context and reports the engine's fatal status together
// with the recorded message. Messages are bounded at MessageBufferSize
// bytes and truncated silently.
//
// # Thread Safety
//
// The bridge is deliberately single-threaded: at most one provider may be
// installed at a time, entry points must not be invoked reentrantly, and
// handles are meaningful only within the active invocation. Install fails
// fast when this discipline is violated.
package bridge
