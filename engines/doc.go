// Package engines provides the entry points that run the embedded
// document engines against a host-supplied bridge.Provider.
//
// There is one entry point per engine: Typesetter, Composer (the
// DVI-to-PDF post-processor), and Bibliographer. Each Process call is a
// single attempt that installs the provider, establishes the abort
// recovery point, invokes the engine's top-level routine, tears the
// context down on every exit path, and reports the terminal status. The
// host decides whether to re-invoke; the entry points never retry.
//
// The engine routines themselves live outside this module and are bound
// as function values at construction time. Tests bind small fakes; real
// hosts bind the ported engine mains.
package engines
