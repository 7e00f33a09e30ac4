// Package errors provides structured error types for the bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes the resource name and handle
// involved plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseInput, errors.KindProviderFailure).
//		Resource("plain.tex").
//		Cause(ioErr).
//		Detail("open failed").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.AlreadyInstalled()
//	err := errors.InvalidHandle(errors.PhaseOutput, handle)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
