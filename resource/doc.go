// Package resource provides the bridge's handle table.
//
// Engines refer to open streams and in-flight diagnostics through opaque
// Handle values rather than through the provider's own objects. Handles are
// generational indices: each table slot carries a generation counter that is
// bumped when the slot is vacated, so a handle kept past its close is
// rejected on the next use instead of silently aliasing whatever resource
// reused the slot.
//
// # Handle Table
//
// The Table maps handles to provider-owned values:
//
//	table := resource.NewTable()
//
//	// Insert a value, get a handle
//	handle := table.Insert(resource.ClassInput, stream)
//
//	// Class-checked retrieval
//	value, ok := table.Get(handle, resource.ClassInput)
//
//	// Remove on close (invalidates the handle)
//	value, ok := table.Remove(handle, resource.ClassInput)
//
// Handle 0 is reserved and always invalid; open operations use it as their
// failure sentinel.
//
// The table is not safe for concurrent use. The bridge is single-threaded
// by contract (one invocation at a time, handles scoped to it), so the
// table carries no locking.
package resource
