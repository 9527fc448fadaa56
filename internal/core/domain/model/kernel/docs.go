// Package kernel provides core domain primitives for the triage service.
//
// It currently holds UUID, a validated value object for entity identifiers.
// Primitives in this package enforce their own invariants, are immutable,
// and are safe for concurrent use.
package kernel
