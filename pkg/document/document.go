// Package document provides History, an undo/redo text buffer built on
// pkg/txn, and the read-only Document interface History.Document returns
// (implemented by *rope.Rope).
package document

import "github.com/coreseekdev/atomtx/pkg/rope"

// Document is the read-only, cloneable surface a History exposes to callers
// that don't need to know it's backed by a rope. It is composed directly
// from pkg/rope's ISP interfaces rather than redeclaring an equivalent
// surface — *rope.Rope already satisfies exactly this combination.
type Document interface {
	rope.ReadOnlyDocument
	rope.CharAtAccessor
	rope.Cloneable
}

var _ Document = (*rope.Rope)(nil)
