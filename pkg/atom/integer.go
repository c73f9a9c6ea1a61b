package atom

import "fmt"

// Number constrains the value types IntegerAtom accepts: any built-in
// integer or floating-point type. ("Integer-like scalar" in the spec covers
// floats too — the atom has exactly one modification kind either way.)
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IntegerModifyKind enumerates IntegerAtom's single supported operation.
type IntegerModifyKind int

const (
	// IntegerModify overwrites the value with a new one.
	IntegerModify IntegerModifyKind = iota
)

// IntegerRecord describes one applied (or inverted) Modify on an IntegerAtom.
type IntegerRecord[T Number] struct {
	Old T
	New T
}

// IntegerAtom is the reference atom for a plain scalar value: it supports a
// single modification kind, Modify, which overwrites the value outright.
type IntegerAtom[T Number] struct {
	val T
}

// NewIntegerAtom constructs an IntegerAtom holding the given initial value.
func NewIntegerAtom[T Number](initial T) *IntegerAtom[T] {
	return &IntegerAtom[T]{val: initial}
}

// Peek returns the current value.
func (a *IntegerAtom[T]) Peek() T {
	return a.val
}

// Apply overwrites the value with params[0].(T) and returns the record
// describing the old/new values. IntegerAtom has only one kind, so kind is
// accepted but not branched on.
func (a *IntegerAtom[T]) Apply(kind IntegerModifyKind, params ...any) IntegerRecord[T] {
	newVal, ok := params[0].(T)
	if !ok {
		panic(fmt.Sprintf("atom: IntegerAtom.Apply: param %v is not of the expected type", params[0]))
	}
	old := a.val
	a.val = newVal
	return IntegerRecord[T]{Old: old, New: newVal}
}

// Rollback restores the value to rec.Old and returns the record describing
// the reverse transition, so that applying the returned record undoes the
// rollback again (the self-inverse property the manager relies on for redo).
func (a *IntegerAtom[T]) Rollback(rec IntegerRecord[T]) IntegerRecord[T] {
	a.val = rec.Old
	return IntegerRecord[T]{Old: rec.New, New: rec.Old}
}

// SerialiseSelf renders the current value for diagnostics.
func (a *IntegerAtom[T]) SerialiseSelf() string {
	return fmt.Sprintf("%v", a.val)
}

// SerialiseRecords renders a list of records for diagnostics.
func (a *IntegerAtom[T]) SerialiseRecords(records []IntegerRecord[T]) string {
	out := ""
	for _, rec := range records {
		out += fmt.Sprintf("{old=%v, new=%v} ", rec.Old, rec.New)
	}
	return out
}

var _ Atom[IntegerModifyKind, IntegerRecord[int]] = (*IntegerAtom[int])(nil)
