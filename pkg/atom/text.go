package atom

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/text/unicode/norm"

	"github.com/coreseekdev/atomtx/pkg/rope"
)

// TextModifyKind enumerates the modifications a TextAtom supports. It
// mirrors SequenceModifyKind, but each operation acts on a run of runes
// (a string) rather than a single element.
type TextModifyKind int

const (
	// TextFail marks a record produced by a mutation that could not be
	// applied (offset out of range). Rolling a Fail record back is a no-op.
	TextFail TextModifyKind = iota
	// TextModify overwrites the run [offset, offset+len(oldText)) with newText.
	TextModify
	// TextInsert inserts newText at offset (offset == length appends).
	TextInsert
	// TextErase removes a run of runes starting at offset.
	TextErase
)

func (k TextModifyKind) String() string {
	switch k {
	case TextFail:
		return "Fail"
	case TextModify:
		return "Modify"
	case TextInsert:
		return "Insert"
	case TextErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// invert returns the kind that undoes k: Modify is its own inverse, Insert
// and Erase invert into each other.
func (k TextModifyKind) invert() TextModifyKind {
	switch k {
	case TextInsert:
		return TextErase
	case TextErase:
		return TextInsert
	default:
		return k
	}
}

// TextRecord describes one applied (or inverted) mutation of a TextAtom.
type TextRecord struct {
	Offset  int
	Kind    TextModifyKind
	OldText string
	NewText string

	// before is the rope state immediately prior to this record's forward
	// application. It is unexported — it exists only so Rollback can invert
	// this record's changeset for real via rope.ChangeSet.Invert, which
	// needs the pre-edit document to recover deleted text.
	before *rope.Rope
}

// TextAtom is a reference atom over a rope-backed text buffer. Every
// mutation is expressed as a rope.ChangeSet (Retain/Delete/Insert) applied
// via ChangeSet.Apply, and every rollback inverts that same changeset via
// ChangeSet.Invert before reapplying it — the invertible-changeset
// machinery pkg/rope's OT layer provides is what backs undo/redo here, not
// a parallel hand-rolled one.
type TextAtom struct {
	val *rope.Rope
}

// NewTextAtom constructs a TextAtom over the given initial text.
func NewTextAtom(initial string) *TextAtom {
	return &TextAtom{val: rope.New(initial)}
}

// Peek returns the current rope. Callers must treat it as read-only.
func (a *TextAtom) Peek() *rope.Rope {
	return a.val
}

// WordBoundary returns a snapshot word-boundary helper over the atom's
// current text, for snapping an offset before issuing a Modify/Erase.
func (a *TextAtom) WordBoundary() *rope.WordBoundary {
	return rope.NewWordBoundary(a.val)
}

// changeSetFor builds the Retain/Delete/Insert changeset that carries out
// one Modify/Insert/Erase against a document of the given length.
func changeSetFor(length, offset int, kind TextModifyKind, oldText, newText string) *rope.ChangeSet {
	cs := rope.NewChangeSet(length)
	cs.Retain(offset)

	deleteLen := 0
	if kind == TextModify || kind == TextErase {
		deleteLen = len([]rune(oldText))
	}
	if deleteLen > 0 {
		cs.Delete(deleteLen)
	}
	if newText != "" {
		cs.Insert(newText)
	}
	if tail := length - offset - deleteLen; tail > 0 {
		cs.Retain(tail)
	}
	return cs
}

// Apply performs one mutation.
//
//   - Modify(offset, text): requires offset+len(existing run) <= length; the
//     run replaced is len([]rune(text)) runes starting at offset.
//   - Insert(offset, text): requires offset <= length (offset == length appends).
//   - Erase(offset, n): requires offset+n <= length.
//
// An out-of-range request yields a Fail record instead of mutating.
func (a *TextAtom) Apply(kind TextModifyKind, params ...any) TextRecord {
	length := a.val.Length()

	switch kind {
	case TextModify:
		offset := params[0].(int)
		text := params[1].(string)
		runLen := len([]rune(text))
		if offset < 0 || offset+runLen > length {
			return TextRecord{Offset: offset, Kind: TextFail}
		}
		old, err := a.val.Slice(offset, offset+runLen)
		if err != nil {
			return TextRecord{Offset: offset, Kind: TextFail}
		}
		before := a.val
		next, err := changeSetFor(length, offset, TextModify, old, text).Apply(a.val)
		if err != nil {
			return TextRecord{Offset: offset, Kind: TextFail}
		}
		a.val = next
		return TextRecord{Offset: offset, Kind: TextModify, OldText: old, NewText: text, before: before}

	case TextInsert:
		offset := params[0].(int)
		text := params[1].(string)
		if offset < 0 || offset > length {
			return TextRecord{Offset: offset, Kind: TextFail}
		}
		before := a.val
		next, err := changeSetFor(length, offset, TextInsert, "", text).Apply(a.val)
		if err != nil {
			return TextRecord{Offset: offset, Kind: TextFail}
		}
		a.val = next
		return TextRecord{Offset: offset, Kind: TextInsert, OldText: "", NewText: text, before: before}

	case TextErase:
		offset := params[0].(int)
		n := params[1].(int)
		if offset < 0 || n < 0 || offset+n > length {
			return TextRecord{Offset: offset, Kind: TextFail}
		}
		old, err := a.val.Slice(offset, offset+n)
		if err != nil {
			return TextRecord{Offset: offset, Kind: TextFail}
		}
		before := a.val
		next, err := changeSetFor(length, offset, TextErase, old, "").Apply(a.val)
		if err != nil {
			return TextRecord{Offset: offset, Kind: TextFail}
		}
		a.val = next
		return TextRecord{Offset: offset, Kind: TextErase, OldText: old, NewText: "", before: before}

	default:
		panic(fmt.Sprintf("atom: TextAtom.Apply: unrecognised kind %v", kind))
	}
}

// Rollback inverts rec against the atom's current value, which must be
// exactly the state rec's own Apply left behind. It rebuilds rec's forward
// changeset and inverts it via rope.ChangeSet.Invert against rec.before —
// the rope state the forward changeset was originally applied to — then
// applies the inverted changeset to reach the prior state.
func (a *TextAtom) Rollback(rec TextRecord) TextRecord {
	if rec.Kind == TextFail {
		return TextRecord{Offset: rec.Offset, Kind: TextFail, before: a.val}
	}

	fwd := changeSetFor(rec.before.Length(), rec.Offset, rec.Kind, rec.OldText, rec.NewText)
	inv, err := fwd.Invert(rec.before)
	if err != nil {
		panic(fmt.Sprintf("atom: TextAtom.Rollback: inconsistent state: %v", err))
	}

	before := a.val
	next, err := inv.Apply(a.val)
	if err != nil {
		panic(fmt.Sprintf("atom: TextAtom.Rollback: inconsistent state: %v", err))
	}
	a.val = next

	return TextRecord{
		Offset:  rec.Offset,
		Kind:    rec.Kind.invert(),
		OldText: rec.NewText,
		NewText: rec.OldText,
		before:  before,
	}
}

// SerialiseSelf renders the current text for diagnostics, normalized to NFC
// so that diagnostics are stable across combining-character variants of the
// same visual text.
func (a *TextAtom) SerialiseSelf() string {
	return norm.NFC.String(a.val.String())
}

// SerialiseRecords renders each record as one line: its offset and kind,
// then an inline diff of old text versus new text (sergi/go-diff's
// DiffPrettyText, which marks insertions and deletions with ANSI colours).
func (a *TextAtom) SerialiseRecords(records []TextRecord) string {
	dmp := diffmatchpatch.New()
	out := ""
	for _, rec := range records {
		diffs := dmp.DiffMain(rec.OldText, rec.NewText, false)
		out += fmt.Sprintf("{offset=%d, kind=%s} %s\n", rec.Offset, rec.Kind, dmp.DiffPrettyText(diffs))
	}
	return out
}

var _ Atom[TextModifyKind, TextRecord] = (*TextAtom)(nil)
