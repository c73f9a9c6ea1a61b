package document

import (
	"time"

	"github.com/coreseekdev/atomtx/pkg/atom"
	"github.com/coreseekdev/atomtx/pkg/rope"
	"github.com/coreseekdev/atomtx/pkg/txn"
)

// History is a convenience wrapper around a txn.Manager specialized for a
// rope-backed text buffer. It exists so that editor-facing code gets
// History's familiar CanUndo/CanRedo/AtRoot/AtTip surface without having to
// spell out the Manager's three type parameters at every call site. Beyond
// what Manager already provides, it adds the step- and time-windowed
// Earlier/Later convenience, a live cursor/selection remapped across forward
// edits, and SplitAt (see below).
//
// pkg/rope cannot depend on pkg/atom or pkg/txn (they depend on it), so this
// wrapper — the one place all three packages are allowed to meet — lives
// here instead.
type History struct {
	mgr *txn.Manager[atom.TextModifyKind, atom.TextRecord, *atom.TextAtom]

	// commitTimes records when each top-level (root-scope) transaction
	// closed, oldest first, so Earlier/Later can translate a time.Duration
	// into a number of Manager.Undo/Redo steps. Nested transactions are not
	// recorded here — only transactions closed while InTransaction() was
	// already false before BeginTransaction was called.
	commitTimes []time.Time

	// sel is the editor's live cursor/selection. Every Insert/Erase/Replace
	// remaps it through the same changeset shape applied to the text, via
	// rope.Selection.MapPositions, so a cursor sitting past an edit stays
	// past it and one sitting inside a deleted run collapses to its edge.
	// Undo/Redo do not remap sel — the Manager doesn't expose the changeset
	// atom.TextAtom.Rollback builds internally, so a selection is only kept
	// valid across forward edits, not across time travel.
	sel *rope.Selection
}

// NewHistory constructs a History over a TextAtom seeded with initial, with
// the cursor starting at position 0.
func NewHistory(initial string) *History {
	return &History{
		mgr: txn.New[atom.TextModifyKind, atom.TextRecord, *atom.TextAtom](atom.NewTextAtom(initial)),
		sel: rope.NewSelection(rope.Point(0)),
	}
}

// WithLogger attaches a txn.Logger and returns the History for chaining.
func (h *History) WithLogger(l txn.Logger) *History {
	h.mgr.WithLogger(l)
	return h
}

// String returns the current text.
func (h *History) String() string {
	return h.mgr.Atom().Peek().String()
}

// InTransaction reports whether a transaction is currently open.
func (h *History) InTransaction() bool {
	return h.mgr.InTransaction()
}

// AtRoot reports whether the cursor is at the top level — no transaction
// open and nothing further to ascend out of.
func (h *History) AtRoot() bool {
	return !h.mgr.InTransaction()
}

// AtTip reports whether there is nothing left to redo at the current
// scope — the document is at the newest point in its own history.
func (h *History) AtTip() bool {
	return !h.mgr.CanRedo()
}

// CanUndo reports whether Undo would do anything right now.
func (h *History) CanUndo() bool {
	return h.mgr.CanUndo()
}

// CanRedo reports whether Redo would do anything right now.
func (h *History) CanRedo() bool {
	return h.mgr.CanRedo()
}

// BeginTransaction opens a new transaction.
func (h *History) BeginTransaction() {
	h.mgr.BeginTransaction()
}

// EndTransaction closes the currently open transaction. Closing a top-level
// transaction (the cursor returns to root) stamps it into commitTimes so
// Earlier/Later can later navigate it by time.
func (h *History) EndTransaction() txn.CommitId {
	id := h.mgr.EndTransaction()
	if id != txn.EmptyTransaction && !h.mgr.InTransaction() {
		h.commitTimes = append(h.commitTimes, time.Now())
	}
	return id
}

// Insert records a TextInsert within the currently open transaction and
// remaps the cursor/selection across it.
func (h *History) Insert(offset int, text string) {
	length := h.mgr.Atom().Peek().Length()
	h.mgr.Modify(atom.TextInsert, offset, text)
	h.remap(length, offset, 0, text)
}

// Erase records a TextErase within the currently open transaction and
// remaps the cursor/selection across it.
func (h *History) Erase(offset, length int) {
	docLen := h.mgr.Atom().Peek().Length()
	h.mgr.Modify(atom.TextErase, offset, length)
	h.remap(docLen, offset, length, "")
}

// Replace records a TextModify within the currently open transaction and
// remaps the cursor/selection across it. The run replaced is
// len([]rune(text)) runes starting at offset, same as atom.TextAtom.Apply.
func (h *History) Replace(offset int, text string) {
	docLen := h.mgr.Atom().Peek().Length()
	h.mgr.Modify(atom.TextModify, offset, text)
	h.remap(docLen, offset, len([]rune(text)), text)
}

// remap rebuilds the Retain/Delete/Insert changeset an edit represents and
// maps sel across it via rope.Selection.MapPositions.
func (h *History) remap(length, offset, deleteLen int, newText string) {
	cs := rope.NewChangeSet(length)
	cs.Retain(offset)
	if deleteLen > 0 {
		cs.Delete(deleteLen)
	}
	if newText != "" {
		cs.Insert(newText)
	}
	if tail := length - offset - deleteLen; tail > 0 {
		cs.Retain(tail)
	}
	h.sel = h.sel.MapPositions(cs)
}

// Selection returns the editor's current cursor/selection.
func (h *History) Selection() *rope.Selection {
	return h.sel
}

// SetSelection replaces the editor's cursor/selection.
func (h *History) SetSelection(sel *rope.Selection) {
	h.sel = sel
}

// SplitAt splits the current document at pos, returning the text before and
// after the split point. The document itself is unaffected.
func (h *History) SplitAt(pos int) (before, after string, err error) {
	left, right, err := h.mgr.Atom().Peek().SplitOff(pos)
	if err != nil {
		return "", "", err
	}
	return left.String(), right.String(), nil
}

// Undo reverses the most recent not-yet-undone transaction.
func (h *History) Undo() {
	h.mgr.Undo()
}

// Redo re-applies the most recent not-yet-redone undo.
func (h *History) Redo() {
	h.mgr.Redo()
}

// Earlier walks backwards through root-scope history per req: UndoSteps
// calls Undo that many times; UndoTimePeriod calls Undo once for every
// recorded top-level commit whose timestamp falls within req.Duration of
// now. Nested transactions are invisible to the time-based form — only
// root-scope commits are timestamped.
func (h *History) Earlier(req *rope.UndoRequest) {
	switch req.Kind {
	case rope.UndoSteps:
		for i := 0; i < req.Steps; i++ {
			h.mgr.Undo()
		}
	case rope.UndoTimePeriod:
		cutoff := time.Now().Add(-req.Duration)
		steps := 0
		for i := len(h.commitTimes) - 1; i >= 0 && h.commitTimes[i].After(cutoff); i-- {
			steps++
		}
		for i := 0; i < steps; i++ {
			h.mgr.Undo()
		}
	}
}

// Later is Earlier's redo-direction counterpart.
func (h *History) Later(req *rope.UndoRequest) {
	switch req.Kind {
	case rope.UndoSteps:
		for i := 0; i < req.Steps; i++ {
			h.mgr.Redo()
		}
	case rope.UndoTimePeriod:
		cutoff := time.Now().Add(-req.Duration)
		steps := 0
		for i := len(h.commitTimes) - 1; i >= 0 && h.commitTimes[i].After(cutoff); i-- {
			steps++
		}
		for i := 0; i < steps; i++ {
			h.mgr.Redo()
		}
	}
}

// Document returns the current text as a Document. *rope.Rope satisfies
// Document directly, so no adapter type is needed.
func (h *History) Document() Document {
	return h.mgr.Atom().Peek()
}
