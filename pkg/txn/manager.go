package txn

import (
	"github.com/google/uuid"

	"github.com/coreseekdev/atomtx/pkg/atom"
)

// Manager drives a single atom through begin/end/modify/undo/redo, keeping
// the forest of commits that records every original transaction and every
// undo/redo compensation applied to it.
//
// Manager is generic over a concrete atom type A rather than dispatching
// through atom.Atom dynamically — K and R are fixed per A, so a caller
// holding a *Manager[MyKind, MyRecord, *MyAtom] also gets MyAtom's own
// Peek() for free via Atom(), with no type assertion at the call site.
//
// Manager is not safe for concurrent use; callers needing that must add
// their own synchronization.
type Manager[K any, R any, A atom.Atom[K, R]] struct {
	atom A

	root   []*Commit[R]
	cursor *Commit[R]
	nextID CommitId

	logger     Logger
	instanceID uuid.UUID
}

// New constructs a Manager driving the given atom.
func New[K any, R any, A atom.Atom[K, R]](a A) *Manager[K, R, A] {
	return &Manager[K, R, A]{
		atom:       a,
		logger:     NopLogger{},
		instanceID: uuid.New(),
	}
}

// WithLogger attaches a Logger and returns the manager for chaining.
func (m *Manager[K, R, A]) WithLogger(l Logger) *Manager[K, R, A] {
	m.logger = l
	return m
}

// Atom returns the concrete atom the manager drives, for direct access to
// atom-specific methods such as Peek.
func (m *Manager[K, R, A]) Atom() A {
	return m.atom
}

// InstanceID identifies this manager instance in log lines; it has no
// bearing on any invariant.
func (m *Manager[K, R, A]) InstanceID() uuid.UUID {
	return m.instanceID
}

// InTransaction reports whether a transaction is currently open.
func (m *Manager[K, R, A]) InTransaction() bool {
	return m.cursor != nil
}

func (m *Manager[K, R, A]) log(event string, c *Commit[R]) {
	m.logger.Event(event,
		F("instance", m.instanceID),
		F("commit", c.id),
		F("tag", c.tag.String()),
		F("depth", c.depth()),
	)
}

func (m *Manager[K, R, A]) appendChild(parent *Commit[R], c *Commit[R]) {
	if parent == nil {
		m.root = append(m.root, c)
		return
	}
	parent.children = append(parent.children, c)
}

func (m *Manager[K, R, A]) scope() []*Commit[R] {
	if m.cursor == nil {
		return m.root
	}
	return m.cursor.children
}

// BeginTransaction opens a new transaction nested under whatever
// transaction is currently open (or at the forest root if none is).
// Transactions may nest arbitrarily deep; each level gets its own
// independent undo/redo scope.
func (m *Manager[K, R, A]) BeginTransaction() {
	c := &Commit[R]{id: m.nextID, tag: BeginTrans, parent: m.cursor}
	m.nextID++
	m.appendChild(m.cursor, c)
	m.cursor = c
	m.log("begin", c)
}

// EndTransaction closes the currently open transaction, returning its id,
// or EmptyTransaction if no transaction is open.
func (m *Manager[K, R, A]) EndTransaction() CommitId {
	if m.cursor == nil {
		return EmptyTransaction
	}
	c := m.cursor
	c.tag = EndTrans
	m.log("end", c)
	m.cursor = c.parent
	return c.id
}

// Modify applies one mutation to the atom and records it against the
// currently open transaction. It panics with ErrNotInTransaction if no
// transaction is open — callers are expected to always bracket mutation
// with BeginTransaction/EndTransaction.
func (m *Manager[K, R, A]) Modify(kind K, params ...any) {
	if m.cursor == nil {
		panic(ErrNotInTransaction{})
	}
	rec := m.atom.Apply(kind, params...)
	m.cursor.records = append(m.cursor.records, rec)
	m.log("modify", m.cursor)
}

// CanUndo reports whether Undo would find anything to reverse at the
// current cursor's scope.
func (m *Manager[K, R, A]) CanUndo() bool {
	return findUndoTarget(m.scope()) != nil
}

// CanRedo reports whether Redo would find anything to re-apply at the
// current cursor's scope.
func (m *Manager[K, R, A]) CanRedo() bool {
	return findRedoTarget(m.scope()) != nil
}

// Undo reverses the most recent not-yet-undone transaction at the current
// cursor's scope (nested transactions of whatever is currently open if one
// is open, otherwise the forest root). If there is nothing left to undo at
// that scope, Undo is a no-op.
func (m *Manager[K, R, A]) Undo() {
	target := findUndoTarget(m.scope())
	if target == nil {
		return
	}
	m.undoCommit(target)
}

// Redo re-applies the most recent not-yet-redone undo at the current
// cursor's scope. If there is nothing left to redo at that scope, Redo is
// a no-op.
func (m *Manager[K, R, A]) Redo() {
	target := findRedoTarget(m.scope())
	if target == nil {
		return
	}
	m.redoCommit(target)
}

// undoCommit reverses target, an EndTrans commit. It first drains target's
// own children of anything still undoable — any nested transaction left
// un-undone would otherwise be silently skipped over by undoing target's
// top-level records alone — then appends a new Undo commit holding the
// rollback of target's own records, applied back to front so that a
// record that depended on an earlier one in the same transaction is
// reversed before that earlier one is.
func (m *Manager[K, R, A]) undoCommit(target *Commit[R]) {
	if target.tag != EndTrans {
		panic(ErrInvalidCommitTag{Want: EndTrans, Got: target.tag, ID: target.id})
	}

	for {
		child := findUndoTarget(target.children)
		if child == nil {
			break
		}
		m.undoCommit(child)
	}

	undo := &Commit[R]{id: m.nextID, tag: Undo, parent: target.parent}
	m.nextID++
	for i := len(target.records) - 1; i >= 0; i-- {
		undo.records = append(undo.records, m.atom.Rollback(target.records[i]))
	}
	m.appendChild(target.parent, undo)
	m.log("undo", undo)
}

// redoCommit re-applies target, an Undo commit. Symmetric with undoCommit:
// first drains target's own children of anything still redoable, then
// appends a new Redo commit.
//
// The Redo commit's records are produced by calling Rollback again, on
// target's own records — not by re-running the original Modify calls.
// target's records already hold the exact inverse of the transaction being
// redone, and Rollback on a self-inverse record type (Rollback(Rollback(r))
// == r, which every atom in this module upholds) yields the original
// forward change without needing to replay it.
func (m *Manager[K, R, A]) redoCommit(target *Commit[R]) {
	if target.tag != Undo {
		panic(ErrInvalidCommitTag{Want: Undo, Got: target.tag, ID: target.id})
	}

	for {
		child := findRedoTarget(target.children)
		if child == nil {
			break
		}
		m.redoCommit(child)
	}

	redo := &Commit[R]{id: m.nextID, tag: Redo, parent: target.parent}
	m.nextID++
	for i := len(target.records) - 1; i >= 0; i-- {
		redo.records = append(redo.records, m.atom.Rollback(target.records[i]))
	}
	m.appendChild(target.parent, redo)
	m.log("redo", redo)
}
