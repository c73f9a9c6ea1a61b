package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreseekdev/atomtx/pkg/document"
	"github.com/coreseekdev/atomtx/pkg/rope"
)

func TestHistoryInsertUndoRedo(t *testing.T) {
	h := document.NewHistory("hello world")

	h.BeginTransaction()
	h.Insert(5, ",")
	h.EndTransaction()
	assert.Equal(t, "hello, world", h.String())
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	h.Undo()
	assert.Equal(t, "hello world", h.String())
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())

	h.Redo()
	assert.Equal(t, "hello, world", h.String())
}

func TestHistoryAtRootAtTip(t *testing.T) {
	h := document.NewHistory("abc")
	assert.True(t, h.AtRoot())
	assert.True(t, h.AtTip())

	h.BeginTransaction()
	assert.False(t, h.AtRoot())
	h.Insert(3, "d")
	h.EndTransaction()
	assert.True(t, h.AtRoot())
	assert.True(t, h.AtTip())

	h.Undo()
	assert.False(t, h.AtTip())
}

func TestHistoryEarlierSteps(t *testing.T) {
	h := document.NewHistory("")

	h.BeginTransaction()
	h.Insert(0, "a")
	h.EndTransaction()

	h.BeginTransaction()
	h.Insert(1, "b")
	h.EndTransaction()

	assert.Equal(t, "ab", h.String())

	h.Earlier(rope.NewUndoSteps(2))
	assert.Equal(t, "", h.String())

	h.Later(rope.NewUndoSteps(1))
	assert.Equal(t, "a", h.String())
}

func TestHistoryDocument(t *testing.T) {
	h := document.NewHistory("hello")
	doc := h.Document()
	assert.Equal(t, 5, doc.Length())
	assert.Equal(t, "hello", doc.String())
	clone := doc.Clone()
	assert.Equal(t, "hello", clone.String())
}

func TestHistorySelectionRemapsAcrossEdits(t *testing.T) {
	h := document.NewHistory("hello world")
	h.SetSelection(rope.NewSelection(rope.Point(8))) // cursor inside "world"

	h.BeginTransaction()
	h.Insert(0, "say ")
	h.EndTransaction()

	assert.Equal(t, "say hello world", h.String())
	assert.Equal(t, 12, h.Selection().Primary().Cursor())

	h.BeginTransaction()
	h.Erase(0, 4) // remove "say "
	h.EndTransaction()

	assert.Equal(t, "hello world", h.String())
	assert.Equal(t, 8, h.Selection().Primary().Cursor())
}

func TestHistorySelectionCollapsesIntoDeletedRun(t *testing.T) {
	h := document.NewHistory("hello world")
	h.SetSelection(rope.NewSelection(rope.Point(7))) // inside "world", past "hello "

	h.BeginTransaction()
	h.Erase(6, 5) // delete "world", cursor at 7 falls inside [6,11)
	h.EndTransaction()

	assert.Equal(t, "hello ", h.String())
	assert.Equal(t, 6, h.Selection().Primary().Cursor())
}

func TestHistorySplitAt(t *testing.T) {
	h := document.NewHistory("hello world")
	before, after, err := h.SplitAt(5)
	assert.NoError(t, err)
	assert.Equal(t, "hello", before)
	assert.Equal(t, " world", after)
	assert.Equal(t, "hello world", h.String()) // original document untouched
}
