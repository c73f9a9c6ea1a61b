package atom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreseekdev/atomtx/pkg/atom"
)

func TestTextAtomInsert(t *testing.T) {
	a := atom.NewTextAtom("hello world")
	rec := a.Apply(atom.TextInsert, 5, ",")
	assert.Equal(t, "hello, world", a.Peek().String())
	assert.Equal(t, atom.TextInsert, rec.Kind)

	inv := a.Rollback(rec)
	assert.Equal(t, "hello world", a.Peek().String())
	assert.Equal(t, atom.TextErase, inv.Kind)
}

func TestTextAtomModify(t *testing.T) {
	a := atom.NewTextAtom("hello world")
	rec := a.Apply(atom.TextModify, 6, "there")
	assert.Equal(t, "hello there", a.Peek().String())
	assert.Equal(t, "world", rec.OldText)

	inv := a.Rollback(rec)
	assert.Equal(t, "hello world", a.Peek().String())
	assert.Equal(t, atom.TextModify, inv.Kind)
}

func TestTextAtomErase(t *testing.T) {
	a := atom.NewTextAtom("hello world")
	rec := a.Apply(atom.TextErase, 5, 6)
	assert.Equal(t, "hello", a.Peek().String())
	assert.Equal(t, " world", rec.OldText)

	inv := a.Rollback(rec)
	assert.Equal(t, "hello world", a.Peek().String())
	assert.Equal(t, atom.TextInsert, inv.Kind)
}

func TestTextAtomOutOfRangeYieldsFail(t *testing.T) {
	a := atom.NewTextAtom("abc")

	rec := a.Apply(atom.TextErase, 1, 10)
	assert.Equal(t, atom.TextFail, rec.Kind)
	assert.Equal(t, "abc", a.Peek().String())

	rec = a.Apply(atom.TextInsert, 99, "x")
	assert.Equal(t, atom.TextFail, rec.Kind)

	rec = a.Apply(atom.TextModify, 2, "too long for here")
	assert.Equal(t, atom.TextFail, rec.Kind)
}

func TestTextAtomSerialiseSelfNormalizesNFC(t *testing.T) {
	// "e" + combining acute accent (NFD) should render as precomposed é (NFC).
	a := atom.NewTextAtom("café")
	assert.Equal(t, "café", a.SerialiseSelf())
}

func TestTextAtomSerialiseRecords(t *testing.T) {
	a := atom.NewTextAtom("hello world")
	rec := a.Apply(atom.TextModify, 6, "there")
	out := a.SerialiseRecords([]atom.TextRecord{rec})
	assert.Contains(t, out, "offset=6")
}

func TestTextAtomWordBoundary(t *testing.T) {
	a := atom.NewTextAtom("hello world")
	wb := a.WordBoundary()
	assert.NotNil(t, wb)
}
