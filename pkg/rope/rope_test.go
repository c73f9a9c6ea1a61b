package rope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreseekdev/atomtx/pkg/rope"
)

func TestInsertDeleteReplace(t *testing.T) {
	r := rope.New("hello world")

	r2, err := r.Insert(5, ",")
	require.NoError(t, err)
	assert.Equal(t, "hello, world", r2.String())
	assert.Equal(t, "hello world", r.String()) // original untouched

	r3, err := r2.Delete(5, 6)
	require.NoError(t, err)
	assert.Equal(t, "hello world", r3.String())

	r4, err := r.Replace(6, 11, "there")
	require.NoError(t, err)
	assert.Equal(t, "hello there", r4.String())
}

func TestOutOfBoundsErrors(t *testing.T) {
	r := rope.New("abc")

	_, err := r.Insert(10, "x")
	assert.Error(t, err)

	_, err = r.Delete(2, 10)
	assert.Error(t, err)

	_, err = r.Slice(-1, 2)
	assert.Error(t, err)

	_, err = r.CharAt(10)
	assert.Error(t, err)
}

func TestSplitAndConcat(t *testing.T) {
	r := rope.New("hello world")
	left, right, err := r.Split(5)
	require.NoError(t, err)
	assert.Equal(t, "hello", left.String())
	assert.Equal(t, " world", right.String())

	joined := left.Concat(right)
	assert.Equal(t, "hello world", joined.String())
}

func TestBuilder(t *testing.T) {
	b := rope.NewBuilder()
	b.Append("hello").AppendRune(' ').Append("world")
	r, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "hello world", r.String())
}

func TestIterator(t *testing.T) {
	r := rope.New("abc")
	it := r.NewIterator()
	var got []rune
	for it.Next() {
		got = append(got, it.Current())
	}
	assert.Equal(t, []rune{'a', 'b', 'c'}, got)
}

func TestChangeSetApplyInvert(t *testing.T) {
	r := rope.New("hello world")
	cs := rope.NewChangeSet(r.Length())
	cs.Retain(6)
	cs.Delete(5)
	cs.Insert("there")

	out, err := cs.Apply(r)
	require.NoError(t, err)
	assert.Equal(t, "hello there", out.String())

	inv, err := cs.Invert(r)
	require.NoError(t, err)
	back, err := inv.Apply(out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", back.String())
}

func TestWordBoundary(t *testing.T) {
	r := rope.New("hello world")
	wb := rope.NewWordBoundary(r)
	assert.GreaterOrEqual(t, wb.NextWordStart(0), 0)
}
