// Package rope provides an immutable text buffer (Rope) together with the
// changeset/transaction machinery (see transaction.go) used by the text atom
// in pkg/atom. Every mutating method returns a new Rope; the receiver is
// never modified, which is what lets a Rope be shared freely between a
// commit's "before" and "after" states.
package rope

import (
	"strings"
	"unicode/utf8"
)

// Rope is an immutable sequence of runes. The name and the surrounding API
// mirror a balanced-tree rope's public surface, but the backing store here
// is a flat rune slice: this module's engineering budget is spent on the
// transaction manager (see pkg/txn), not on rope tree balancing.
type Rope struct {
	runes []rune
}

// New creates a Rope from a string.
func New(s string) *Rope {
	return &Rope{runes: []rune(s)}
}

// Empty returns an empty Rope.
func Empty() *Rope {
	return &Rope{}
}

// Length returns the number of characters (Unicode code points).
func (r *Rope) Length() int {
	if r == nil {
		return 0
	}
	return len(r.runes)
}

// LengthChars is an alias for Length.
func (r *Rope) LengthChars() int {
	return r.Length()
}

// LengthBytes returns the UTF-8 byte length of the rope's content.
func (r *Rope) LengthBytes() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, ch := range r.runes {
		n += utf8.RuneLen(ch)
	}
	return n
}

// String returns the complete content of the rope.
func (r *Rope) String() string {
	if r == nil {
		return ""
	}
	return string(r.runes)
}

// Bytes returns the complete content of the rope as UTF-8 bytes.
func (r *Rope) Bytes() []byte {
	return []byte(r.String())
}

// Slice returns the substring [start, end) by character position.
func (r *Rope) Slice(start, end int) (string, error) {
	n := r.Length()
	if err := errSliceOutOfBounds(start, end, n); err != nil {
		return "", err
	}
	return string(r.runes[start:end]), nil
}

// CharAt returns the rune at the given character position.
func (r *Rope) CharAt(pos int) (rune, error) {
	if err := errCharOutOfBounds(pos, r.Length()); err != nil {
		return 0, err
	}
	return r.runes[pos], nil
}

// ByteAt returns the byte at the given byte offset in the UTF-8 encoding.
func (r *Rope) ByteAt(pos int) (byte, error) {
	b := r.Bytes()
	if err := errByteOutOfBounds(pos, len(b)); err != nil {
		return 0, err
	}
	return b[pos], nil
}

// Insert returns a new Rope with text inserted at the given character position.
func (r *Rope) Insert(pos int, text string) (*Rope, error) {
	n := r.Length()
	if err := errInsertOutOfBounds(pos, n); err != nil {
		return nil, err
	}
	if text == "" {
		return r.Clone(), nil
	}
	out := make([]rune, 0, n+utf8.RuneCountInString(text))
	out = append(out, r.runes[:pos]...)
	out = append(out, []rune(text)...)
	out = append(out, r.runes[pos:]...)
	return &Rope{runes: out}, nil
}

// Delete returns a new Rope with [start, end) removed.
func (r *Rope) Delete(start, end int) (*Rope, error) {
	n := r.Length()
	if err := errDeleteOutOfBounds(start, end, n); err != nil {
		return nil, err
	}
	out := make([]rune, 0, n-(end-start))
	out = append(out, r.runes[:start]...)
	out = append(out, r.runes[end:]...)
	return &Rope{runes: out}, nil
}

// Replace returns a new Rope with [start, end) replaced by text.
func (r *Rope) Replace(start, end int, text string) (*Rope, error) {
	deleted, err := r.Delete(start, end)
	if err != nil {
		return nil, err
	}
	return deleted.Insert(start, text)
}

// Split splits the rope at pos into a left and right Rope.
func (r *Rope) Split(pos int) (*Rope, *Rope, error) {
	if err := errSplitOutOfBounds(pos, r.Length()); err != nil {
		return nil, nil, err
	}
	left := &Rope{runes: append([]rune(nil), r.runes[:pos]...)}
	right := &Rope{runes: append([]rune(nil), r.runes[pos:]...)}
	return left, right, nil
}

// Concat concatenates two ropes into a new Rope.
func (r *Rope) Concat(other *Rope) *Rope {
	if r == nil {
		return other.Clone()
	}
	if other == nil {
		return r.Clone()
	}
	out := make([]rune, 0, r.Length()+other.Length())
	out = append(out, r.runes...)
	out = append(out, other.runes...)
	return &Rope{runes: out}
}

// Clone returns a copy of the rope. Since Rope is never mutated in place,
// this is safe to share, but callers that need an independent backing array
// (e.g. before handing it to code that might misbehave) can rely on it.
func (r *Rope) Clone() *Rope {
	if r == nil {
		return Empty()
	}
	out := make([]rune, len(r.runes))
	copy(out, r.runes)
	return &Rope{runes: out}
}

// Contains reports whether substring occurs in the rope.
func (r *Rope) Contains(substring string) bool {
	return strings.Contains(r.String(), substring)
}

// Index returns the character position of the first occurrence of substring, or -1.
func (r *Rope) Index(substring string) int {
	s := r.String()
	byteIdx := strings.Index(s, substring)
	if byteIdx < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:byteIdx])
}

// LastIndex returns the character position of the last occurrence of substring, or -1.
func (r *Rope) LastIndex(substring string) int {
	s := r.String()
	byteIdx := strings.LastIndex(s, substring)
	if byteIdx < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:byteIdx])
}

// Validate checks the rope's internal consistency. A flat rune slice has no
// structural invariants to violate, so this always succeeds; it exists to
// satisfy Validatable and to give a future tree-backed implementation a home.
func (r *Rope) Validate() error {
	return nil
}

// Balance is a no-op for a flat rune slice; it exists to satisfy Balanceable.
func (r *Rope) Balance() *Rope {
	return r
}

// Optimize is a no-op for a flat rune slice; it exists to satisfy Balanceable.
func (r *Rope) Optimize() *Rope {
	return r
}

// IsBalanced always reports true: there is no tree to be unbalanced.
func (r *Rope) IsBalanced() bool {
	return true
}

// Size returns the rope's UTF-8 byte size.
func (r *Rope) Size() int {
	return r.LengthBytes()
}

// Depth reports the structural depth of the rope. A flat rune slice has a
// constant depth of 1.
func (r *Rope) Depth() int {
	return 1
}

// TreeStats summarizes structural metrics about a rope.
type TreeStats struct {
	Chars int
	Bytes int
	Depth int
}

// Stats returns structural statistics about the rope.
func (r *Rope) Stats() *TreeStats {
	return &TreeStats{Chars: r.Length(), Bytes: r.LengthBytes(), Depth: r.Depth()}
}

// RuneIterator walks a Rope's characters in order.
type RuneIterator struct {
	r   *Rope
	pos int // index of the character Next() will expose, -1 before the first call
}

// NewIterator returns a forward iterator over the rope's characters.
func (r *Rope) NewIterator() *RuneIterator {
	return &RuneIterator{r: r, pos: -1}
}

// Next advances the iterator. It returns false once exhausted.
func (it *RuneIterator) Next() bool {
	if it.pos+1 >= it.r.Length() {
		return false
	}
	it.pos++
	return true
}

// Current returns the rune at the iterator's current position.
func (it *RuneIterator) Current() rune {
	return it.r.runes[it.pos]
}

// Position returns the character index of the iterator's current position.
func (it *RuneIterator) Position() int {
	return it.pos
}

// Builder incrementally assembles a Rope.
type Builder struct {
	runes []rune
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append appends a string to the builder.
func (b *Builder) Append(s string) *Builder {
	b.runes = append(b.runes, []rune(s)...)
	return b
}

// AppendRune appends a single rune to the builder.
func (b *Builder) AppendRune(r rune) *Builder {
	b.runes = append(b.runes, r)
	return b
}

// Build finalizes the builder into a Rope.
func (b *Builder) Build() (*Rope, error) {
	out := make([]rune, len(b.runes))
	copy(out, b.runes)
	return &Rope{runes: out}, nil
}
