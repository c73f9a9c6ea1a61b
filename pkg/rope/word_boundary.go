package rope

import (
	"unicode/utf8"

	"github.com/clipperhouse/uax29/words"
)

// WordBoundary answers word-boundary queries against a document, backing
// the AssocBeforeWord/AssocAfterWord cursor associations in
// transaction_advanced.go. Boundaries are computed via the Unicode text
// segmentation algorithm (UAX #29), not ad-hoc whitespace splitting, so
// punctuation- and script-aware word snapping works the same way a real
// editor's would.
type WordBoundary struct {
	doc     *Rope
	offsets []int // character offsets of each segment boundary, ascending, starts at 0
}

// NewWordBoundary builds a WordBoundary over doc's current content.
// doc may be nil, in which case PrevWordStart always returns 0 and
// NextWordStart returns pos itself for any pos >= 0.
func NewWordBoundary(doc *Rope) *WordBoundary {
	wb := &WordBoundary{doc: doc}
	wb.offsets = computeWordOffsets(doc)
	return wb
}

func computeWordOffsets(doc *Rope) []int {
	if doc == nil {
		return []int{0}
	}
	text := doc.String()
	offsets := make([]int, 0, 16)
	offsets = append(offsets, 0)

	seg := words.NewSegmenter([]byte(text))
	runeOffset := 0
	for seg.Next() {
		runeOffset += utf8.RuneCount(seg.Bytes())
		offsets = append(offsets, runeOffset)
	}
	return offsets
}

// NextWordStart returns the character offset of the next word-segment
// boundary strictly after pos, or the document length if there is none.
func (wb *WordBoundary) NextWordStart(pos int) int {
	for _, o := range wb.offsets {
		if o > pos {
			return o
		}
	}
	if wb.doc != nil {
		return wb.doc.Length()
	}
	return pos
}

// PrevWordStart returns the character offset of the nearest word-segment
// boundary strictly before pos, or 0 if there is none.
func (wb *WordBoundary) PrevWordStart(pos int) int {
	best := 0
	for _, o := range wb.offsets {
		if o >= pos {
			break
		}
		best = o
	}
	return best
}
