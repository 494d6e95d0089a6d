package hunk

import (
	"strconv"

	"github.com/viant/normdiff/lcs"
)

// Range is a half-open, 0-based index range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range covers no index.
func (r Range) Empty() bool { return r.End <= r.Start }

// String renders the range with 1-based line numbers: "5" for a single line,
// "5,7" otherwise.
func (r Range) String() string {
	if r.End == r.Start+1 {
		return strconv.Itoa(r.Start + 1)
	}
	return strconv.Itoa(r.Start+1) + "," + strconv.Itoa(r.End)
}

// Hunk covers one gap between consecutive matches: From is deleted from the
// "from" sequence and To is added from the "to" sequence. Both ranges start at
// the cursor pair where the gap opens, so From.Start and To.Start are also the
// anchors used by the other side's header.
type Hunk struct {
	From Range
	To   Range
}

// Empty reports whether neither side has unmatched lines.
func (h Hunk) Empty() bool { return h.From.Empty() && h.To.Empty() }

// Emit walks the alignment and returns one hunk per non-empty gap, in
// document order. fromLen and toLen are the lengths of the aligned sequences.
func Emit(fromLen, toLen int, alignment *lcs.Alignment) []Hunk {
	var ret []Hunk
	fromCursor, toCursor := 0, 0
	add := func(fromEnd, toEnd int) {
		h := Hunk{From: Range{Start: fromCursor, End: fromEnd}, To: Range{Start: toCursor, End: toEnd}}
		if !h.Empty() {
			ret = append(ret, h)
		}
	}
	for k := 0; k < alignment.Len(); k++ {
		x, y := alignment.From[k], alignment.To[k]
		add(x, y)
		fromCursor, toCursor = x+1, y+1
	}
	add(fromLen, toLen)
	return ret
}
