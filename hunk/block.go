package hunk

import "strconv"

// Op is a normal-format block operation.
type Op int

const (
	// OpDelete removes lines of the "from" sequence.
	OpDelete Op = iota
	// OpAdd inserts lines of the "to" sequence.
	OpAdd
)

func (o Op) String() string {
	switch o {
	case OpDelete:
		return "d"
	case OpAdd:
		return "a"
	}
	return "?"
}

// prefix returns the content line marker.
func (o Op) prefix() string {
	if o == OpDelete {
		return "< "
	}
	return "> "
}

// Block is a single header plus content lines.
//
// For OpDelete, From is the deleted range and To is empty, positioned at the
// "to" line after which the deletion takes effect. For OpAdd it is the other
// way around.
type Block struct {
	Op    Op
	From  Range
	To    Range
	Lines []string
}

// Header renders the block header, for example "2,3d1" or "0a1,3".
func (b Block) Header() string {
	if b.Op == OpDelete {
		return b.From.String() + b.Op.String() + strconv.Itoa(b.To.Start)
	}
	return strconv.Itoa(b.From.Start) + b.Op.String() + b.To.String()
}

// Blocks expands hunks into blocks: a deletion block first, then an addition
// block, each only when its range is non-empty.
func Blocks(from, to []string, hunks []Hunk) []Block {
	ret := make([]Block, 0, len(hunks))
	for _, h := range hunks {
		if !h.From.Empty() {
			ret = append(ret, Block{
				Op:    OpDelete,
				From:  h.From,
				To:    Range{Start: h.To.Start, End: h.To.Start},
				Lines: from[h.From.Start:h.From.End],
			})
		}
		if !h.To.Empty() {
			ret = append(ret, Block{
				Op:    OpAdd,
				From:  Range{Start: h.From.Start, End: h.From.Start},
				To:    h.To,
				Lines: to[h.To.Start:h.To.End],
			})
		}
	}
	return ret
}
