package hunk

import (
	"errors"
	"fmt"
)

// ErrMismatch is returned when a block does not match the lines it is applied to.
var ErrMismatch = errors.New("diff does not apply")

// Apply replays blocks against from and returns the resulting lines. Every
// deleted line and every anchor is checked; any inconsistency aborts with an
// ErrMismatch error and no partial result.
func Apply(from []string, blocks []Block) ([]string, error) {
	ret := make([]string, 0, len(from))
	fromIdx := 0      // next line of from not yet copied or deleted
	lastDeleted := -1 // start of the deletion directly preceding, if any
	for _, block := range blocks {
		switch block.Op {
		case OpDelete:
			if len(block.Lines) != block.From.Len() {
				return nil, fmt.Errorf("%w: block %s has %d lines, expected %d", ErrMismatch, block.Header(), len(block.Lines), block.From.Len())
			}
			if block.From.Start < fromIdx || block.From.End > len(from) {
				return nil, fmt.Errorf("%w: block %s out of order or range", ErrMismatch, block.Header())
			}
			ret = append(ret, from[fromIdx:block.From.Start]...)
			if len(ret) != block.To.Start {
				return nil, fmt.Errorf("%w: block %s expects %d preceding lines, got %d", ErrMismatch, block.Header(), block.To.Start, len(ret))
			}
			for i, line := range block.Lines {
				if from[block.From.Start+i] != line {
					return nil, fmt.Errorf("%w: delete mismatch at line %d", ErrMismatch, block.From.Start+i+1)
				}
			}
			fromIdx = block.From.End
			lastDeleted = block.From.Start
		case OpAdd:
			if len(block.Lines) != block.To.Len() {
				return nil, fmt.Errorf("%w: block %s has %d lines, expected %d", ErrMismatch, block.Header(), len(block.Lines), block.To.Len())
			}
			anchor := block.From.Start
			switch {
			case anchor > len(from):
				return nil, fmt.Errorf("%w: block %s out of range", ErrMismatch, block.Header())
			case anchor >= fromIdx:
				ret = append(ret, from[fromIdx:anchor]...)
				fromIdx = anchor
			case anchor != lastDeleted:
				return nil, fmt.Errorf("%w: block %s out of order", ErrMismatch, block.Header())
			}
			if len(ret) != block.To.Start {
				return nil, fmt.Errorf("%w: block %s expects %d preceding lines, got %d", ErrMismatch, block.Header(), block.To.Start, len(ret))
			}
			ret = append(ret, block.Lines...)
			lastDeleted = -1
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, block.Op)
		}
	}
	return append(ret, from[fromIdx:]...), nil
}
