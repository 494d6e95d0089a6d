package lcs

import (
	"errors"
	"fmt"
)

// ErrResourceExhausted is returned when the table needed for the residual
// region exceeds the configured cell limit.
var ErrResourceExhausted = errors.New("lcs: resource exhausted")

// Compute returns a longest common subsequence of from and to.
func Compute[T comparable](from, to []T, opts ...Option) (*Alignment, error) {
	return ComputeFunc(from, to, func(x, y T) bool { return x == y }, opts...)
}

// ComputeFunc returns a longest common subsequence of from and to using equal
// to compare tokens.
func ComputeFunc[T any](from, to []T, equal func(x, y T) bool, opts ...Option) (*Alignment, error) {
	options := newOptions(opts)
	if len(from) == 0 || len(to) == 0 {
		return &Alignment{}, nil
	}

	minLen := min(len(from), len(to))
	prefix, suffix := 0, 0
	if !options.noTrim {
		for prefix < minLen && equal(from[prefix], to[prefix]) {
			prefix++
		}
		if prefix == minLen { // one sequence is a prefix of the other
			return identity(prefix), nil
		}
		// bounded so the suffix never reaches into the prefix
		for suffix < minLen-prefix && equal(from[len(from)-1-suffix], to[len(to)-1-suffix]) {
			suffix++
		}
	}
	fromEnd := len(from) - suffix
	toEnd := len(to) - suffix

	residualFrom := from[prefix:fromEnd]
	residualTo := to[prefix:toEnd]
	t, err := newTable(residualFrom, residualTo, equal, options.maxCells)
	if err != nil {
		return nil, err
	}

	common := t.length()
	size := prefix + common + suffix
	ret := &Alignment{From: make([]int, size), To: make([]int, size)}
	k := prefix + common - 1
	backtrace(t, residualFrom, residualTo, equal, func(i, j int) {
		ret.From[k] = prefix + i
		ret.To[k] = prefix + j
		k--
	})
	for i := 0; i < prefix; i++ {
		ret.From[i] = i
		ret.To[i] = i
	}
	for i := 0; i < suffix; i++ {
		ret.From[prefix+common+i] = fromEnd + i
		ret.To[prefix+common+i] = toEnd + i
	}
	return ret, nil
}

func identity(n int) *Alignment {
	ret := &Alignment{From: make([]int, n), To: make([]int, n)}
	for i := 0; i < n; i++ {
		ret.From[i] = i
		ret.To[i] = i
	}
	return ret
}

// table holds LCS lengths of every prefix pair: cell (i, j) is the LCS length
// of from[:i] and to[:j]. Row 0 and column 0 stay zero.
type table struct {
	rows, cols int
	cells      []int32
}

func (t *table) at(i, j int) int32 { return t.cells[i*t.cols+j] }

func (t *table) length() int { return int(t.at(t.rows-1, t.cols-1)) }

func newTable[T any](from, to []T, equal func(x, y T) bool, maxCells int) (*table, error) {
	rows, cols := len(from)+1, len(to)+1
	if cols > maxCells/rows {
		return nil, fmt.Errorf("%w: %dx%d table exceeds %d cells", ErrResourceExhausted, rows, cols, maxCells)
	}
	t := &table{rows: rows, cols: cols, cells: make([]int32, rows*cols)}
	for i := 1; i < rows; i++ {
		row := t.cells[i*cols : (i+1)*cols]
		prev := t.cells[(i-1)*cols : i*cols]
		for j := 1; j < cols; j++ {
			switch {
			case equal(from[i-1], to[j-1]):
				row[j] = prev[j-1] + 1
			case prev[j] >= row[j-1]:
				row[j] = prev[j]
			default:
				row[j] = row[j-1]
			}
		}
	}
	return t, nil
}

// backtrace walks from the bottom-right cell and reports matched residual
// indices in decreasing order.
//
// When skipping from[i-1] and skipping to[j-1] score the same, the walk
// consumes from "from" first. Several LCS choices are equally valid; this rule
// fixes one so that hunk output is reproducible for identical inputs.
func backtrace[T any](t *table, from, to []T, equal func(x, y T) bool, match func(i, j int)) {
	i, j := len(from), len(to)
	for i > 0 && j > 0 {
		switch {
		case equal(from[i-1], to[j-1]):
			match(i-1, j-1)
			i--
			j--
		case t.at(i-1, j) >= t.at(i, j-1):
			i--
		default:
			j--
		}
	}
}
