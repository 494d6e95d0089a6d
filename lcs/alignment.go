package lcs

import "fmt"

// Alignment pairs matched indices of the "from" and "to" sequences.
// From[i] and To[i] identify the i-th element of the common subsequence.
type Alignment struct {
	From []int
	To   []int
}

// Len returns the length of the common subsequence.
func (a *Alignment) Len() int {
	if a == nil {
		return 0
	}
	return len(a.From)
}

// Validate checks the structural invariants of the alignment against the
// sequences it was computed from. It does not verify maximality.
func Validate[T comparable](alignment *Alignment, from, to []T) error {
	return ValidateFunc(alignment, from, to, func(x, y T) bool { return x == y })
}

// ValidateFunc is Validate with an explicit equality function.
func ValidateFunc[T any](alignment *Alignment, from, to []T, equal func(x, y T) bool) error {
	if alignment == nil {
		return fmt.Errorf("alignment was nil")
	}
	if len(alignment.From) != len(alignment.To) {
		return fmt.Errorf("alignment sides differ in length: %d != %d", len(alignment.From), len(alignment.To))
	}
	for i := range alignment.From {
		x, y := alignment.From[i], alignment.To[i]
		if x < 0 || x >= len(from) {
			return fmt.Errorf("from index %d out of range [0,%d) at %d", x, len(from), i)
		}
		if y < 0 || y >= len(to) {
			return fmt.Errorf("to index %d out of range [0,%d) at %d", y, len(to), i)
		}
		if i > 0 && (x <= alignment.From[i-1] || y <= alignment.To[i-1]) {
			return fmt.Errorf("alignment not strictly increasing at %d", i)
		}
		if !equal(from[x], to[y]) {
			return fmt.Errorf("tokens differ at pair %d (%d, %d)", i, x, y)
		}
	}
	return nil
}
