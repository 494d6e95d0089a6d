package lcs

// DefaultMaxCells bounds the dynamic-programming table of a single call.
// At four bytes per cell this is 1 GiB.
const DefaultMaxCells = 1 << 28

type options struct {
	maxCells int
	noTrim   bool
}

// Option customises a single computation.
type Option func(o *options)

// WithMaxCells limits the number of table cells ((n+1)*(m+1) over the
// trimmed residual). Non-positive values keep the default.
func WithMaxCells(cells int) Option {
	return func(o *options) {
		if cells > 0 {
			o.maxCells = cells
		}
	}
}

// withoutTrim disables prefix/suffix trimming; used to check that trimming
// never changes the result length.
func withoutTrim() Option {
	return func(o *options) { o.noTrim = true }
}

func newOptions(opts []Option) *options {
	ret := &options{maxCells: DefaultMaxCells}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
