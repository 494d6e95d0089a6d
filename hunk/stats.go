package hunk

// Stats summarises a hunk stream.
type Stats struct {
	Hunks   int `json:"hunks" yaml:"hunks"`
	Blocks  int `json:"blocks" yaml:"blocks"`
	Deleted int `json:"deleted" yaml:"deleted"`
	Added   int `json:"added" yaml:"added"`
}

// Summarize counts hunks, rendered blocks and changed lines.
func Summarize(hunks []Hunk) Stats {
	ret := Stats{Hunks: len(hunks)}
	for _, h := range hunks {
		if !h.From.Empty() {
			ret.Blocks++
			ret.Deleted += h.From.Len()
		}
		if !h.To.Empty() {
			ret.Blocks++
			ret.Added += h.To.Len()
		}
	}
	return ret
}
