// Package unified renders line sequences as a unified diff. It complements
// the normal format produced by package hunk for callers that need patches
// consumable by patch(1) or code review tools.
package unified

import (
	"fmt"
	"slices"

	"github.com/pmezard/go-difflib/difflib"
	sgdiff "github.com/sourcegraph/go-diff/diff"
)

// DefaultContext is the number of context lines around each change.
const DefaultContext = 3

// Stats counts the content of a unified diff.
type Stats struct {
	Hunks   int `json:"hunks" yaml:"hunks"`
	Added   int `json:"added" yaml:"added"`
	Deleted int `json:"deleted" yaml:"deleted"`
}

// Result holds the patch text with its statistics.
type Result struct {
	Patch string
	Stats Stats
}

// Generate builds a unified diff between from and to. Identical inputs
// produce an empty Result.
func Generate(from, to []string, fromName, toName string, context int) (*Result, error) {
	if slices.Equal(from, to) {
		return &Result{}, nil
	}
	if context <= 0 {
		context = DefaultContext
	}
	if fromName == "" {
		fromName = "a"
	}
	if toName == "" {
		toName = "b"
	}
	ud := difflib.UnifiedDiff{
		A:        terminate(from),
		B:        terminate(to),
		FromFile: fromName,
		ToFile:   toName,
		Context:  context,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, fmt.Errorf("diff generation: %w", err)
	}
	stats, err := parseStats(patch)
	if err != nil {
		return nil, err
	}
	return &Result{Patch: patch, Stats: stats}, nil
}

func parseStats(patch string) (Stats, error) {
	fileDiff, err := sgdiff.ParseFileDiff([]byte(patch))
	if err != nil {
		return Stats{}, fmt.Errorf("parse patch: %w", err)
	}
	// Stat folds paired +/- lines into Changed
	stat := fileDiff.Stat()
	return Stats{
		Hunks:   len(fileDiff.Hunks),
		Added:   int(stat.Added + stat.Changed),
		Deleted: int(stat.Deleted + stat.Changed),
	}, nil
}

func terminate(lines []string) []string {
	ret := make([]string, len(lines))
	for i, line := range lines {
		ret[i] = line + "\n"
	}
	return ret
}
