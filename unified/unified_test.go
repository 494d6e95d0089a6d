package unified

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	testCases := []struct {
		description string
		from        []string
		to          []string
		expected    Stats
		contains    []string
	}{
		{
			description: "identical",
			from:        []string{"a", "b"},
			to:          []string{"a", "b"},
		},
		{
			description: "change and append",
			from:        []string{"line1", "line2", "line3"},
			to:          []string{"line1", "line2 changed", "line3", "added"},
			expected:    Stats{Hunks: 1, Added: 2, Deleted: 1},
			contains:    []string{"--- old.txt", "+++ new.txt", "-line2\n", "+line2 changed\n", "+added\n"},
		},
		{
			description: "from empty",
			from:        []string{},
			to:          []string{"x"},
			expected:    Stats{Hunks: 1, Added: 1},
			contains:    []string{"+x\n"},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			result, err := Generate(testCase.from, testCase.to, "old.txt", "new.txt", 0)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result.Stats)
			if len(testCase.contains) == 0 {
				assert.Empty(t, result.Patch)
				return
			}
			for _, fragment := range testCase.contains {
				assert.True(t, strings.Contains(result.Patch, fragment), "missing %q in:\n%s", fragment, result.Patch)
			}
		})
	}
}
