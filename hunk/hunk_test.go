package hunk

import (
	"bytes"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/normdiff/lcs"
)

func emit(t *testing.T, from, to []string) []Hunk {
	t.Helper()
	alignment, err := lcs.Compute(from, to)
	require.NoError(t, err)
	return Emit(len(from), len(to), alignment)
}

func TestEmit_Render(t *testing.T) {
	testCases := []struct {
		description string
		from        []string
		to          []string
		expectHunks []Hunk
		expect      string
	}{
		{
			description: "both empty",
			from:        []string{},
			to:          []string{},
			expect:      "",
		},
		{
			description: "add to empty",
			from:        []string{},
			to:          []string{"1", "1", "1"},
			expectHunks: []Hunk{{From: Range{0, 0}, To: Range{0, 3}}},
			expect:      "0a1,3\n> 1\n> 1\n> 1\n",
		},
		{
			description: "delete everything",
			from:        []string{"a", "b"},
			to:          []string{},
			expectHunks: []Hunk{{From: Range{0, 2}, To: Range{0, 0}}},
			expect:      "1,2d0\n< a\n< b\n",
		},
		{
			description: "identical",
			from:        []string{"1", "2", "3"},
			to:          []string{"1", "2", "3"},
			expect:      "",
		},
		{
			description: "delete then add",
			from:        []string{"one", "two", "three"},
			to:          []string{"one", "three", "four"},
			expectHunks: []Hunk{
				{From: Range{1, 2}, To: Range{1, 1}},
				{From: Range{3, 3}, To: Range{2, 3}},
			},
			expect: "2d1\n< two\n3a3\n> four\n",
		},
		{
			description: "interleaved",
			from:        []string{"0", "1", "2", "4", "5"},
			to:          []string{"1", "2", "3", "6", "7", "4", "5", "8"},
			expect:      "1d0\n< 0\n3a3,5\n> 3\n> 6\n> 7\n5a8\n> 8\n",
		},
		{
			description: "replaced line is delete plus add",
			from:        []string{"a", "x", "c"},
			to:          []string{"a", "y", "c"},
			expectHunks: []Hunk{{From: Range{1, 2}, To: Range{1, 2}}},
			expect:      "2d1\n< x\n1a2\n> y\n",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			hunks := emit(t, testCase.from, testCase.to)
			if testCase.expectHunks != nil {
				assert.Equal(t, testCase.expectHunks, hunks)
			}
			assert.Equal(t, testCase.expect, Render(testCase.from, testCase.to, hunks))
		})
	}
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "1", Range{Start: 0, End: 1}.String())
	assert.Equal(t, "3,5", Range{Start: 2, End: 5}.String())
	assert.Equal(t, 3, Range{Start: 2, End: 5}.Len())
	assert.True(t, Range{Start: 4, End: 4}.Empty())
}

func TestBlock_Header(t *testing.T) {
	testCases := []struct {
		description string
		block       Block
		expect      string
	}{
		{description: "single delete", block: Block{Op: OpDelete, From: Range{1, 2}, To: Range{1, 1}}, expect: "2d1"},
		{description: "range delete", block: Block{Op: OpDelete, From: Range{1, 4}, To: Range{0, 0}}, expect: "2,4d0"},
		{description: "single add", block: Block{Op: OpAdd, From: Range{3, 3}, To: Range{2, 3}}, expect: "3a3"},
		{description: "range add", block: Block{Op: OpAdd, From: Range{0, 0}, To: Range{0, 3}}, expect: "0a1,3"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expect, testCase.block.Header())
		})
	}
}

func TestWriter_Color(t *testing.T) {
	from := []string{"one", "two", "three"}
	to := []string{"one", "three", "four"}
	hunks := emit(t, from, to)

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, WithColor(true)).Write(from, to, hunks))
	out := buf.String()
	assert.Contains(t, out, "2d1\n")
	assert.Contains(t, out, "\x1b[31m< two\x1b[0m\n")
	assert.Contains(t, out, "\x1b[32m> four\x1b[0m\n")

	buf.Reset()
	require.NoError(t, NewWriter(&buf, WithColor(false)).Write(from, to, hunks))
	assert.Equal(t, "2d1\n< two\n3a3\n> four\n", buf.String())
}

func TestSummarize(t *testing.T) {
	from := []string{"a", "x", "c", "d"}
	to := []string{"a", "y", "z", "c"}
	stats := Summarize(emit(t, from, to))
	assert.Equal(t, Stats{Hunks: 2, Blocks: 3, Deleted: 2, Added: 2}, stats)
}

func randomLines(rng *rand.Rand, n, alphabet int) []string {
	ret := make([]string, n)
	for i := range ret {
		ret[i] = strconv.Itoa(rng.Intn(alphabet))
	}
	return ret
}

func TestEmit_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		from := randomLines(rng, rng.Intn(12), 1+rng.Intn(4))
		to := randomLines(rng, rng.Intn(12), 1+rng.Intn(4))
		hunks := emit(t, from, to)

		for k, h := range hunks {
			require.False(t, h.Empty())
			if k > 0 {
				require.LessOrEqual(t, hunks[k-1].From.End, h.From.Start)
				require.LessOrEqual(t, hunks[k-1].To.End, h.To.Start)
			}
		}

		applied, err := Apply(from, Blocks(from, to, hunks))
		require.NoError(t, err, "from=%v to=%v", from, to)
		require.Equal(t, to, applied, "from=%v to=%v", from, to)

		blocks, err := Parse([]byte(Render(from, to, hunks)))
		require.NoError(t, err)
		applied, err = Apply(from, blocks)
		require.NoError(t, err)
		require.Equal(t, to, applied, "from=%v to=%v", from, to)
	}
}

func TestEmit_Deterministic(t *testing.T) {
	from := []string{"a", "b", "a", "b", "c"}
	to := []string{"b", "a", "b", "a", "c"}
	expect := Render(from, to, emit(t, from, to))
	for i := 0; i < 10; i++ {
		assert.Equal(t, expect, Render(from, to, emit(t, from, to)))
	}
}
