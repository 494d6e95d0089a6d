package source

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    []string
	}{
		{description: "empty", input: "", expected: []string{}},
		{description: "single empty line", input: "\n", expected: []string{""}},
		{description: "terminated", input: "a\nb\n", expected: []string{"a", "b"}},
		{description: "unterminated", input: "a\nb", expected: []string{"a", "b"}},
		{description: "blank lines kept", input: "a\n\nb\n\n", expected: []string{"a", "", "b", ""}},
		{description: "carriage return kept", input: "a\r\nb\r\n", expected: []string{"a\r", "b\r"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expected, Split(testCase.input))
		})
	}
}

func TestReader_Lines(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/source/lines.txt"
	require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader("one\ntwo\nthree\n")))

	reader := New(WithFS(fs))
	exists, err := reader.Exists(ctx, URL)
	require.NoError(t, err)
	assert.True(t, exists)

	lines, err := reader.Lines(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestReader_NotFound(t *testing.T) {
	ctx := context.Background()
	reader := New()
	URL := "mem://localhost/source/missing.txt"

	exists, err := reader.Exists(ctx, URL)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = reader.Lines(ctx, URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, URL+": No such file or directory", err.Error())

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, URL, notFound.URL)
}

func TestSame(t *testing.T) {
	assert.True(t, Same("a.txt", "a.txt"))
	assert.True(t, Same("/tmp/a.txt", "file:///tmp/a.txt"))
	assert.False(t, Same("/tmp/a.txt", "/tmp/b.txt"))
	assert.False(t, Same("mem://localhost/a.txt", "mem://localhost/b.txt"))
}
