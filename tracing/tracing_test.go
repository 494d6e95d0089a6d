package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("normdiff", "0.0.1", fname))

	ctx, parent := StartSpan(context.Background(), "compare")
	parent.WithAttributes(map[string]string{"from": "a.txt", "to": "b.txt"})
	_, child := StartSpan(ctx, "align")
	child.WithInt("lcs.length", 4)
	EndSpan(child, errors.New("boom"))
	EndSpan(parent, nil)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, string(data), "lcs.length")
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	assert.Nil(t, span.WithInt("k", 1))
	span.SetStatus(nil)
	EndSpan(span, nil)
}

func TestInit_BadOutput(t *testing.T) {
	err := Init("normdiff", "0.0.1", filepath.Join(t.TempDir(), "missing", "trace.json"))
	assert.Error(t, err)
}
