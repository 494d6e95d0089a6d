// Package source reads the sequences to compare: one token per line of a
// file, from any location supported by viant/afs (local paths, file://,
// mem://, cloud storage).
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// ErrNotFound is returned when a location does not exist.
var ErrNotFound = errors.New("No such file or directory")

// Reader loads line sequences.
type Reader struct {
	fs      afs.Service
	options []storage.Option
}

// Option customises a Reader.
type Option func(r *Reader)

// WithFS sets the storage service used to access locations.
func WithFS(fs afs.Service) Option {
	return func(r *Reader) { r.fs = fs }
}

// WithOptions sets storage options passed on every access, for example an
// embed.FS for embed:// locations.
func WithOptions(options ...storage.Option) Option {
	return func(r *Reader) { r.options = options }
}

// New creates a Reader; by default it uses afs.New().
func New(opts ...Option) *Reader {
	ret := &Reader{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// Exists reports whether URL refers to an existing object.
func (r *Reader) Exists(ctx context.Context, URL string) (bool, error) {
	exists, err := r.fs.Exists(ctx, URL, r.options...)
	if err != nil {
		return false, fmt.Errorf("failed to check if %s exists: %w", URL, err)
	}
	return exists, nil
}

// Check returns an ErrNotFound error naming URL when it does not exist.
func (r *Reader) Check(ctx context.Context, URL string) error {
	exists, err := r.Exists(ctx, URL)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{URL: URL}
	}
	return nil
}

// Lines reads the whole object at URL and splits it into lines.
func (r *Reader) Lines(ctx context.Context, URL string) ([]string, error) {
	if err := r.Check(ctx, URL); err != nil {
		return nil, err
	}
	object, err := r.fs.Object(ctx, URL, r.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", URL, err)
	}
	if object.IsDir() {
		return nil, fmt.Errorf("failed to read %s: is a directory", URL)
	}
	data, err := r.fs.Download(ctx, object, r.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	return Split(string(data)), nil
}

// Split breaks text on '\n'. A trailing newline does not start an extra
// line, and an empty text has no lines. Other bytes, '\r' included, are kept.
func Split(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Same reports whether both locations resolve to the same object URL.
func Same(a, b string) bool {
	if a == b {
		return true
	}
	return url.Normalize(a, file.Scheme) == url.Normalize(b, file.Scheme)
}

// NotFoundError names a missing location.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return e.URL + ": " + ErrNotFound.Error()
}

// Unwrap makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }
