package hunk

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Writer renders blocks in normal format.
type Writer struct {
	out     *bufio.Writer
	deleted *color.Color
	added   *color.Color
}

// WriterOption customises a Writer.
type WriterOption func(w *Writer)

// WithColor paints deleted lines red and added lines green.
func WithColor(enabled bool) WriterOption {
	return func(w *Writer) {
		if !enabled {
			w.deleted, w.added = nil, nil
			return
		}
		w.deleted = color.New(color.FgRed)
		w.deleted.EnableColor()
		w.added = color.New(color.FgGreen)
		w.added.EnableColor()
	}
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	ret := &Writer{out: bufio.NewWriter(w)}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Write renders every hunk and flushes the underlying writer.
func (w *Writer) Write(from, to []string, hunks []Hunk) error {
	for _, block := range Blocks(from, to, hunks) {
		if err := w.WriteBlock(block); err != nil {
			return err
		}
	}
	return w.out.Flush()
}

// WriteBlock renders a single block without flushing.
func (w *Writer) WriteBlock(block Block) error {
	if _, err := w.out.WriteString(block.Header() + "\n"); err != nil {
		return err
	}
	paint := w.added
	if block.Op == OpDelete {
		paint = w.deleted
	}
	prefix := block.Op.prefix()
	for _, line := range block.Lines {
		text := prefix + line
		if paint != nil {
			text = paint.Sprint(text)
		}
		if _, err := w.out.WriteString(text + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the normal-format text for hunks, without colors.
func Render(from, to []string, hunks []Hunk) string {
	var sb strings.Builder
	_ = NewWriter(&sb).Write(from, to, hunks)
	return sb.String()
}
