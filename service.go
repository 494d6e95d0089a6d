package normdiff

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/viant/normdiff/hunk"
	"github.com/viant/normdiff/internal/clock"
	"github.com/viant/normdiff/internal/idgen"
	"github.com/viant/normdiff/lcs"
	"github.com/viant/normdiff/source"
	"github.com/viant/normdiff/tracing"
	"github.com/viant/normdiff/unified"
)

// Version is the tool version reported by the CLI and tracing resource.
const Version = "0.1.0"

// Sequence is one side of a comparison.
type Sequence struct {
	URL   string   `json:"url,omitempty" yaml:"url,omitempty"`
	Lines []string `json:"-" yaml:"-"`
}

// Result holds a completed comparison.
type Result struct {
	ID        string         `json:"id" yaml:"id"`
	From      Sequence       `json:"from" yaml:"from"`
	To        Sequence       `json:"to" yaml:"to"`
	Identical bool           `json:"identical,omitempty" yaml:"identical,omitempty"` // same source, nothing compared
	Alignment *lcs.Alignment `json:"-" yaml:"-"`
	Hunks     []hunk.Hunk    `json:"hunks,omitempty" yaml:"hunks,omitempty"`
	Stats     hunk.Stats     `json:"stats" yaml:"stats"`
	StartedAt time.Time      `json:"startedAt" yaml:"startedAt"`
	Elapsed   time.Duration  `json:"elapsed" yaml:"elapsed"`
}

// HasChanges reports whether any hunk was produced.
func (r *Result) HasChanges() bool {
	return r != nil && len(r.Hunks) > 0
}

// Service compares line sequences. It holds only configuration, so a single
// instance may serve concurrent comparisons.
type Service struct {
	config  *Config
	reader  *source.Reader
	initErr error
}

func (s *Service) setInitErr(err error) {
	if err != nil && s.initErr == nil {
		s.initErr = fmt.Errorf("failed to init tracing: %w", err)
	}
}

// ready reports configuration and initialisation errors.
func (s *Service) ready() error {
	if s.initErr != nil {
		return s.initErr
	}
	return s.config.Validate()
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	if s.reader == nil {
		s.reader = source.New()
	}
	if t := s.config.Tracing; t.Enabled {
		s.setInitErr(tracing.Init(t.ServiceName, t.ServiceVersion, t.Output))
	}
}

// Config returns a copy of the effective configuration.
func (s *Service) Config() Config {
	return *s.config
}

// Compare reads both locations and computes their differences. Missing
// locations are all reported, joined, as source.ErrNotFound errors. When both
// locations name the same object the comparison is skipped and the result is
// marked Identical.
func (s *Service) Compare(ctx context.Context, fromURL, toURL string) (result *Result, err error) {
	if err = s.ready(); err != nil {
		return nil, err
	}
	ctx, span := tracing.StartSpan(ctx, "normdiff.compare")
	defer func() { tracing.EndSpan(span, err) }()
	id := idgen.New()
	span.WithAttributes(map[string]string{"normdiff.id": id, "normdiff.from": fromURL, "normdiff.to": toURL})

	if err = errors.Join(s.reader.Check(ctx, fromURL), s.reader.Check(ctx, toURL)); err != nil {
		return nil, err
	}
	if source.Same(fromURL, toURL) {
		return &Result{
			ID:        id,
			From:      Sequence{URL: fromURL},
			To:        Sequence{URL: toURL},
			Identical: true,
			Alignment: &lcs.Alignment{},
			StartedAt: clock.Now(),
		}, nil
	}

	from, to, err := s.read(ctx, fromURL, toURL)
	if err != nil {
		return nil, err
	}
	return s.compare(ctx, id, from, to)
}

// CompareLines computes the differences of two in-memory line sequences.
func (s *Service) CompareLines(ctx context.Context, from, to []string) (result *Result, err error) {
	if err = s.ready(); err != nil {
		return nil, err
	}
	ctx, span := tracing.StartSpan(ctx, "normdiff.compare")
	defer func() { tracing.EndSpan(span, err) }()
	id := idgen.New()
	span.WithAttributes(map[string]string{"normdiff.id": id})
	return s.compare(ctx, id, Sequence{Lines: from}, Sequence{Lines: to})
}

func (s *Service) read(ctx context.Context, fromURL, toURL string) (from, to Sequence, err error) {
	ctx, span := tracing.StartSpan(ctx, "normdiff.read")
	defer func() { tracing.EndSpan(span, err) }()
	from.URL, to.URL = fromURL, toURL
	if from.Lines, err = s.reader.Lines(ctx, fromURL); err != nil {
		return from, to, err
	}
	if to.Lines, err = s.reader.Lines(ctx, toURL); err != nil {
		return from, to, err
	}
	span.WithInt("normdiff.from.lines", len(from.Lines)).WithInt("normdiff.to.lines", len(to.Lines))
	return from, to, nil
}

func (s *Service) compare(ctx context.Context, id string, from, to Sequence) (*Result, error) {
	started := clock.Now()
	alignment, err := s.align(ctx, from.Lines, to.Lines)
	if err != nil {
		return nil, err
	}

	_, span := tracing.StartSpan(ctx, "normdiff.emit")
	hunks := hunk.Emit(len(from.Lines), len(to.Lines), alignment)
	stats := hunk.Summarize(hunks)
	span.WithInt("normdiff.hunks", stats.Hunks).WithInt("normdiff.deleted", stats.Deleted).WithInt("normdiff.added", stats.Added)
	tracing.EndSpan(span, nil)

	return &Result{
		ID:        id,
		From:      from,
		To:        to,
		Alignment: alignment,
		Hunks:     hunks,
		Stats:     stats,
		StartedAt: started,
		Elapsed:   clock.Now().Sub(started),
	}, nil
}

func (s *Service) align(ctx context.Context, from, to []string) (alignment *lcs.Alignment, err error) {
	_, span := tracing.StartSpan(ctx, "normdiff.align")
	defer func() { tracing.EndSpan(span, err) }()
	alignment, err = lcs.Compute(from, to, lcs.WithMaxCells(s.config.Engine.MaxCells))
	if err != nil {
		return nil, fmt.Errorf("failed to align %d and %d lines: %w", len(from), len(to), err)
	}
	span.WithInt("normdiff.lcs.length", alignment.Len())
	return alignment, nil
}

// Write renders result in the configured format. Identical results write
// nothing.
func (s *Service) Write(w io.Writer, result *Result) error {
	if result == nil || result.Identical {
		return nil
	}
	switch s.config.Output.Format {
	case FormatUnified:
		patch, err := unified.Generate(result.From.Lines, result.To.Lines, result.From.URL, result.To.URL, s.config.Output.Context)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, patch.Patch)
		return err
	default:
		writer := hunk.NewWriter(w, hunk.WithColor(s.config.Output.Color))
		return writer.Write(result.From.Lines, result.To.Lines, result.Hunks)
	}
}

// New creates a Service.
func New(options ...Option) *Service {
	ret := &Service{config: DefaultConfig()}
	ret.init(options)
	return ret
}
