package normdiff

import (
	"github.com/viant/normdiff/source"
	"github.com/viant/normdiff/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises a Service.
type Option func(s *Service)

// WithConfig replaces the whole configuration. Options applied after it
// still override individual fields.
func WithConfig(cfg *Config) Option {
	return func(s *Service) {
		if cfg != nil {
			copied := *cfg
			s.config = &copied
		}
	}
}

// WithReader sets the line source reader
func WithReader(reader *source.Reader) Option {
	return func(s *Service) {
		s.reader = reader
	}
}

// WithMaxCells limits the alignment table size
func WithMaxCells(cells int) Option {
	return func(s *Service) {
		s.config.Engine.MaxCells = cells
	}
}

// WithFormat sets the output format
func WithFormat(format Format) Option {
	return func(s *Service) {
		s.config.Output.Format = format
	}
}

// WithColor enables colored normal-format output
func WithColor(enabled bool) Option {
	return func(s *Service) {
		s.config.Output.Color = enabled
	}
}

// WithContext sets the number of unified-format context lines
func WithContext(lines int) Option {
	return func(s *Service) {
		s.config.Output.Context = lines
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty spans
// are written to stderr; otherwise to the supplied file path. The first successful
// initialisation wins. A failure is returned by the next comparison.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.setInitErr(tracing.Init(serviceName, serviceVersion, outputFile))
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.setInitErr(tracing.InitWithExporter(serviceName, serviceVersion, exporter))
	}
}
