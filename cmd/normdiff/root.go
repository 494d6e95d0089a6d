// Package main is the normdiff command: it compares two files line by line
// and prints the differences in normal diff format.
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/viant/normdiff"
)

var errUsage = errors.New("usage")

type options struct {
	config   string
	format   string
	color    bool
	context  int
	trace    string
	maxCells int
	verbose  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "normdiff [flags] FROM TO",
		Short: "Compare two files line by line.",
		Long: `
Compare two files line by line and print the minimal set of deleted and added
lines in normal diff format. Locations may be local paths or any URL supported
by viant/afs.
	`,
		Version:       normdiff.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				fmt.Fprintf(stderr, "Usage: %s\n", cmd.UseLine())
				return errUsage
			}
			logger := newLogger(stderr, opts.verbose)
			srv, err := newService(cmd, opts)
			if err != nil {
				return err
			}
			return compare(cmd.Context(), srv, logger, stdout, args[0], args[1])
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.config, "config", "", "YAML configuration location")
	flags.StringVar(&opts.format, "format", string(normdiff.FormatNormal), "output format: normal or unified")
	flags.BoolVar(&opts.color, "color", false, "color deleted and added lines")
	flags.IntVarP(&opts.context, "context", "U", 3, "context lines for unified output")
	flags.StringVar(&opts.trace, "trace", "", "write OpenTelemetry spans to this file")
	flags.IntVar(&opts.maxCells, "max-cells", 0, "limit the alignment table size (0 keeps the configured limit)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log comparison details to stderr")
	return cmd
}

func newLogger(stderr io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().Timestamp().Logger()
}

// newService layers explicitly set flags over the config file, if any.
func newService(cmd *cobra.Command, opts *options) (*normdiff.Service, error) {
	cfg := normdiff.DefaultConfig()
	if opts.config != "" {
		loaded, err := normdiff.LoadConfig(cmd.Context(), nil, opts.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = normdiff.Format(opts.format)
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.color
	}
	if flags.Changed("context") {
		cfg.Output.Context = opts.context
	}
	if opts.maxCells > 0 {
		cfg.Engine.MaxCells = opts.maxCells
	}
	if opts.trace != "" {
		cfg.Tracing.Enabled = true
		cfg.Tracing.Output = opts.trace
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return normdiff.New(normdiff.WithConfig(cfg)), nil
}

// run executes the command and maps the outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, errUsage) {
		report(stderr, err)
	}
	return 1
}

// report prints one "diff: ..." line per joined error.
func report(stderr io.Writer, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			report(stderr, e)
		}
		return
	}
	fmt.Fprintf(stderr, "diff: %v\n", err)
}
