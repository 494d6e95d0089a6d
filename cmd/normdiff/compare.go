package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/viant/normdiff"
)

func compare(ctx context.Context, srv *normdiff.Service, logger zerolog.Logger, stdout io.Writer, from, to string) error {
	result, err := srv.Compare(ctx, from, to)
	if err != nil {
		return err
	}
	if result.Identical {
		logger.Debug().Str("from", from).Str("to", to).Msg("same source, nothing to compare")
		return nil
	}
	logger.Debug().
		Str("id", result.ID).
		Int("from.lines", len(result.From.Lines)).
		Int("to.lines", len(result.To.Lines)).
		Int("lcs", result.Alignment.Len()).
		Int("hunks", result.Stats.Hunks).
		Int("deleted", result.Stats.Deleted).
		Int("added", result.Stats.Added).
		Dur("elapsed", result.Elapsed).
		Msg("compared")
	return srv.Write(stdout, result)
}
