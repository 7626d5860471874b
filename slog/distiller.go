package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webread"
)

// Ensure LoggingDistiller implements webread.Distiller.
var _ webread.Distiller = (*LoggingDistiller)(nil)

// LoggingDistiller wraps a Distiller with structured logging.
type LoggingDistiller struct {
	next   webread.Distiller
	logger *slog.Logger
}

// NewLoggingDistiller creates a new LoggingDistiller.
func NewLoggingDistiller(next webread.Distiller, logger *slog.Logger) *LoggingDistiller {
	return &LoggingDistiller{next: next, logger: logger}
}

// Distill delegates to the wrapped distiller and logs the operation.
func (d *LoggingDistiller) Distill(ctx context.Context, text string, query string, queryContext string) (distilled string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("distill",
			"query", query,
			"in_bytes", len(text),
			"out_bytes", len(distilled),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Distill(ctx, text, query, queryContext)
}
