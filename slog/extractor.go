package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webread"
)

// Ensure LoggingExtractor implements webread.Extractor.
var _ webread.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging.
type LoggingExtractor struct {
	next   webread.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webread.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string, baseURL string) (result *webread.ExtractResult, err error) {
	defer func(begin time.Time) {
		var bytes int
		if result != nil {
			bytes = len(result.Text)
		}
		e.logger.Info("extract",
			"url", baseURL,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, baseURL)
}
