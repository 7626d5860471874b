package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webread"
)

// Ensure LoggingPageService implements webread.PageService.
var _ webread.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with structured logging.
type LoggingPageService struct {
	next   webread.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next webread.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// SearchPages delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) SearchPages(ctx context.Context, query *webread.Query) (pages []*webread.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search pages",
			"q", query.Q,
			"url", query.URL,
			"n", query.N,
			"results", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchPages(ctx, query)
}
