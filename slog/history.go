package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webread"
)

// Ensure LoggingHistoryService implements webread.HistoryService.
var _ webread.HistoryService = (*LoggingHistoryService)(nil)

// LoggingHistoryService wraps a HistoryService with structured logging.
type LoggingHistoryService struct {
	next   webread.HistoryService
	logger *slog.Logger
}

// NewLoggingHistoryService creates a new LoggingHistoryService.
func NewLoggingHistoryService(next webread.HistoryService, logger *slog.Logger) *LoggingHistoryService {
	return &LoggingHistoryService{next: next, logger: logger}
}

// CreateSearchRecord delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) CreateSearchRecord(ctx context.Context, record *webread.SearchRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create search record",
			"results", record.ResultCount,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSearchRecord(ctx, record)
}

// FindSearchRecords delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) FindSearchRecords(ctx context.Context, filter webread.SearchRecordFilter) (records []*webread.SearchRecord, total int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find search records",
			"count", len(records),
			"total", total,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSearchRecords(ctx, filter)
}

// DeleteSearchRecordsBefore delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) DeleteSearchRecordsBefore(ctx context.Context, cutoff time.Time) (deleted int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete search records",
			"cutoff", cutoff,
			"deleted", deleted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSearchRecordsBefore(ctx, cutoff)
}
