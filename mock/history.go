package mock

import (
	"context"
	"time"

	"github.com/fwojciec/webread"
)

var _ webread.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of webread.HistoryService.
type HistoryService struct {
	CreateSearchRecordFn        func(ctx context.Context, record *webread.SearchRecord) error
	FindSearchRecordsFn         func(ctx context.Context, filter webread.SearchRecordFilter) ([]*webread.SearchRecord, int, error)
	DeleteSearchRecordsBeforeFn func(ctx context.Context, cutoff time.Time) (int, error)
}

func (s *HistoryService) CreateSearchRecord(ctx context.Context, record *webread.SearchRecord) error {
	return s.CreateSearchRecordFn(ctx, record)
}

func (s *HistoryService) FindSearchRecords(ctx context.Context, filter webread.SearchRecordFilter) ([]*webread.SearchRecord, int, error) {
	return s.FindSearchRecordsFn(ctx, filter)
}

func (s *HistoryService) DeleteSearchRecordsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return s.DeleteSearchRecordsBeforeFn(ctx, cutoff)
}
