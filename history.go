package webread

import (
	"context"
	"time"
)

// SearchRecord is an audit record of one answered query.
type SearchRecord struct {
	ID          string        `json:"id"`
	Q           string        `json:"q"`
	URL         string        `json:"url"`
	Context     string        `json:"context"`
	N           int           `json:"n"`
	ResultCount int           `json:"resultCount"`
	Duration    time.Duration `json:"duration"`
	CreatedAt   time.Time     `json:"createdAt"`

	// Pages summarize the returned results, in result order.
	Pages []*SearchRecordPage `json:"pages"`
}

// SearchRecordPage summarizes one returned page without storing its content.
type SearchRecordPage struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	ContentHash  string `json:"contentHash"`
	ContentBytes int    `json:"contentBytes"`
	Position     int    `json:"position"`
}

// Validate returns an error if the record contains invalid fields.
func (r *SearchRecord) Validate() error {
	if r.Q == "" && r.URL == "" {
		return Errorf(EINVALID, "search record query or URL required")
	}
	return nil
}

// HistoryService records answered queries for later inspection.
type HistoryService interface {
	// CreateSearchRecord stores a record, assigning ID and CreatedAt.
	CreateSearchRecord(ctx context.Context, record *SearchRecord) error

	// FindSearchRecords retrieves records matching the filter, newest
	// first, along with the total match count before Offset/Limit.
	FindSearchRecords(ctx context.Context, filter SearchRecordFilter) ([]*SearchRecord, int, error)

	// DeleteSearchRecordsBefore removes records created before cutoff.
	// Returns the number of records removed.
	DeleteSearchRecordsBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// SearchRecordFilter represents a filter for FindSearchRecords.
type SearchRecordFilter struct {
	ID *string `json:"id"`
	Q  *string `json:"q"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
