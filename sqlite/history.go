package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/webread"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webread.HistoryService = (*HistoryService)(nil)

// HistoryService implements webread.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// CreateSearchRecord stores an audit record of one answered query along with
// its page summaries. The record's ID and CreatedAt are assigned here.
func (s *HistoryService) CreateSearchRecord(ctx context.Context, record *webread.SearchRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO search_records (id, q, url, context, n, result_count, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Q, record.URL, record.Context, record.N, record.ResultCount,
		record.Duration.Milliseconds(), record.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for _, page := range record.Pages {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO search_record_pages (record_id, url, title, content_hash, content_bytes, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, record.ID, page.URL, page.Title, page.ContentHash, page.ContentBytes, page.Position)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindSearchRecords retrieves records matching the filter, newest first,
// along with the total match count before Offset/Limit.
func (s *HistoryService) FindSearchRecords(ctx context.Context, filter webread.SearchRecordFilter) ([]*webread.SearchRecord, int, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, q, url, context, n, result_count, duration_ms, created_at, COUNT(*) OVER()
		FROM search_records
		WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Q != nil {
		query.WriteString(" AND q = ?")
		args = append(args, *filter.Q)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*webread.SearchRecord
	var total int
	for rows.Next() {
		var record webread.SearchRecord
		var durationMS int64
		var createdAt string

		if err := rows.Scan(&record.ID, &record.Q, &record.URL, &record.Context, &record.N,
			&record.ResultCount, &durationMS, &createdAt, &total); err != nil {
			return nil, 0, err
		}

		record.Duration = time.Duration(durationMS) * time.Millisecond
		record.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to parse created_at: %w", err)
		}

		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, record := range records {
		record.Pages, err = s.findSearchRecordPages(ctx, record.ID)
		if err != nil {
			return nil, 0, err
		}
	}

	return records, total, nil
}

// findSearchRecordPages loads the page summaries for one record in result order.
func (s *HistoryService) findSearchRecordPages(ctx context.Context, recordID string) ([]*webread.SearchRecordPage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, content_hash, content_bytes, position
		FROM search_record_pages
		WHERE record_id = ?
		ORDER BY position ASC
	`, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*webread.SearchRecordPage
	for rows.Next() {
		var page webread.SearchRecordPage
		if err := rows.Scan(&page.URL, &page.Title, &page.ContentHash, &page.ContentBytes, &page.Position); err != nil {
			return nil, err
		}
		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeleteSearchRecordsBefore removes records created before the cutoff.
// Page summaries are removed by the foreign key cascade.
func (s *HistoryService) DeleteSearchRecordsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM search_records WHERE created_at < ?
	`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(deleted), nil
}
