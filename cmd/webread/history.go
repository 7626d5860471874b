package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/webread"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.History == nil {
		fmt.Fprintln(deps.Stderr, "No database configured. Set --db or WEBREAD_DB to record searches.")
		return webread.Errorf(webread.EINVALID, "history requires a database")
	}

	if c.Prune > 0 {
		deleted, err := deps.History.DeleteSearchRecordsBefore(deps.Ctx, time.Now().Add(-c.Prune))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webread.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted %d records.\n", deleted)
		return nil
	}

	records, total, err := deps.History.FindSearchRecords(deps.Ctx, webread.SearchRecordFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webread.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches recorded.")
		return nil
	}

	for _, r := range records {
		subject := r.Q
		if subject == "" {
			subject = webread.TruncateURL(r.URL, 60)
		}
		fmt.Fprintf(deps.Stdout, "%s  %-40s  %d pages  %s\n",
			r.CreatedAt.Format(time.RFC3339), subject, r.ResultCount, r.Duration.Round(time.Millisecond))
	}
	if total > len(records) {
		fmt.Fprintf(deps.Stdout, "Showing %d of %d records.\n", len(records), total)
	}

	return nil
}
