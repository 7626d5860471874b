// Package retrieve provides the retrieval pipeline orchestration.
// It resolves a query to candidate URLs, fans out fetching and extraction
// across them, optionally distills each page against the query, and collects
// the surviving pages in candidate order.
package retrieve

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webread"
	"golang.org/x/sync/errgroup"
)

// Ensure Retriever implements webread.PageService at compile time.
var _ webread.PageService = (*Retriever)(nil)

// Retriever orchestrates the fetch → extract → distill pipeline.
//
// Searcher, Fetcher and Extractor are required. Distiller is optional; when
// nil, extracted text is returned as-is. Limiter and History are optional.
type Retriever struct {
	Searcher  webread.Searcher
	Fetcher   webread.Fetcher
	Extractor webread.Extractor
	Distiller webread.Distiller
	Limiter   webread.DomainLimiter
	History   webread.HistoryService
	Config    webread.Config

	// Concurrency caps how many candidate pipelines run at once.
	// Zero means one pipeline per candidate.
	Concurrency int
}

// pageResult holds the outcome of processing a single candidate URL.
type pageResult struct {
	position int
	page     *webread.Page
	err      error
}

// SearchPages answers the query with ordered, readable page records.
//
// A query with a URL fetches that single page; any failure there is the
// request's failure. A query without a URL resolves candidates through the
// Searcher and fans out one pipeline per candidate; individual failures only
// exclude their page. Pages whose final content is empty are dropped, so an
// empty result is a valid outcome in search mode.
func (r *Retriever) SearchPages(ctx context.Context, query *webread.Query) ([]*webread.Page, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	begin := time.Now()

	var pages []*webread.Page
	var err error
	if query.URL != "" {
		pages, err = r.direct(ctx, query)
	} else {
		pages, err = r.search(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	r.recordHistory(ctx, query, pages, time.Since(begin))

	return pages, nil
}

// direct runs the pipeline once on the query's URL. The page itself is the
// answer, so a distiller verdict of "not relevant" keeps the raw text, but
// any pipeline failure or empty page fails the request.
func (r *Retriever) direct(ctx context.Context, query *webread.Query) ([]*webread.Page, error) {
	page, err := r.processURL(ctx, query.URL)
	if err != nil {
		return nil, webread.Errorf(webread.ENOTFOUND, "Unable to fetch content from URL: %s", query.URL)
	}

	r.distillPage(ctx, query, page)

	if strings.TrimSpace(page.Content) == "" {
		return nil, webread.Errorf(webread.ENOTFOUND, "Unable to fetch content from URL: %s", query.URL)
	}

	return []*webread.Page{page}, nil
}

// search resolves candidates through the Searcher and fans out one pipeline
// run per candidate.
func (r *Retriever) search(ctx context.Context, query *webread.Query) ([]*webread.Page, error) {
	key := r.Config.SearchCredential(query.SearchKey)
	if key == "" {
		return nil, webread.Errorf(webread.EUNAUTHORIZED,
			"Search API key is required. Configure one or pass the X-Brave-Search-API-Key header.")
	}

	candidates, err := r.Searcher.Search(ctx, key, query.Q, query.N)
	if err != nil {
		return nil, err
	}
	if len(candidates) > query.N {
		candidates = candidates[:query.N]
	}

	pages := make([]*webread.Page, 0, len(candidates))
	if len(candidates) == 0 {
		return pages, nil
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = len(candidates)
	}

	resultCh := make(chan pageResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, candidate := range candidates {
			g.Go(func() error {
				page, err := r.processURL(gctx, candidate.URL)
				if err != nil {
					resultCh <- pageResult{position: i, err: err}
					return nil
				}
				if !r.distillPage(gctx, query, page) {
					resultCh <- pageResult{position: i}
					return nil
				}
				resultCh <- pageResult{position: i, page: page}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Index outcomes by candidate position so the result order matches the
	// provider's ranking rather than completion order.
	outcomes := make([]pageResult, len(candidates))
	for result := range resultCh {
		outcomes[result.position] = result
	}

	for _, result := range outcomes {
		if result.err != nil || result.page == nil {
			continue
		}
		if strings.TrimSpace(result.page.Content) == "" {
			continue
		}
		pages = append(pages, result.page)
	}

	return pages, nil
}

// processURL fetches a single URL and extracts its readable text.
func (r *Retriever) processURL(ctx context.Context, pageURL string) (*webread.Page, error) {
	if r.Limiter != nil {
		if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
			if err := r.Limiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}

	html, err := r.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	extracted, err := r.Extractor.Extract(html, pageURL)
	if err != nil {
		return nil, err
	}

	return &webread.Page{
		URL:     pageURL,
		Title:   extracted.Title,
		Content: extracted.Text,
	}, nil
}

// distillPage replaces the page's content with its distilled version when a
// Distiller is configured and the query carries text to distill against.
// Distillation failures keep the raw text. Reports false when the distiller
// judged the page not relevant; the page's content is left untouched then.
func (r *Retriever) distillPage(ctx context.Context, query *webread.Query, page *webread.Page) bool {
	if r.Distiller == nil {
		return true
	}
	if strings.TrimSpace(query.Q) == "" && strings.TrimSpace(query.Context) == "" {
		return true
	}

	distilled, err := r.Distiller.Distill(ctx, page.Content, query.Q, query.Context)
	if err != nil {
		return true
	}
	if strings.TrimSpace(distilled) == webread.NotRelevant {
		return false
	}

	page.Content = distilled
	return true
}

// recordHistory stores an audit record of a completed retrieval.
// Best-effort: a storage failure never fails the request.
func (r *Retriever) recordHistory(ctx context.Context, query *webread.Query, pages []*webread.Page, took time.Duration) {
	if r.History == nil {
		return
	}

	record := &webread.SearchRecord{
		Q:           query.Q,
		URL:         query.URL,
		Context:     query.Context,
		N:           query.N,
		ResultCount: len(pages),
		Duration:    took,
	}
	for i, page := range pages {
		record.Pages = append(record.Pages, &webread.SearchRecordPage{
			URL:          page.URL,
			Title:        page.Title,
			ContentHash:  contentHash(page.Content),
			ContentBytes: len(page.Content),
			Position:     i,
		})
	}

	_ = r.History.CreateSearchRecord(ctx, record)
}

// contentHash computes a hash of the content using xxhash.
func contentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%016x", h)
}
