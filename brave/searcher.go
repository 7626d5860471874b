// Package brave provides a webread.Searcher backed by the Brave web search
// API.
package brave

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/fwojciec/webread"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production Brave web search endpoint.
const DefaultBaseURL = "https://api.search.brave.com/res/v1/web/search"

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 10 * time.Second

// Ensure Searcher implements webread.Searcher at compile time.
var _ webread.Searcher = (*Searcher)(nil)

// Searcher queries the Brave web search API.
type Searcher struct {
	client  *resty.Client
	baseURL string
	timeout time.Duration
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(s *Searcher) {
		s.baseURL = u
	}
}

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// NewSearcher creates a new Brave API Searcher.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = resty.New().SetTimeout(s.timeout)

	return s
}

// searchResponse mirrors the subset of the Brave response we consume.
type searchResponse struct {
	Web struct {
		Results []struct {
			URL         string `json:"url"`
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

// Search returns up to count candidates for the query.
//
// A non-success response becomes an EUPSTREAM error carrying the provider's
// HTTP status and response body verbatim. A success response that does not
// match the expected shape yields zero candidates rather than an error.
func (s *Searcher) Search(ctx context.Context, key string, query string, count int) ([]webread.SearchResult, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("X-Subscription-Token", key).
		SetQueryParams(map[string]string{
			"q":     query,
			"count": strconv.Itoa(count),
		}).
		Get(s.baseURL)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, &webread.Error{
			Code:    webread.EUPSTREAM,
			Message: resp.String(),
			Status:  resp.StatusCode(),
		}
	}

	var decoded searchResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return []webread.SearchResult{}, nil
	}

	results := make([]webread.SearchResult, 0, len(decoded.Web.Results))
	for _, r := range decoded.Web.Results {
		if r.URL == "" {
			continue
		}
		results = append(results, webread.SearchResult{
			URL:         r.URL,
			Title:       r.Title,
			Description: r.Description,
		})
	}

	return results, nil
}
