package webread

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET of the URL, following redirects, and
	// returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter throttles outbound requests per target host.
type DomainLimiter interface {
	// Wait blocks until a request to the domain may proceed, or the
	// context is done.
	Wait(ctx context.Context, domain string) error
}
