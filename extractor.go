package webread

// ExtractResult holds the readable content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title. Empty when the page has none.
	Title string

	// Text is the readable page text. Boilerplate (nav, footer, scripts,
	// forms) has been removed and links are annotated inline.
	Text string
}

// Extractor reduces raw HTML pages to readable text.
type Extractor interface {
	// Extract processes raw HTML fetched from baseURL. Relative links are
	// resolved against baseURL.
	// Returns EINVALID if the HTML cannot be parsed.
	Extract(html string, baseURL string) (*ExtractResult, error)
}
