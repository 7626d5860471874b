package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/webread"
	"github.com/fwojciec/webread/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and readable text in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>  My Page  </title></head>
<body>
<h1>Welcome</h1>
<p>First paragraph.</p>
<p>Second paragraph.</p>
</body>
</html>`

		result, err := goquery.NewExtractor().Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "My Page", result.Title)
		assert.Equal(t, "My Page\nWelcome\nFirst paragraph.\nSecond paragraph.", result.Text)
	})

	t.Run("returns empty title when page has none", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("<html><body><p>text</p></body></html>", "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, result.Title)
		assert.Equal(t, "text", result.Text)
	})

	t.Run("annotates absolute links with scheme stripped", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>See <a href="https://other.com/docs">the docs</a> now.</p></body></html>`

		result, err := goquery.NewExtractor().Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "See\nthe docs (other.com/docs)\nnow.", result.Text)
	})

	t.Run("resolves root-relative links against the base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/guide">Guide</a></body></html>`

		result, err := goquery.NewExtractor().Extract(html, "http://example.com/page")

		require.NoError(t, err)
		assert.Equal(t, "Guide (example.com/guide)", result.Text)
	})

	t.Run("resolves scheme-relative links as https", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="//cdn.example.com/lib">lib</a></body></html>`

		result, err := goquery.NewExtractor().Extract(html, "http://example.com")

		require.NoError(t, err)
		assert.Equal(t, "lib (cdn.example.com/lib)", result.Text)
	})

	t.Run("leaves other relative links as-is", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="docs/intro.html">Intro</a></body></html>`

		result, err := goquery.NewExtractor().Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Intro (docs/intro.html)", result.Text)
	})

	t.Run("uses Link placeholder for anchors without text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/next"><img src="arrow.png"></a></body></html>`

		result, err := goquery.NewExtractor().Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Link (example.com/next)", result.Text)
	})

	t.Run("removes non-content elements", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Page</title>
<link rel="stylesheet" href="/main.css">
<style>.hidden { display: none; }</style>
<script>console.log("boot");</script>
</head>
<body>
<nav>Home | About</nav>
<h1>Content</h1>
<form><input type="text"><button>Send</button></form>
<footer>Copyright 2024</footer>
</body>
</html>`

		result, err := goquery.NewExtractor().Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Page\nContent", result.Text)
		assert.NotContains(t, result.Text, "Home")
		assert.NotContains(t, result.Text, "Copyright")
		assert.NotContains(t, result.Text, "console.log")
		assert.NotContains(t, result.Text, "display: none")
	})

	t.Run("annotates links before removing containers", func(t *testing.T) {
		t.Parallel()

		// Links inside removed containers disappear with the container.
		html := `<html><body>
<nav><a href="/home">Home</a></nav>
<p><a href="/kept">Kept</a></p>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Kept (example.com/kept)", result.Text)
	})

	t.Run("trims each text node and drops blank ones", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><p>  spaced  </p>\n\n<div>   </div><p>next</p></body></html>"

		result, err := goquery.NewExtractor().Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "spaced\nnext", result.Text)
	})

	t.Run("returns EINVALID for an unparseable base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract("<html></html>", "://not-a-url")

		require.Error(t, err)
		assert.Equal(t, webread.EINVALID, webread.ErrorCode(err))
	})

	t.Run("handles a large page", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body>")
		for range 500 {
			b.WriteString("<p>paragraph</p>")
		}
		b.WriteString("</body></html>")

		result, err := goquery.NewExtractor().Extract(b.String(), "https://example.com")

		require.NoError(t, err)
		assert.Len(t, strings.Split(result.Text, "\n"), 500)
	})
}

// Compile-time verification that Extractor implements webread.Extractor
var _ webread.Extractor = (*goquery.Extractor)(nil)
