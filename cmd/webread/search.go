package main

import (
	"fmt"

	"github.com/fwojciec/webread"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := &webread.Query{
		Q:       c.Query,
		URL:     c.URL,
		Context: c.Context,
		N:       c.N,
	}

	pages, err := deps.Service.SearchPages(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webread.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No relevant pages found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, webread.FormatPages(pages))

	// Per-page sizes go to stderr so stdout stays clean for piping.
	if c.Tokens {
		for _, page := range pages {
			if deps.Tokens != nil {
				if n, err := deps.Tokens.CountTokens(deps.Ctx, page.Content); err == nil {
					fmt.Fprintf(deps.Stderr, "%s (%s, %s)\n",
						webread.TruncateURL(page.URL, 60), webread.FormatBytes(len(page.Content)), webread.FormatTokens(n))
					continue
				}
			}
			fmt.Fprintf(deps.Stderr, "%s (%s)\n",
				webread.TruncateURL(page.URL, 60), webread.FormatBytes(len(page.Content)))
		}
	}

	return nil
}
