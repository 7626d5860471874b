package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/webread"
	main "github.com/fwojciec/webread/cmd/webread"
	"github.com/fwojciec/webread/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints formatted pages", func(t *testing.T) {
		t.Parallel()

		service := &mock.PageService{
			SearchPagesFn: func(_ context.Context, query *webread.Query) ([]*webread.Page, error) {
				return []*webread.Page{
					{URL: "https://go.dev/blog/errgroup", Title: "Errgroup Patterns", Content: "Fan-out with bounded concurrency."},
					{URL: "https://pkg.go.dev/golang.org/x/sync", Title: "Package sync", Content: "Extended sync primitives."},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Service: service,
		}

		cmd := &main.SearchCmd{Query: "golang errgroup", N: 3}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "## Errgroup Patterns")
		assert.Contains(t, output, "https://go.dev/blog/errgroup")
		assert.Contains(t, output, "Fan-out with bounded concurrency.")
		assert.Contains(t, output, "## Package sync")
		assert.Empty(t, stderr.String())
	})

	t.Run("builds the query from flags", func(t *testing.T) {
		t.Parallel()

		var gotQuery *webread.Query
		service := &mock.PageService{
			SearchPagesFn: func(_ context.Context, query *webread.Query) ([]*webread.Page, error) {
				gotQuery = query
				return []*webread.Page{}, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Service: service,
		}

		cmd := &main.SearchCmd{
			Query:   "sqlite wal",
			URL:     "https://example.com/wal",
			N:       5,
			Context: "database internals",
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotQuery)
		assert.Equal(t, "sqlite wal", gotQuery.Q)
		assert.Equal(t, "https://example.com/wal", gotQuery.URL)
		assert.Equal(t, 5, gotQuery.N)
		assert.Equal(t, "database internals", gotQuery.Context)
	})

	t.Run("shows message when nothing survives", func(t *testing.T) {
		t.Parallel()

		service := &mock.PageService{
			SearchPagesFn: func(_ context.Context, _ *webread.Query) ([]*webread.Page, error) {
				return []*webread.Page{}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Service: service,
		}

		cmd := &main.SearchCmd{Query: "golang", N: 3}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No relevant pages found.")
	})

	t.Run("returns error when service fails", func(t *testing.T) {
		t.Parallel()

		svcErr := webread.Errorf(webread.EUNAUTHORIZED, "Search API key is required. Configure one or pass the X-Brave-Search-API-Key header.")
		service := &mock.PageService{
			SearchPagesFn: func(_ context.Context, _ *webread.Query) ([]*webread.Page, error) {
				return nil, svcErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Service: service,
		}

		cmd := &main.SearchCmd{Query: "golang", N: 3}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, svcErr, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Contains(t, stderr.String(), "Search API key is required")
		assert.Empty(t, stdout.String())
	})

	t.Run("with --tokens reports size and token count per page", func(t *testing.T) {
		t.Parallel()

		service := &mock.PageService{
			SearchPagesFn: func(_ context.Context, _ *webread.Query) ([]*webread.Page, error) {
				return []*webread.Page{
					{URL: "https://go.dev/blog/errgroup", Title: "Errgroup", Content: "Fan-out patterns."},
				}, nil
			},
		}
		counter := &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, text string) (int, error) {
				return 1500, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Service: service,
			Tokens:  counter,
		}

		cmd := &main.SearchCmd{Query: "golang", N: 3, Tokens: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "https://go.dev/blog/errgroup")
		assert.Contains(t, stderr.String(), "17 B")
		assert.Contains(t, stderr.String(), "~2k tokens")
	})

	t.Run("with --tokens degrades without a counter", func(t *testing.T) {
		t.Parallel()

		service := &mock.PageService{
			SearchPagesFn: func(_ context.Context, _ *webread.Query) ([]*webread.Page, error) {
				return []*webread.Page{
					{URL: "https://go.dev/blog/errgroup", Title: "Errgroup", Content: "Fan-out patterns."},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Service: service,
		}

		cmd := &main.SearchCmd{Query: "golang", N: 3, Tokens: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "17 B")
		assert.NotContains(t, stderr.String(), "tokens")
	})

	t.Run("with --tokens skips counts when counting fails", func(t *testing.T) {
		t.Parallel()

		service := &mock.PageService{
			SearchPagesFn: func(_ context.Context, _ *webread.Query) ([]*webread.Page, error) {
				return []*webread.Page{
					{URL: "https://go.dev/blog/errgroup", Title: "Errgroup", Content: "Fan-out patterns."},
				}, nil
			},
		}
		counter := &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, _ string) (int, error) {
				return 0, errors.New("tokenizer unavailable")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Service: service,
			Tokens:  counter,
		}

		cmd := &main.SearchCmd{Query: "golang", N: 3, Tokens: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "17 B")
		assert.NotContains(t, stderr.String(), "tokens")
	})
}
