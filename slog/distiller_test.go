package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/webread/mock"
	webslog "github.com/fwojciec/webread/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDistiller_Distill(t *testing.T) {
	t.Parallel()

	t.Run("logs input and output sizes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Distiller{
			DistillFn: func(ctx context.Context, text, query, queryContext string) (string, error) {
				return "short", nil
			},
		}

		distiller := webslog.NewLoggingDistiller(inner, logger)
		out, err := distiller.Distill(context.Background(), "a much longer page text", "golang", "")

		require.NoError(t, err)
		assert.Equal(t, "short", out)
		output := buf.String()
		assert.Contains(t, output, "distill")
		assert.Contains(t, output, "query=golang")
		assert.Contains(t, output, "in_bytes=23")
		assert.Contains(t, output, "out_bytes=5")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Distiller{
			DistillFn: func(ctx context.Context, text, query, queryContext string) (string, error) {
				return "", errors.New("model overloaded")
			},
		}

		distiller := webslog.NewLoggingDistiller(inner, logger)
		_, err := distiller.Distill(context.Background(), "text", "golang", "")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"model overloaded\"")
	})
}
