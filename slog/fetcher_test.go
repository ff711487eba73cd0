package slog_test

import (
	"bytes"
	"context"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/contactsift/contactsift/mock"
	siftslog "github.com/contactsift/contactsift/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*stdslog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))
	return logger, &buf
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs the fetch and returns the page", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		logger, buf := newTestLogger()

		f := siftslog.NewLoggingFetcher(inner, logger)
		html, err := f.Fetch(context.Background(), "https://acme.com/contact")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)

		out := buf.String()
		assert.Contains(t, out, "fetch")
		assert.Contains(t, out, "url=https://acme.com/contact")
		assert.Contains(t, out, "bytes=13")
		assert.Contains(t, out, "duration=")
	})

	t.Run("logs the error when the fetch fails", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		logger, buf := newTestLogger()

		f := siftslog.NewLoggingFetcher(inner, logger)
		_, err := f.Fetch(context.Background(), "https://acme.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}
		logger, _ := newTestLogger()

		f := siftslog.NewLoggingFetcher(inner, logger)
		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
