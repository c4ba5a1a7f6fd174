package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestLogoFetcher_Fetch(t *testing.T) {
	t.Run("returns bytes and content type", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			w.Write(pngHeader)
		}))
		defer srv.Close()

		body, ct, err := NewLogoFetcher(time.Second, nil).Fetch(context.Background(), srv.URL+"/logo.png")
		require.NoError(t, err)
		assert.Equal(t, "image/png", ct)
		assert.Equal(t, pngHeader, body)
	})

	t.Run("sniffs type when server omits it", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write(pngHeader)
		}))
		defer srv.Close()

		_, ct, err := NewLogoFetcher(time.Second, nil).Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "image/png", ct)
	})

	t.Run("does not retry on server error", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, _, err := NewLogoFetcher(time.Second, nil).Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("rejects non image", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html></html>"))
		}))
		defer srv.Close()

		_, _, err := NewLogoFetcher(time.Second, nil).Fetch(context.Background(), srv.URL)
		assert.True(t, errors.Is(err, ErrNotAnImage))
	})

	t.Run("stops reading an oversized body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			w.Write(pngHeader)
			w.Write(make([]byte, maxLogoBytes))
		}))
		defer srv.Close()

		body, _, err := NewLogoFetcher(time.Second, nil).Fetch(context.Background(), srv.URL)
		assert.True(t, errors.Is(err, ErrLogoTooLarge))
		assert.Nil(t, body)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/png")
		}))
		defer srv.Close()

		_, _, err := NewLogoFetcher(time.Second, nil).Fetch(context.Background(), srv.URL)
		assert.True(t, errors.Is(err, ErrLogoEmptyBody))
	})

	t.Run("times out", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(500 * time.Millisecond):
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()

		_, _, err := NewLogoFetcher(50*time.Millisecond, nil).Fetch(context.Background(), srv.URL)
		assert.Error(t, err)
	})
}
