package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fomoscore/backend/pkg/logger"
)

func TestTwitterFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-rapidapi-key"); got != "rapid-key" {
			t.Errorf("x-rapidapi-key = %q", got)
		}
		if got := r.URL.Query().Get("username"); got != "satoshi" {
			t.Errorf("username = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{
				"legacy": map[string]any{"followers_count": float64(100)},
			},
		})
	}))
	defer srv.Close()

	f := NewTwitterFetcher("rapid-key", srv.URL, time.Second, logger.Nop())
	raw, err := f.UserDetails(context.Background(), "satoshi")
	if err != nil {
		t.Fatalf("UserDetails: %v", err)
	}

	if raw["legacy"] == nil {
		t.Errorf("raw = %v, want the result node", raw)
	}
}

func TestTwitterFetcherNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer srv.Close()

	f := NewTwitterFetcher("rapid-key", srv.URL, time.Second, logger.Nop())
	if _, err := f.UserDetails(context.Background(), "nobody"); err == nil {
		t.Error("expected an error when the result node is absent")
	}
}

func TestTwitterFetcherUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewTwitterFetcher("rapid-key", srv.URL, time.Second, logger.Nop())
	if _, err := f.UserDetails(context.Background(), "satoshi"); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}

func TestTwitterFetcherEmptyUsername(t *testing.T) {
	f := NewTwitterFetcher("rapid-key", "http://unused", time.Second, logger.Nop())
	if _, err := f.UserDetails(context.Background(), ""); err == nil {
		t.Error("expected an error for an empty username")
	}
}

func TestTwitterFetcherRateLimitCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	f := NewTwitterFetcher("rapid-key", srv.URL, time.Second, logger.Nop())
	if _, err := f.UserDetails(ctx, "satoshi"); err == nil {
		t.Error("expected an error when the context expires during retry backoff")
	}
}
