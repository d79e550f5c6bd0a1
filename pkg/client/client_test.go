package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestClientHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		if got := r.Header.Get("X-Api-Key"); got != "key-1" {
			t.Fatalf("unexpected api key header: %q", got)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, APIKey: "key-1", Token: "tok-1"})
	if err := c.Do(context.Background(), http.MethodGet, "/ping", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientUnauthorized(t *testing.T) {
	t.Run("not remembered fails immediately", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL, Token: "expired"})
		err := c.Do(context.Background(), http.MethodGet, "/clients", nil, nil)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		if atomic.LoadInt32(&calls) != 1 {
			t.Fatalf("expected a single request, got %d", calls)
		}
	})

	t.Run("remembered session refreshes once and retries", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer fresh" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"success":true}`))
		}))
		defer srv.Close()

		var refreshed int32
		c := New(Config{
			BaseURL:    srv.URL,
			Token:      "expired",
			Remembered: true,
			Refresh: func(ctx context.Context) (string, error) {
				atomic.AddInt32(&refreshed, 1)
				return "fresh", nil
			},
		})

		if err := c.Do(context.Background(), http.MethodGet, "/clients", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if atomic.LoadInt32(&refreshed) != 1 {
			t.Fatalf("expected one refresh, got %d", refreshed)
		}
	})

	t.Run("failed refresh surfaces ErrUnauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := New(Config{
			BaseURL:    srv.URL,
			Token:      "expired",
			Remembered: true,
			Refresh: func(ctx context.Context) (string, error) {
				return "", errors.New("refresh endpoint down")
			},
		})

		err := c.Do(context.Background(), http.MethodGet, "/clients", nil, nil)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("still unauthorized after refresh", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := New(Config{
			BaseURL:    srv.URL,
			Token:      "expired",
			Remembered: true,
			Refresh: func(ctx context.Context) (string, error) {
				return "still-bad", nil
			},
		})

		err := c.Do(context.Background(), http.MethodGet, "/clients", nil, nil)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"code":"CODE_TAKEN","message":"Code already in use"}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	err := c.Do(context.Background(), http.MethodPost, "/suppliers", map[string]string{"code": "dup"}, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusConflict || apiErr.Code != "CODE_TAKEN" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}
