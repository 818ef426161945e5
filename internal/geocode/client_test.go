package geocode_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"geotrail/internal/config"
	"geotrail/internal/geocode"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newClient(baseURL string) *geocode.Client {
	return geocode.NewClient(newTestLogger(), config.GeocoderConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
}

func TestResolve_FirstFormattedResult(t *testing.T) {
	t.Parallel()

	var gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geocode/v1/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"formatted":"123 Main St, Anytown USA"},{"formatted":"second"}]}`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	addr, resolved := c.Resolve(context.Background(), 17.3920466, 78.4758037)
	if !resolved {
		t.Fatal("expected resolved=true")
	}
	if addr != "123 Main St, Anytown USA" {
		t.Fatalf("expected first formatted result, got %q", addr)
	}
	if gotQuery != "17.3920466+78.4758037" {
		t.Fatalf("unexpected q param: %q", gotQuery)
	}
	if gotKey != "test-key" {
		t.Fatalf("unexpected key param: %q", gotKey)
	}
}

func TestResolve_EmptyResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	addr, resolved := newClient(srv.URL).Resolve(context.Background(), 1, 2)
	if resolved || addr != "" {
		t.Fatalf("zero results must degrade to unresolved, got (%q, %v)", addr, resolved)
	}
}

func TestResolve_MissingResultsField(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":{"code":200}}`))
	}))
	defer srv.Close()

	if _, resolved := newClient(srv.URL).Resolve(context.Background(), 1, 2); resolved {
		t.Fatal("missing results field must degrade to unresolved")
	}
}

func TestResolve_MalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	if _, resolved := newClient(srv.URL).Resolve(context.Background(), 1, 2); resolved {
		t.Fatal("parse failure must degrade to unresolved")
	}
}

func TestResolve_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, resolved := newClient(srv.URL).Resolve(context.Background(), 1, 2); resolved {
		t.Fatal("5xx must degrade to unresolved")
	}
}

func TestResolve_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	if _, resolved := newClient(srv.URL).Resolve(context.Background(), 1, 2); resolved {
		t.Fatal("transport failure must degrade to unresolved")
	}
}

func TestResolve_SingleRequestPerCall(t *testing.T) {
	t.Parallel()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	c.Resolve(context.Background(), 1, 2)
	c.Resolve(context.Background(), 1, 2)

	// no retry on failure and no caching of repeated pairs: one request each
	if calls != 2 {
		t.Fatalf("expected exactly 2 upstream requests, got %d", calls)
	}
}
