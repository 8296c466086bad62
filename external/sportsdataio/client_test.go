package sportsdataio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gridironhq/nfl-companion/internal/platform/resilience"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, maxRetries int) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		Key:        "test-key",
		MaxRetries: maxRetries,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled: false,
		},
	})
	return client, server
}

func TestClient_Configured(t *testing.T) {
	t.Parallel()

	withKey := NewClient(ClientConfig{Key: "abc"})
	if !withKey.Configured() {
		t.Fatalf("expected configured client")
	}

	noKey := NewClient(ClientConfig{Key: "   "})
	if noKey.Configured() {
		t.Fatalf("expected unconfigured client without a key")
	}

	var nilClient *Client
	if nilClient.Configured() {
		t.Fatalf("nil client must report unconfigured")
	}
}

func TestClient_SendsKeyQueryParam(t *testing.T) {
	t.Parallel()

	var sawKey atomic.Bool
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "test-key" {
			sawKey.Store(true)
		}
		w.Write([]byte(`[]`))
	}, 0)

	var rows []map[string]any
	if _, err := client.doJSON(context.Background(), "/scores/json/Standings/2025", nil, &rows); err != nil {
		t.Fatalf("doJSON: %v", err)
	}
	if !sawKey.Load() {
		t.Fatalf("expected key query parameter on the request")
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"Team":"KC"}]`))
	}, 1)

	var rows []map[string]any
	if _, err := client.doJSON(context.Background(), "/scores/json/Standings/2025", nil, &rows); err != nil {
		t.Fatalf("doJSON after retry: %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", hits.Load())
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %v", rows)
	}
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}, 3)

	var rows []map[string]any
	if _, err := client.doJSON(context.Background(), "/scores/json/Standings/2025", nil, &rows); err == nil {
		t.Fatalf("expected error for 404")
	}
	if hits.Load() != 1 {
		t.Fatalf("expected a single attempt for a non-retryable status, got %d", hits.Load())
	}
}

func TestClient_CircuitBreakerRejectsAfterFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Key:     "test-key",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
		},
	})

	var rows []map[string]any
	if _, err := client.doJSON(context.Background(), "/scores/json/Standings/2025", nil, &rows); err == nil {
		t.Fatalf("expected first call to fail")
	}
	attemptsBeforeOpen := hits.Load()

	if _, err := client.doJSON(context.Background(), "/scores/json/Standings/2025", nil, &rows); err == nil {
		t.Fatalf("expected open circuit to reject the call")
	}
	if hits.Load() != attemptsBeforeOpen {
		t.Fatalf("open circuit must not reach upstream, hits went %d -> %d", attemptsBeforeOpen, hits.Load())
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText(`Get "https://api.example.com/x?key=secret123": timeout`, "secret123")
	if strings.Contains(got, "secret123") {
		t.Fatalf("key leaked: %s", got)
	}
	if !strings.Contains(got, "key=REDACTED") {
		t.Fatalf("expected redaction marker: %s", got)
	}
}

func TestRedactAPIURL(t *testing.T) {
	t.Parallel()

	got := redactAPIURL("https://api.sportsdata.io/v3/nfl/scores/json/Standings/2025?key=secret123")
	if strings.Contains(got, "secret123") {
		t.Fatalf("key leaked: %s", got)
	}
	if !strings.Contains(got, "key=REDACTED") {
		t.Fatalf("expected redacted key: %s", got)
	}

	// URLs without a key pass through untouched.
	plain := "https://api.sportsdata.io/v3/nfl/scores/json/Standings/2025"
	if got := redactAPIURL(plain); got != plain {
		t.Fatalf("redactAPIURL(%s) = %s", plain, got)
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	for _, code := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway} {
		if !isRetryableStatus(code) {
			t.Fatalf("expected %d to be retryable", code)
		}
	}
	for _, code := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound} {
		if isRetryableStatus(code) {
			t.Fatalf("expected %d to be non-retryable", code)
		}
	}
}

func TestParseDigits(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"#1":   1,
		"2nd":  2,
		" 14 ": 14,
		"":     0,
		"seed": 0,
	}
	for raw, want := range cases {
		if got := parseDigits(raw); got != want {
			t.Fatalf("parseDigits(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestAbbreviateBody(t *testing.T) {
	t.Parallel()

	short := abbreviateBody([]byte("  hello  "))
	if short != "hello" {
		t.Fatalf("abbreviateBody = %q", short)
	}

	long := abbreviateBody([]byte(strings.Repeat("x", 600)))
	if len(long) != 243 || !strings.HasSuffix(long, "...") {
		t.Fatalf("expected 240-char cap with ellipsis, got len=%d", len(long))
	}
}

func TestSeasonValue(t *testing.T) {
	t.Parallel()

	if got := seasonValue(2025, false); got != "2025REG" {
		t.Fatalf("seasonValue regular = %q", got)
	}
	if got := seasonValue(2025, true); got != "2025POST" {
		t.Fatalf("seasonValue postseason = %q", got)
	}
}
