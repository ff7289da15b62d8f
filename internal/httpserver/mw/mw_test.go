package mw

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MrSnakeDoc/curator/internal/logger"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestMatchHost(t *testing.T) {
	tests := []struct {
		host, pattern string
		want          bool
	}{
		{"curator.example", "curator.example", true},
		{"Curator.Example:8080", "curator.example", true},
		{"curator.example:8080", "curator.example:9090", false},
		{"api.curator.example", "*.curator.example", true},
		{"curator.example", "*.curator.example", false},
		{"evil.example", "curator.example", false},
		{"[::1]", "[::1]", true},
	}

	for _, tt := range tests {
		if got := matchHost(tt.host, tt.pattern); got != tt.want {
			t.Errorf("matchHost(%q, %q) = %v, want %v", tt.host, tt.pattern, got, tt.want)
		}
	}
}

type fakeValidator struct{ valid string }

func (f fakeValidator) Validate(token string) error {
	if token != f.valid {
		return errors.New("bad token")
	}
	return nil
}

func TestRequireAdmin(t *testing.T) {
	h := RequireAdmin(fakeValidator{valid: "good"}, logger.Nop())(okHandler)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", want: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", want: http.StatusUnauthorized},
		{name: "invalid", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "valid", header: "Bearer good", want: http.StatusOK},
		{name: "scheme is case-insensitive", header: "bearer good", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/status", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("missing WWW-Authenticate header")
			}
		})
	}
}

func TestRateLimitRefills(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := RateLimit(RateLimitConfig{
		Name:              "test",
		Burst:             2,
		RefillPerIPPerMin: 60,
		Now:               func() time.Time { return now },
	}, logger.Nop())(okHandler)

	hit := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	if c := hit("192.0.2.1").Code; c != http.StatusOK {
		t.Fatalf("first request: %d", c)
	}
	if c := hit("192.0.2.1").Code; c != http.StatusOK {
		t.Fatalf("second request: %d", c)
	}
	rec := hit("192.0.2.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request: %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "1" {
		t.Errorf("Retry-After = %q, want 1", got)
	}

	// Other clients have their own bucket.
	if c := hit("192.0.2.2").Code; c != http.StatusOK {
		t.Fatalf("other client: %d", c)
	}

	now = now.Add(time.Second)
	if c := hit("192.0.2.1").Code; c != http.StatusOK {
		t.Fatalf("after refill: %d", c)
	}
}

func TestAllowOnlyCIDRS(t *testing.T) {
	h := AllowOnlyCIDRS([]string{"10.0.0.0/8", "192.0.2.7"}, false, logger.Nop())(okHandler)

	tests := []struct {
		remote string
		want   int
	}{
		{"10.1.2.3:5000", http.StatusOK},
		{"192.0.2.7:5000", http.StatusOK},
		{"192.0.2.8:5000", http.StatusForbidden},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.remote, rec.Code, tt.want)
		}
	}

	open := AllowOnlyCIDRS(nil, false, logger.Nop())(okHandler)
	rec := httptest.NewRecorder()
	open.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("empty allow-list: status = %d, want 200", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := CORS([]string{"https://curator.example"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/catalog", nil)
	req.Header.Set("Origin", "https://curator.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://curator.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
