package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated when absent", "", false},
		{"kept when valid", "trace-abc-123", true},
		{"replaced when it has spaces", "bad id", false},
		{"replaced when too long", strings.Repeat("a", 129), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set(RequestIDHeader, tc.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
				t.Fatalf("context id %q, header %q", seen, rec.Header().Get(RequestIDHeader))
			}
			if tc.keep != (seen == tc.incoming) {
				t.Fatalf("id = %q, incoming %q, keep=%v", seen, tc.incoming, tc.keep)
			}
		})
	}
}

func TestLoggerWritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	h := RequestID(Country(nil)(Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}))))

	req := httptest.NewRequest(http.MethodPost, "/api/prompts/generate", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	req.Header.Set("CF-IPCountry", "de")
	h.ServeHTTP(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected handler line and access line, got %q", buf.String())
	}
	var inner, access map[string]any
	_ = json.Unmarshal([]byte(lines[0]), &inner)
	if err := json.Unmarshal([]byte(lines[1]), &access); err != nil {
		t.Fatalf("access line is not JSON: %v", err)
	}
	if inner["request_id"] != "rid-1" {
		t.Fatalf("request logger missing id: %v", inner)
	}
	want := map[string]any{"request_id": "rid-1", "method": "POST", "status": float64(201), "bytes": float64(5), "country": "DE"}
	for k, v := range want {
		if access[k] != v {
			t.Fatalf("access[%s] = %v, want %v", k, access[k], v)
		}
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{"listed origin", []string{"https://app.example.com"}, "https://app.example.com", "https://app.example.com"},
		{"unlisted origin", []string{"https://app.example.com"}, "https://evil.example.com", ""},
		{"wildcard", []string{"*"}, "https://any.example.com", "*"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()
			CORS(tc.allowed)(next).ServeHTTP(rec, req)
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
				t.Fatalf("Allow-Origin = %q, want %q", got, tc.want)
			}
		})
	}

	req := httptest.NewRequest(http.MethodOptions, "/api/prompts/generate", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	CORS([]string{"https://app.example.com"})(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rec.Code)
	}
}

func TestResolveCountry(t *testing.T) {
	lookup := func(ip string) (string, error) {
		if ip == "203.0.113.9" {
			return "jp", nil
		}
		return "", errors.New("unknown")
	}
	tests := []struct {
		name   string
		header string
		remote string
		lookup CountryLookup
		want   string
	}{
		{"edge header wins", "us", "203.0.113.9:1", lookup, "US"},
		{"unknown edge value ignored", "XX", "203.0.113.9:1", lookup, "JP"},
		{"lookup", "", "203.0.113.9:1", lookup, "JP"},
		{"lookup error", "", "198.51.100.1:1", lookup, ""},
		{"no lookup", "", "203.0.113.9:1", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			if tc.header != "" {
				req.Header.Set("CF-IPCountry", tc.header)
			}
			if got := ResolveCountry(req, tc.lookup); got != tc.want {
				t.Fatalf("ResolveCountry() = %q, want %q", got, tc.want)
			}
		})
	}
}
