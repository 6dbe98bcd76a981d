package httpapi

import (
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"videoprompt/internal/http/handlers"
	"videoprompt/internal/promptgen"
	"videoprompt/internal/storage"
)

func newTestRouter(opts Options) http.Handler {
	store := storage.NewMemoryStore()
	asm := promptgen.New(promptgen.NewSelector(rand.NewPCG(3, 4)))
	return NewRouter(handlers.NewApp(store.Prompts(), store.Templates(), asm, zerolog.Nop()), opts)
}

func TestRouterRoutes(t *testing.T) {
	h := newTestRouter(Options{CORSAllowedOrigins: []string{"*"}})
	tests := []struct {
		method, target, body string
		want                 int
	}{
		{http.MethodGet, "/v1/healthz", "", http.StatusOK},
		{http.MethodGet, "/v1/openapi.json", "", http.StatusOK},
		{http.MethodGet, "/v1/docs", "", http.StatusOK},
		{http.MethodGet, "/api/options", "", http.StatusOK},
		{http.MethodGet, "/api/schemas/config", "", http.StatusOK},
		{http.MethodGet, "/api/schemas/other", "", http.StatusNotFound},
		{http.MethodPost, "/api/prompts/generate", `{"category":"Art & Design","style":"Artistic","duration":"5-10 seconds","complexity":"Medium"}`, http.StatusOK},
		{http.MethodPost, "/api/prompts/variations", `{"category":"Art & Design","style":"Artistic","duration":"5-10 seconds","complexity":"Medium","count":2}`, http.StatusOK},
		{http.MethodGet, "/api/prompts", "", http.StatusOK},
		{http.MethodGet, "/api/prompts/1", "", http.StatusOK},
		{http.MethodGet, "/api/prompts/export", "", http.StatusOK},
		{http.MethodGet, "/api/prompts/404", "", http.StatusNotFound},
		{http.MethodGet, "/api/templates", "", http.StatusOK},
		{http.MethodGet, "/api/templates/popular", "", http.StatusOK},
		{http.MethodGet, "/api/templates/search?q=x", "", http.StatusOK},
		{http.MethodGet, "/api/templates/search", "", http.StatusBadRequest},
		{http.MethodGet, "/api/templates/7", "", http.StatusNotFound},
		{http.MethodPost, "/api/templates/7/use", "", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tc.want, rec.Body.String())
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Fatalf("request id header missing")
			}
		})
	}
}

func TestRouterRateLimitsAPI(t *testing.T) {
	h := newTestRouter(Options{RateLimitPerMin: 1})
	send := func(target string) int {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.RemoteAddr = "203.0.113.5:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}
	if code := send("/api/options"); code != http.StatusOK {
		t.Fatalf("first request = %d", code)
	}
	if code := send("/api/options"); code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d, want 429", code)
	}
	if code := send("/v1/healthz"); code != http.StatusOK {
		t.Fatalf("health check should bypass the limiter, got %d", code)
	}
}
