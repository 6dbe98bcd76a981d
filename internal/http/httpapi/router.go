package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"videoprompt/internal/http/handlers"
	"videoprompt/internal/middleware"
)

// Options configures the middleware stack.
type Options struct {
	CORSAllowedOrigins []string
	RateLimitPerMin    int
	CountryLookup      middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Country(opts.CountryLookup),
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.CORSAllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/openapi.json", app.OpenAPI)
	r.Get("/v1/docs", app.Docs)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
		r.Get("/options", app.Options)
		r.Get("/schemas/{name}", app.Schema)

		r.Route("/prompts", func(r chi.Router) {
			r.Get("/", app.ListPrompts)
			r.Post("/generate", app.GeneratePrompt)
			r.Post("/variations", app.PromptVariations)
			r.Get("/export", app.ExportPrompts)
			r.Get("/{id}", app.GetPrompt)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", app.ListTemplates)
			r.Get("/popular", app.PopularTemplates)
			r.Get("/search", app.SearchTemplates)
			r.Get("/{id}", app.GetTemplate)
			r.Post("/{id}/use", app.UseTemplate)
		})
	})

	return r
}
