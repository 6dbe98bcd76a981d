package handlers

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/invopop/jsonschema"

	"videoprompt/internal/domain"
	"videoprompt/internal/domain/jsoncfg"
)

// requiredConfigFields mirrors the validator's required tags on PromptConfig.
var requiredConfigFields = []string{"category", "style", "duration", "complexity"}

var schemas = sync.OnceValue(func() map[string]*jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	config := r.Reflect(&domain.PromptConfig{})
	config.Title = "PromptConfig"
	config.Required = append([]string(nil), requiredConfigFields...)

	prompt := r.Reflect(&jsoncfg.StructuredPrompt{})
	prompt.Title = "StructuredPrompt"

	return map[string]*jsonschema.Schema{"config": config, "prompt": prompt}
})

// Schema serves the JSON Schema of the request config or of the structured
// prompt returned for format "json".
func (a *App) Schema(w http.ResponseWriter, r *http.Request) {
	s, ok := schemas()[chi.URLParam(r, "name")]
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "unknown schema")
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=300")
	a.json(w, http.StatusOK, s)
}
