package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"videoprompt/internal/domain"
	"videoprompt/internal/middleware"
	"videoprompt/internal/promptgen"
	"videoprompt/pkg/zip"
)

const (
	defaultListLimit      = 10
	maxListLimit          = 100
	defaultVariationCount = 3
	maxVariationCount     = 10
)

type variationsRequest struct {
	domain.PromptConfig
	Count *int `json:"count,omitempty"`
}

type variationsResponse struct {
	Variations []promptgen.Result `json:"variations"`
}

// GeneratePrompt assembles, stores and returns one prompt.
func (a *App) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	var cfg domain.PromptConfig
	if err := decode(r, &cfg); err != nil {
		a.fail(w, r, err)
		return
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		a.fail(w, r, err)
		return
	}

	res := a.Assembler.Assemble(cfg)
	body, err := json.Marshal(res)
	if err != nil {
		a.fail(w, r, fmt.Errorf("encode prompt: %w", err))
		return
	}
	now := a.now()
	record := &domain.GeneratedPrompt{
		Prompt:     body,
		Category:   cfg.Category,
		Style:      cfg.Style,
		Duration:   cfg.Duration,
		Complexity: cfg.Complexity,
		Elements:   cfg.Elements,
		Metadata: domain.PromptMetadata{
			GeneratedAt:     now,
			Version:         promptgen.PromptVersion,
			Format:          res.Format,
			EnabledFeatures: cfg.EnabledFeatures(),
			RequestID:       middleware.RequestIDFromContext(r.Context()),
		},
		CreatedAt: now,
	}
	if err := a.Prompts.Create(r.Context(), record); err != nil {
		a.fail(w, r, fmt.Errorf("store prompt: %w", err))
		return
	}
	if key, err := a.Archive.Save(r.Context(), record); err != nil {
		a.log(r).Warn().Err(err).Int64("prompt_id", record.ID).Msg("archive prompt failed")
	} else if key != "" {
		a.log(r).Debug().Str("key", key).Msg("prompt archived")
	}
	a.json(w, http.StatusOK, record)
}

// PromptVariations returns count re-rolled prompts without storing them.
func (a *App) PromptVariations(w http.ResponseWriter, r *http.Request) {
	var req variationsRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	count := defaultVariationCount
	if req.Count != nil {
		count = *req.Count
	}
	if count < 1 {
		a.fail(w, r, &domain.ValidationError{Fields: []domain.FieldError{{Field: "count", Message: "must be at least 1"}}})
		return
	}
	count = min(count, maxVariationCount)

	cfg := req.PromptConfig
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, variationsResponse{Variations: a.Assembler.Variations(cfg, count)})
}

// ListPrompts returns the most recent prompts, newest first.
func (a *App) ListPrompts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, defaultListLimit, maxListLimit)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Prompts.ListRecent(r.Context(), limit)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) GetPrompt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, fmt.Errorf("prompt: %w", err))
		return
	}
	p, err := a.Prompts.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, p)
}

// ExportPrompts streams recent prompts as a zip, one file per prompt.
func (a *App) ExportPrompts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, defaultListLimit, maxListLimit)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Prompts.ListRecent(r.Context(), limit)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	entries := make([]zip.Entry, 0, len(items))
	for _, p := range items {
		if p.Metadata.Format == promptgen.FormatJSON {
			entries = append(entries, zip.Entry{Name: "prompt-" + strconv.FormatInt(p.ID, 10) + ".json", Modified: p.CreatedAt, Data: p.Prompt})
			continue
		}
		entries = append(entries, zip.Entry{Name: "prompt-" + strconv.FormatInt(p.ID, 10) + ".txt", Modified: p.CreatedAt, Data: []byte(p.PromptText())})
	}
	data, err := zip.Bytes(entries)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	name := "prompts-" + a.now().Format("20060102-150405") + ".zip"
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
