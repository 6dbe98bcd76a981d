package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"videoprompt/internal/domain"
)

// ListTemplates filters by exact ?category= when given.
func (a *App) ListTemplates(w http.ResponseWriter, r *http.Request) {
	items, err := a.Templates.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("category")))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, nonNil(items))
}

func (a *App) PopularTemplates(w http.ResponseWriter, r *http.Request) {
	items, err := a.Templates.ListPopular(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, nonNil(items))
}

func (a *App) SearchTemplates(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		a.fail(w, r, &queryError{param: "q", msg: "is required"})
		return
	}
	items, err := a.Templates.Search(r.Context(), q)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, nonNil(items))
}

func (a *App) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, fmt.Errorf("template: %w", err))
		return
	}
	tpl, err := a.Templates.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, tpl)
}

// UseTemplate records one use of a template and returns it.
func (a *App) UseTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, fmt.Errorf("template: %w", err))
		return
	}
	tpl, err := a.Templates.IncrementUsage(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, tpl)
}

func nonNil(items []domain.Template) []domain.Template {
	if items == nil {
		return []domain.Template{}
	}
	return items
}
