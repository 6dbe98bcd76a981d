package handlers

import (
	"net/http"

	"videoprompt/internal/promptgen"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Options lists the labels the assembler has content for.
func (a *App) Options(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, promptgen.KnownOptions())
}
