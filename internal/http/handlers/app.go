package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"videoprompt/internal/domain"
	"videoprompt/internal/infra"
	"videoprompt/internal/promptgen"
	"videoprompt/internal/storage"
)

const maxBodyBytes = 64 << 10

// App holds the dependencies shared by every handler.
type App struct {
	Prompts   domain.PromptRepository
	Templates domain.TemplateRepository
	Assembler *promptgen.Assembler
	Archive   *storage.Archive
	Logger    infra.Logger
	Now       func() time.Time
}

func NewApp(prompts domain.PromptRepository, templates domain.TemplateRepository, asm *promptgen.Assembler, logger infra.Logger) *App {
	return &App{
		Prompts:   prompts,
		Templates: templates,
		Assembler: asm,
		Logger:    logger,
		Now:       time.Now,
	}
}

type errorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, errorResponse{Error: errCode, Message: message})
}

// fail maps err onto a status code. Unexpected errors are logged with the
// request logger and hidden from the client.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		a.json(w, http.StatusBadRequest, errorResponse{Error: "invalid_config", Message: verr.Error(), Errors: verr.Fields})
	case errors.Is(err, domain.ErrInvalidQuery):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	default:
		a.log(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// log prefers the request-scoped logger installed by the access log middleware.
func (a *App) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().UTC()
	}
	return time.Now().UTC()
}

// decode reads a JSON body into dst. Malformed bodies become a single
// field error on "body".
func decode(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return nil
	}
	msg := "malformed JSON"
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		msg = "request body is required"
	case errors.As(err, &typeErr):
		msg = "field " + typeErr.Field + " has the wrong type"
	}
	return &domain.ValidationError{Fields: []domain.FieldError{{Field: "body", Message: msg}}}
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// queryLimit parses ?limit= within [1, max], using def when absent.
func queryLimit(r *http.Request, def, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > max {
		return 0, &queryError{param: "limit", msg: "must be an integer between 1 and " + strconv.Itoa(max)}
	}
	return n, nil
}

type queryError struct {
	param, msg string
}

func (e *queryError) Error() string { return e.param + " " + e.msg }
func (e *queryError) Unwrap() error { return domain.ErrInvalidQuery }
