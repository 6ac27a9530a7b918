package handlers

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tasklist/internal/models"
)

// TaskList is the task list operations the handlers drive.
type TaskList interface {
	AddTask(ctx context.Context, name string) (models.Task, error)
	SetFinished(ctx context.Context, id int64, finished bool) error
	ToggleFinished(ctx context.Context, id int64) error
	RenameTask(ctx context.Context, id int64, name string) error
	DeleteTask(ctx context.Context, id int64) error
	ClearAll(ctx context.Context) error
	SetShowFinished(ctx context.Context, show bool) error
	SetSortMode(ctx context.Context, mode models.SortMode) error
	View() []models.Task
	Preferences() models.Preferences
}

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	tasks     TaskList
	templates *template.Template
}

// New creates a new Handlers instance.
func New(tasks TaskList, tmpl *template.Template) *Handlers {
	return &Handlers{
		tasks:     tasks,
		templates: tmpl,
	}
}

// ListData holds data for the task list templates.
type ListData struct {
	Title       string
	Tasks       []models.Task
	Preferences models.Preferences
	SortModes   []models.SortMode
}

func (h *Handlers) listData() ListData {
	return ListData{
		Title:       "Tasks",
		Tasks:       h.tasks.View(),
		Preferences: h.tasks.Preferences(),
		SortModes:   models.SortModes,
	}
}

// parseID extracts and parses an integer ID from URL parameters.
func parseID(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	return strconv.ParseInt(idStr, 10, 64)
}

// parseBool accepts the values browsers and scripts send for a checkbox.
func parseBool(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "", "off":
		return false, nil
	default:
		return strconv.ParseBool(s)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func respondServerError(w http.ResponseWriter, err error) {
	log.Printf("internal server error: %v", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// respondTaskError maps task list errors onto status codes.
func respondTaskError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		respondError(w, http.StatusBadRequest, vErr.Message)
		return
	}
	respondServerError(w, err)
}

func (h *Handlers) render(w http.ResponseWriter, name string, data interface{}) {
	if h.templates == nil {
		// For testing without templates
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		respondServerError(w, err)
	}
}

// renderList renders the task list partial (for htmx responses).
func (h *Handlers) renderList(w http.ResponseWriter) {
	h.render(w, "task_list.html", h.listData())
}
