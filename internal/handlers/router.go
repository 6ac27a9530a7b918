package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the handlers and static assets into a chi router.
func NewRouter(h *Handlers, static fs.FS) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Static files
	if static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	}

	// Page routes
	r.Get("/", h.Home)

	// Task API routes
	r.Get("/api/tasks", h.ListTasks)
	r.Post("/api/tasks", h.CreateTask)
	r.Delete("/api/tasks", h.ClearTasks)
	r.Put("/api/tasks/{id}", h.RenameTask)
	r.Delete("/api/tasks/{id}", h.DeleteTask)
	r.Post("/api/tasks/{id}/finished", h.SetFinished)
	r.Post("/api/tasks/{id}/toggle", h.ToggleTask)

	// Preference routes
	r.Put("/api/preferences", h.UpdatePreferences)

	return r
}

// ParseTemplates parses the page and partial templates from fsys.
func ParseTemplates(fsys fs.FS) (*template.Template, error) {
	tmpl := template.New("")

	patterns := []string{
		"templates/*.html",
		"templates/partials/*.html",
	}

	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			content, err := fs.ReadFile(fsys, match)
			if err != nil {
				return nil, fmt.Errorf("failed to read template %s: %w", match, err)
			}

			name := path.Base(match)
			if _, err := tmpl.New(name).Parse(string(content)); err != nil {
				return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
			}
		}
	}

	return tmpl, nil
}
