package handlers

import (
	"encoding/json"
	"net/http"

	"tasklist/internal/models"
)

// Home renders the full page with the current view.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", h.listData())
}

// ListResponse is the JSON form of the current view.
type ListResponse struct {
	Tasks       []models.Task      `json:"tasks"`
	Preferences models.Preferences `json:"preferences"`
}

// ListTasks returns the filtered and sorted view as JSON.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	resp := ListResponse{
		Tasks:       h.tasks.View(),
		Preferences: h.tasks.Preferences(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		respondServerError(w, err)
	}
}

// UpdatePreferences changes the view settings. Only the fields present in
// the form are updated; for repeated values the last one wins, so a hidden
// "off" input followed by a checkbox reads as the checkbox state.
func (h *Handlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if values, ok := r.Form["show_finished"]; ok && len(values) > 0 {
		show, err := parseBool(values[len(values)-1])
		if err != nil {
			respondError(w, http.StatusBadRequest, "show_finished must be true or false")
			return
		}
		if err := h.tasks.SetShowFinished(ctx, show); err != nil {
			respondTaskError(w, err)
			return
		}
	}

	if values, ok := r.Form["sort"]; ok && len(values) > 0 {
		mode, err := models.ParseSortMode(values[len(values)-1])
		if err != nil {
			respondTaskError(w, err)
			return
		}
		if err := h.tasks.SetSortMode(ctx, mode); err != nil {
			respondTaskError(w, err)
			return
		}
	}

	h.renderList(w)
}
