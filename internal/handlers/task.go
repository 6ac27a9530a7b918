package handlers

import (
	"net/http"
)

// CreateTask appends a new task and returns the refreshed list.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if _, err := h.tasks.AddTask(ctx, r.FormValue("name")); err != nil {
		respondTaskError(w, err)
		return
	}

	h.renderList(w)
}

// RenameTask replaces the name of an existing task.
func (h *Handlers) RenameTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if err := h.tasks.RenameTask(ctx, id, r.FormValue("name")); err != nil {
		respondTaskError(w, err)
		return
	}

	h.renderList(w)
}

// SetFinished marks a task finished or unfinished from the "finished" form value.
func (h *Handlers) SetFinished(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	finished, err := parseBool(r.FormValue("finished"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "finished must be true or false")
		return
	}

	if err := h.tasks.SetFinished(ctx, id, finished); err != nil {
		respondTaskError(w, err)
		return
	}

	h.renderList(w)
}

// ToggleTask toggles the finished status of a task.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.tasks.ToggleFinished(ctx, id); err != nil {
		respondTaskError(w, err)
		return
	}

	h.renderList(w)
}

// DeleteTask deletes a task.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.tasks.DeleteTask(ctx, id); err != nil {
		respondTaskError(w, err)
		return
	}

	h.renderList(w)
}

// ClearTasks deletes every task.
func (h *Handlers) ClearTasks(w http.ResponseWriter, r *http.Request) {
	if err := h.tasks.ClearAll(r.Context()); err != nil {
		respondTaskError(w, err)
		return
	}

	h.renderList(w)
}
