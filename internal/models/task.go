package models

import (
	"strings"
	"time"
)

// Task represents a single item on the task list.
type Task struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Finished  bool      `json:"finished"`
}

// ValidateName checks that a task name is usable for creation or rename.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "you can't submit an empty task"}
	}
	return nil
}

// Validate checks that the task has valid field values.
func (t Task) Validate() error {
	return ValidateName(t.Name)
}

// CreatedLabel formats the creation time the way the list displays it,
// e.g. "07 Mar 14:05".
func (t Task) CreatedLabel() string {
	return t.CreatedAt.Local().Format("02 Jan 15:04")
}
