package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/models"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(4).Align(lipgloss.Right)
	finishedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
)

// renderView prints the view as one line per task.
func renderView(w io.Writer, tasks []models.Task, prefs models.Preferences) error {
	shown := "hiding finished"
	if prefs.ShowFinished {
		shown = "showing finished"
	}
	header := headerStyle.Render(fmt.Sprintf("Tasks (%s, %s)", prefs.SortMode.Label(), shown))
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, emptyStyle.Render("  Nothing to do."))
		return err
	}

	for _, t := range tasks {
		box, name := "[ ]", t.Name
		if t.Finished {
			box, name = "[x]", finishedStyle.Render(t.Name)
		}
		line := fmt.Sprintf("%s %s %s  %s", idStyle.Render(fmt.Sprint(t.ID)), box, name, timeStyle.Render(t.CreatedLabel()))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
