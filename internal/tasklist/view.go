package tasklist

import (
	"sort"
	"strings"

	"tasklist/internal/models"
)

// Comparer compares two strings, returning -1, 0 or +1.
// *collate.Collator satisfies it.
type Comparer interface {
	CompareString(a, b string) int
}

type binaryComparer struct{}

func (binaryComparer) CompareString(a, b string) int {
	return strings.Compare(a, b)
}

// ComputeView filters and sorts tasks for display. The input slice is not
// modified. Finished tasks are dropped unless prefs.ShowFinished is set; the
// sort is stable, and an unrecognized sort mode keeps insertion order.
func ComputeView(tasks []models.Task, prefs models.Preferences, cmp Comparer) []models.Task {
	if cmp == nil {
		cmp = binaryComparer{}
	}

	view := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Finished && !prefs.ShowFinished {
			continue
		}
		view = append(view, t)
	}

	less := lessFunc(prefs.SortMode, cmp)
	if less == nil {
		return view
	}

	sort.SliceStable(view, func(i, j int) bool {
		return less(view[i], view[j])
	})
	return view
}

func lessFunc(mode models.SortMode, cmp Comparer) func(a, b models.Task) bool {
	switch mode {
	case models.SortNameAsc:
		return func(a, b models.Task) bool {
			return cmp.CompareString(a.Name, b.Name) < 0
		}
	case models.SortNameDesc:
		return func(a, b models.Task) bool {
			return cmp.CompareString(b.Name, a.Name) < 0
		}
	case models.SortOldest:
		return func(a, b models.Task) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	case models.SortNewest:
		return func(a, b models.Task) bool {
			return b.CreatedAt.Before(a.CreatedAt)
		}
	default:
		return nil
	}
}
