package models

// SortMode selects the ordering of the task view.
type SortMode string

const (
	SortNameAsc  SortMode = "name-ascending"
	SortNameDesc SortMode = "name-descending"
	SortOldest   SortMode = "oldest-first"
	SortNewest   SortMode = "newest-first"
)

// DefaultSortMode is used when nothing has been persisted yet.
const DefaultSortMode = SortOldest

// SortModes lists the modes offered to the user, in display order.
var SortModes = []SortMode{SortNameAsc, SortNameDesc, SortOldest, SortNewest}

// Label returns the human readable name of the mode.
func (m SortMode) Label() string {
	switch m {
	case SortNameAsc:
		return "Name (A-Z)"
	case SortNameDesc:
		return "Name (Z-A)"
	case SortOldest:
		return "Oldest first"
	case SortNewest:
		return "Newest first"
	default:
		return string(m)
	}
}

// Valid reports whether m is one of the known sort modes.
func (m SortMode) Valid() bool {
	for _, known := range SortModes {
		if m == known {
			return true
		}
	}
	return false
}

// ParseSortMode converts user input into a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	m := SortMode(s)
	if !m.Valid() {
		return "", &ValidationError{Field: "sort", Message: "sort must be one of name-ascending, name-descending, oldest-first, newest-first"}
	}
	return m, nil
}

// Preferences holds the persisted view settings.
type Preferences struct {
	ShowFinished bool     `json:"showFinished"`
	SortMode     SortMode `json:"sortMode"`
}

// DefaultPreferences returns the settings used before anything is stored.
func DefaultPreferences() Preferences {
	return Preferences{
		ShowFinished: true,
		SortMode:     DefaultSortMode,
	}
}

// Snapshot is the complete state written to storage in one operation.
// NextID is always greater than every ID in Tasks at write time.
type Snapshot struct {
	Tasks       []Task
	NextID      int64
	Preferences Preferences
}
