// Package tasklist owns the authoritative task collection, its view
// preferences and the save/restore cycle against a store.Storage.
//
// Every mutation is staged on a copy of the current state, written to
// storage, and only then committed in memory, so a failed write leaves the
// Store unchanged. All methods are safe for concurrent use; operations are
// serialized and each runs to completion before the next starts.
package tasklist

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tasklist/internal/models"
	"tasklist/internal/store"
)

// Store is the task list together with its persisted view preferences.
type Store struct {
	mu       sync.Mutex
	storage  store.Storage
	tasks    []models.Task
	nextID   int64
	prefs    models.Preferences
	collator *collate.Collator
	now      func() time.Time
	logger   *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used to stamp new tasks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocale sets the language used for name ordering.
func WithLocale(tag language.Tag) Option {
	return func(s *Store) { s.collator = collate.New(tag) }
}

// WithLogger sets the logger used for load-time warnings.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates an empty Store backed by st. Call Initialize to restore any
// persisted snapshot.
func New(st store.Storage, opts ...Option) *Store {
	s := &Store{
		storage:  st,
		tasks:    []models.Task{},
		prefs:    models.DefaultPreferences(),
		collator: collate.New(language.English),
		now:      time.Now,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize restores the persisted snapshot. With no complete snapshot in
// storage the Store is left empty with default preferences. A task list
// that cannot be decoded is returned as a *models.CorruptionError.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = []models.Task{}
	s.nextID = 0
	s.prefs = models.DefaultPreferences()

	snap, ok, err := loadSnapshot(ctx, s.storage)
	if err != nil {
		return fmt.Errorf("failed to load task list: %w", err)
	}
	if !ok {
		return nil
	}

	if !snap.Preferences.SortMode.Valid() {
		s.logger.Printf("tasklist: unknown sort mode %q, using insertion order", snap.Preferences.SortMode)
	}

	nextID := snap.NextID
	for _, t := range snap.Tasks {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	if nextID != snap.NextID {
		s.logger.Printf("tasklist: stored next id %d is not above existing ids, using %d", snap.NextID, nextID)
	}

	if snap.Tasks != nil {
		s.tasks = snap.Tasks
	}
	s.nextID = nextID
	s.prefs = snap.Preferences
	return nil
}

// AddTask appends a new unfinished task and persists the list.
func (s *Store) AddTask(ctx context.Context, name string) (models.Task, error) {
	if err := models.ValidateName(name); err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:        s.nextID,
		Name:      name,
		CreatedAt: s.now().UTC(),
	}
	tasks := append(slices.Clone(s.tasks), task)

	if err := s.commit(ctx, tasks, s.nextID+1, s.prefs); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// SetFinished marks a task finished or unfinished. Unknown ids are ignored.
func (s *Store) SetFinished(ctx context.Context, id int64, finished bool) error {
	return s.update(ctx, id, func(t *models.Task) { t.Finished = finished })
}

// ToggleFinished flips the finished flag of a task. Unknown ids are ignored.
func (s *Store) ToggleFinished(ctx context.Context, id int64) error {
	return s.update(ctx, id, func(t *models.Task) { t.Finished = !t.Finished })
}

// RenameTask replaces the name of a task. The name is validated like on
// creation; unknown ids are ignored.
func (s *Store) RenameTask(ctx context.Context, id int64, name string) error {
	if err := models.ValidateName(name); err != nil {
		return err
	}
	return s.update(ctx, id, func(t *models.Task) { t.Name = name })
}

// DeleteTask removes a task. Unknown ids are ignored.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	tasks := slices.Delete(slices.Clone(s.tasks), i, i+1)
	return s.commit(ctx, tasks, s.nextID, s.prefs)
}

// ClearAll removes every task and the persisted snapshot. The id counter is
// kept so ids are not reused within the process.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, []models.Task{}, s.nextID, s.prefs)
}

// SetShowFinished controls whether finished tasks appear in the view.
func (s *Store) SetShowFinished(ctx context.Context, show bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.prefs
	prefs.ShowFinished = show
	return s.commit(ctx, s.tasks, s.nextID, prefs)
}

// SetSortMode selects the view ordering.
func (s *Store) SetSortMode(ctx context.Context, mode models.SortMode) error {
	if !mode.Valid() {
		_, err := models.ParseSortMode(string(mode))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.prefs
	prefs.SortMode = mode
	return s.commit(ctx, s.tasks, s.nextID, prefs)
}

// View returns the filtered and sorted tasks for display.
func (s *Store) View() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ComputeView(s.tasks, s.prefs, s.collator)
}

// Tasks returns the task list in insertion order.
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.tasks)
}

// Task returns the task with the given id or models.ErrNotFound.
func (s *Store) Task(id int64) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: %d", models.ErrNotFound, id)
	}
	return s.tasks[i], nil
}

// Preferences returns the current view preferences.
func (s *Store) Preferences() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.prefs
}

func (s *Store) update(ctx context.Context, id int64, fn func(*models.Task)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	tasks := slices.Clone(s.tasks)
	fn(&tasks[i])
	return s.commit(ctx, tasks, s.nextID, s.prefs)
}

// commit persists the staged state and then installs it. Callers hold mu.
func (s *Store) commit(ctx context.Context, tasks []models.Task, nextID int64, prefs models.Preferences) error {
	snap := models.Snapshot{Tasks: tasks, NextID: nextID, Preferences: prefs}
	if err := saveSnapshot(ctx, s.storage, snap); err != nil {
		return err
	}

	s.tasks = tasks
	s.nextID = nextID
	s.prefs = prefs
	return nil
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}
