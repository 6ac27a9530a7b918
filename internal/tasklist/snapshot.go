package tasklist

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"tasklist/internal/models"
	"tasklist/internal/store"
)

// Storage keys of a persisted snapshot. The four keys are written and
// removed together.
const (
	KeyTasks        = "tasks"
	KeyNextID       = "nextId"
	KeyShowFinished = "showFinished"
	KeySortMode     = "sortMode"
)

var snapshotKeys = []string{KeyTasks, KeyNextID, KeyShowFinished, KeySortMode}

// loadSnapshot reads a snapshot from storage. The boolean is false when any
// of the four keys is missing; a partial snapshot counts as absent.
func loadSnapshot(ctx context.Context, st store.Storage) (models.Snapshot, bool, error) {
	items := make(map[string]string, len(snapshotKeys))
	for _, key := range snapshotKeys {
		value, ok, err := st.GetItem(ctx, key)
		if err != nil {
			return models.Snapshot{}, false, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !ok {
			return models.Snapshot{}, false, nil
		}
		items[key] = value
	}

	snap, err := decodeSnapshot(items)
	if err != nil {
		return models.Snapshot{}, false, err
	}
	return snap, true, nil
}

// saveSnapshot writes the snapshot, or removes every key when the task list
// is empty.
func saveSnapshot(ctx context.Context, st store.Storage, snap models.Snapshot) error {
	if len(snap.Tasks) == 0 {
		if err := st.RemoveItems(ctx, snapshotKeys...); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}
		return nil
	}

	items, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := st.SetItems(ctx, items); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func encodeSnapshot(snap models.Snapshot) (map[string]string, error) {
	tasks, err := json.Marshal(snap.Tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}

	return map[string]string{
		KeyTasks:        string(tasks),
		KeyNextID:       strconv.FormatInt(snap.NextID, 10),
		KeyShowFinished: strconv.FormatBool(snap.Preferences.ShowFinished),
		KeySortMode:     string(snap.Preferences.SortMode),
	}, nil
}

// decodeSnapshot parses the stored strings. Only the task list is strict:
// a malformed counter falls back to 0 and showFinished is true only for the
// literal "true".
func decodeSnapshot(items map[string]string) (models.Snapshot, error) {
	var tasks []models.Task
	if err := json.Unmarshal([]byte(items[KeyTasks]), &tasks); err != nil {
		return models.Snapshot{}, &models.CorruptionError{Key: KeyTasks, Err: err}
	}

	seen := make(map[int64]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return models.Snapshot{}, &models.CorruptionError{Key: KeyTasks, Err: fmt.Errorf("duplicate task id %d", t.ID)}
		}
		seen[t.ID] = struct{}{}
	}

	nextID, err := strconv.ParseInt(items[KeyNextID], 10, 64)
	if err != nil || nextID < 0 {
		nextID = 0
	}

	return models.Snapshot{
		Tasks:  tasks,
		NextID: nextID,
		Preferences: models.Preferences{
			ShowFinished: items[KeyShowFinished] == "true",
			SortMode:     models.SortMode(items[KeySortMode]),
		},
	}, nil
}
