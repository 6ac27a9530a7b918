package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tasklist/internal/models"
)

// run executes one command against a JSON file store in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	cmd := NewRootCmd(Assets{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "tasklist.yaml"),
		"--backend", "file",
		"--path", filepath.Join(dir, "tasks.json"),
	}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestCommands_PersistBetweenRuns(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "add", "Buy", "milk"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := run(t, dir, "add", "Walk dog"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	out, err := run(t, dir, "list", "--sort", "name-descending")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	walk, milk := strings.Index(out, "Walk dog"), strings.Index(out, "Buy milk")
	if walk < 0 || milk < 0 || walk > milk {
		t.Fatalf("expected Walk dog before Buy milk, got:\n%s", out)
	}

	if _, err := run(t, dir, "done", "0"); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	out, err = run(t, dir, "list", "--hide-finished")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if strings.Contains(out, "Buy milk") {
		t.Errorf("expected finished task to be hidden, got:\n%s", out)
	}

	out, err = run(t, dir, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if strings.Contains(out, "Buy milk") || !strings.Contains(out, "Name (Z-A)") {
		t.Errorf("expected saved preferences to apply, got:\n%s", out)
	}

	if _, err := run(t, dir, "rename", "1", "Walk", "the", "dog"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if _, err := run(t, dir, "rm", "0"); err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	out, err = run(t, dir, "list", "--all")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Walk the dog") || strings.Contains(out, "Buy milk") {
		t.Errorf("unexpected list after rename and rm:\n%s", out)
	}

	out, err = run(t, dir, "clear")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !strings.Contains(out, "Nothing to do.") {
		t.Errorf("expected empty list, got:\n%s", out)
	}
}

func TestCommands_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "blank name", args: []string{"add", " "}},
		{name: "bad id", args: []string{"done", "first"}},
		{name: "bad sort", args: []string{"list", "--sort", "asc"}},
		{name: "conflicting flags", args: []string{"list", "--all", "--hide-finished"}},
		{name: "missing args", args: []string{"rename", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, dir, tt.args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestRenderView(t *testing.T) {
	var out bytes.Buffer
	tasks := []models.Task{
		{ID: 3, Name: "Buy milk", Finished: true, CreatedAt: time.Now()},
		{ID: 12, Name: "Walk dog", CreatedAt: time.Now()},
	}

	if err := renderView(&out, tasks, models.Preferences{ShowFinished: true, SortMode: models.SortNewest}); err != nil {
		t.Fatalf("renderView failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Newest first", "showing finished", "[x]", "Buy milk", "[ ]", "Walk dog", "12"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	if lines := strings.Count(got, "\n"); lines != 3 {
		t.Errorf("expected 3 lines, got %d:\n%s", lines, got)
	}
}
