package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasklist.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("expected sqlite backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "./data/tasklist.db" {
		t.Errorf("expected default db path, got %q", cfg.Storage.Path)
	}
	if cfg.Language().String() != "en" {
		t.Errorf("expected English collation, got %v", cfg.Language())
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
storage:
  backend: file
  path: /tmp/tasks.json
view:
  locale: sv
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Storage.Backend != "file" || cfg.Storage.Path != "/tmp/tasks.json" {
		t.Errorf("unexpected storage config: %+v", cfg.Storage)
	}
	if cfg.Language().String() != "sv" {
		t.Errorf("expected Swedish collation, got %v", cfg.Language())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
`)
	t.Setenv("TASKLIST_SERVER_PORT", "7070")
	t.Setenv("TASKLIST_STORAGE_BACKEND", "memory")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("expected env port 7070, got %q", cfg.Server.Port)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("expected env backend memory, got %q", cfg.Storage.Backend)
	}
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	t.Setenv("PORT", "5050")
	t.Setenv("DB_PATH", "/var/lib/tasklist.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "5050" {
		t.Errorf("expected port 5050, got %q", cfg.Server.Port)
	}
	if cfg.Storage.Path != "/var/lib/tasklist.db" {
		t.Errorf("expected DB_PATH to be used, got %q", cfg.Storage.Path)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "sqlite with path",
			cfg:  Config{Storage: StorageConfig{Backend: "sqlite", Path: "a.db"}, View: ViewConfig{Locale: "en"}},
		},
		{
			name: "memory without path",
			cfg:  Config{Storage: StorageConfig{Backend: "memory"}, View: ViewConfig{Locale: "en"}},
		},
		{
			name:    "file without path",
			cfg:     Config{Storage: StorageConfig{Backend: "file"}, View: ViewConfig{Locale: "en"}},
			wantErr: true,
		},
		{
			name:    "unknown backend",
			cfg:     Config{Storage: StorageConfig{Backend: "redis", Path: "x"}, View: ViewConfig{Locale: "en"}},
			wantErr: true,
		},
		{
			name:    "bad locale",
			cfg:     Config{Storage: StorageConfig{Backend: "memory"}, View: ViewConfig{Locale: "not a locale"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
