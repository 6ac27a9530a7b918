// Package cli implements the tasklist command line: the HTTP server and
// one-shot commands that operate on the same persisted task list.
package cli

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tasklist/internal/config"
	"tasklist/internal/store"
	"tasklist/internal/tasklist"
)

// Assets holds the web files embedded in the binary.
type Assets struct {
	Templates fs.FS
	Static    fs.FS
}

type options struct {
	configPath string
	backend    string
	path       string
}

// NewRootCmd builds the tasklist command tree.
func NewRootCmd(assets Assets) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "tasklist",
		Short:         "A small persistent task list",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ./tasklist.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "storage backend: sqlite, file, or memory")
	rootCmd.PersistentFlags().StringVar(&opts.path, "path", "", "storage path (database or JSON file)")

	rootCmd.AddCommand(newServeCmd(opts, assets))
	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newDoneCmd(opts, true))
	rootCmd.AddCommand(newDoneCmd(opts, false))
	rootCmd.AddCommand(newRenameCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))
	rootCmd.AddCommand(newClearCmd(opts))

	return rootCmd
}

// Execute runs the root command.
func Execute(assets Assets) error {
	if err := NewRootCmd(assets).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.backend != "" {
		cfg.Storage.Backend = o.backend
	}
	if o.path != "" {
		cfg.Storage.Path = o.path
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openTaskList opens the configured storage and restores the task list.
// The returned storage must be closed by the caller.
func openTaskList(ctx context.Context, cfg *config.Config) (*tasklist.Store, store.Storage, error) {
	// Ensure data directory exists
	if cfg.Storage.Backend == store.BackendSQLite && cfg.Storage.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	st, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	tl := tasklist.New(st,
		tasklist.WithLocale(cfg.Language()),
		tasklist.WithLogger(log.Default()),
	)
	if err := tl.Initialize(ctx); err != nil {
		st.Close()
		return nil, nil, err
	}
	return tl, st, nil
}

// withTaskList loads config, opens the task list, runs fn and closes storage.
func withTaskList(cmd *cobra.Command, opts *options, fn func(*tasklist.Store) error) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	tl, st, err := openTaskList(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(tl)
}
