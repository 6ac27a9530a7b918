package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tasklist/internal/handlers"
)

func newServeCmd(opts *options, assets Assets) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the task list web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, assets)
		},
	}
}

func runServe(ctx context.Context, opts *options, assets Assets) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	tl, st, err := openTaskList(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	tmpl, err := handlers.ParseTemplates(assets.Templates)
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	h := handlers.New(tl, tmpl)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           handlers.NewRouter(h, assets.Static),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on http://localhost%s (%s storage)", srv.Addr, cfg.Storage.Backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
