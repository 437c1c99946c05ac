package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/portfolio-montecarlo/internal/api"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	addr           string
	maxTrials      int
	workers        int
	allowedOrigins []string
	storeDSN       string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return opts.serve(ctx)
		},
	}

	serveCmd.Flags().StringVar(&opts.addr, "addr", ":8080", "Listen address")
	serveCmd.Flags().IntVar(&opts.maxTrials, "max-trials", 1000000, "Largest trial count accepted per request (0 disables the limit)")
	serveCmd.Flags().IntVar(&opts.workers, "workers", 0, "Worker goroutines per simulation (0 uses GOMAXPROCS)")
	serveCmd.Flags().StringSliceVar(&opts.allowedOrigins, "allowed-origins", []string{"*"}, "CORS allowed origins")
	serveCmd.Flags().StringVar(&opts.storeDSN, "store-dsn", "", "Postgres DSN for run history (in-memory when empty)")

	return serveCmd
}

// newServer builds the HTTP server around the API handler.
func (o *serveOptions) newServer(cfg api.Config) *http.Server {
	return &http.Server{
		Addr:              o.addr,
		Handler:           api.NewHandler(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (o *serveOptions) serve(ctx context.Context) error {
	store, closeStore, err := openRunStore(ctx, o.storeDSN)
	if err != nil {
		return err
	}
	defer closeStore()

	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := o.newServer(api.Config{
		Store:          store,
		MaxTrials:      o.maxTrials,
		Workers:        o.workers,
		AllowedOrigins: o.allowedOrigins,
		Logger:         logrus.StandardLogger(),
	})

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting API server on %s", o.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api server: %w", err)
	case <-ctx.Done():
	}

	logrus.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown api server: %w", err)
	}
	return nil
}
