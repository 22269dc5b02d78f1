package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/mugshot-app/mugshot/internal/api"
	"github.com/mugshot-app/mugshot/internal/health"
	"github.com/mugshot-app/mugshot/internal/infra/logging"
	_ "github.com/mugshot-app/mugshot/internal/infra/metrics" // Register Prometheus metrics
	"github.com/mugshot-app/mugshot/internal/infra/sqlite"
)

// Daemon is the core Mugshot runtime. It wires together the visit store,
// the badge engine API, and the health checker.
type Daemon struct {
	Config Config
	Store  *sqlite.DB
	Server *api.Server
	Health *health.Checker
	Log    zerolog.Logger
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Pretty)

	dir := cfg.Store.Dir
	if dir == "" {
		dir = mugshotHome()
	}
	db, err := sqlite.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open visit store: %w", err)
	}

	checker := health.NewChecker(db, dir)

	srv := api.NewServer(db, logger)
	srv.SetHealth(checker)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}
	srv.SetCORSOrigins(cfg.Server.CORSOrigins)

	return &Daemon{
		Config: cfg,
		Store:  db,
		Server: srv,
		Health: checker,
		Log:    logger,
	}, nil
}

// Close releases the daemon's resources.
func (d *Daemon) Close() error {
	return d.Store.Close()
}

// Run starts the HTTP server and the health check loop, then blocks until
// SIGINT/SIGTERM or a server error.
func (d *Daemon) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.Server.Host, d.Config.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		d.Log.Info().Str("addr", addr).Msg("mugshot daemon listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		d.Log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	d.Log.Info().Msg("gracefully stopped")
	return nil
}
