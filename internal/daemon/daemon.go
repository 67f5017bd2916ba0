package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eles-sim/eles/internal/api"
	"github.com/eles-sim/eles/internal/assess"
	"github.com/eles-sim/eles/internal/health"
	"github.com/eles-sim/eles/internal/infra/metrics"
	"github.com/eles-sim/eles/internal/scenario"
	"github.com/eles-sim/eles/internal/sim"
)

// Daemon is the E.L.E.S. runtime: the simulation engine, the three
// assessment models, and the HTTP server wired together.
type Daemon struct {
	Config  Config
	Engine  *sim.Engine
	Server  *api.Server
	Checker *health.Checker
	cancel  context.CancelFunc
}

// New creates a Daemon from the on-disk configuration.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg), nil
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) *Daemon {
	engine := sim.NewEngine(cfg.Constants())

	srv := api.NewServer(engine,
		assess.NewSurvivalPredictor(),
		assess.NewRiskScoreCalculator(),
		assess.NewRegenTimeEstimator())
	srv.SetScenarioDir(cfg.Scenarios.Dir)

	checker := health.NewChecker(engine, cfg.Scenarios.Dir)
	srv.SetHealthChecker(checker)

	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:  cfg,
		Engine:  engine,
		Server:  srv,
		Checker: checker,
	}
}

// Serve starts the HTTP server and blocks until the context is canceled
// or a SIGINT/SIGTERM arrives, then shuts down gracefully.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	defer cancel()

	// The catalog size only moves when the daemon restarts.
	if scenarios, err := scenario.All(d.Config.Scenarios.Dir); err == nil {
		metrics.ScenariosLoaded.Set(float64(len(scenarios)))
	}

	go d.Checker.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.Server.Host, d.Config.Server.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			slog.Info("shutting down", "signal", sig.String())
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	slog.Info("serving", "addr", "http://"+addr)
	if d.Config.Telemetry.Prometheus {
		slog.Info("metrics enabled", "endpoint", "http://"+addr+"/metrics")
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close stops a serving daemon.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
}
