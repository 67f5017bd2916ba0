// Package health provides periodic self-checks for the daemon: a
// reference simulation through the engine and a load of the scenario
// catalog. Results are cached for the /health endpoint.
package health

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/eles-sim/eles/internal/domain"
	"github.com/eles-sim/eles/internal/scenario"
	"github.com/eles-sim/eles/internal/sim"
)

// Check defines a single named health check.
type Check struct {
	Name    string
	CheckFn func(ctx context.Context) error
}

// Status represents the result of a health check.
type Status struct {
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Checker runs periodic health checks and caches the latest results.
type Checker struct {
	mu       sync.RWMutex
	checks   []Check
	statuses []Status
	interval time.Duration
}

// NewChecker creates a health checker with the standard checks: a
// reference simulation, a full catalog load, and a scenario-directory
// sanity check.
func NewChecker(engine *sim.Engine, scenarioDir string) *Checker {
	return &Checker{
		interval: 60 * time.Second,
		checks: []Check{
			{
				Name: "engine",
				CheckFn: func(ctx context.Context) error {
					result, err := engine.RunSimulation(string(domain.EventAsteroid), nil)
					if err != nil {
						return err
					}
					if !result.Severity.IsValid() {
						return fmt.Errorf("reference run severity %d off scale", result.Severity)
					}
					return nil
				},
			},
			{
				Name: "scenario_catalog",
				CheckFn: func(ctx context.Context) error {
					_, err := scenario.All(scenarioDir)
					return err
				},
			},
			{
				Name: "scenario_dir",
				CheckFn: func(ctx context.Context) error {
					return checkScenarioDir(scenarioDir)
				},
			},
		},
	}
}

// Run starts the health check loop. Call in a goroutine; returns when
// ctx is canceled.
func (c *Checker) Run(ctx context.Context) {
	// Run immediately on start
	c.runAll(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.runAll(ctx)
		}
	}
}

func (c *Checker) runAll(ctx context.Context) {
	statuses := make([]Status, len(c.checks))
	for i, check := range c.checks {
		s := Status{
			Name:      check.Name,
			CheckedAt: time.Now(),
		}
		if err := check.CheckFn(ctx); err != nil {
			s.Healthy = false
			s.Error = err.Error()
		} else {
			s.Healthy = true
		}
		statuses[i] = s
	}

	c.mu.Lock()
	c.statuses = statuses
	c.mu.Unlock()
}

// Statuses returns the latest health check results.
func (c *Checker) Statuses() []Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Status, len(c.statuses))
	copy(result, c.statuses)
	return result
}

// IsHealthy returns true if all checks pass.
func (c *Checker) IsHealthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}

// ─── Check Implementations ──────────────────────────────────────────────────

func checkScenarioDir(dir string) error {
	if dir == "" {
		return nil // built-ins only
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Dir doesn't exist yet, built-ins still serve
		}
		return fmt.Errorf("check scenario dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scenario path %s is not a directory", dir)
	}
	return nil
}
