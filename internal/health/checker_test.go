package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/eles-sim/eles/internal/domain"
	"github.com/eles-sim/eles/internal/sim"
)

func newTestChecker(t *testing.T, scenarioDir string) *Checker {
	t.Helper()
	return NewChecker(sim.NewEngine(domain.DefaultConstants()), scenarioDir)
}

// ─── Checker Tests ──────────────────────────────────────────────────────────

func TestNewChecker(t *testing.T) {
	c := newTestChecker(t, t.TempDir())
	if c == nil {
		t.Fatal("NewChecker() returned nil")
	}
	if len(c.checks) != 3 {
		t.Errorf("checks = %d, want 3", len(c.checks))
	}
}

func TestChecker_RunAllHealthy(t *testing.T) {
	c := newTestChecker(t, t.TempDir())
	c.runAll(context.Background())

	statuses := c.Statuses()
	if len(statuses) != 3 {
		t.Fatalf("Statuses() = %d, want 3", len(statuses))
	}

	for _, s := range statuses {
		if !s.Healthy {
			t.Errorf("check %q should be healthy, got error: %s", s.Name, s.Error)
		}
	}
}

func TestChecker_IsHealthy_BeforeRun(t *testing.T) {
	c := newTestChecker(t, t.TempDir())

	// Before any run, there are no statuses — IsHealthy returns true (vacuously)
	if !c.IsHealthy() {
		t.Error("IsHealthy() should be true before first run (no statuses)")
	}
}

func TestChecker_MissingScenarioDirIsFine(t *testing.T) {
	// Built-ins still serve when the directory was never created.
	c := newTestChecker(t, filepath.Join(t.TempDir(), "nonexistent"))
	c.runAll(context.Background())

	if !c.IsHealthy() {
		for _, s := range c.Statuses() {
			if !s.Healthy {
				t.Errorf("check %q failed: %s", s.Name, s.Error)
			}
		}
	}
}

func TestChecker_ScenarioDirIsFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scenarios")
	os.WriteFile(dir, []byte("not a dir"), 0644)

	c := newTestChecker(t, dir)
	c.runAll(context.Background())

	healthy := true
	for _, s := range c.Statuses() {
		if s.Name == "scenario_dir" {
			healthy = s.Healthy
		}
	}
	if healthy {
		t.Error("scenario_dir should fail when the path is a file")
	}
}

func TestChecker_BrokenScenarioFailsCatalog(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: broken\nevent_type: not_a_hazard\n"), 0644)

	c := newTestChecker(t, dir)
	c.runAll(context.Background())

	for _, s := range c.Statuses() {
		if s.Name == "scenario_catalog" && s.Healthy {
			t.Error("scenario_catalog should fail on an invalid event type")
		}
	}
}

func TestChecker_CustomCheck(t *testing.T) {
	c := &Checker{
		checks: []Check{
			{
				Name: "always_pass",
				CheckFn: func(ctx context.Context) error {
					return nil
				},
			},
		},
	}

	c.runAll(context.Background())

	statuses := c.Statuses()
	if len(statuses) != 1 {
		t.Fatalf("statuses = %d, want 1", len(statuses))
	}
	if !statuses[0].Healthy {
		t.Error("always_pass check should be healthy")
	}
}

func TestChecker_FailingCheck(t *testing.T) {
	c := &Checker{
		checks: []Check{
			{
				Name: "always_fail",
				CheckFn: func(ctx context.Context) error {
					return os.ErrPermission
				},
			},
		},
	}

	c.runAll(context.Background())

	statuses := c.Statuses()
	if statuses[0].Healthy {
		t.Error("always_fail check should not be healthy")
	}
	if statuses[0].Error == "" {
		t.Error("error message should be populated")
	}
}

func TestChecker_StatusesCopy(t *testing.T) {
	c := newTestChecker(t, t.TempDir())
	c.runAll(context.Background())

	s1 := c.Statuses()
	s2 := c.Statuses()

	// Verify it's a copy, not the same slice
	if len(s1) > 0 {
		s1[0].Healthy = false
		if !s2[0].Healthy {
			t.Error("Statuses() should return a copy, not a reference")
		}
	}
}
