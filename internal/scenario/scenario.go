// Package scenario provides the named scenario catalog: a fixed set of
// built-in reference events plus YAML files from a configured directory.
// A scenario is just a stored (event type, parameters) pair; running one
// is always equivalent to a plain simulation request.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eles-sim/eles/internal/domain"
)

// Scenario is a named, reusable simulation request.
type Scenario struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	EventType   string            `yaml:"event_type" json:"event_type"`
	Parameters  domain.Parameters `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Validate checks that the scenario names a simulatable event type.
func (s Scenario) Validate() error {
	if s.EventType == "" {
		return fmt.Errorf("scenario %q has no event_type: %w", s.Name, domain.ErrInvalidScenario)
	}
	if !domain.EventType(s.EventType).IsValid() {
		return fmt.Errorf("scenario %q event type %q: %w", s.Name, s.EventType, domain.ErrInvalidScenario)
	}
	return nil
}

// Load reads and validates a single scenario file. A file without an
// explicit name takes its file name (minus extension).
func Load(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario %s: %w", filepath.Base(path), err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// LoadDir reads every .yaml/.yml scenario in dir, sorted by name.
// A missing directory is an empty catalog, not an error.
func LoadDir(dir string) ([]Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read scenario dir: %w", err)
	}

	var scenarios []Scenario
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ext := filepath.Ext(entry.Name()); ext != ".yaml" && ext != ".yml" {
			continue
		}
		sc, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios, nil
}

// Builtin returns the fixed reference catalog.
func Builtin() []Scenario {
	return []Scenario{
		{
			Name:        "chicxulub",
			Description: "The end-Cretaceous impactor: a 10 km asteroid at 20 km/s",
			EventType:   string(domain.EventAsteroid),
			Parameters: domain.Parameters{
				"diameter_km":   10.0,
				"density_kg_m3": 3000.0,
				"velocity_km_s": 20.0,
				"target_type":   "ocean",
			},
		},
		{
			Name:        "tunguska",
			Description: "A Tunguska-class airburst: a 60 m stony body",
			EventType:   string(domain.EventAsteroid),
			Parameters: domain.Parameters{
				"diameter_km":   0.06,
				"density_kg_m3": 3000.0,
				"velocity_km_s": 20.0,
			},
		},
		{
			Name:        "yellowstone",
			Description: "A full-caldera Yellowstone eruption at VEI 8",
			EventType:   string(domain.EventSupervolcano),
			Parameters: domain.Parameters{
				"name": "Yellowstone",
				"vei":  8,
			},
		},
		{
			Name:        "pandemic-1918",
			Description: "An influenza pandemic on the 1918 profile",
			EventType:   string(domain.EventPandemic),
			Parameters: domain.Parameters{
				"r0":             2.0,
				"mortality_rate": 0.03,
			},
		},
		{
			Name:        "covid-like",
			Description: "A respiratory pandemic with COVID-like parameters",
			EventType:   string(domain.EventPandemic),
			Parameters: domain.Parameters{
				"r0":             2.5,
				"mortality_rate": 0.01,
			},
		},
		{
			Name:        "snowball-earth",
			Description: "Runaway glaciation: a 10 °C global cooling",
			EventType:   string(domain.EventClimateCollapse),
			Parameters: domain.Parameters{
				"temperature_change_c": -10.0,
			},
		},
		{
			Name:        "nearby-grb",
			Description: "A gamma-ray burst 500 light years out",
			EventType:   string(domain.EventGammaRayBurst),
			Parameters: domain.Parameters{
				"distance_ly": 500.0,
			},
		},
		{
			Name:        "misaligned-asi",
			Description: "Fast takeoff of a poorly aligned superintelligence",
			EventType:   string(domain.EventAIExtinction),
			Parameters: domain.Parameters{
				"ai_level":              9,
				"development_speed":     2.0,
				"alignment_probability": 0.2,
				"control_measures":      2,
			},
		},
	}
}

// Find resolves a scenario name against dir (as <name>.yaml or
// <name>.yml) and falls back to the built-in catalog, so on-disk
// scenarios shadow built-ins of the same name. Returns
// ErrScenarioNotFound when neither has it.
func Find(name, dir string) (Scenario, error) {
	if dir != "" {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return Load(path)
			}
		}
	}
	for _, sc := range Builtin() {
		if sc.Name == name {
			return sc, nil
		}
	}
	return Scenario{}, fmt.Errorf("scenario %q: %w", name, domain.ErrScenarioNotFound)
}

// All returns the built-in catalog plus everything in dir, sorted by name.
// On-disk scenarios shadow built-ins with the same name.
func All(dir string) ([]Scenario, error) {
	fromDisk, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]Scenario)
	for _, sc := range Builtin() {
		byName[sc.Name] = sc
	}
	for _, sc := range fromDisk {
		byName[sc.Name] = sc
	}
	all := make([]Scenario, 0, len(byName))
	for _, sc := range byName {
		all = append(all, sc)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}
