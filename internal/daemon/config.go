// Package daemon manages the E.L.E.S. daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/eles-sim/eles/internal/domain"
)

// Config holds all daemon configuration.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Simulation SimulationConfig `toml:"simulation"`
	Scenarios  ScenariosConfig  `toml:"scenarios"`
	Logging    LoggingConfig    `toml:"logging"`
	Telemetry  TelemetryConfig  `toml:"telemetry"`
}

// ServerConfig controls the HTTP API server.
type ServerConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// SimulationConfig overrides the reference figures the models scale
// against. Zero values fall back to the built-in references.
type SimulationConfig struct {
	WorldPopulation float64 `toml:"world_population"`
	HospitalBeds    float64 `toml:"hospital_beds"`
	GlobalGDPUSD    float64 `toml:"global_gdp_usd"`
}

// ScenariosConfig locates on-disk scenario files.
type ScenariosConfig struct {
	Dir string `toml:"dir"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// TelemetryConfig controls the Prometheus /metrics endpoint.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	consts := domain.DefaultConstants()
	return Config{
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        6371,
			CORSOrigins: []string{"*"},
		},
		Simulation: SimulationConfig{
			WorldPopulation: consts.WorldPopulation,
			HospitalBeds:    consts.HospitalBeds,
			GlobalGDPUSD:    consts.GlobalGDPUSD,
		},
		Scenarios: ScenariosConfig{
			Dir: filepath.Join(elesHome(), "scenarios"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: TelemetryConfig{
			Prometheus: false,
		},
	}
}

// LoadConfig reads config from ~/.eles/config.toml (ELES_HOME moves the
// base directory), layers ELES_* environment variables on top, and
// validates the result. A missing file is just the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(elesHome(), "config.toml")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.eles/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(elesHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// Validate rejects configurations the daemon cannot serve with.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// Constants maps the simulation section onto the model constants,
// keeping the reference figures for anything unset.
func (c Config) Constants() domain.Constants {
	consts := domain.DefaultConstants()
	if c.Simulation.WorldPopulation > 0 {
		consts.WorldPopulation = c.Simulation.WorldPopulation
	}
	if c.Simulation.HospitalBeds > 0 {
		consts.HospitalBeds = c.Simulation.HospitalBeds
	}
	if c.Simulation.GlobalGDPUSD > 0 {
		consts.GlobalGDPUSD = c.Simulation.GlobalGDPUSD
	}
	return consts
}

// applyEnvOverrides layers ELES_* environment variables over cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ELES_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("ELES_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ELES_SCENARIOS_DIR"); v != "" {
		cfg.Scenarios.Dir = v
	}
	if v := os.Getenv("ELES_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ELES_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("ELES_TELEMETRY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Telemetry.Prometheus = b
		}
	}
}

// elesHome returns the E.L.E.S. data directory.
func elesHome() string {
	if env := os.Getenv("ELES_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".eles")
}
