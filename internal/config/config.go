// Package config loads the office simulation settings from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/engine"
	"github.com/talgya/cubicle/internal/entropy"
)

// Environment variables that override file settings.
const (
	EnvAdminKey    = "OFFICESIM_ADMIN_KEY"
	EnvDB          = "OFFICESIM_DB"
	EnvPort        = "OFFICESIM_PORT"
	EnvCORSOrigins = "OFFICESIM_CORS_ORIGINS"
)

// Random source kinds.
const (
	RandomSeeded = "seeded"
	RandomCrypto = "crypto"
)

// Config holds everything the driver needs to start.
type Config struct {
	Seed        int64         `yaml:"seed"`   // 0 = seed from the clock
	Random      string        `yaml:"random"` // "seeded" or "crypto"
	DBPath      string        `yaml:"db_path"`
	Port        int           `yaml:"port"`
	Interval    time.Duration `yaml:"interval"`
	Speed       float64       `yaml:"speed"`
	LogLevel    string        `yaml:"log_level"`
	CatalogPath string        `yaml:"catalog_path"` // Optional action catalog document
	Staff       int           `yaml:"staff"`        // Generated employees besides the named roles
	Snapshots   int           `yaml:"snapshots"`    // Quarterly snapshots to keep

	Tuning engine.Tuning `yaml:"tuning"`

	AdminKey    string   `yaml:"-"`
	CORSOrigins []string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Random:    RandomSeeded,
		DBPath:    "data/office.db",
		Port:      8080,
		Interval:  engine.DefaultInterval,
		Speed:     1,
		LogLevel:  "info",
		Staff:     agents.DefaultGeneratedStaff,
		Snapshots: 8,
		Tuning:    engine.DefaultTuning(),
	}
}

// Load reads the file at path over the defaults and applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			slog.Warn("config file not found, using defaults", "path", path)
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	c.AdminKey = getenv(EnvAdminKey)
	if v := getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		c.Port = port
	}
	if v := getenv(EnvCORSOrigins); v != "" {
		c.CORSOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.CORSOrigins = append(c.CORSOrigins, o)
			}
		}
	}
	return nil
}

// Validate rejects settings the driver cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("port %d out of range", c.Port)
	case c.Interval <= 0:
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	case c.Speed < 0:
		return fmt.Errorf("speed must not be negative, got %g", c.Speed)
	case c.Staff < 0:
		return fmt.Errorf("staff must not be negative, got %d", c.Staff)
	case c.DBPath == "":
		return errors.New("db_path is required")
	}
	if c.Random != RandomSeeded && c.Random != RandomCrypto {
		return fmt.Errorf("random must be %q or %q, got %q", RandomSeeded, RandomCrypto, c.Random)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	t := c.Tuning
	if t.PatrolChance < 0 || t.PatrolChance > 1 {
		return fmt.Errorf("tuning.patrol_chance must be in [0,1], got %g", t.PatrolChance)
	}
	if t.PatrolWindow <= 0 || t.PatrolLength < 0 || t.MoveSpeed <= 0 {
		return errors.New("tuning: patrol_window and move_speed must be positive, patrol_length non-negative")
	}
	return nil
}

// SlogLevel maps the configured level name to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Source builds the simulation's random source. The crypto source ignores
// seed; the seeded source draws from the clock when seed is 0.
func (c Config) Source(seed int64) entropy.Source {
	if c.Random == RandomCrypto {
		return entropy.Crypto{}
	}
	return entropy.NewSeeded(seed)
}
