package config

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = "hanoi.yaml"

// Output modes for the run command.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputRich = "rich"
	OutputAuto = "auto"
)

// Store backends.
const (
	StoreNone   = "none"
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config is the on-disk configuration (hanoi.yaml).
type Config struct {
	Puzzle   domain.Puzzle `yaml:"puzzle"`
	Strategy string        `yaml:"strategy"`
	Output   string        `yaml:"output"`
	LogLevel string        `yaml:"log_level"`
	Store    StoreConfig   `yaml:"store"`
	Server   ServerConfig  `yaml:"server"`
}

// StoreConfig selects and configures the solution cache.
type StoreConfig struct {
	Backend  string        `yaml:"backend"`
	Path     string        `yaml:"path"`
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
	Prefix   string        `yaml:"prefix"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port         string `yaml:"port"`
	MaxDisks     int    `yaml:"max_disks"`
	CollectLimit int    `yaml:"collect_limit"`
}

// Default mirrors the reference invocation: 5 disks from X to Z via Y.
func Default() Config {
	return Config{
		Puzzle:   domain.DefaultPuzzle(),
		Strategy: string(domain.StrategyRecursive),
		Output:   OutputText,
		LogLevel: "warn",
		Store: StoreConfig{
			Backend: StoreNone,
			Address: "localhost:6379",
		},
		Server: ServerConfig{
			Port:         "8080",
			MaxDisks:     20,
			CollectLimit: 16,
		},
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error
// unless required is true.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerations; puzzle rules are left to the engine.
func (c Config) Validate() error {
	if _, err := domain.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputRich, OutputAuto:
	default:
		return fmt.Errorf("unknown output %q", c.Output)
	}
	switch c.Store.Backend {
	case "", StoreNone, StoreMemory, StoreFile, StoreRedis:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Server.MaxDisks < 0 || c.Server.MaxDisks > domain.MaxDisks {
		return fmt.Errorf("server.max_disks must be within 0..%d", domain.MaxDisks)
	}
	return nil
}
