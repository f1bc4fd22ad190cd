package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"kanban/internal/util"
)

// Config holds the settings of the kanban service.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	Seed            string        `mapstructure:"seed"`
	StaticDir       string        `mapstructure:"static_dir"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		StaticDir:       "web/dist",
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load builds the configuration from defaults, the optional YAML file at path
// and KANBAN_* environment variables, later sources winning.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	cfg.Addr = util.EnvOrDefault("KANBAN_ADDR", cfg.Addr)
	cfg.Seed = util.EnvOrDefault("KANBAN_SEED", cfg.Seed)
	cfg.StaticDir = util.EnvOrDefault("KANBAN_STATIC_DIR", cfg.StaticDir)
	cfg.LogLevel = util.EnvOrDefault("KANBAN_LOG_LEVEL", cfg.LogLevel)
	cfg.ShutdownTimeout = util.EnvDurationOrDefault("KANBAN_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// Validate reports settings the service cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger returns the text logger used across the service.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
