// Package config loads admindash settings from defaults, an optional config
// file and ADMINDASH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"admindash/internal/uistate"
)

// FlagsConfig holds the start-up values of the UI flags.
type FlagsConfig struct {
	LeftPanelOpen  bool `mapstructure:"left_panel_open"`
	RightPanelOpen bool `mapstructure:"right_panel_open"`
	DarkMode       bool `mapstructure:"dark_mode"`
}

// DatabaseConfig tunes the embedded DuckDB engine. Zero values keep the
// engine's defaults.
type DatabaseConfig struct {
	Threads       int           `mapstructure:"threads"`
	MemoryLimitGB int           `mapstructure:"memory_limit_gb"`
	Timeout       time.Duration `mapstructure:"timeout"` // Open and tuning deadline
}

// MCPConfig names the MCP server implementation.
type MCPConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// Config contains every configurable parameter. Use DefaultConfig() to get
// sensible defaults, then override as needed.
type Config struct {
	PageSize    int            `mapstructure:"page_size"`    // Rows per order page (default: 5)
	Flags       FlagsConfig    `mapstructure:"flags"`        // Initial UI flags
	LogFile     string         `mapstructure:"log_file"`     // Empty disables logging
	LogLevel    string         `mapstructure:"log_level"`    // debug, info, warn, error
	DatabaseDSN string         `mapstructure:"database_dsn"` // DuckDB DSN (default: in-memory)
	Database    DatabaseConfig `mapstructure:"database"`
	MCP         MCPConfig      `mapstructure:"mcp"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PageSize: 5,
		Flags: FlagsConfig{
			LeftPanelOpen:  true,
			RightPanelOpen: true,
			DarkMode:       false,
		},
		LogFile:     "",
		LogLevel:    "info",
		DatabaseDSN: ":memory:",
		Database: DatabaseConfig{
			Timeout: 10 * time.Second,
		},
		MCP: MCPConfig{
			Name:    "admindash",
			Version: "dev",
		},
	}
}

// WithPageSize returns a copy of the config with a different page size.
func (c Config) WithPageSize(n int) Config {
	c.PageSize = n
	return c
}

// WithDarkMode returns a copy of the config starting in dark or light mode.
func (c Config) WithDarkMode(enabled bool) Config {
	c.Flags.DarkMode = enabled
	return c
}

// WithLogFile returns a copy of the config logging to path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// WithDatabaseDSN returns a copy of the config using dsn for order storage.
func (c Config) WithDatabaseDSN(dsn string) Config {
	c.DatabaseDSN = dsn
	return c
}

// UIFlags converts the flag settings into the store's initial state.
func (c Config) UIFlags() map[uistate.Flag]bool {
	return map[uistate.Flag]bool{
		uistate.LeftPanelOpen:  c.Flags.LeftPanelOpen,
		uistate.RightPanelOpen: c.Flags.RightPanelOpen,
		uistate.DarkMode:       c.Flags.DarkMode,
	}
}

// SlogLevel maps LogLevel onto slog. Unknown names fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return &ConfigError{Field: "PageSize", Message: "must be positive"}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "LogLevel", Message: fmt.Sprintf("unknown level %q", c.LogLevel)}
	}
	if c.Database.Threads < 0 {
		return &ConfigError{Field: "Database.Threads", Message: "must not be negative"}
	}
	if c.Database.MemoryLimitGB < 0 {
		return &ConfigError{Field: "Database.MemoryLimitGB", Message: "must not be negative"}
	}
	if c.Database.Timeout < 0 {
		return &ConfigError{Field: "Database.Timeout", Message: "must not be negative"}
	}
	if c.MCP.Name == "" {
		return &ConfigError{Field: "MCP.Name", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// Load reads configuration. When path is empty, admindash.{toml,yaml,json}
// is looked up in the working directory and $HOME/.config/admindash; a missing
// file is not an error. Env var overrides use the ADMINDASH_ prefix, e.g.
// ADMINDASH_PAGE_SIZE, ADMINDASH_FLAGS_DARK_MODE or ADMINDASH_DATABASE_THREADS.
func Load(path string) (Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("page_size", def.PageSize)
	v.SetDefault("flags.left_panel_open", def.Flags.LeftPanelOpen)
	v.SetDefault("flags.right_panel_open", def.Flags.RightPanelOpen)
	v.SetDefault("flags.dark_mode", def.Flags.DarkMode)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("database_dsn", def.DatabaseDSN)
	v.SetDefault("database.threads", def.Database.Threads)
	v.SetDefault("database.memory_limit_gb", def.Database.MemoryLimitGB)
	v.SetDefault("database.timeout", def.Database.Timeout)
	v.SetDefault("mcp.name", def.MCP.Name)
	v.SetDefault("mcp.version", def.MCP.Version)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("admindash")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/admindash")
	}

	v.SetEnvPrefix("ADMINDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
