// Package config loads and validates the application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/Veraticus/stellar-invoices/internal/common"
)

// Config is the typed view of the viper configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// DatabaseConfig locates the invoice database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// TUIConfig controls the interactive browser.
type TUIConfig struct {
	Theme  string `mapstructure:"theme" validate:"oneof=default light"`
	Width  int    `mapstructure:"width" validate:"gte=40"`
	Height int    `mapstructure:"height" validate:"gte=12"`
}

// SeedConfig controls fake invoice generation.
type SeedConfig struct {
	Count int    `mapstructure:"count" validate:"gte=1,lte=100000"`
	Seed  uint64 `mapstructure:"seed"`
}

// DefaultDatabasePath is where the database lives unless configured otherwise.
const DefaultDatabasePath = "~/.local/share/invoices/invoices.db"

var validate = validator.New()

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("tui.theme", "default")
	v.SetDefault("tui.width", 120)
	v.SetDefault("tui.height", 32)
	v.SetDefault("seed.count", 50)
	v.SetDefault("seed.seed", 0)
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	cfg.Database.Path = ExpandPath(cfg.Database.Path)

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, fmt.Errorf("%w: %s must satisfy %s=%s (got %v)",
				common.ErrInvalidConfig, strings.ToLower(fe.Namespace()), fe.Tag(), fe.Param(), fe.Value())
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// ExpandPath expands a leading ~ and environment variables in path.
// The in-memory database marker is returned untouched.
func ExpandPath(path string) string {
	if path == "" || path == ":memory:" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
