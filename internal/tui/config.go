package tui

import (
	"log/slog"
	"time"

	"github.com/Veraticus/stellar-invoices/internal/filter"
	"github.com/Veraticus/stellar-invoices/internal/service"
	"github.com/Veraticus/stellar-invoices/internal/session"
	"github.com/Veraticus/stellar-invoices/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme       themes.Theme
	Source      service.InvoiceSource
	Clock       session.Clock
	IDs         filter.IDGenerator
	Logger      *slog.Logger
	LoadTimeout time.Duration
	Width       int
	Height      int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		Clock:       time.Now,
		Logger:      slog.Default(),
		LoadTimeout: 30 * time.Second,
		Width:       100,
		Height:      30,
	}
}

// WithSource sets where the invoices are loaded from.
func WithSource(source service.InvoiceSource) Option {
	return func(c *Config) {
		c.Source = source
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock sets the clock used to resolve date presets.
func WithClock(clock session.Clock) Option {
	return func(c *Config) {
		c.Clock = clock
	}
}

// WithIDGenerator sets how filter ids are generated.
func WithIDGenerator(ids filter.IDGenerator) Option {
	return func(c *Config) {
		c.IDs = ids
	}
}

// WithLogger sets the logger. The TUI owns the terminal, so this should not
// write to stdout or stderr.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func (c Config) sessionOptions() []session.Option {
	opts := []session.Option{
		session.WithClock(c.Clock),
		session.WithLogger(c.Logger),
	}
	if c.IDs != nil {
		opts = append(opts, session.WithIDGenerator(c.IDs))
	}
	return opts
}
