package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Landing page content and contact form behaviour
	Landing LandingConfig

	// Visitor sessions
	Session SessionConfig

	// OpenTelemetry
	Otel OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LandingConfig holds what the page shows and how the simulated contact
// submission behaves.
type LandingConfig struct {
	// SubmitDelay is how long the simulated send takes before it resolves
	SubmitDelay time.Duration `env:"SUBMIT_DELAY" envDefault:"1s"`
	// ResetDelay is how long "Message Sent!" stays up before the form resets
	ResetDelay time.Duration `env:"RESET_DELAY" envDefault:"2s"`
	// ContactAddress is displayed under the contact form
	ContactAddress string `env:"CONTACT_ADDRESS" envDefault:"support-care@narturebelle.com"`
	// LogoImageURL and HeroImageURL are fetched by the browser at render time
	LogoImageURL string `env:"LOGO_IMAGE_URL" envDefault:"https://images.unsplash.com/photo-1531983412531-6f5660d11c8d?auto=format&fit=crop&q=80"`
	HeroImageURL string `env:"HERO_IMAGE_URL" envDefault:"https://images.unsplash.com/photo-1531983412531-6f5660d11c8d?auto=format&fit=crop&q=80"`
	// ContactRatePerMinute and ContactRateBurst bound submissions per session
	ContactRatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"6"`
	ContactRateBurst     int `env:"CONTACT_RATE_BURST" envDefault:"3"`
}

// SessionConfig holds visitor session settings
type SessionConfig struct {
	CookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"nb_session"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	Secure        bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// BaseURL returns a browsable URL for the server. A wildcard listen
// address is reported as localhost.
func (c *Config) BaseURL() string {
	host := c.ServerAddress
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, c.ServerPort)
}

// Validate rejects configurations the landing page cannot run with
func (c *Config) Validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.ServerPort)
	}
	if c.Landing.SubmitDelay < 0 || c.Landing.ResetDelay < 0 {
		return fmt.Errorf("SUBMIT_DELAY and RESET_DELAY must not be negative")
	}
	if c.Landing.ContactRatePerMinute <= 0 || c.Landing.ContactRateBurst <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE and CONTACT_RATE_BURST must be positive")
	}
	if c.Session.TTL <= 0 || c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_TTL and SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME must not be empty")
	}
	return nil
}

// Load parses configuration from the environment without logging
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.Duration("submit_delay", cfg.Landing.SubmitDelay),
		slog.Duration("reset_delay", cfg.Landing.ResetDelay),
		slog.Bool("otel", cfg.Otel.Enabled()),
	)

	return cfg, nil
}
