package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // display timezone must resolve on minimal images

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	AdminEmail   string `env:"ADMIN_EMAIL,required,notEmpty"`
	MailProvider string `env:"MAIL_PROVIDER" envDefault:"smtp"`
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPSecure   bool   `env:"SMTP_SECURE" envDefault:"false"`
	SMTPUsername string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASS"`
	MailFrom     string `env:"MAIL_FROM"`
	MailFromName string `env:"MAIL_FROM_NAME" envDefault:"Veriden"`

	SendTimeout     time.Duration `env:"SEND_TIMEOUT" envDefault:"15s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
	DisplayTimezone string        `env:"DISPLAY_TIMEZONE" envDefault:"America/New_York"`
}

// Providers recognised by MAIL_PROVIDER. "smtp" uses SMTP_HOST/SMTP_PORT as given.
var Providers = []string{"smtp", "gmail", "outlook", "sendgrid", "mailgun", "log"}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.MailProvider = strings.ToLower(strings.TrimSpace(cfg.MailProvider))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks combinations the env tags cannot express.
func (c *Config) Validate() error {
	known := false
	for _, p := range Providers {
		if c.MailProvider == p {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown mail provider %q", c.MailProvider)
	}
	if c.MailProvider == "smtp" && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST is required when MAIL_PROVIDER is smtp")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Sender returns the envelope From address, falling back to the SMTP user.
func (c *Config) Sender() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return c.SMTPUsername
}

// Location resolves DisplayTimezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("load display timezone %q: %w", c.DisplayTimezone, err)
	}
	return loc, nil
}
