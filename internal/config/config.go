// Package config holds the settings of the sfdl command.
//
// Values are read from SFDL_* environment variables and can be overridden
// per invocation with command-line flags.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/zoobzio/sfdl"
)

// Config holds the command settings.
type Config struct {
	Password    string `env:"SFDL_PASSWORD"`
	Format      string `env:"SFDL_FORMAT" envDefault:"xml"`
	LogLevel    string `env:"SFDL_LOG_LEVEL" envDefault:"info"`
	Parallelism int    `env:"SFDL_PARALLELISM" envDefault:"1"`

	// Reveal prints credentials unmasked. Flag only.
	Reveal bool
}

// FromEnv reads the configuration from environ, a set of KEY=value pairs
// keyed by name. A nil environ reads the process environment.
func FromEnv(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds the configuration to fs. Flag defaults are the
// current values, so parsed flags override the environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Password, "password", c.Password, "descriptor password (env SFDL_PASSWORD)")
	fs.StringVar(&c.Format, "format", c.Format, "output format: "+fmt.Sprint(sfdl.Codecs())+" (env SFDL_FORMAT)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (env SFDL_LOG_LEVEL)")
	fs.IntVar(&c.Parallelism, "parallelism", c.Parallelism, "fields transformed concurrently (env SFDL_PARALLELISM)")
	fs.BoolVar(&c.Reveal, "reveal", c.Reveal, "print credentials unmasked")
}

// Validate checks the merged configuration. requirePassword is set by
// commands that encrypt or decrypt.
func (c *Config) Validate(requirePassword bool) error {
	if requirePassword && c.Password == "" {
		return ErrPasswordRequired
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidParallelism, c.Parallelism)
	}
	if _, err := sfdl.LookupCodec(c.Format); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// Codec returns the codec selected by Format.
func (c *Config) Codec() (sfdl.Codec, error) {
	return sfdl.LookupCodec(c.Format)
}
