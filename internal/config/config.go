// Package config loads runtime settings for the pizza form binaries from an
// optional pizzaform.yaml file and PIZZAFORM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. PIZZAFORM_ENDPOINT or
// PIZZAFORM_THEME_NAME.
const EnvPrefix = "PIZZAFORM"

type Config struct {
	Endpoint    string
	OrderPath   string
	Timeout     time.Duration
	LogLevel    string
	Environment string
	Listen      string
	Theme       ThemeConfig
}

type ThemeConfig struct {
	Name       string
	Variant    string
	Tokens     map[string]string
	Stylesheet string
}

// Enabled reports whether a theme was configured.
func (t ThemeConfig) Enabled() bool {
	return t.Name != "" || len(t.Tokens) > 0 || t.Stylesheet != ""
}

// Option customises where Load looks for a config file.
type Option func(*loader)

type loader struct {
	file  string
	paths []string
}

// WithConfigFile reads settings from path. A missing file is an error.
func WithConfigFile(path string) Option {
	return func(l *loader) {
		l.file = strings.TrimSpace(path)
	}
}

// WithSearchPaths replaces the directories searched for pizzaform.yaml.
func WithSearchPaths(paths ...string) Option {
	return func(l *loader) {
		l.paths = paths
	}
}

func Load(options ...Option) (*Config, error) {
	l := &loader{paths: []string{".", "./config"}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}

	v := viper.New()
	v.SetDefault("endpoint", "http://localhost:9009")
	v.SetDefault("order_path", "/api/order")
	v.SetDefault("timeout", "10s")
	v.SetDefault("log_level", "info")
	v.SetDefault("environment", "development")
	v.SetDefault("listen", ":8080")
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("theme.stylesheet", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if l.file != "" {
		v.SetConfigFile(l.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", l.file, err)
		}
	} else {
		v.SetConfigName("pizzaform")
		v.SetConfigType("yaml")
		for _, path := range l.paths {
			v.AddConfigPath(path)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Endpoint:    strings.TrimRight(strings.TrimSpace(v.GetString("endpoint")), "/"),
		OrderPath:   strings.TrimSpace(v.GetString("order_path")),
		Timeout:     v.GetDuration("timeout"),
		LogLevel:    strings.TrimSpace(v.GetString("log_level")),
		Environment: strings.TrimSpace(v.GetString("environment")),
		Listen:      strings.TrimSpace(v.GetString("listen")),
		Theme: ThemeConfig{
			Name:       strings.TrimSpace(v.GetString("theme.name")),
			Variant:    strings.TrimSpace(v.GetString("theme.variant")),
			Tokens:     v.GetStringMapString("theme.tokens"),
			Stylesheet: strings.TrimSpace(v.GetString("theme.stylesheet")),
		},
	}
	if len(cfg.Theme.Tokens) == 0 {
		cfg.Theme.Tokens = nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the binaries cannot run without.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.Endpoint)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("config: endpoint %q must be an absolute http(s) URL", c.Endpoint)
	}
	if !strings.HasPrefix(c.OrderPath, "/") {
		return fmt.Errorf("config: order_path %q must start with /", c.OrderPath)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// Production reports whether the binaries run in production mode.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Environment, "production")
}
