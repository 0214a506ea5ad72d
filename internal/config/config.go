// Package config loads sidekick settings from a YAML config file and
// environment variables, with the environment taking precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// JiraConfig holds the connection settings for the Jira REST API.
type JiraConfig struct {
	URL      string `mapstructure:"url"`
	Email    string `mapstructure:"email"`
	APIToken string `mapstructure:"api_token"`
	Timeout  int    `mapstructure:"timeout"`
}

// Config is the full sidekick configuration.
type Config struct {
	Jira JiraConfig `mapstructure:"jira"`
}

// DefaultTimeout is the HTTP client timeout in seconds when the config
// does not set one.
const DefaultTimeout = 30

// ConfigPath returns the config file path: $SIDEKICK_CONFIG if set,
// otherwise ~/.sidekick/config.yaml.
func ConfigPath() string {
	if p := os.Getenv("SIDEKICK_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sidekick", "config.yaml")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("jira.timeout", DefaultTimeout)

	v.SetEnvPrefix("SIDEKICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bare JIRA_* variables are the common convention, so honor them
	// alongside the prefixed form.
	_ = v.BindEnv("jira.url", "SIDEKICK_JIRA_URL", "JIRA_URL")
	_ = v.BindEnv("jira.email", "SIDEKICK_JIRA_EMAIL", "JIRA_EMAIL")
	_ = v.BindEnv("jira.api_token", "SIDEKICK_JIRA_API_TOKEN", "JIRA_API_TOKEN")

	return v
}

// Load reads the config file (if present) and environment variables and
// returns the merged configuration. A missing config file is not an
// error; missing required keys are reported by Validate, not here.
func Load() (*Config, error) {
	v := newViper()

	if path := ConfigPath(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Jira.Timeout <= 0 {
		cfg.Jira.Timeout = DefaultTimeout
	}
	return &cfg, nil
}

// Validate checks that the settings needed to reach Jira are present.
// The error names every missing key so the user can fix them all at once.
func (c *Config) Validate() error {
	var missing []string
	if c.Jira.URL == "" {
		missing = append(missing, "jira.url (JIRA_URL)")
	}
	if c.Jira.Email == "" {
		missing = append(missing, "jira.email (JIRA_EMAIL)")
	}
	if c.Jira.APIToken == "" {
		missing = append(missing, "jira.api_token (JIRA_API_TOKEN)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s (set them in %s or the environment)",
			strings.Join(missing, ", "), ConfigPath())
	}
	return nil
}

// Redact returns a copy of the config with the API token masked, for
// display by `sk config list`.
func (c *Config) Redact() *Config {
	out := *c
	if out.Jira.APIToken != "" {
		out.Jira.APIToken = "********"
	}
	return &out
}
