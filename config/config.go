// Package config provides YAML and TOML configuration parsing for pullbadge.
//
// This package lets the pullbadge binary generate badges from a file, as an
// alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	endpoints:
//	  api_base: https://ghcr-badge.elias.eu.org/api
//	  shield_base: https://ghcr-badge.elias.eu.org/shield
//
//	defaults:
//	  logo: docker
//	  color: blue
//
//	badges:
//	  - repository: https://github.com/acme/widget
//	    package: widget
//	    label: ${LABEL:-pulls}
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jpalmerr/pullbadge"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for pullbadge.
//
// It maps directly to the configuration file. Use [Load] or [Parse] to
// create a Config.
type Config struct {
	// Endpoints overrides the badge services. Empty fields keep the
	// built-in endpoints.
	Endpoints EndpointsConfig `yaml:"endpoints" toml:"endpoints"`

	// Defaults seeds the badge options of every badge and of the
	// interactive form.
	Defaults pullbadge.BadgeOptions `yaml:"defaults" toml:"defaults"`

	// Badges lists the badges generated in batch mode.
	Badges []BadgeConfig `yaml:"badges" toml:"badges"`
}

// EndpointsConfig holds the service base URLs.
type EndpointsConfig struct {
	// JSONBadge is the dynamic JSON badge endpoint.
	JSONBadge string `yaml:"json_badge" toml:"json_badge"`

	// APIBase is the base of the pull count API URL.
	APIBase string `yaml:"api_base" toml:"api_base"`

	// ShieldBase is the base of the direct shield URL.
	ShieldBase string `yaml:"shield_base" toml:"shield_base"`
}

// BadgeConfig defines one badge.
type BadgeConfig struct {
	// Repository is the GitHub repository URL.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}
	Repository string `yaml:"repository" toml:"repository"`

	// Package is the GHCR package name. Defaults to the repository name.
	Package string `yaml:"package" toml:"package"`

	Label string `yaml:"label" toml:"label"`
	Logo  string `yaml:"logo" toml:"logo"`
	Color string `yaml:"color" toml:"color"`
	Style string `yaml:"style" toml:"style"`
}

// Options returns the badge's own options, without defaults applied.
func (b BadgeConfig) Options() pullbadge.BadgeOptions {
	return pullbadge.BadgeOptions{Label: b.Label, Logo: b.Logo, Color: b.Color, Style: b.Style}
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		sub := envVarPattern.FindStringSubmatch(match)
		name := sub[1]
		hasDefault := sub[2] != ""

		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		if hasDefault {
			return sub[3]
		}
		firstErr = fmt.Errorf("environment variable %q is not set", name)
		return match
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Format is the configuration file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFor picks the syntax from a file name: .toml is TOML, anything
// else is YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads and parses a configuration file.
//
// Any envFiles are loaded with godotenv first; variables already present in
// the environment win. Environment variables in the file are expanded
// after parsing.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseFormat(data, FormatFor(path))
}

// Parse parses YAML configuration data.
func Parse(data []byte) (*Config, error) {
	return ParseFormat(data, FormatYAML)
}

// ParseFormat parses configuration data in the given syntax, expands
// environment variables and validates the result.
func ParseFormat(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	endpoints := []struct {
		key   string
		value *string
		opt   func(string) pullbadge.Option
	}{
		{"endpoints.json_badge", &c.Endpoints.JSONBadge, pullbadge.WithJSONBadgeEndpoint},
		{"endpoints.api_base", &c.Endpoints.APIBase, pullbadge.WithAPIBase},
		{"endpoints.shield_base", &c.Endpoints.ShieldBase, pullbadge.WithShieldBase},
	}
	for _, ep := range endpoints {
		if *ep.value == "" {
			continue
		}
		if err := expandInto(ep.value); err != nil {
			return fmt.Errorf("%s: %w", ep.key, err)
		}
		// the builder option carries the URL rules
		if _, err := pullbadge.New(ep.opt(*ep.value)); err != nil {
			return fmt.Errorf("%s: %w", ep.key, err)
		}
	}

	for _, f := range []*string{&c.Defaults.Label, &c.Defaults.Logo, &c.Defaults.Color, &c.Defaults.Style} {
		if err := expandInto(f); err != nil {
			return fmt.Errorf("defaults: %w", err)
		}
	}

	for i := range c.Badges {
		b := &c.Badges[i]

		if strings.TrimSpace(b.Repository) == "" {
			return fmt.Errorf("badges[%d]: repository is required", i)
		}
		for _, f := range []*string{&b.Repository, &b.Package, &b.Label, &b.Logo, &b.Color, &b.Style} {
			if err := expandInto(f); err != nil {
				return fmt.Errorf("badges[%d]: %w", i, err)
			}
		}
		if _, err := pullbadge.ParseRepository(b.Repository); err != nil {
			return fmt.Errorf("badges[%d]: %w", i, err)
		}
		b.Package = strings.TrimSpace(b.Package)
	}

	return nil
}

func expandInto(s *string) error {
	expanded, err := expandEnvVars(*s)
	if err != nil {
		return err
	}
	*s = expanded
	return nil
}
