package pullbadge

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultJSONBadgeEndpoint is the shields.io dynamic JSON badge endpoint.
	DefaultJSONBadgeEndpoint = "https://img.shields.io/badge/dynamic/json"

	// DefaultAPIBase serves the pull count JSON for a package.
	DefaultAPIBase = "https://ghcr-badge.elias.eu.org/api"

	// DefaultShieldBase serves a ready-made pull count badge.
	DefaultShieldBase = "https://ghcr-badge.elias.eu.org/shield"

	// DefaultQueryField is the JSON field the dynamic badge reads.
	DefaultQueryField = "downloadCount"

	// DefaultDirectAlt is the alt text of the direct shield markdown.
	DefaultDirectAlt = "GHCR Pulls"
)

// builderConfig holds mutable state during Builder construction.
type builderConfig struct {
	jsonBadgeEndpoint string
	apiBase           string
	shieldBase        string
	queryField        string
	defaultLabel      string
	directAlt         string
	logger            *logrus.Entry
}

// Option is a function that configures a [Builder] during construction.
//
// Options return an error if validation fails; [New] wraps it with
// [ErrInvalidOption].
type Option func(*builderConfig) error

// WithJSONBadgeEndpoint sets the dynamic JSON badge endpoint.
// Defaults to [DefaultJSONBadgeEndpoint].
//
// Returns an error if endpoint is not an absolute http(s) URL.
func WithJSONBadgeEndpoint(endpoint string) Option {
	return func(cfg *builderConfig) error {
		u, err := absoluteBase(endpoint)
		if err != nil {
			return fmt.Errorf("json badge endpoint: %w", err)
		}
		cfg.jsonBadgeEndpoint = u
		return nil
	}
}

// WithAPIBase sets the base of the pull count API URL embedded in the
// dynamic badge. Owner, repo and package are appended as path segments.
// Defaults to [DefaultAPIBase].
func WithAPIBase(base string) Option {
	return func(cfg *builderConfig) error {
		u, err := absoluteBase(base)
		if err != nil {
			return fmt.Errorf("api base: %w", err)
		}
		cfg.apiBase = u
		return nil
	}
}

// WithShieldBase sets the base of the direct shield URL.
// Defaults to [DefaultShieldBase].
func WithShieldBase(base string) Option {
	return func(cfg *builderConfig) error {
		u, err := absoluteBase(base)
		if err != nil {
			return fmt.Errorf("shield base: %w", err)
		}
		cfg.shieldBase = u
		return nil
	}
}

// WithQueryField sets the JSON field queried by the dynamic badge.
// Defaults to [DefaultQueryField].
func WithQueryField(field string) Option {
	return func(cfg *builderConfig) error {
		field = strings.TrimSpace(field)
		if field == "" {
			return errors.New("query field cannot be empty")
		}
		cfg.queryField = field
		return nil
	}
}

// WithDefaultLabel sets the label used when a build is given a blank label.
// Defaults to [DefaultLabel].
func WithDefaultLabel(label string) Option {
	return func(cfg *builderConfig) error {
		label = strings.TrimSpace(label)
		if label == "" {
			return errors.New("default label cannot be empty")
		}
		cfg.defaultLabel = label
		return nil
	}
}

// WithDirectAlt sets the alt text of the direct shield markdown embed.
// Defaults to [DefaultDirectAlt].
func WithDirectAlt(alt string) Option {
	return func(cfg *builderConfig) error {
		if strings.TrimSpace(alt) == "" {
			return errors.New("direct alt text cannot be empty")
		}
		cfg.directAlt = alt
		return nil
	}
}

// WithLogger sets the logger used for debug output.
//
// If not specified, an entry on [logrus.StandardLogger] is used.
// Returns an error if the logger is nil.
func WithLogger(logger *logrus.Entry) Option {
	return func(cfg *builderConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// absoluteBase validates an http(s) base URL and strips a trailing slash.
func absoluteBase(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("host is required")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", errors.New("must not carry a query or fragment")
	}
	return strings.TrimRight(raw, "/"), nil
}
