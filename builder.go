package pullbadge

import (
	"fmt"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/sirupsen/logrus"
)

// jsonBadgeQuery is the query string of the dynamic JSON badge.
// Optional fields rely on omitempty, so sentinels must be cleared first.
type jsonBadgeQuery struct {
	URL   string `url:"url"`
	Query string `url:"query"`
	Label string `url:"label"`
	Logo  string `url:"logo,omitempty"`
	Color string `url:"color,omitempty"`
	Style string `url:"style,omitempty"`
}

// jsonBadgeParamOrder is the emission order of jsonBadgeQuery parameters.
// url.Values.Encode sorts keys, which would scramble it.
var jsonBadgeParamOrder = []string{"url", "query", "label", "logo", "color", "style"}

// Builder turns a repository, a package name and [BadgeOptions] into
// [Artifacts].
//
// Builder is immutable after [New] and safe for concurrent use.
type Builder struct {
	jsonBadgeEndpoint string
	apiBase           string
	shieldBase        string
	queryField        string
	defaultLabel      string
	directAlt         string
	logger            *logrus.Entry
}

// New creates a [Builder] with the given options.
//
// Every option has a default, so New() with no arguments produces a builder
// for img.shields.io and ghcr-badge.elias.eu.org:
//   - JSON badge endpoint: [DefaultJSONBadgeEndpoint]
//   - API base: [DefaultAPIBase]
//   - Shield base: [DefaultShieldBase]
//   - Query field: [DefaultQueryField]
//
// Returns an error wrapping [ErrInvalidOption] if any option is invalid.
func New(opts ...Option) (*Builder, error) {
	cfg := &builderConfig{
		jsonBadgeEndpoint: DefaultJSONBadgeEndpoint,
		apiBase:           DefaultAPIBase,
		shieldBase:        DefaultShieldBase,
		queryField:        DefaultQueryField,
		defaultLabel:      DefaultLabel,
		directAlt:         DefaultDirectAlt,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Builder{
		jsonBadgeEndpoint: cfg.jsonBadgeEndpoint,
		apiBase:           cfg.apiBase,
		shieldBase:        cfg.shieldBase,
		queryField:        cfg.queryField,
		defaultLabel:      cfg.defaultLabel,
		directAlt:         cfg.directAlt,
		logger:            logger,
	}, nil
}

// defaultBuilder backs the package-level helpers.
var defaultBuilder, _ = New()

// DefaultBuilder returns the builder used by [BuildBadgeURLs].
func DefaultBuilder() *Builder {
	return defaultBuilder
}

// BuildBadgeURLs builds artifacts with the default builder.
//
// Example:
//
//	art, err := pullbadge.BuildBadgeURLs("acme", "widget", "widget", pullbadge.BadgeOptions{})
func BuildBadgeURLs(owner, repo, packageName string, opts BadgeOptions) (Artifacts, error) {
	r, err := NewRepository(owner, repo)
	if err != nil {
		return Artifacts{}, err
	}
	return defaultBuilder.Build(r, packageName, opts)
}

// DefaultLabel returns the label used when a build gets a blank label.
func (b *Builder) DefaultLabel() string {
	return b.defaultLabel
}

// Build produces all five artifacts for repo and packageName.
//
// The package name is trimmed. Returns [ErrMissingRepository] for a zero
// repo and [ErrMissingPackageName] for a blank package name; in both cases
// the returned Artifacts is empty. Build never makes a network request.
func (b *Builder) Build(repo Repository, packageName string, opts BadgeOptions) (Artifacts, error) {
	if repo.IsZero() {
		return Artifacts{}, ErrMissingRepository
	}
	packageName = strings.TrimSpace(packageName)
	if packageName == "" {
		return Artifacts{}, ErrMissingPackageName
	}

	label := effectiveLabel(opts.Label, b.defaultLabel)
	path := joinSegments(repo.Owner(), repo.Name(), packageName)

	jsonURL, err := b.jsonBadgeURL(b.apiBase+path, label, opts)
	if err != nil {
		return Artifacts{}, err
	}
	directURL := b.shieldBase + path

	b.logger.WithFields(logrus.Fields{
		"repository": repo.String(),
		"package":    packageName,
		"label":      label,
	}).Debug("badge urls built")

	return Artifacts{
		JSONURL:        jsonURL,
		JSONMarkdown:   markdownImage(label, jsonURL),
		JSONHTML:       htmlImage(jsonURL, label),
		DirectURL:      directURL,
		DirectMarkdown: markdownImage(b.directAlt, directURL),
	}, nil
}

// jsonBadgeURL assembles the dynamic badge URL with parameters in
// jsonBadgeParamOrder.
func (b *Builder) jsonBadgeURL(apiURL, label string, opts BadgeOptions) (string, error) {
	values, err := query.Values(jsonBadgeQuery{
		URL:   apiURL,
		Query: b.queryField,
		Label: label,
		Logo:  unlessSentinel(opts.Logo, LogoNone),
		Color: unlessSentinel(opts.Color, ColorDefault),
		Style: unlessSentinel(opts.Style, StyleFlat),
	})
	if err != nil {
		return "", fmt.Errorf("encode badge query: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(b.jsonBadgeEndpoint)
	sep := byte('?')
	for _, key := range jsonBadgeParamOrder {
		for _, v := range values[key] {
			sb.WriteByte(sep)
			sb.WriteString(key)
			sb.WriteByte('=')
			sb.WriteString(escapeFormValue(v))
			sep = '&'
		}
	}
	return sb.String(), nil
}

// joinSegments escapes each segment as a single path component and joins
// them with a leading slash.
func joinSegments(segments ...string) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteByte('/')
		sb.WriteString(escapeComponent(s))
	}
	return sb.String()
}

func markdownImage(alt, src string) string {
	return "![" + alt + "](" + src + ")"
}

func htmlImage(src, alt string) string {
	return `<img src="` + src + `" alt="` + alt + `">`
}
