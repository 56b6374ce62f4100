package pullbadge

import "strings"

const (
	// DefaultLabel is the badge label used when the label is blank.
	DefaultLabel = "ghcr pulls"

	// LogoNone omits the logo query parameter.
	LogoNone = "none"

	// ColorDefault omits the color query parameter.
	ColorDefault = "default"

	// StyleFlat omits the style query parameter. Flat is the service default.
	StyleFlat = "flat"
)

// BadgeOptions holds the styling choices for the dynamic-JSON badge.
//
// Empty fields and the sentinel values [LogoNone], [ColorDefault] and
// [StyleFlat] are equivalent: the matching query parameter is left out.
// The direct shield ignores BadgeOptions entirely.
type BadgeOptions struct {
	// Label is the text on the left side of the badge.
	Label string `json:"label" yaml:"label" toml:"label"`

	// Logo is a simple-icons slug such as "docker" or "github".
	Logo string `json:"logo" yaml:"logo" toml:"logo"`

	// Color is a named color ("blue") or hex value without '#'.
	Color string `json:"color" yaml:"color" toml:"color"`

	// Style is a shields.io style such as "flat-square" or "for-the-badge".
	Style string `json:"style" yaml:"style" toml:"style"`
}

// DefaultBadgeOptions returns the options a fresh form starts with.
func DefaultBadgeOptions() BadgeOptions {
	return BadgeOptions{
		Label: DefaultLabel,
		Logo:  LogoNone,
		Color: ColorDefault,
		Style: StyleFlat,
	}
}

// Merge returns o with every empty field filled from fallback.
func (o BadgeOptions) Merge(fallback BadgeOptions) BadgeOptions {
	if strings.TrimSpace(o.Label) == "" {
		o.Label = fallback.Label
	}
	if o.Logo == "" {
		o.Logo = fallback.Logo
	}
	if o.Color == "" {
		o.Color = fallback.Color
	}
	if o.Style == "" {
		o.Style = fallback.Style
	}
	return o
}

// effectiveLabel trims label and falls back to def when blank.
func effectiveLabel(label, def string) string {
	if l := strings.TrimSpace(label); l != "" {
		return l
	}
	return def
}

// unlessSentinel returns "" when v is empty or equals the sentinel.
func unlessSentinel(v, sentinel string) string {
	if v == sentinel {
		return ""
	}
	return v
}
