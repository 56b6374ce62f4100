package pullbadge

import "fmt"

// Artifacts holds the derived badge outputs.
//
// The five strings are always produced together by [Builder.Build]. A zero
// Artifacts means nothing has been built yet.
type Artifacts struct {
	JSONURL        string `json:"json_url"`
	JSONMarkdown   string `json:"json_markdown"`
	JSONHTML       string `json:"json_html"`
	DirectURL      string `json:"direct_url"`
	DirectMarkdown string `json:"direct_markdown"`
}

// IsEmpty reports whether no artifact is set.
func (a Artifacts) IsEmpty() bool {
	return a == Artifacts{}
}

// Field names one of the five artifacts. It doubles as the copy target id
// in the interactive form.
type Field string

const (
	FieldJSONURL        Field = "json-url"
	FieldJSONMarkdown   Field = "json-markdown"
	FieldJSONHTML       Field = "json-html"
	FieldDirectURL      Field = "direct-url"
	FieldDirectMarkdown Field = "direct-markdown"
)

// Fields lists every artifact field in display order.
func Fields() []Field {
	return []Field{
		FieldJSONURL,
		FieldJSONMarkdown,
		FieldJSONHTML,
		FieldDirectURL,
		FieldDirectMarkdown,
	}
}

// ParseField resolves a copy target id.
func ParseField(s string) (Field, error) {
	for _, f := range Fields() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// Get returns the artifact named by f, or "" for an unknown field.
func (a Artifacts) Get(f Field) string {
	switch f {
	case FieldJSONURL:
		return a.JSONURL
	case FieldJSONMarkdown:
		return a.JSONMarkdown
	case FieldJSONHTML:
		return a.JSONHTML
	case FieldDirectURL:
		return a.DirectURL
	case FieldDirectMarkdown:
		return a.DirectMarkdown
	default:
		return ""
	}
}

// Title returns a human-readable heading for f.
func (f Field) Title() string {
	switch f {
	case FieldJSONURL:
		return "Badge URL"
	case FieldJSONMarkdown:
		return "Markdown"
	case FieldJSONHTML:
		return "HTML"
	case FieldDirectURL:
		return "Direct shield URL"
	case FieldDirectMarkdown:
		return "Direct shield markdown"
	default:
		return string(f)
	}
}
