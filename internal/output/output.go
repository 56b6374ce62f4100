// Package output provides colored terminal output for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/jpalmerr/pullbadge"
)

// Writer prints tone-colored lines.
type Writer struct {
	mu           sync.Mutex
	out          io.Writer
	successColor *color.Color
	infoColor    *color.Color
	errorColor   *color.Color
	headingColor *color.Color
	mutedColor   *color.Color
}

// NewWriter creates a Writer. Color is disabled when noColor is true or
// when color.NoColor says the terminal does not support it.
func NewWriter(out io.Writer, noColor bool) *Writer {
	w := &Writer{
		out:          out,
		successColor: color.New(color.FgGreen, color.Bold),
		infoColor:    color.New(color.FgCyan),
		errorColor:   color.New(color.FgRed, color.Bold),
		headingColor: color.New(color.Bold, color.Underline),
		mutedColor:   color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{w.successColor, w.infoColor, w.errorColor, w.headingColor, w.mutedColor} {
			c.DisableColor()
		}
	}
	return w
}

// Tone prints msg in the color for tone.
func (w *Writer) Tone(tone pullbadge.Tone, msg string) {
	switch tone {
	case pullbadge.ToneSuccess:
		w.line(w.successColor, "✓ "+msg)
	case pullbadge.ToneError:
		w.line(w.errorColor, "✗ "+msg)
	default:
		w.line(w.infoColor, "• "+msg)
	}
}

// Heading prints a section heading.
func (w *Writer) Heading(msg string) {
	w.line(w.headingColor, msg)
}

// Muted prints a de-emphasized line.
func (w *Writer) Muted(msg string) {
	w.line(w.mutedColor, msg)
}

// Plain prints msg without color.
func (w *Writer) Plain(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintln(w.out, msg)
}

// Plainf prints a formatted message without color.
func (w *Writer) Plainf(format string, args ...interface{}) {
	w.Plain(fmt.Sprintf(format, args...))
}

func (w *Writer) line(c *color.Color, msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = c.Fprintln(w.out, msg)
}

// Format selects how artifacts are written.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatMarkdown, FormatHTML, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text, markdown, html or json)", s)
	}
}

// NamedArtifacts pairs artifacts with the repository and package they
// were built for.
type NamedArtifacts struct {
	Repository string              `json:"repository"`
	Package    string              `json:"package"`
	Artifacts  pullbadge.Artifacts `json:"artifacts"`
}

// WriteArtifacts writes every entry in the given format.
//
// text prints all five artifacts with headings, markdown and html print one
// embed per entry, json prints an array.
func (w *Writer) WriteArtifacts(entries []NamedArtifacts, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encode artifacts: %w", err)
		}
		w.Plain(string(data))
	case FormatMarkdown:
		for _, e := range entries {
			w.Plain(e.Artifacts.JSONMarkdown)
		}
	case FormatHTML:
		for _, e := range entries {
			w.Plain(e.Artifacts.JSONHTML)
		}
	default:
		for i, e := range entries {
			if i > 0 {
				w.Plain("")
			}
			w.Heading(e.Repository + " (" + e.Package + ")")
			for _, f := range pullbadge.Fields() {
				w.Muted(f.Title() + ":")
				w.Plain("  " + e.Artifacts.Get(f))
			}
		}
	}
	return nil
}
