// Package output renders pricing results as client proposals.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"sort"
	"strings"

	apperrors "proposal-pricing/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"

	// FormatHTML is a standalone HTML proposal
	FormatHTML Format = "html"

	// FormatMarkdown is a markdown proposal
	FormatMarkdown Format = "markdown"
)

// Extension is the file extension used when a report is written to disk.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	case FormatHTML:
		return ".html"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// ParseFormat validates a format name. "md" and "yml" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCLI, FormatJSON, FormatYAML, FormatHTML, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatCLI, nil
	}
	return "", apperrors.Newf(apperrors.TypeConfig, "unsupported output format %q", s).
		WithContext("format", s)
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry returns a registry holding every built-in formatter
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, f := range []Formatter{
		NewCLIFormatter(false),
		&JSONFormatter{},
		&YAMLFormatter{},
		&HTMLFormatter{},
		&MarkdownFormatter{},
	} {
		_ = r.Register(f)
	}
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) error {
	if _, exists := r.formatters[formatter.Format()]; exists {
		return apperrors.Newf(apperrors.TypeInternal, "formatter already registered for %s", formatter.Format())
	}
	r.formatters[formatter.Format()] = formatter
	return nil
}

// Replace registers formatter, overriding any existing one for its format
func (r *Registry) Replace(formatter Formatter) {
	r.formatters[formatter.Format()] = formatter
}

// GetFormatter returns a formatter for a format type
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// GetAll returns all registered formatters sorted by format name
func (r *Registry) GetAll() []Formatter {
	all := make([]Formatter, 0, len(r.formatters))
	for _, f := range r.formatters {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Format() < all[j].Format() })
	return all
}

// Render looks up the formatter for format and renders report with it
func (r *Registry) Render(w io.Writer, format Format, report *Report) error {
	f, ok := r.GetFormatter(format)
	if !ok {
		return apperrors.Newf(apperrors.TypeRender, "no formatter registered for %s", format)
	}
	if err := f.Render(w, report); err != nil {
		return apperrors.Render("failed to render "+string(format)+" report", err)
	}
	return nil
}
