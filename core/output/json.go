package output

import (
	"encoding/json"
	"io"
	"time"

	"proposal-pricing/core/pricing"
)

// JSONFormatter renders a report as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format() Format { return FormatJSON }

func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(report))
}

// document is the machine-readable shape shared by JSON and YAML.
type document struct {
	ID          string         `json:"id" yaml:"id"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Project     string         `json:"project,omitempty" yaml:"project,omitempty"`
	Currency    string         `json:"currency,omitempty" yaml:"currency,omitempty"`
	Locale      string         `json:"locale" yaml:"locale"`
	Inputs      pricing.Inputs `json:"inputs" yaml:"inputs"`
	Tiers       []ReportRow    `json:"tiers" yaml:"tiers"`
	Summary     Summary        `json:"summary" yaml:"summary"`
	Commission  string         `json:"commission_statement" yaml:"commission_statement"`
}

func newDocument(r *Report) document {
	return document{
		ID:          r.ID,
		GeneratedAt: r.GeneratedAt,
		Project:     r.Project,
		Currency:    r.Currency,
		Locale:      r.Locale.Code,
		Inputs:      r.Inputs,
		Tiers:       r.Rows,
		Summary:     r.Summary,
		Commission:  r.CommissionStatement(),
	}
}
