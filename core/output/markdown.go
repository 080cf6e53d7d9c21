package output

import (
	"fmt"
	"io"
	"strings"

	"proposal-pricing/core/pricing"
	"proposal-pricing/core/ui"
)

// MarkdownFormatter renders a report as GitHub-flavored markdown.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	loc := report.Locale
	text := loc.Text
	var b strings.Builder
	tables := ui.NewWriter(&b, true)

	title := text.Title
	if report.Project != "" {
		title += ": " + report.Project
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	client := tables.NewTable(text.TierHeader, text.DurationHeader, text.ClientHeader).AlignRight(1, 2)
	for _, row := range report.Rows {
		client.AddRow(row.Label, loc.Days(row.DurationDays), report.Money(row.ClientPrice))
	}
	fmt.Fprintln(&b, client.Markdown())

	fmt.Fprintf(&b, "\n- **%s:** %s\n", text.Average, report.Money(report.Summary.AverageClientPrice))
	fmt.Fprintf(&b, "- **%s:** %s %s %s\n", text.Range,
		report.Money(report.Summary.MinClientPrice), text.RangeTo, report.Money(report.Summary.MaxClientPrice))
	fmt.Fprintf(&b, "\n> %s\n", report.CommissionStatement())

	fmt.Fprintf(&b, "\n## %s\n\n", text.ParamsTitle)
	for _, field := range pricing.Fields() {
		v, _ := report.Inputs.Get(field)
		fmt.Fprintf(&b, "- %s: %s\n", loc.ParamLabel(field), loc.Number(v))
	}

	fmt.Fprintf(&b, "\n## %s\n\n", text.InternalTitle)
	internal := tables.NewTable(text.TierHeader, text.DurationHeader, text.NetHeader, text.CommissionHeader).AlignRight(1, 2, 3)
	for _, row := range report.Rows {
		internal.AddRow(row.Label, loc.Days(row.DurationDays), report.Money(row.NetPrice), report.Money(row.Commission))
	}
	fmt.Fprintln(&b, internal.Markdown())

	fmt.Fprintf(&b, "\n---\n_%s · %s %s_\n", text.FooterNote, text.ReferenceLabel, report.ID)

	_, err := io.WriteString(w, b.String())
	return err
}
