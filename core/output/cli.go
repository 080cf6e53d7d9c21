package output

import (
	"io"

	"proposal-pricing/core/pricing"
	"proposal-pricing/core/ui"
)

// CLIFormatter renders a report as styled terminal tables.
type CLIFormatter struct {
	noColor bool
}

// NewCLIFormatter creates a terminal formatter.
func NewCLIFormatter(noColor bool) *CLIFormatter {
	return &CLIFormatter{noColor: noColor}
}

func (f *CLIFormatter) Format() Format { return FormatCLI }

func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	out := ui.NewWriter(w, f.noColor)
	loc := report.Locale
	text := loc.Text

	out.Header(text.Title)
	if report.Project != "" {
		out.Println("%s: %s", text.ProjectLabel, report.Project)
	}
	out.Println("%s: %s", text.ReferenceLabel, report.ID)
	out.Println("")

	client := out.NewTable(text.TierHeader, text.DurationHeader, text.ClientHeader).AlignRight(1, 2)
	for _, row := range report.Rows {
		client.AddRow(row.Label, loc.Days(row.DurationDays), report.Money(row.ClientPrice))
	}
	client.Render()

	box := out.NewSummaryBox("")
	box.Add(text.Average, report.Money(report.Summary.AverageClientPrice))
	box.Add(text.Range, report.Money(report.Summary.MinClientPrice)+" "+text.RangeTo+" "+report.Money(report.Summary.MaxClientPrice))
	box.Note = report.CommissionStatement()
	box.Render()

	out.Println("")
	out.SubHeader(text.ParamsTitle)
	params := out.NewTable("", "").AlignRight(1)
	for _, field := range pricing.Fields() {
		v, _ := report.Inputs.Get(field)
		params.AddRow(loc.ParamLabel(field), loc.Number(v))
	}
	params.Render()

	out.Println("")
	out.SubHeader(text.InternalTitle)
	internal := out.NewTable(text.TierHeader, text.DurationHeader, text.NetHeader, text.CommissionHeader).AlignRight(1, 2, 3)
	for _, row := range report.Rows {
		internal.AddRow(row.Label, loc.Days(row.DurationDays), report.Money(row.NetPrice), report.Money(row.Commission))
	}
	internal.Render()

	return nil
}
