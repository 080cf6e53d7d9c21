// Package cmd - quote command
package cmd

import (
	"bytes"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"proposal-pricing/core/display"
	"proposal-pricing/core/input"
	"proposal-pricing/core/output"
	"proposal-pricing/core/pricing"
	"proposal-pricing/core/ui"
	"proposal-pricing/internal/logging"
)

// inputFlags maps each pricing input to its command-line flag
var inputFlags = []struct {
	field pricing.Field
	name  string
	usage string
}{
	{pricing.FieldRatePerDay, "rate", "daily rate"},
	{pricing.FieldBaseDays, "days", "base project duration in days"},
	{pricing.FieldComplexity, "complexity", "complexity factor (1 = normal)"},
	{pricing.FieldUrgency, "urgency", "urgency factor (1 = normal)"},
	{pricing.FieldClientValue, "client-value", "client value factor (1 = normal)"},
	{pricing.FieldConfidence, "confidence", "your motivation (1 = neutral, <1 = low)"},
	{pricing.FieldPlatformFee, "fee", "platform commission percentage, 0 to below 100"},
}

type quoteOptions struct {
	*rootOptions

	values      map[pricing.Field]*float64
	inputsFile  string
	interactive bool
	format      string
	locale      string
	currency    string
	project     string
	outputPath  string
	open        bool
}

func newQuoteCmd(root *rootOptions) *cobra.Command {
	o := &quoteOptions{
		rootOptions: root,
		values:      make(map[pricing.Field]*float64),
	}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute tiered price proposals",
		Long: `Compute seven delivery tiers from the pricing inputs and render the
client proposal together with the internal net-income table.

Inputs are merged in order: config defaults, --inputs file, flags, and
finally interactive answers (-i), where each prompt offers the merged
value as its default. Prompts are written to stderr so that stdout
carries only the report.

Examples:
  proposal-pricing quote --rate 1000000 --days 10
  proposal-pricing quote --rate 450 --days 12 --urgency 1.5 --fee 20 --currency USD
  proposal-pricing quote --inputs proposal.yaml --format markdown -o proposal.md
  proposal-pricing quote --inputs proposal.hcl --open`,
		Args: cobra.NoArgs,
		RunE: o.run,
	}

	for _, f := range inputFlags {
		v := new(float64)
		o.values[f.field] = v
		cmd.Flags().Float64Var(v, f.name, 0, f.usage)
	}
	cmd.Flags().StringVar(&o.inputsFile, "inputs", "", "input file (.hcl, .yaml, .json)")
	cmd.Flags().BoolVarP(&o.interactive, "interactive", "i", false, "prompt for every input")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format ("+formatNames()+")")
	cmd.Flags().StringVar(&o.locale, "locale", "", "report language (en, fa)")
	cmd.Flags().StringVar(&o.currency, "currency", "", "currency label for amounts")
	cmd.Flags().StringVar(&o.project, "project", "", "project title shown on the proposal")
	cmd.Flags().StringVarP(&o.outputPath, "output", "o", "", "write the report to this file")
	cmd.Flags().BoolVar(&o.open, "open", false, "open the report in the browser")

	return cmd
}

// formatNames lists the registered output formats
func formatNames() string {
	var names []string
	for _, f := range output.DefaultRegistry().GetAll() {
		names = append(names, string(f.Format()))
	}
	return strings.Join(names, ", ")
}

func (o *quoteOptions) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	startTime := time.Now()
	cfg := o.cfg

	in := cfg.Defaults
	project := o.project
	currency := cfg.Output.Currency

	if o.inputsFile != "" {
		doc, err := input.LoadFile(o.inputsFile, in)
		if err != nil {
			return err
		}
		in = doc.Inputs
		if project == "" {
			project = doc.Project
		}
		if doc.Currency != "" {
			currency = doc.Currency
		}
	}

	for _, f := range inputFlags {
		if cmd.Flags().Changed(f.name) {
			in, _ = in.Set(f.field, *o.values[f.field])
		}
	}

	if o.interactive {
		var err error
		in, err = input.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()).Collect(ctx, in)
		if err != nil {
			return err
		}
	}

	result, err := pricing.Compute(in)
	if err != nil {
		logging.Debug("Inputs rejected", zap.Error(err))
		return err
	}

	if cmd.Flags().Changed("currency") {
		currency = o.currency
	}
	openBrowser := o.open || (cfg.Output.OpenBrowser && o.outputPath == "")

	formatName := cfg.Output.Format
	if o.format != "" {
		formatName = o.format
	} else if o.open {
		formatName = string(output.FormatHTML)
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	localeCode := cfg.Output.Locale
	if o.locale != "" {
		localeCode = o.locale
	}
	locale, err := output.LookupLocale(localeCode)
	if err != nil {
		return err
	}

	report := output.NewReport(in, result, output.ReportOptions{
		Project:  project,
		Currency: currency,
		Locale:   locale,
	})

	registry := output.DefaultRegistry()
	noColor := cfg.Output.NoColor || o.outputPath != "" || openBrowser
	registry.Replace(output.NewCLIFormatter(noColor))

	var buf bytes.Buffer
	if err := registry.Render(&buf, format, report); err != nil {
		return err
	}

	status := ui.NewWriter(cmd.ErrOrStderr(), cfg.Output.NoColor)

	var target display.Display
	switch {
	case o.outputPath != "":
		if o.open {
			status.Warning("--open ignored: the report goes to %s", o.outputPath)
		}
		target = display.NewFile(o.outputPath)
	case openBrowser:
		status.Info("Opening the proposal in your browser")
		target = o.newBrowser()
	default:
		target = display.NewWriter(cmd.OutOrStdout())
	}
	if err := target.Show(ctx, "proposal"+format.Extension(), buf.Bytes()); err != nil {
		return err
	}

	logging.Debug("Quote computed",
		zap.String("report_id", report.ID),
		zap.String("format", string(format)),
		zap.String("locale", locale.Code),
		zap.Float64("average_client_price", result.AverageClientPrice),
		zap.Duration("duration", time.Since(startTime)))

	if o.outputPath != "" {
		status.Success("Proposal written to %s", o.outputPath)
	}
	return nil
}
