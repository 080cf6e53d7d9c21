// Package cmd - tiers command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"proposal-pricing/core/output"
	"proposal-pricing/core/pricing"
	"proposal-pricing/core/ui"
)

func newTiersCmd(root *rootOptions) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Show the tier pricing policy",
		Long: `List the seven tiers with their duration ratio and price rule.

"fair" is the balanced price: rate × days × complexity × urgency ×
(client value + confidence) / 2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := root.cfg.Output.Locale
			if locale != "" {
				code = locale
			}
			loc, err := output.LookupLocale(code)
			if err != nil {
				return err
			}

			w := ui.NewWriter(cmd.OutOrStdout(), root.cfg.Output.NoColor)
			t := w.NewTable("Key", loc.Text.TierHeader, loc.Text.RatioHeader, loc.Text.RuleHeader).AlignRight(2)
			for _, p := range pricing.Default().Policy() {
				t.AddRow(string(p.Key), loc.TierLabel(p.Key), fmt.Sprintf("× %g", p.DurationRatio), p.Rule())
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "label language (en, fa)")
	return cmd
}
