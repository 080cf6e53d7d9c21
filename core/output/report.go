package output

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"proposal-pricing/core/pricing"
)

// amountPlaces is the rounding applied to every money amount in a report.
const amountPlaces = 2

// Report is the rendering-ready view of one computation.
type Report struct {
	// ID references this proposal
	ID string

	// GeneratedAt is when the report was built
	GeneratedAt time.Time

	// Project titles the proposal
	Project string

	// Currency labels the amounts
	Currency string

	// Locale selects labels and number formatting
	Locale *Locale

	// Inputs are the parameters the prices were computed from
	Inputs pricing.Inputs

	// Rows are the tiers in presentation order
	Rows []ReportRow

	// Summary holds the aggregates
	Summary Summary
}

// ReportRow is one tier as shown to a reader.
type ReportRow struct {
	Key          pricing.TierKey `json:"key" yaml:"key"`
	Label        string          `json:"label" yaml:"label"`
	DurationDays float64         `json:"duration_days" yaml:"duration_days"`
	ClientPrice  decimal.Decimal `json:"client_price" yaml:"client_price"`
	NetPrice     decimal.Decimal `json:"net_price" yaml:"net_price"`
	Commission   decimal.Decimal `json:"commission" yaml:"commission"`
}

// Summary holds the report aggregates.
type Summary struct {
	AverageClientPrice decimal.Decimal `json:"average_client_price" yaml:"average_client_price"`
	MinClientPrice     decimal.Decimal `json:"min_client_price" yaml:"min_client_price"`
	MaxClientPrice     decimal.Decimal `json:"max_client_price" yaml:"max_client_price"`
	PlatformFeePercent float64         `json:"platform_fee_percent" yaml:"platform_fee_percent"`
}

// ReportOptions controls how a report is labelled.
type ReportOptions struct {
	Project  string
	Currency string
	Locale   *Locale

	// ID overrides the generated reference
	ID string

	// GeneratedAt overrides the current time
	GeneratedAt time.Time
}

func amount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(amountPlaces)
}

// NewReport builds the report for result, which must have been computed from inputs.
func NewReport(inputs pricing.Inputs, result *pricing.Result, opts ReportOptions) *Report {
	locale := opts.Locale
	if locale == nil {
		locale = english
	}
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	generated := opts.GeneratedAt
	if generated.IsZero() {
		generated = time.Now().UTC()
	}

	report := &Report{
		ID:          id,
		GeneratedAt: generated,
		Project:     opts.Project,
		Currency:    opts.Currency,
		Locale:      locale,
		Inputs:      inputs,
		Rows:        make([]ReportRow, 0, len(result.Tiers)),
		Summary: Summary{
			AverageClientPrice: amount(result.AverageClientPrice),
			MinClientPrice:     amount(result.ClientPriceRange.Min),
			MaxClientPrice:     amount(result.ClientPriceRange.Max),
			PlatformFeePercent: inputs.PlatformFee,
		},
	}

	for _, tier := range result.Tiers {
		client := amount(tier.ClientPrice)
		net := amount(tier.NetPrice)
		report.Rows = append(report.Rows, ReportRow{
			Key:          tier.Key,
			Label:        locale.TierLabel(tier.Key),
			DurationDays: tier.DurationDays,
			ClientPrice:  client,
			NetPrice:     net,
			Commission:   client.Sub(net),
		})
	}

	return report
}

// CommissionStatement states the platform commission included in client prices.
func (r *Report) CommissionStatement() string {
	return r.Locale.Sprintf(r.Locale.Text.Commission, r.Locale.Number(r.Summary.PlatformFeePercent))
}

// Money formats an amount with the report's locale and currency label.
func (r *Report) Money(d decimal.Decimal) string {
	s := r.Locale.Amount(d)
	if r.Currency != "" {
		s += " " + r.Currency
	}
	return s
}
