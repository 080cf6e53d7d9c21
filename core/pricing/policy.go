package pricing

import "fmt"

// TierKey identifies a tier independently of any display language.
type TierKey string

const (
	TierEconomy   TierKey = "economy"
	TierExtended  TierKey = "extended"
	TierLongTerm  TierKey = "long_term"
	TierBase      TierKey = "base"
	TierExpedited TierKey = "expedited"
	TierPremium   TierKey = "premium"
	TierExecutive TierKey = "executive"
)

// TierPolicy is one row of the tier table.
//
// The tier's net price is
//
//	fair * (BaseMultiplier + (urgency-1)*UrgencySlope)
//
// further multiplied by confidence when ScaleByConfidence is set.
type TierPolicy struct {
	Key               TierKey `json:"key" yaml:"key"`
	DurationRatio     float64 `json:"duration_ratio" yaml:"duration_ratio"`
	BaseMultiplier    float64 `json:"base_multiplier" yaml:"base_multiplier"`
	UrgencySlope      float64 `json:"urgency_slope" yaml:"urgency_slope"`
	ScaleByConfidence bool    `json:"scale_by_confidence" yaml:"scale_by_confidence"`
}

// multiplier returns the factor applied to the fair price.
func (p TierPolicy) multiplier(in Inputs) float64 {
	return p.BaseMultiplier + (in.Urgency-1)*p.UrgencySlope
}

// netPrice applies the policy to the fair price.
func (p TierPolicy) netPrice(fair float64, in Inputs) float64 {
	net := fair * p.multiplier(in)
	if p.ScaleByConfidence {
		net *= in.Confidence
	}
	return net
}

// Rule describes the price formula in terms of the fair price.
func (p TierPolicy) Rule() string {
	var rule string
	switch {
	case p.UrgencySlope != 0:
		rule = fmt.Sprintf("fair × (%g + (urgency-1) × %g)", p.BaseMultiplier, p.UrgencySlope)
	case p.BaseMultiplier == 1:
		rule = "fair"
	default:
		rule = fmt.Sprintf("fair × %g", p.BaseMultiplier)
	}
	if p.ScaleByConfidence {
		rule += " × confidence"
	}
	return rule
}

// DefaultPolicy returns the standard seven-tier table in presentation order:
// slower tiers are discounted by confidence, faster tiers carry an urgency premium.
func DefaultPolicy() []TierPolicy {
	return []TierPolicy{
		{Key: TierEconomy, DurationRatio: 1.25, BaseMultiplier: 0.9, ScaleByConfidence: true},
		{Key: TierExtended, DurationRatio: 1.5, BaseMultiplier: 0.8, ScaleByConfidence: true},
		{Key: TierLongTerm, DurationRatio: 2.0, BaseMultiplier: 0.7, ScaleByConfidence: true},
		{Key: TierBase, DurationRatio: 1.0, BaseMultiplier: 1.0},
		{Key: TierExpedited, DurationRatio: 0.85, BaseMultiplier: 1.15, UrgencySlope: 0.2},
		{Key: TierPremium, DurationRatio: 0.7, BaseMultiplier: 1.35, UrgencySlope: 0.3},
		{Key: TierExecutive, DurationRatio: 0.5, BaseMultiplier: 1.6, UrgencySlope: 0.5},
	}
}

func validatePolicy(policy []TierPolicy) error {
	if len(policy) == 0 {
		return fmt.Errorf("tier policy is empty")
	}
	seen := make(map[TierKey]bool, len(policy))
	for i, p := range policy {
		if p.Key == "" {
			return fmt.Errorf("tier %d has no key", i)
		}
		if seen[p.Key] {
			return fmt.Errorf("duplicate tier key %q", p.Key)
		}
		seen[p.Key] = true
		if !(p.DurationRatio > 0) {
			return fmt.Errorf("tier %q: duration ratio must be positive", p.Key)
		}
	}
	return nil
}
