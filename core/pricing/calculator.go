package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when valid inputs produce a price beyond the float64 range.
var ErrOverflow = errors.New("computed price is out of range")

// Tier is one priced proposal variant.
type Tier struct {
	Key          TierKey `json:"key" yaml:"key"`
	DurationDays float64 `json:"duration_days" yaml:"duration_days"`
	NetPrice     float64 `json:"net_price" yaml:"net_price"`
	ClientPrice  float64 `json:"client_price" yaml:"client_price"`
}

// Commission is the platform's share of the client price.
func (t Tier) Commission() float64 {
	return t.ClientPrice - t.NetPrice
}

// PriceRange is the lowest and highest client price across tiers.
type PriceRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Result is the outcome of one computation.
type Result struct {
	// Tiers are in policy (presentation) order
	Tiers []Tier `json:"tiers" yaml:"tiers"`

	// AverageClientPrice is the arithmetic mean of the client prices
	AverageClientPrice float64 `json:"average_client_price" yaml:"average_client_price"`

	// ClientPriceRange spans the client prices
	ClientPriceRange PriceRange `json:"client_price_range" yaml:"client_price_range"`
}

// Tier looks up a tier by key.
func (r *Result) Tier(key TierKey) (Tier, bool) {
	for _, t := range r.Tiers {
		if t.Key == key {
			return t, true
		}
	}
	return Tier{}, false
}

// Calculator prices inputs against a fixed tier table.
type Calculator struct {
	policy []TierPolicy
}

// NewCalculator creates a calculator for the given tier table.
func NewCalculator(policy []TierPolicy) (*Calculator, error) {
	if err := validatePolicy(policy); err != nil {
		return nil, err
	}
	p := make([]TierPolicy, len(policy))
	copy(p, policy)
	return &Calculator{policy: p}, nil
}

// Policy returns a copy of the calculator's tier table.
func (c *Calculator) Policy() []TierPolicy {
	p := make([]TierPolicy, len(c.policy))
	copy(p, c.policy)
	return p
}

var defaultCalculator = &Calculator{policy: DefaultPolicy()}

// Default returns the calculator for DefaultPolicy.
func Default() *Calculator {
	return defaultCalculator
}

// Compute prices in with the default tier table.
func Compute(in Inputs) (*Result, error) {
	return defaultCalculator.Compute(in)
}

// FairPrice is the net price of the balanced tier: the day rate over the base
// duration, scaled by effort (complexity × urgency) and by value (the mean of
// client value and confidence).
func FairPrice(in Inputs) float64 {
	basePrice := in.RatePerDay * in.BaseDays
	effortFactor := in.Complexity * in.Urgency
	valueFactor := (in.ClientValue + in.Confidence) / 2
	return basePrice * effortFactor * valueFactor
}

// ClientPrice grosses a net price up so that after the platform keeps
// feePercent of the client price, exactly net remains.
func ClientPrice(net, feePercent float64) float64 {
	if feePercent > 0 {
		return net / (1 - feePercent/100)
	}
	return net
}

// Compute validates in and prices every tier. A validation failure returns a
// *ValidationError and no result; prices that overflow return ErrOverflow.
func (c *Calculator) Compute(in Inputs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	fair := FairPrice(in)
	if math.IsInf(fair, 0) {
		return nil, fmt.Errorf("%w: fair price", ErrOverflow)
	}
	result := &Result{Tiers: make([]Tier, 0, len(c.policy))}

	var sum float64
	for i, p := range c.policy {
		net := p.netPrice(fair, in)
		tier := Tier{
			Key:          p.Key,
			DurationDays: in.BaseDays * p.DurationRatio,
			NetPrice:     net,
			ClientPrice:  ClientPrice(net, in.PlatformFee),
		}
		if math.IsInf(tier.ClientPrice, 0) {
			return nil, fmt.Errorf("%w: %s tier", ErrOverflow, p.Key)
		}
		result.Tiers = append(result.Tiers, tier)

		sum += tier.ClientPrice
		if i == 0 || tier.ClientPrice < result.ClientPriceRange.Min {
			result.ClientPriceRange.Min = tier.ClientPrice
		}
		if i == 0 || tier.ClientPrice > result.ClientPriceRange.Max {
			result.ClientPriceRange.Max = tier.ClientPrice
		}
	}
	if math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: average client price", ErrOverflow)
	}
	result.AverageClientPrice = sum / float64(len(result.Tiers))

	return result, nil
}
