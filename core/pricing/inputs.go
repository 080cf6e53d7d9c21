// Package pricing computes tiered price/duration proposals.
//
// A single Inputs value is turned into seven tiers, each with a duration
// and two prices: the net price the provider keeps and the client price
// with the platform commission added on top. Compute is pure and safe for
// concurrent use.
package pricing

import (
	"errors"
	"fmt"
	"math"
)

// Inputs are the business parameters of one quote.
type Inputs struct {
	// RatePerDay is the provider's daily rate
	RatePerDay float64 `json:"rate_per_day" yaml:"rate_per_day"`

	// BaseDays is the balanced delivery duration
	BaseDays float64 `json:"base_days" yaml:"base_days"`

	// Complexity is the effort multiplier (1.0 = baseline)
	Complexity float64 `json:"complexity" yaml:"complexity"`

	// Urgency is the schedule pressure multiplier (1.0 = baseline)
	Urgency float64 `json:"urgency" yaml:"urgency"`

	// ClientValue is the client importance multiplier (1.0 = baseline)
	ClientValue float64 `json:"client_value" yaml:"client_value"`

	// Confidence is the provider's motivation; it discounts or premiums slow tiers
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// PlatformFee is the commission percentage in [0, 100)
	PlatformFee float64 `json:"platform_fee" yaml:"platform_fee"`
}

// DefaultInputs returns the neutral multipliers with no rate, duration or fee.
func DefaultInputs() Inputs {
	return Inputs{
		Complexity:  1.0,
		Urgency:     1.0,
		ClientValue: 1.0,
		Confidence:  1.0,
	}
}

// Field names one of the seven inputs.
type Field string

const (
	FieldRatePerDay  Field = "rate_per_day"
	FieldBaseDays    Field = "base_days"
	FieldComplexity  Field = "complexity"
	FieldUrgency     Field = "urgency"
	FieldClientValue Field = "client_value"
	FieldConfidence  Field = "confidence"
	FieldPlatformFee Field = "platform_fee"
)

// Fields lists the inputs in the order they are validated and collected.
func Fields() []Field {
	return []Field{
		FieldRatePerDay,
		FieldBaseDays,
		FieldComplexity,
		FieldUrgency,
		FieldClientValue,
		FieldConfidence,
		FieldPlatformFee,
	}
}

// Get returns the value of field f.
func (in Inputs) Get(f Field) (float64, bool) {
	switch f {
	case FieldRatePerDay:
		return in.RatePerDay, true
	case FieldBaseDays:
		return in.BaseDays, true
	case FieldComplexity:
		return in.Complexity, true
	case FieldUrgency:
		return in.Urgency, true
	case FieldClientValue:
		return in.ClientValue, true
	case FieldConfidence:
		return in.Confidence, true
	case FieldPlatformFee:
		return in.PlatformFee, true
	}
	return 0, false
}

// Set returns a copy of in with field f replaced by v.
func (in Inputs) Set(f Field, v float64) (Inputs, bool) {
	switch f {
	case FieldRatePerDay:
		in.RatePerDay = v
	case FieldBaseDays:
		in.BaseDays = v
	case FieldComplexity:
		in.Complexity = v
	case FieldUrgency:
		in.Urgency = v
	case FieldClientValue:
		in.ClientValue = v
	case FieldConfidence:
		in.Confidence = v
	case FieldPlatformFee:
		in.PlatformFee = v
	default:
		return in, false
	}
	return in, true
}

// ValidationError reports an input outside its domain.
type ValidationError struct {
	Field  Field
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateField checks a single value against the domain of field f.
func ValidateField(f Field, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: f, Value: v, Reason: "must be a finite number"}
	}

	switch f {
	case FieldRatePerDay, FieldBaseDays, FieldComplexity, FieldUrgency, FieldClientValue:
		if v <= 0 {
			return &ValidationError{Field: f, Value: v, Reason: "must be greater than 0"}
		}
	case FieldConfidence:
		if v < 0 {
			return &ValidationError{Field: f, Value: v, Reason: "must not be negative"}
		}
	case FieldPlatformFee:
		if v < 0 || v >= 100 {
			return &ValidationError{Field: f, Value: v, Reason: "must be at least 0 and below 100"}
		}
	default:
		return &ValidationError{Field: f, Value: v, Reason: "unknown field"}
	}
	return nil
}

// Validate checks every field in Fields order and returns the first violation.
func (in Inputs) Validate() error {
	for _, f := range Fields() {
		v, _ := in.Get(f)
		if err := ValidateField(f, v); err != nil {
			return err
		}
	}
	return nil
}
