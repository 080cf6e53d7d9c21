package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"proposal-pricing/core/pricing"
	apperrors "proposal-pricing/internal/errors"
	"proposal-pricing/internal/logging"
)

// DefaultMaxAttempts is how many answers a field gets before Collect gives up.
const DefaultMaxAttempts = 3

var prompts = map[pricing.Field]string{
	pricing.FieldRatePerDay:  "Base daily rate (per day)",
	pricing.FieldBaseDays:    "Base project duration (days)",
	pricing.FieldComplexity:  "Project complexity (1 = normal, >1 = harder)",
	pricing.FieldUrgency:     "Urgency level (1 = normal, >1 = rush)",
	pricing.FieldClientValue: "Client value (1 = normal, >1 = VIP)",
	pricing.FieldConfidence:  "Your motivation/interest (1 = neutral, <1 = low)",
	pricing.FieldPlatformFee: "Platform commission percentage (e.g. 15)",
}

// Prompter asks an operator for each pricing input on a line-oriented terminal.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	MaxAttempts int
}

// NewPrompter creates a prompter reading answers from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(r),
		out:         w,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Collect asks for every field in pricing.Fields order. An empty answer keeps
// the value from defaults when that value is itself valid. Invalid answers are
// explained and asked again; after MaxAttempts failures the last error is
// returned.
func (p *Prompter) Collect(ctx context.Context, defaults pricing.Inputs) (pricing.Inputs, error) {
	in := defaults
	for _, field := range pricing.Fields() {
		def, _ := defaults.Get(field)
		v, err := p.ask(ctx, field, def)
		if err != nil {
			return pricing.Inputs{}, err
		}
		in, _ = in.Set(field, v)
	}
	return in, nil
}

func (p *Prompter) ask(ctx context.Context, field pricing.Field, def float64) (float64, error) {
	hasDefault := pricing.ValidateField(field, def) == nil
	label := prompts[field]
	if label == "" {
		label = string(field)
	}

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if hasDefault {
			fmt.Fprintf(p.out, "%s [%s]: ", label, strconv.FormatFloat(def, 'f', -1, 64))
		} else {
			fmt.Fprintf(p.out, "%s: ", label)
		}

		line, readErr := p.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if readErr != nil && (readErr != io.EOF || answer == "") {
			if readErr == io.EOF {
				return 0, apperrors.Newf(apperrors.TypeInput, "input ended before %s was given", field)
			}
			return 0, apperrors.Wrap(apperrors.TypeInput, "failed to read answer", readErr)
		}

		if answer == "" && hasDefault {
			return def, nil
		}

		v, err := parseNumber(field, answer)
		if err == nil {
			err = pricing.ValidateField(field, v)
		}
		if err == nil {
			return v, nil
		}

		lastErr = err
		logging.Debug("Rejected answer", zap.String("field", string(field)), zap.String("answer", answer), zap.Error(err))
		fmt.Fprintf(p.out, "  %v\n", err)
	}

	return 0, lastErr
}

// parseNumber accepts plain numbers, thousands separators and a trailing %.
func parseNumber(field pricing.Field, answer string) (float64, error) {
	s := strings.ReplaceAll(answer, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, apperrors.Newf(apperrors.TypeInput, "%s: %q is not a number", field, answer)
	}
	return v, nil
}
