package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"proposal-pricing/core/pricing"
	apperrors "proposal-pricing/internal/errors"
)

func testReport(t *testing.T, localeCode string) *Report {
	t.Helper()

	in := pricing.Inputs{
		RatePerDay:  1_000_000,
		BaseDays:    10,
		Complexity:  1,
		Urgency:     1,
		ClientValue: 1,
		Confidence:  1,
		PlatformFee: 20,
	}
	result, err := pricing.Compute(in)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	loc, err := LookupLocale(localeCode)
	if err != nil {
		t.Fatalf("LookupLocale failed: %v", err)
	}
	return NewReport(in, result, ReportOptions{
		Project:     "Website <redesign>",
		Currency:    "IRT",
		Locale:      loc,
		ID:          "3f1c9a52-0000-4000-8000-000000000001",
		GeneratedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	})
}

func render(t *testing.T, f Formatter, r *Report) string {
	t.Helper()
	var buf bytes.Buffer
	if err := f.Render(&buf, r); err != nil {
		t.Fatalf("%s Render failed: %v", f.Format(), err)
	}
	return buf.String()
}

func TestNewReportRoundsAmounts(t *testing.T) {
	r := testReport(t, "en")

	if len(r.Rows) != 7 {
		t.Fatalf("got %d rows, want 7", len(r.Rows))
	}
	base := r.Rows[3]
	if base.Key != pricing.TierBase {
		t.Fatalf("row 3 key = %s, want base", base.Key)
	}
	if !base.ClientPrice.Equal(decimal.NewFromInt(12_500_000)) {
		t.Errorf("base client = %s, want 12500000", base.ClientPrice)
	}
	if !base.NetPrice.Equal(decimal.NewFromInt(10_000_000)) {
		t.Errorf("base net = %s, want 10000000", base.NetPrice)
	}
	if !base.Commission.Equal(decimal.NewFromInt(2_500_000)) {
		t.Errorf("base commission = %s, want 2500000", base.Commission)
	}
	if base.Label != "Base (balanced time and cost)" {
		t.Errorf("base label = %q", base.Label)
	}
	if !r.Summary.MinClientPrice.Equal(decimal.NewFromInt(8_750_000)) || !r.Summary.MaxClientPrice.Equal(decimal.NewFromInt(20_000_000)) {
		t.Errorf("range = %s..%s, want 8750000..20000000", r.Summary.MinClientPrice, r.Summary.MaxClientPrice)
	}
	if !r.Summary.AverageClientPrice.Equal(decimal.RequireFromString("13392857.14")) {
		t.Errorf("average = %s, want 13392857.14", r.Summary.AverageClientPrice)
	}
}

func TestNewReportDefaults(t *testing.T) {
	result, err := pricing.Compute(pricing.Inputs{RatePerDay: 1, BaseDays: 1, Complexity: 1, Urgency: 1, ClientValue: 1, Confidence: 1})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	r := NewReport(pricing.Inputs{}, result, ReportOptions{})

	if r.ID == "" {
		t.Error("expected a generated ID")
	}
	if r.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
	if r.Locale.Code != "en" {
		t.Errorf("locale = %s, want en", r.Locale.Code)
	}
}

func TestCommissionStatement(t *testing.T) {
	r := testReport(t, "en")
	want := "Prices above include 20% platform commission."
	if got := r.CommissionStatement(); got != want {
		t.Errorf("statement = %q, want %q", got, want)
	}
}

func TestCLIFormatter(t *testing.T) {
	out := render(t, NewCLIFormatter(true), testReport(t, "en"))

	for _, want := range []string{
		"Project Price Proposal",
		"Website <redesign>",
		"Executive (rush, dedicated)",
		"12,500,000 IRT",
		"10,000,000 IRT",
		"2,500,000 IRT",
		"Average proposed price",
		"13,392,857 IRT",
		"8,750,000 IRT to 20,000,000 IRT",
		"Prices above include 20% platform commission.",
		"Internal: your net income after commission",
		"Base daily rate",
		"1,000,000",
		"12.5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("cli output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	out := render(t, &JSONFormatter{}, testReport(t, "en"))

	var doc struct {
		ID     string         `json:"id"`
		Locale string         `json:"locale"`
		Inputs pricing.Inputs `json:"inputs"`
		Tiers  []struct {
			Key          string          `json:"key"`
			Label        string          `json:"label"`
			DurationDays float64         `json:"duration_days"`
			ClientPrice  decimal.Decimal `json:"client_price"`
			NetPrice     decimal.Decimal `json:"net_price"`
		} `json:"tiers"`
		Summary struct {
			PlatformFeePercent float64 `json:"platform_fee_percent"`
		} `json:"summary"`
		Commission string `json:"commission_statement"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if doc.Locale != "en" || doc.Inputs.PlatformFee != 20 || doc.Summary.PlatformFeePercent != 20 {
		t.Errorf("unexpected header fields: %+v", doc)
	}
	if len(doc.Tiers) != 7 {
		t.Fatalf("got %d tiers, want 7", len(doc.Tiers))
	}
	exec := doc.Tiers[6]
	if exec.Key != "executive" || exec.DurationDays != 5 {
		t.Errorf("executive = %+v", exec)
	}
	if !exec.ClientPrice.Equal(decimal.NewFromInt(20_000_000)) || !exec.NetPrice.Equal(decimal.NewFromInt(16_000_000)) {
		t.Errorf("executive prices = %s/%s", exec.ClientPrice, exec.NetPrice)
	}
	if doc.Commission == "" {
		t.Error("missing commission statement")
	}
}

func TestYAMLFormatter(t *testing.T) {
	out := render(t, &YAMLFormatter{}, testReport(t, "en"))

	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}
	tiers, ok := doc["tiers"].([]interface{})
	if !ok || len(tiers) != 7 {
		t.Fatalf("tiers = %#v", doc["tiers"])
	}
	base := tiers[3].(map[string]interface{})
	if base["key"] != "base" || base["client_price"] != "12500000" || base["net_price"] != "10000000" {
		t.Errorf("base tier = %#v", base)
	}
	if doc["commission_statement"] != "Prices above include 20% platform commission." {
		t.Errorf("commission_statement = %v", doc["commission_statement"])
	}
}

func TestHTMLFormatter(t *testing.T) {
	out := render(t, &HTMLFormatter{}, testReport(t, "en"))

	for _, want := range []string{
		`<html lang="en" dir="ltr">`,
		"Website &lt;redesign&gt;",
		"<td>Economy (longer delivery)</td><td>12.5 days</td><td>11,250,000 IRT</td>",
		"<td>Economy (longer delivery)</td><td>12.5 days</td><td>9,000,000 IRT</td>",
		"Average proposed price: <b>13,392,857 IRT</b>",
		"8,750,000 IRT to 20,000,000 IRT",
		"Prices above include 20% platform commission.",
		"<b>Platform commission (%):</b> 20",
		"Confidential proposal",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q", want)
		}
	}
	if strings.Contains(out, "<redesign>") {
		t.Error("project title was not escaped")
	}
}

func TestHTMLFormatterPersian(t *testing.T) {
	out := render(t, &HTMLFormatter{}, testReport(t, "fa"))

	for _, want := range []string{
		`<html lang="fa" dir="rtl">`,
		"پیشنهاد اجرایی (فوری و اختصاصی)",
		"جدول داخلی: درآمد خالص شما پس از کسر کمیسیون",
		"کمیسیون پلتفرم",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestMarkdownFormatter(t *testing.T) {
	out := render(t, &MarkdownFormatter{}, testReport(t, "en"))

	for _, row := range [][]string{
		{"Proposal", "Duration (days)", "Price"},
		{"Base (balanced time and cost)", "10.0", "12,500,000 IRT"},
		{"Base (balanced time and cost)", "10.0", "10,000,000 IRT", "2,500,000 IRT"},
	} {
		if !hasMarkdownRow(out, row...) {
			t.Errorf("markdown missing row %q:\n%s", row, out)
		}
	}
	for _, want := range []string{
		"# Project Price Proposal: Website <redesign>",
		"> Prices above include 20% platform commission.",
		"- Urgency factor: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

// hasMarkdownRow reports whether out has a table row with exactly these cells.
func hasMarkdownRow(out string, cells ...string) bool {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		parts := strings.Split(strings.Trim(line, "|"), "|")
		if len(parts) != len(cells) {
			continue
		}
		match := true
		for i, p := range parts {
			if strings.TrimSpace(p) != cells[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestZeroFeeStatement(t *testing.T) {
	in := pricing.Inputs{RatePerDay: 100, BaseDays: 2, Complexity: 1, Urgency: 1, ClientValue: 1, Confidence: 1}
	result, err := pricing.Compute(in)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	r := NewReport(in, result, ReportOptions{})

	if got := r.CommissionStatement(); got != "Prices above include 0% platform commission." {
		t.Errorf("statement = %q", got)
	}
	for _, row := range r.Rows {
		if !row.Commission.IsZero() {
			t.Errorf("%s commission = %s, want 0", row.Key, row.Commission)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"cli", FormatCLI},
		{"JSON", FormatJSON},
		{"yml", FormatYAML},
		{"md", FormatMarkdown},
		{" html ", FormatHTML},
		{"", FormatCLI},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseFormat("pdf"); !apperrors.IsType(err, apperrors.TypeConfig) {
		t.Errorf("ParseFormat(pdf) error = %v, want CONFIG_ERROR", err)
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	all := r.GetAll()
	if len(all) != 5 {
		t.Fatalf("got %d formatters, want 5", len(all))
	}
	for _, f := range []Format{FormatCLI, FormatJSON, FormatYAML, FormatHTML, FormatMarkdown} {
		if _, ok := r.GetFormatter(f); !ok {
			t.Errorf("missing formatter %s", f)
		}
	}
	if err := r.Register(&JSONFormatter{}); err == nil {
		t.Error("expected duplicate registration to fail")
	}

	var buf bytes.Buffer
	if err := NewRegistry().Render(&buf, FormatHTML, testReport(t, "en")); !apperrors.IsType(err, apperrors.TypeRender) {
		t.Errorf("render with empty registry error = %v, want RENDER_ERROR", err)
	}
}

func TestLookupLocale(t *testing.T) {
	for code, want := range map[string]string{"": "en", "en": "en", "en-US": "en", "fa_IR": "fa", "FA": "fa"} {
		loc, err := LookupLocale(code)
		if err != nil || loc.Code != want {
			t.Errorf("LookupLocale(%q) = %v, %v; want %s", code, loc, err, want)
		}
	}
	if _, err := LookupLocale("de"); !apperrors.IsType(err, apperrors.TypeConfig) {
		t.Errorf("LookupLocale(de) error = %v, want CONFIG_ERROR", err)
	}
}

func TestLocalesLabelEveryTier(t *testing.T) {
	for _, code := range LocaleCodes() {
		loc, _ := LookupLocale(code)
		for _, p := range pricing.DefaultPolicy() {
			if loc.TierLabel(p.Key) == string(p.Key) {
				t.Errorf("%s has no label for %s", code, p.Key)
			}
		}
		for _, f := range pricing.Fields() {
			if loc.ParamLabel(f) == string(f) {
				t.Errorf("%s has no label for %s", code, f)
			}
		}
	}
}

func TestFormatExtension(t *testing.T) {
	if FormatHTML.Extension() != ".html" || FormatMarkdown.Extension() != ".md" || FormatCLI.Extension() != ".txt" {
		t.Error("unexpected extensions")
	}
}
