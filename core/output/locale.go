package output

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"proposal-pricing/core/pricing"
	apperrors "proposal-pricing/internal/errors"
)

// Text holds the translatable strings of a report.
type Text struct {
	Title            string
	TierHeader       string
	DurationHeader   string
	ClientHeader     string
	NetHeader        string
	CommissionHeader string
	Days             string
	Average          string
	Range            string
	RangeTo          string
	// Commission is a format string taking the fee percentage
	Commission     string
	InternalTitle  string
	ParamsTitle    string
	Params         map[pricing.Field]string
	ProjectLabel   string
	ReferenceLabel string
	FooterLine     string
	FooterNote     string
	RuleHeader     string
	RatioHeader    string
}

// Locale is the display language of a report.
type Locale struct {
	Code  string
	Tag   language.Tag
	RTL   bool
	Tiers map[pricing.TierKey]string
	Text  Text
}

// Dir is the HTML text direction.
func (l *Locale) Dir() string {
	if l.RTL {
		return "rtl"
	}
	return "ltr"
}

// TierLabel returns the display name of a tier, falling back to its key.
func (l *Locale) TierLabel(key pricing.TierKey) string {
	if label, ok := l.Tiers[key]; ok {
		return label
	}
	return string(key)
}

// ParamLabel returns the display name of an input field.
func (l *Locale) ParamLabel(f pricing.Field) string {
	if label, ok := l.Text.Params[f]; ok {
		return label
	}
	return string(f)
}

// Amount formats a money amount with no fraction digits and locale grouping.
func (l *Locale) Amount(d decimal.Decimal) string {
	return message.NewPrinter(l.Tag).Sprintf("%v", number.Decimal(d.Round(0).InexactFloat64(), number.MaxFractionDigits(0)))
}

// Days formats a duration with one fraction digit.
func (l *Locale) Days(v float64) string {
	return message.NewPrinter(l.Tag).Sprintf("%v", number.Decimal(v, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
}

// Number formats an input value with up to four fraction digits.
func (l *Locale) Number(v float64) string {
	return message.NewPrinter(l.Tag).Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(4)))
}

// Sprintf formats with the locale's printer.
func (l *Locale) Sprintf(format string, args ...interface{}) string {
	return message.NewPrinter(l.Tag).Sprintf(format, args...)
}

var english = &Locale{
	Code: "en",
	Tag:  language.English,
	Tiers: map[pricing.TierKey]string{
		pricing.TierEconomy:   "Economy (longer delivery)",
		pricing.TierExtended:  "Extended standard",
		pricing.TierLongTerm:  "Long-term (very flexible delivery)",
		pricing.TierBase:      "Base (balanced time and cost)",
		pricing.TierExpedited: "Expedited (faster delivery)",
		pricing.TierPremium:   "Premium (high priority)",
		pricing.TierExecutive: "Executive (rush, dedicated)",
	},
	Text: Text{
		Title:            "Project Price Proposal",
		TierHeader:       "Proposal",
		DurationHeader:   "Duration (days)",
		ClientHeader:     "Price",
		NetHeader:        "Net income",
		CommissionHeader: "Commission",
		Days:             "days",
		Average:          "Average proposed price",
		Range:            "Overall price range",
		RangeTo:          "to",
		Commission:       "Prices above include %s%% platform commission.",
		InternalTitle:    "Internal: your net income after commission",
		ParamsTitle:      "Calculation parameters",
		Params: map[pricing.Field]string{
			pricing.FieldRatePerDay:  "Base daily rate",
			pricing.FieldBaseDays:    "Base project duration",
			pricing.FieldComplexity:  "Complexity factor",
			pricing.FieldUrgency:     "Urgency factor",
			pricing.FieldClientValue: "Client value",
			pricing.FieldConfidence:  "Your motivation",
			pricing.FieldPlatformFee: "Platform commission (%)",
		},
		ProjectLabel:   "Project",
		ReferenceLabel: "Reference",
		FooterLine:     "Prepared with the proposal pricing engine",
		FooterNote:     "Confidential proposal",
		RuleHeader:     "Price rule",
		RatioHeader:    "Duration ratio",
	},
}

var persian = &Locale{
	Code: "fa",
	Tag:  language.Persian,
	RTL:  true,
	Tiers: map[pricing.TierKey]string{
		pricing.TierEconomy:   "پیشنهاد اقتصادی (زمان تحویل بیشتر)",
		pricing.TierExtended:  "پیشنهاد استاندارد توسعه‌یافته",
		pricing.TierLongTerm:  "پیشنهاد بلندمدت (تحویل بسیار منعطف)",
		pricing.TierBase:      "پیشنهاد پایه (زمان و هزینه متعادل)",
		pricing.TierExpedited: "پیشنهاد ویژه (تحویل سریع‌تر)",
		pricing.TierPremium:   "پیشنهاد پریمیوم (اولویت بالا)",
		pricing.TierExecutive: "پیشنهاد اجرایی (فوری و اختصاصی)",
	},
	Text: Text{
		Title:            "پیشنهاد قیمت پروژه",
		TierHeader:       "سطح پیشنهاد",
		DurationHeader:   "مدت زمان (روز)",
		ClientHeader:     "مبلغ نهایی",
		NetHeader:        "درآمد خالص",
		CommissionHeader: "کمیسیون",
		Days:             "روز",
		Average:          "میانگین قیمت پیشنهادی",
		Range:            "بازهٔ کلی قیمت",
		RangeTo:          "تا",
		Commission:       "مبالغ فوق شامل %s%% کمیسیون پلتفرم هستند.",
		InternalTitle:    "جدول داخلی: درآمد خالص شما پس از کسر کمیسیون",
		ParamsTitle:      "پارامترهای محاسبه",
		Params: map[pricing.Field]string{
			pricing.FieldRatePerDay:  "نرخ پایه روزانه",
			pricing.FieldBaseDays:    "مدت زمان پایه پروژه",
			pricing.FieldComplexity:  "ضریب سختی کار",
			pricing.FieldUrgency:     "ضریب فوریت",
			pricing.FieldClientValue: "ارزش مشتری",
			pricing.FieldConfidence:  "انگیزه یا تمایل شما",
			pricing.FieldPlatformFee: "درصد کمیسیون پلتفرم",
		},
		ProjectLabel:   "پروژه",
		ReferenceLabel: "شناسه",
		FooterLine:     "تهیه‌شده با موتور قیمت‌گذاری هوشمند",
		FooterNote:     "Confidential proposal",
		RuleHeader:     "قاعده قیمت",
		RatioHeader:    "ضریب زمان",
	},
}

var locales = map[string]*Locale{
	english.Code: english,
	persian.Code: persian,
}

// LookupLocale returns the locale for a code such as "en" or "fa-IR".
func LookupLocale(code string) (*Locale, error) {
	if code == "" {
		return english, nil
	}
	base := strings.ToLower(strings.SplitN(strings.ReplaceAll(code, "_", "-"), "-", 2)[0])
	if l, ok := locales[base]; ok {
		return l, nil
	}
	return nil, apperrors.Newf(apperrors.TypeConfig, "unsupported locale %q (supported: %s)", code, strings.Join(LocaleCodes(), ", ")).
		WithContext("locale", code)
}

// LocaleCodes lists the supported locale codes.
func LocaleCodes() []string {
	codes := make([]string, 0, len(locales))
	for code := range locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
