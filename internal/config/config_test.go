package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "proposal-pricing/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.Format != "cli" || cfg.Output.Locale != "en" || cfg.Output.Currency != "IRT" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Defaults.Complexity != 1 || cfg.Defaults.Confidence != 1 || cfg.Defaults.PlatformFee != 0 {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"defaults": {"rate_per_day": 500, "platform_fee": 10}, "output": {"locale": "fa"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Defaults.RatePerDay != 500 || cfg.Defaults.PlatformFee != 10 {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Defaults.Urgency != 1 {
		t.Errorf("urgency = %v, want default 1", cfg.Defaults.Urgency)
	}
	if cfg.Output.Locale != "fa" || cfg.Output.Format != "cli" {
		t.Errorf("output = %+v", cfg.Output)
	}
}

func TestLoadAppliesEnvironment(t *testing.T) {
	t.Setenv("PROPOSAL_PRICING_FORMAT", "html")
	t.Setenv("PROPOSAL_PRICING_CURRENCY", "USD")
	t.Setenv("PROPOSAL_PRICING_OPEN_BROWSER", "true")
	t.Setenv("PROPOSAL_PRICING_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.Format != "html" || cfg.Output.Currency != "USD" || !cfg.Output.OpenBrowser {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Output.Locale != "en" {
		t.Errorf("unset variable changed locale to %q", cfg.Output.Locale)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{"malformed json", `{"output": `, nil},
		{"unknown format", `{"output": {"format": "pdf"}}`, nil},
		{"unknown locale", `{"output": {"locale": "xx"}}`, nil},
		{"bad bool env", `{}`, map[string]string{"PROPOSAL_PRICING_OPEN_BROWSER": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.file), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
			_, err := Load(path)
			if !apperrors.IsType(err, apperrors.TypeConfig) {
				t.Errorf("error = %v, want CONFIG_ERROR", err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := Default()
	cfg.Defaults.RatePerDay = 750
	cfg.Output.Format = "markdown"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Defaults.RatePerDay != 750 || loaded.Output.Format != "markdown" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestGetSet(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	cfg := Default()
	cfg.Output.Currency = "EUR"
	Set(cfg)
	if Get().Output.Currency != "EUR" {
		t.Errorf("Get() currency = %q", Get().Output.Currency)
	}
}
