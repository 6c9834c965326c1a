package config

import (
	"os"
	"path/filepath"
	"testing"

	"indicator-engine/internal/domain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.TargetCurrency != "USD" {
		t.Errorf("expected default currency USD, got %q", cfg.TargetCurrency)
	}
	if cfg.TargetMagnitude != domain.MagnitudeMillions {
		t.Errorf("expected default magnitude millions, got %q", cfg.TargetMagnitude)
	}
	if cfg.TargetTimeScale != domain.PeriodMonthly {
		t.Errorf("expected default time scale monthly, got %q", cfg.TargetTimeScale)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	body := `
targetCurrency: EUR
targetMagnitude: billions
targetTimeScale: yearly
autoCorrectFXRates: true
strictUnitCheck: true
exemptions:
  indicatorIds: ["id-1"]
  categoryGroups: ["Labour"]
cacheMaxSize: 16
cacheTtlSeconds: 60
logLevel: debug
`
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.TargetCurrency != "EUR" {
		t.Errorf("expected EUR, got %q", cfg.TargetCurrency)
	}
	if cfg.TargetMagnitude != domain.MagnitudeBillions {
		t.Errorf("expected billions, got %q", cfg.TargetMagnitude)
	}
	if cfg.TargetTimeScale != domain.PeriodYearly {
		t.Errorf("expected yearly, got %q", cfg.TargetTimeScale)
	}
	if !cfg.AutoCorrectFXRates || !cfg.StrictUnitCheck {
		t.Error("expected both boolean flags on")
	}
	if len(cfg.Exemptions.IndicatorIDs) != 1 || cfg.Exemptions.IndicatorIDs[0] != "id-1" {
		t.Errorf("unexpected exemption ids %v", cfg.Exemptions.IndicatorIDs)
	}
	if cfg.CacheMaxSize != 16 || cfg.CacheTTLSecs != 60 {
		t.Errorf("unexpected cache settings %d/%d", cfg.CacheMaxSize, cfg.CacheTTLSecs)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	body := "targetCurrency: EUR\n"
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ENGINE_TARGET_CURRENCY", "GBP")
	t.Setenv("ENGINE_TARGET_TIME_SCALE", "quarterly")
	t.Setenv("ENGINE_AUTOCORRECT_FX", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.TargetCurrency != "GBP" {
		t.Errorf("env override lost, got %q", cfg.TargetCurrency)
	}
	if cfg.TargetTimeScale != domain.PeriodQuarterly {
		t.Errorf("expected quarterly, got %q", cfg.TargetTimeScale)
	}
	if !cfg.AutoCorrectFXRates {
		t.Error("expected autocorrect enabled via env")
	}
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TargetCurrency != "USD" {
		t.Errorf("expected USD, got %q", cfg.TargetCurrency)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for a missing config file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad currency", func(c *Config) { c.TargetCurrency = "DOLLARS" }},
		{"bad time scale", func(c *Config) { c.TargetTimeScale = "fortnightly" }},
		{"bad magnitude", func(c *Config) { c.TargetMagnitude = "zillions" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
