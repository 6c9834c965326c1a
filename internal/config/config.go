// Package config loads engine configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"indicator-engine/internal/domain"
)

// Exemptions excludes specific records from normalization entirely.
// Exempted records pass through with their original value and unit.
type Exemptions struct {
	IndicatorIDs   []string `yaml:"indicatorIds"`
	CategoryGroups []string `yaml:"categoryGroups"`
	IndicatorNames []string `yaml:"indicatorNames"`
}

// Config is the engine configuration.
type Config struct {
	TargetCurrency     string           `yaml:"targetCurrency"`
	TargetMagnitude    domain.Magnitude `yaml:"targetMagnitude"`
	TargetTimeScale    domain.Period    `yaml:"targetTimeScale"`
	AutoCorrectFXRates bool             `yaml:"autoCorrectFXRates"`
	StrictUnitCheck    bool             `yaml:"strictUnitCheck"`
	Exemptions         Exemptions       `yaml:"exemptions"`

	CacheMaxSize int    `yaml:"cacheMaxSize"`
	CacheTTLSecs int    `yaml:"cacheTtlSeconds"`
	LogLevel     string `yaml:"logLevel"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		TargetCurrency:  "USD",
		TargetMagnitude: domain.MagnitudeMillions,
		TargetTimeScale: domain.PeriodMonthly,
		CacheMaxSize:    1024,
		CacheTTLSecs:    300,
		LogLevel:        "info",
	}
}

// Load reads YAML configuration from path, applies environment overrides,
// and validates the result. An empty path yields defaults plus overrides.
// A .env file in the working directory is honored when present.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	// Best effort: absence of a .env file is not an error.
	_ = godotenv.Load()
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ENGINE_TARGET_CURRENCY"); v != "" {
		cfg.TargetCurrency = v
	}
	if v := os.Getenv("ENGINE_TARGET_MAGNITUDE"); v != "" {
		if m, ok := domain.ParseMagnitude(v); ok {
			cfg.TargetMagnitude = m
		}
	}
	if v := os.Getenv("ENGINE_TARGET_TIME_SCALE"); v != "" {
		if p, ok := domain.ParsePeriod(v); ok {
			cfg.TargetTimeScale = p
		}
	}
	if v := os.Getenv("ENGINE_AUTOCORRECT_FX"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AutoCorrectFXRates = b
		}
	}
	if v := os.Getenv("ENGINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate rejects configurations the pipeline cannot honor.
func (c Config) Validate() error {
	if !domain.IsCurrencyCode(c.TargetCurrency) {
		return fmt.Errorf("unknown target currency %q", c.TargetCurrency)
	}
	if _, ok := domain.ParsePeriod(string(c.TargetTimeScale)); !ok {
		return fmt.Errorf("unknown target time scale %q", c.TargetTimeScale)
	}
	if c.TargetMagnitude.Label() == "" && c.TargetMagnitude != domain.MagnitudeOnes {
		return fmt.Errorf("unknown target magnitude %q", c.TargetMagnitude)
	}
	return nil
}
