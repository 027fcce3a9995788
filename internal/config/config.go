package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"wordlab/internal/errors"
)

// Numeric defaults. Epsilon and ZeroCellCorrection follow the literature
// values the scorers were validated against; CoherenceWindow is the standard
// C_v sliding-window width.
const (
	DefaultEpsilon            = 1e-20
	DefaultNPMIEpsilon        = 1e-12
	DefaultZeroCellCorrection = 0.5
	DefaultCoherenceWindow    = 110
	DefaultMaxConcurrency     = 4
)

// Stats holds the engine's numeric tunables. Every hardcoded floor or
// correction constant lives here so tests can probe boundary behavior.
type Stats struct {
	// Epsilon floors probabilities in the uncertainty coefficient.
	Epsilon float64
	// NPMIEpsilon guards log(0) in NPMI computation.
	NPMIEpsilon float64
	// ZeroCellCorrection is the Haldane-Anscombe additive constant.
	ZeroCellCorrection float64
	// CoherenceWindow is the sliding co-occurrence window width in tokens.
	CoherenceWindow int
	// MaxConcurrency bounds fan-out in batch operations.
	MaxConcurrency int
}

// Default returns the stock configuration.
func Default() Stats {
	return Stats{
		Epsilon:            DefaultEpsilon,
		NPMIEpsilon:        DefaultNPMIEpsilon,
		ZeroCellCorrection: DefaultZeroCellCorrection,
		CoherenceWindow:    DefaultCoherenceWindow,
		MaxConcurrency:     DefaultMaxConcurrency,
	}
}

// Load reads configuration from the environment, honoring a .env file when
// present, and validates it.
func Load() (Stats, error) {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Stats{
		Epsilon:            getEnvFloatOrDefault("WORDLAB_EPSILON", DefaultEpsilon),
		NPMIEpsilon:        getEnvFloatOrDefault("WORDLAB_NPMI_EPSILON", DefaultNPMIEpsilon),
		ZeroCellCorrection: getEnvFloatOrDefault("WORDLAB_ZERO_CELL_CORRECTION", DefaultZeroCellCorrection),
		CoherenceWindow:    getEnvIntOrDefault("WORDLAB_COHERENCE_WINDOW", DefaultCoherenceWindow),
		MaxConcurrency:     getEnvIntOrDefault("WORDLAB_MAX_CONCURRENCY", DefaultMaxConcurrency),
	}

	if err := validate(cfg); err != nil {
		return Stats{}, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg Stats) error {
	if cfg.Epsilon <= 0 {
		return errors.ConfigInvalid("WORDLAB_EPSILON must be positive")
	}
	if cfg.NPMIEpsilon <= 0 {
		return errors.ConfigInvalid("WORDLAB_NPMI_EPSILON must be positive")
	}
	if cfg.ZeroCellCorrection <= 0 {
		return errors.ConfigInvalid("WORDLAB_ZERO_CELL_CORRECTION must be positive")
	}
	if cfg.CoherenceWindow < 2 {
		return errors.ConfigInvalid("WORDLAB_COHERENCE_WINDOW must be at least 2")
	}
	if cfg.MaxConcurrency < 1 {
		return errors.ConfigInvalid("WORDLAB_MAX_CONCURRENCY must be at least 1")
	}
	return nil
}

func getEnvFloatOrDefault(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
