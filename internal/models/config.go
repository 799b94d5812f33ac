package models

import (
	"fmt"

	"github.com/dkravets/geoseek/internal/common"
)

// GameConfig is immutable once a game is created.
type GameConfig struct {
	InitialRadiusMeters float64 `json:"initialRadiusMeters"`
	ShrinkIntervalMs    int64   `json:"shrinkIntervalMs"`
	ShrinkMeters        float64 `json:"shrinkMeters"`
}

// ConfigOverride carries optional per-field overrides supplied at game
// creation. Nil fields fall back to defaults.
type ConfigOverride struct {
	InitialRadiusMeters *float64
	ShrinkIntervalMs    *int64
	ShrinkMeters        *float64
}

// DefaultConfig returns the standard game setup: a 500 m circle shrinking by
// 50 m every 5 minutes.
func DefaultConfig() GameConfig {
	return GameConfig{
		InitialRadiusMeters: 500,
		ShrinkIntervalMs:    5 * 60 * 1000,
		ShrinkMeters:        50,
	}
}

// MergeConfig overlays the supplied overrides on the defaults.
func MergeConfig(o ConfigOverride) GameConfig {
	cfg := DefaultConfig()
	if o.InitialRadiusMeters != nil {
		cfg.InitialRadiusMeters = *o.InitialRadiusMeters
	}
	if o.ShrinkIntervalMs != nil {
		cfg.ShrinkIntervalMs = *o.ShrinkIntervalMs
	}
	if o.ShrinkMeters != nil {
		cfg.ShrinkMeters = *o.ShrinkMeters
	}
	return cfg
}

// ValidateConfig enforces the allowed numeric bounds. The returned error
// wraps common.ErrValidation.
func ValidateConfig(cfg GameConfig) error {
	if cfg.InitialRadiusMeters < 50 || cfg.InitialRadiusMeters > 5000 {
		return fmt.Errorf("%w: initial radius %.0f m out of range [50, 5000]", common.ErrValidation, cfg.InitialRadiusMeters)
	}
	if cfg.ShrinkIntervalMs < 30_000 || cfg.ShrinkIntervalMs > 3_600_000 {
		return fmt.Errorf("%w: shrink interval %d ms out of range [30000, 3600000]", common.ErrValidation, cfg.ShrinkIntervalMs)
	}
	if cfg.ShrinkMeters < 10 || cfg.ShrinkMeters > 500 {
		return fmt.Errorf("%w: shrink step %.0f m out of range [10, 500]", common.ErrValidation, cfg.ShrinkMeters)
	}
	return nil
}
