package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkravets/geoseek/internal/common"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, 500.0, cfg.InitialRadiusMeters)
	assert.Equal(t, int64(300_000), cfg.ShrinkIntervalMs)
	assert.Equal(t, 50.0, cfg.ShrinkMeters)
}

func TestMergeConfig(t *testing.T) {
	t.Parallel()

	radius := 1000.0
	interval := int64(60_000)

	cfg := MergeConfig(ConfigOverride{
		InitialRadiusMeters: &radius,
		ShrinkIntervalMs:    &interval,
	})

	assert.Equal(t, 1000.0, cfg.InitialRadiusMeters)
	assert.Equal(t, int64(60_000), cfg.ShrinkIntervalMs)
	// Untouched field keeps its default.
	assert.Equal(t, 50.0, cfg.ShrinkMeters)
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     GameConfig
		wantErr bool
	}{
		{name: "defaults", cfg: DefaultConfig(), wantErr: false},
		{name: "radius lower bound", cfg: GameConfig{InitialRadiusMeters: 50, ShrinkIntervalMs: 300_000, ShrinkMeters: 50}, wantErr: false},
		{name: "radius upper bound", cfg: GameConfig{InitialRadiusMeters: 5000, ShrinkIntervalMs: 300_000, ShrinkMeters: 50}, wantErr: false},
		{name: "radius too small", cfg: GameConfig{InitialRadiusMeters: 49, ShrinkIntervalMs: 300_000, ShrinkMeters: 50}, wantErr: true},
		{name: "radius too large", cfg: GameConfig{InitialRadiusMeters: 5001, ShrinkIntervalMs: 300_000, ShrinkMeters: 50}, wantErr: true},
		{name: "interval too short", cfg: GameConfig{InitialRadiusMeters: 500, ShrinkIntervalMs: 29_999, ShrinkMeters: 50}, wantErr: true},
		{name: "interval too long", cfg: GameConfig{InitialRadiusMeters: 500, ShrinkIntervalMs: 3_600_001, ShrinkMeters: 50}, wantErr: true},
		{name: "shrink too small", cfg: GameConfig{InitialRadiusMeters: 500, ShrinkIntervalMs: 300_000, ShrinkMeters: 9}, wantErr: true},
		{name: "shrink too large", cfg: GameConfig{InitialRadiusMeters: 500, ShrinkIntervalMs: 300_000, ShrinkMeters: 501}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg)
			if tt.wantErr {
				assert.True(t, errors.Is(err, common.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
