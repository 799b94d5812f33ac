package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dkravets/geoseek/internal/models"
)

func defaultCfg() models.GameConfig {
	return models.GameConfig{
		InitialRadiusMeters: 500,
		ShrinkIntervalMs:    300_000,
		ShrinkMeters:        50,
	}
}

func TestCurrentRadius_StepFunction(t *testing.T) {
	t.Parallel()

	cfg := defaultCfg()
	start := int64(1_700_000_000_000)

	tests := []struct {
		name      string
		elapsedMs int64
		want      float64
	}{
		{name: "at start", elapsedMs: 0, want: 500},
		{name: "just before first boundary", elapsedMs: 299_999, want: 500},
		{name: "exactly at first boundary", elapsedMs: 300_000, want: 450},
		{name: "mid second interval", elapsedMs: 450_000, want: 450},
		{name: "after five intervals", elapsedMs: 1_500_000, want: 250},
		{name: "shrunk to nothing", elapsedMs: 3_000_000, want: 0},
		{name: "long after reaching zero", elapsedMs: 9_000_000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.UnixMilli(start + tt.elapsedMs)
			got := CurrentRadius(cfg, start, models.StatusActive, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentRadius_InactiveStates(t *testing.T) {
	t.Parallel()

	cfg := defaultCfg()
	now := time.UnixMilli(2_000_000_000_000)

	// Waiting and ended games always report the initial radius, no matter
	// what start time is recorded.
	assert.Equal(t, 500.0, CurrentRadius(cfg, 1_700_000_000_000, models.StatusWaiting, now))
	assert.Equal(t, 500.0, CurrentRadius(cfg, 1_700_000_000_000, models.StatusEnded, now))

	// Active but never started.
	assert.Equal(t, 500.0, CurrentRadius(cfg, 0, models.StatusActive, now))

	// Clock skew: a start time in the future means no shrink yet.
	assert.Equal(t, 500.0, CurrentRadius(cfg, now.UnixMilli()+60_000, models.StatusActive, now))
}

func TestTimeToNextShrink(t *testing.T) {
	t.Parallel()

	cfg := defaultCfg()
	start := int64(1_700_000_000_000)

	tests := []struct {
		name      string
		elapsedMs int64
		want      int64
	}{
		{name: "at start", elapsedMs: 0, want: 300_000},
		{name: "one second in", elapsedMs: 1_000, want: 299_000},
		{name: "one ms before boundary", elapsedMs: 299_999, want: 1},
		{name: "exactly at boundary", elapsedMs: 300_000, want: 300_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.UnixMilli(start + tt.elapsedMs)
			assert.Equal(t, tt.want, TimeToNextShrink(cfg, start, models.StatusActive, now))
		})
	}

	now := time.UnixMilli(start)
	assert.Equal(t, int64(0), TimeToNextShrink(cfg, start, models.StatusWaiting, now))
	assert.Equal(t, int64(0), TimeToNextShrink(cfg, 0, models.StatusActive, now))
}

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00", FormatElapsed(0))
	assert.Equal(t, "00:59", FormatElapsed(59_999))
	assert.Equal(t, "01:00", FormatElapsed(60_000))
	assert.Equal(t, "05:30", FormatElapsed(330_000))
	assert.Equal(t, "120:07", FormatElapsed(7_207_000))
	assert.Equal(t, "00:00", FormatElapsed(-5_000))
}
