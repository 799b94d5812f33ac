// Package schedule computes the shrinking search radius as a pure function
// of (config, start time, status, now). The radius is a step function: it
// drops in discrete jumps exactly at interval boundaries, so any consumer
// polling at 1 Hz or faster observes the same step sequence regardless of
// polling phase.
package schedule

import (
	"fmt"
	"time"

	"github.com/dkravets/geoseek/internal/models"
)

// CurrentRadius returns the radius in meters at the given instant. Games
// that are not active (or have no start time recorded) report the initial
// radius.
func CurrentRadius(cfg models.GameConfig, startTime int64, status models.GameStatus, now time.Time) float64 {
	if status != models.StatusActive || startTime == 0 {
		return cfg.InitialRadiusMeters
	}

	elapsed := now.UnixMilli() - startTime
	if elapsed < 0 {
		return cfg.InitialRadiusMeters
	}

	intervals := elapsed / cfg.ShrinkIntervalMs
	radius := cfg.InitialRadiusMeters - float64(intervals)*cfg.ShrinkMeters
	if radius < 0 {
		return 0
	}
	return radius
}

// TimeToNextShrink returns the milliseconds until the next shrink tick, or
// 0 for inactive games.
func TimeToNextShrink(cfg models.GameConfig, startTime int64, status models.GameStatus, now time.Time) int64 {
	if status != models.StatusActive || startTime == 0 {
		return 0
	}

	elapsed := now.UnixMilli() - startTime
	if elapsed < 0 {
		return 0
	}

	return cfg.ShrinkIntervalMs - elapsed%cfg.ShrinkIntervalMs
}

// FormatElapsed renders a millisecond duration as zero-padded "MM:SS".
// Durations of 100 minutes or more simply widen the minutes field.
func FormatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
