package geo

import (
	"math"
	"testing"

	"github.com/dkravets/geoseek/internal/models"
)

func TestDistanceMeters_KnownPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		a, b      models.Location
		want      float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         models.Location{Lat: 52.52, Lng: 13.405},
			b:         models.Location{Lat: 52.52, Lng: 13.405},
			want:      0,
			tolerance: 0.001,
		},
		{
			name:      "one degree of latitude at equator",
			a:         models.Location{Lat: 0, Lng: 0},
			b:         models.Location{Lat: 1, Lng: 0},
			want:      111195,
			tolerance: 100,
		},
		{
			name:      "short hop in Berlin",
			a:         models.Location{Lat: 52.51628, Lng: 13.37770},
			b:         models.Location{Lat: 52.51863, Lng: 13.37620},
			want:      280,
			tolerance: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMeters(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Fatalf("DistanceMeters = %.1f, want %.1f ± %.1f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	t.Parallel()

	a := models.Location{Lat: 48.8566, Lng: 2.3522}
	b := models.Location{Lat: 48.8606, Lng: 2.3376}

	if d1, d2 := DistanceMeters(a, b), DistanceMeters(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDegreesPerMeter(t *testing.T) {
	t.Parallel()

	atEquator := DegreesPerMeter(0)
	if math.Abs(atEquator.LatFactor-atEquator.LngFactor) > 1e-12 {
		t.Fatalf("factors should match at the equator: %v vs %v", atEquator.LatFactor, atEquator.LngFactor)
	}

	at60 := DegreesPerMeter(60)
	// cos(60°) = 0.5, so a meter east-west spans twice the degrees.
	if ratio := at60.LngFactor / at60.LatFactor; math.Abs(ratio-2) > 1e-9 {
		t.Fatalf("longitude factor ratio at 60° = %v, want 2", ratio)
	}
}

func TestGenerateCircleOffset_WithinBounds(t *testing.T) {
	orig := randFloat64
	defer func() { randFloat64 = orig }()

	// Extremes of the seam produce the extremes of the offset.
	randFloat64 = func() float64 { return 1 }
	f := DegreesPerMeter(0)
	off := GenerateCircleOffset(500, 0)
	if math.Abs(off.Lat-500*f.LatFactor) > 1e-12 || math.Abs(off.Lng-500*f.LngFactor) > 1e-12 {
		t.Fatalf("offset at seam max = %+v", off)
	}

	randFloat64 = func() float64 { return 0 }
	off = GenerateCircleOffset(500, 0)
	if math.Abs(off.Lat+500*f.LatFactor) > 1e-12 || math.Abs(off.Lng+500*f.LngFactor) > 1e-12 {
		t.Fatalf("offset at seam min = %+v", off)
	}
}

func TestGenerateCircleOffset_NeverExceedsRadius(t *testing.T) {
	base := models.Location{Lat: 0, Lng: 0}
	for i := 0; i < 100; i++ {
		off := GenerateCircleOffset(500, 0)
		shifted := ApplyOffset(base, off)
		// Each axis is bounded by the radius, so the displacement is at
		// most radius*sqrt(2).
		if d := DistanceMeters(base, shifted); d > 500*math.Sqrt2+1 {
			t.Fatalf("offset displacement %v m exceeds bound", d)
		}
	}
}

func TestApplyOffset(t *testing.T) {
	t.Parallel()

	base := models.Location{Lat: 52.5, Lng: 13.4}
	off := models.Location{Lat: 0.001, Lng: -0.002}
	got := ApplyOffset(base, off)

	if got.Lat != 52.501 || got.Lng != 13.398 {
		t.Fatalf("ApplyOffset = %+v", got)
	}
}
