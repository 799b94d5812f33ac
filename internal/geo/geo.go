// Package geo holds the pure geometry used by the game: great-circle
// distance, degree/meter conversion and the random circle offset that hides
// the hider's true position inside the visible search circle.
package geo

import (
	"math"
	"math/rand/v2"

	"github.com/dkravets/geoseek/internal/models"
)

// earthRadiusMeters is the mean Earth radius used by the Haversine formula.
const earthRadiusMeters = 6371000.0

// metersPerDegreeLat is the length of one degree of latitude. Longitude
// degrees shrink with cos(latitude).
const metersPerDegreeLat = 111320.0

// DistanceMeters returns the Haversine great-circle distance between two
// points. Sub-meter accuracy for distances under tens of kilometers.
func DistanceMeters(a, b models.Location) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Factors converts meter displacements to degree displacements near a given
// latitude.
type Factors struct {
	LatFactor float64 // degrees per meter, north-south
	LngFactor float64 // degrees per meter, east-west at the given latitude
}

// DegreesPerMeter returns the conversion factors at the given latitude. The
// longitude factor is a local approximation; error grows with distance from
// that latitude.
func DegreesPerMeter(atLatitude float64) Factors {
	return Factors{
		LatFactor: 1 / metersPerDegreeLat,
		LngFactor: 1 / (metersPerDegreeLat * math.Cos(atLatitude*math.Pi/180)),
	}
}

// randFloat64 is a seam for deterministic tests.
var randFloat64 = rand.Float64

// GenerateCircleOffset draws a fixed translation between the hider's true
// position and the public circle center. Each axis is an independent
// uniform sample in [-radiusMeters, +radiusMeters], converted to degrees at
// the given latitude. Gameplay fairness only; no CSPRNG needed.
func GenerateCircleOffset(radiusMeters, atLatitude float64) models.Location {
	f := DegreesPerMeter(atLatitude)
	dx := (randFloat64()*2 - 1) * radiusMeters
	dy := (randFloat64()*2 - 1) * radiusMeters
	return models.Location{
		Lat: dy * f.LatFactor,
		Lng: dx * f.LngFactor,
	}
}

// ApplyOffset translates base by offset in degree space.
func ApplyOffset(base models.Location, offset models.Location) models.Location {
	return models.Location{
		Lat: base.Lat + offset.Lat,
		Lng: base.Lng + offset.Lng,
	}
}
