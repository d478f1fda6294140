// Package projection implements the stereographic projections used to
// flatten constellation figures onto a plane, plus the great-circle
// distance used for sizing frames. All public entry points take
// positions in catalog units (RA hours, Dec degrees) and convert to
// radians internally.
package projection

import (
	"math"

	"github.com/skyatlas/chartgen/internal/model/core"
)

// Variant selects which stereographic projection a figure uses.
type Variant int

const (
	// TangentPlane projects onto the plane tangent at the figure center.
	TangentPlane Variant = iota
	// PolarNorth projects from the south pole onto the north polar plane.
	PolarNorth
	// PolarSouth is the mirror of PolarNorth for southern circumpolar figures.
	PolarSouth
)

// circumpolarDec is the declination beyond which the tangent plane
// degrades enough that the polar variant is used instead.
const circumpolarDec = 60.0

func (v Variant) String() string {
	switch v {
	case PolarNorth:
		return "polar_north"
	case PolarSouth:
		return "polar_south"
	default:
		return "stereographic"
	}
}

// SelectVariant picks the projection variant from the mean declination
// of a figure's member stars.
func SelectVariant(meanDec float64) Variant {
	switch {
	case meanDec > circumpolarDec:
		return PolarNorth
	case meanDec < -circumpolarDec:
		return PolarSouth
	default:
		return TangentPlane
	}
}

// Point is a position on the projection plane, unscaled.
type Point struct {
	X float64
	Y float64
}

func hoursToRad(raHours float64) float64 {
	return raHours * 15 * math.Pi / 180
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngularDistance returns the great-circle separation between two
// celestial positions in degrees, computed with the haversine form
// which stays stable for small separations.
func AngularDistance(a, b core.CelestialPoint) float64 {
	ra1, dec1 := hoursToRad(a.RA), degToRad(a.Dec)
	ra2, dec2 := hoursToRad(b.RA), degToRad(b.Dec)

	dra := ra2 - ra1
	ddec := dec2 - dec1
	h := math.Pow(math.Sin(ddec/2), 2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Pow(math.Sin(dra/2), 2)
	c := 2 * math.Asin(math.Min(1, math.Sqrt(h)))
	return radToDeg(c)
}

// Project maps a celestial position onto the projection plane using
// the given variant. center is only consulted for TangentPlane.
func Project(p core.CelestialPoint, v Variant, center core.CelestialPoint) Point {
	switch v {
	case PolarNorth:
		return polar(p)
	case PolarSouth:
		flipped := core.CelestialPoint{RA: p.RA, Dec: -p.Dec}
		return polar(flipped)
	default:
		return tangent(p, center)
	}
}

// tangent is the stereographic projection onto the plane tangent at
// center. Positions near the antipode of center blow up, callers are
// expected to feed only positions within the frame's padded radius.
func tangent(p, center core.CelestialPoint) Point {
	ra, dec := hoursToRad(p.RA), degToRad(p.Dec)
	ra0, dec0 := hoursToRad(center.RA), degToRad(center.Dec)

	cosC := math.Sin(dec0)*math.Sin(dec) +
		math.Cos(dec0)*math.Cos(dec)*math.Cos(ra-ra0)
	k := 2 / (1 + cosC)

	// X is negated so east points left, matching how star charts are
	// drawn when looking up at the sky.
	x := -k * math.Cos(dec) * math.Sin(ra-ra0)
	y := k * (math.Cos(dec0)*math.Sin(dec) - math.Sin(dec0)*math.Cos(dec)*math.Cos(ra-ra0))
	return Point{X: x, Y: y}
}

// polar is the stereographic projection from the opposite pole onto
// the plane at the north celestial pole.
func polar(p core.CelestialPoint) Point {
	ra, dec := hoursToRad(p.RA), degToRad(p.Dec)

	k := 2 / (1 + math.Sin(dec))
	x := -k * math.Cos(dec) * math.Sin(ra)
	y := -k * math.Cos(dec) * math.Cos(ra)
	return Point{X: x, Y: y}
}
