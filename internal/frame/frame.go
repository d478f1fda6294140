// Package frame derives the normalization frame of a constellation
// figure and places celestial positions onto the unit canvas. The same
// frame is reused for member stars and for background stars so both
// land in a consistent coordinate space.
package frame

import (
	"errors"
	"math"

	"github.com/skyatlas/chartgen/internal/model/core"
	"github.com/skyatlas/chartgen/internal/projection"
)

// ErrNoPositions is returned when a figure has no member stars with
// usable coordinates, leaving nothing to center a frame on.
var ErrNoPositions = errors.New("no member stars with coordinates")

const (
	// canvasHalfSpan is the canvas radius the largest figure dimension
	// is scaled to, leaving a margin inside the unit square.
	canvasHalfSpan = 0.4
	// minProjectedRadius floors the scale divisor so near-degenerate
	// figures (single star, tight pairs) do not explode the canvas.
	minProjectedRadius = 0.1
)

// Frame is a fixed mapping from the celestial sphere to the unit
// canvas, anchored at the figure's mean position. Build once per
// figure, then Place any number of positions through it.
type Frame struct {
	Variant         projection.Variant
	Center          core.CelestialPoint
	CenterProjected projection.Point
	// MaxRadius is the angular distance in degrees from the center to
	// the farthest member star.
	MaxRadius float64
	// PaddedRadius is twice MaxRadius, the angular cutoff used when
	// selecting background stars.
	PaddedRadius float64
	Scale        float64
}

// Build computes the frame for the given member stars. Stars without
// coordinates are ignored, if none remain ErrNoPositions is returned.
//
// The center is the arithmetic mean of RA and Dec, which misbehaves
// for figures straddling the 0h/24h wrap. No catalog figure does, so
// the wrap is left unhandled.
func Build(members []*core.Star) (Frame, error) {
	var sumRA, sumDec float64
	n := 0
	for _, s := range members {
		if s == nil || s.Pos == nil {
			continue
		}
		sumRA += s.Pos.RA
		sumDec += s.Pos.Dec
		n++
	}
	if n == 0 {
		return Frame{}, ErrNoPositions
	}

	center := core.CelestialPoint{RA: sumRA / float64(n), Dec: sumDec / float64(n)}
	variant := projection.SelectVariant(center.Dec)

	maxRadius := 0.0
	for _, s := range members {
		if s == nil || s.Pos == nil {
			continue
		}
		if d := projection.AngularDistance(center, *s.Pos); d > maxRadius {
			maxRadius = d
		}
	}

	// Radius of the figure on the projection plane. Stereographic
	// projection maps an angular distance c from the tangent point to
	// a planar distance of 2*tan(c/2).
	projectedMaxRadius := 2 * math.Tan(maxRadius*math.Pi/180/2)

	return Frame{
		Variant:         variant,
		Center:          center,
		CenterProjected: projection.Project(center, variant, center),
		MaxRadius:       maxRadius,
		PaddedRadius:    2 * maxRadius,
		Scale:           canvasHalfSpan / math.Max(projectedMaxRadius, minProjectedRadius),
	}, nil
}

// Place maps a celestial position into canvas space: project, recenter
// on the frame, scale, then shift so the frame center lands at
// (0.5, 0.5).
func (f Frame) Place(p core.CelestialPoint) (x, y float64) {
	proj := projection.Project(p, f.Variant, f.Center)
	x = (proj.X-f.CenterProjected.X)*f.Scale + 0.5
	y = (proj.Y-f.CenterProjected.Y)*f.Scale + 0.5
	return x, y
}

// Normalize places every member star with coordinates, preserving
// input order.
func (f Frame) Normalize(members []*core.Star) []core.NormalizedStar {
	out := make([]core.NormalizedStar, 0, len(members))
	for _, s := range members {
		if s == nil || s.Pos == nil {
			continue
		}
		x, y := f.Place(*s.Pos)
		out = append(out, core.NormalizedStar{Star: s, X: x, Y: y})
	}
	return out
}
