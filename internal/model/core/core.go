// Package core defines the celestial domain types shared across the
// chart generation pipeline. These carry no persistence or transport
// concerns, the database rows and export documents are built from them.
package core

import "time"

// CelestialPoint is a position on the celestial sphere. RA is in hours
// (0..24), Dec in degrees (-90..90). This matches the native units of
// the Hipparcos-derived inputs, conversion to radians happens only
// inside the projection math.
type CelestialPoint struct {
	RA  float64 `json:"ra"`
	Dec float64 `json:"dec"`
}

// Star is a single catalog entry keyed by Hipparcos number. Position
// and Magnitude are nil when the source line did not carry them, such
// stars survive catalog loading but are excluded from any projection.
type Star struct {
	HIP       int
	Pos       *CelestialPoint
	Magnitude *float64
	Bayer     string
	Name      string
}

// Figure is a constellation line figure as read from the segment
// catalog: the IAU code plus star-to-star segments expressed in
// Hipparcos numbers.
type Figure struct {
	Code     string
	Name     string
	Segments [][2]int
}

// NormalizedStar is a star placed on the unit canvas. X and Y are in
// canvas space where (0.5, 0.5) is the frame center and the figure
// fits inside a radius of 0.4.
type NormalizedStar struct {
	Star *Star
	X    float64
	Y    float64
}

// ConstellationRecord is the fully assembled output for one
// constellation: normalized member stars, line segments as index
// pairs into Stars, classification metadata, background stars placed
// in the same frame, and the untouched boundary polyline if one was
// supplied.
type ConstellationRecord struct {
	Code       string
	Name       string
	Hemisphere string
	Difficulty string
	Seasons    []string
	Center     CelestialPoint
	Projection string
	Stars      []NormalizedStar
	Lines      [][2]int
	Background []NormalizedStar
	Boundary   []CelestialPoint
}

// Chart is the complete generation output handed to storage backends.
// Duration and SkippedFigures describe the run that produced it.
type Chart struct {
	GeneratedAt    time.Time
	Duration       time.Duration
	SkippedFigures int
	Records        []ConstellationRecord
}
