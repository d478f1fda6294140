// Package background selects the field stars drawn behind a
// constellation figure. Candidates come from the full star catalog and
// are placed through the exact same frame as the figure's members, so
// relative positions stay truthful.
package background

import (
	"github.com/skyatlas/chartgen/internal/frame"
	"github.com/skyatlas/chartgen/internal/model/core"
	"github.com/skyatlas/chartgen/internal/projection"
)

// viewportTolerance extends the unit square on every side so stars
// just beyond the canvas edge are kept for renderers that bleed past
// the border.
const viewportTolerance = 0.1

// Select returns the catalog stars that fall inside the frame's padded
// viewport. Stars without coordinates or magnitude are skipped, the
// cheap angular cutoff runs before any projection so the bulk of the
// catalog never reaches the math.
//
// Output order follows catalog order, so the result is independent of
// anything but the catalog itself and the frame.
func Select(f frame.Frame, catalog []*core.Star) []core.NormalizedStar {
	var out []core.NormalizedStar
	for _, s := range catalog {
		if s == nil || s.Pos == nil || s.Magnitude == nil {
			continue
		}
		if d := projection.AngularDistance(f.Center, *s.Pos); d > f.PaddedRadius {
			continue
		}
		x, y := f.Place(*s.Pos)
		if x < -viewportTolerance || x > 1+viewportTolerance ||
			y < -viewportTolerance || y > 1+viewportTolerance {
			continue
		}
		out = append(out, core.NormalizedStar{Star: s, X: x, Y: y})
	}
	return out
}
