// Package assemble turns a raw constellation figure plus the star
// catalog into a finished record: members resolved and normalized,
// segments rewritten as index pairs, metadata classified, boundary
// attached.
package assemble

import (
	"fmt"
	"log/slog"

	"github.com/skyatlas/chartgen/internal/catalog"
	"github.com/skyatlas/chartgen/internal/classify"
	"github.com/skyatlas/chartgen/internal/frame"
	"github.com/skyatlas/chartgen/internal/model/core"
)

// Assembler builds constellation records. Boundaries may be nil when
// no boundary file was supplied, records then simply omit the
// polyline.
type Assembler struct {
	Log        *slog.Logger
	Boundaries map[string][]core.CelestialPoint
}

// Record assembles one constellation and returns the frame it was
// normalized in, so callers can place background stars in the same
// space. Member stars appear in first-seen segment order,
// deduplicated. Segments referencing stars absent from the catalog, or
// present without coordinates, are dropped and logged. An error is
// returned only when nothing at all resolves, partial figures still
// produce a record.
func (a *Assembler) Record(fig core.Figure, cat *catalog.Catalog) (core.ConstellationRecord, frame.Frame, error) {
	members, index := a.resolveMembers(fig, cat)

	fr, err := frame.Build(members)
	if err != nil {
		return core.ConstellationRecord{}, frame.Frame{}, fmt.Errorf("assemble %s: %w", fig.Code, err)
	}

	lines := make([][2]int, 0, len(fig.Segments))
	dropped := 0
	for _, seg := range fig.Segments {
		ia, okA := index[seg[0]]
		ib, okB := index[seg[1]]
		if !okA || !okB {
			dropped++
			continue
		}
		lines = append(lines, [2]int{ia, ib})
	}
	if dropped > 0 && a.Log != nil {
		a.Log.Debug("dropped segments with unresolved stars",
			"constellation", fig.Code, "dropped", dropped, "kept", len(lines))
	}

	return core.ConstellationRecord{
		Code:       fig.Code,
		Name:       fig.Name,
		Hemisphere: classify.Hemisphere(fr.Center.Dec),
		Difficulty: string(classify.DifficultyFor(fig.Code)),
		Seasons:    classify.Seasons(fr.Center.RA, fr.Center.Dec),
		Center:     fr.Center,
		Projection: fr.Variant.String(),
		Stars:      fr.Normalize(members),
		Lines:      lines,
		Boundary:   a.Boundaries[fig.Code],
	}, fr, nil
}

// resolveMembers walks the figure's segments and collects each
// distinct, placeable star the first time it appears. The returned map
// gives each Hipparcos number its index in the member slice.
func (a *Assembler) resolveMembers(fig core.Figure, cat *catalog.Catalog) ([]*core.Star, map[int]int) {
	var members []*core.Star
	index := make(map[int]int)
	for _, seg := range fig.Segments {
		for _, hip := range [2]int{seg[0], seg[1]} {
			if _, seen := index[hip]; seen {
				continue
			}
			s, ok := cat.Star(hip)
			if !ok || s.Pos == nil {
				continue
			}
			index[hip] = len(members)
			members = append(members, s)
		}
	}
	return members, index
}
