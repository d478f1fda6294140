// Package boundary validates IAU constellation boundary polylines and
// exports them as GeoJSON for inspection in standard mapping tools.
// Boundaries stay in celestial coordinates through the pipeline, only
// the GeoJSON export converts RA hours to degrees.
package boundary

import (
	"errors"
	"fmt"
	"os"
	"sort"

	geojson "github.com/paulmach/go.geojson"
	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/skyatlas/chartgen/internal/model/core"
)

// ErrTooFewVertices is returned for boundaries that cannot enclose an
// area.
var ErrTooFewVertices = errors.New("boundary needs at least 3 vertices")

// Ring builds a closed linear ring from boundary vertices, appending
// the first vertex at the end when the source polyline is left open.
// Coordinates in the ring are degrees on both axes.
func Ring(vertices []core.CelestialPoint) (geom.LineString, error) {
	if len(vertices) < 3 {
		return geom.LineString{}, ErrTooFewVertices
	}

	flat := make([]float64, 0, (len(vertices)+1)*2)
	for _, v := range vertices {
		flat = append(flat, v.RA*15, v.Dec)
	}
	if vertices[0] != vertices[len(vertices)-1] {
		flat = append(flat, vertices[0].RA*15, vertices[0].Dec)
	}

	seq := geom.NewSequence(flat, geom.DimXY)
	ls := geom.NewLineString(seq)
	if !ls.IsClosed() {
		return geom.LineString{}, fmt.Errorf("boundary ring did not close")
	}
	return ls, nil
}

// FeatureCollection converts the boundary table into one GeoJSON
// LineString feature per constellation, ordered by code so the output
// is byte-stable across runs. Boundaries that fail ring validation are
// skipped and reported in the returned map.
func FeatureCollection(bounds map[string][]core.CelestialPoint) (*geojson.FeatureCollection, map[string]error) {
	codes := make([]string, 0, len(bounds))
	for code := range bounds {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fc := geojson.NewFeatureCollection()
	failed := make(map[string]error)
	for _, code := range codes {
		ring, err := Ring(bounds[code])
		if err != nil {
			failed[code] = err
			continue
		}

		seq := ring.Coordinates()
		points := make([][]float64, 0, seq.Length())
		for i := 0; i < seq.Length(); i++ {
			xy := seq.GetXY(i)
			points = append(points, []float64{xy.X, xy.Y})
		}
		feature := geojson.NewLineStringFeature(points)
		feature.SetProperty("code", code)
		fc.AddFeature(feature)
	}
	return fc, failed
}

// WriteGeoJSON serializes a feature collection to path.
func WriteGeoJSON(path string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal boundary geojson: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
