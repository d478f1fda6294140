// internal/storage/memory/export.go
package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skyatlas/chartgen/internal/model"
	"github.com/skyatlas/chartgen/internal/model/core"
)

// ChartExport is the root JSON structure
type ChartExport struct {
	GeneratedAt    string              `json:"generatedAt"`
	Count          int                 `json:"count"`
	Constellations []ConstellationJSON `json:"constellations"`
}

// ConstellationJSON is one constellation in the export document. Field
// names follow the consumer-facing chart format.
type ConstellationJSON struct {
	Name           string          `json:"name"`
	Abbrev         string          `json:"abbrev"`
	Hemisphere     string          `json:"hemisphere"`
	Difficulty     string          `json:"difficulty"`
	Seasons        []string        `json:"seasons"`
	RACenter       float64         `json:"ra_center"`
	DecCenter      float64         `json:"dec_center"`
	ProjectionType string          `json:"projection_type"`
	Stars          []model.StarDoc `json:"stars"`
	Lines          [][2]int        `json:"lines"`
	Background     []model.StarDoc `json:"background_stars"`
	Boundary       [][2]float64    `json:"boundary,omitempty"`
}

// exportJSON writes the chart to a timestamped file in the output
// directory.
func (b *Backend) exportJSON(chart *core.Chart) error {
	export := buildExport(chart)

	timestamp := chart.GeneratedAt.Format("20060102_150405")
	var filename string
	if b.cfg.CompressOutput {
		filename = fmt.Sprintf("constellations_%s.json.gz", timestamp)
	} else {
		filename = fmt.Sprintf("constellations_%s.json", timestamp)
	}
	outputPath := filepath.Join(b.cfg.OutputDir, filename)

	// Ensure output directory exists
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if b.cfg.CompressOutput {
		if err := writeGzipJSON(outputPath, export); err != nil {
			return err
		}
	} else {
		if err := writeJSON(outputPath, export); err != nil {
			return err
		}
	}

	b.lastExportPath = outputPath
	return nil
}

func buildExport(chart *core.Chart) ChartExport {
	export := ChartExport{
		GeneratedAt:    chart.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Count:          len(chart.Records),
		Constellations: make([]ConstellationJSON, 0, len(chart.Records)),
	}

	for _, rec := range chart.Records {
		doc := ConstellationJSON{
			Name:           rec.Name,
			Abbrev:         rec.Code,
			Hemisphere:     rec.Hemisphere,
			Difficulty:     rec.Difficulty,
			Seasons:        rec.Seasons,
			RACenter:       model.Round2(rec.Center.RA),
			DecCenter:      model.Round2(rec.Center.Dec),
			ProjectionType: rec.Projection,
			Stars:          model.StarDocs(rec.Stars),
			Lines:          rec.Lines,
			Background:     model.StarDocs(rec.Background),
		}
		if doc.Lines == nil {
			doc.Lines = [][2]int{}
		}
		for _, v := range rec.Boundary {
			doc.Boundary = append(doc.Boundary, [2]float64{v.RA, v.Dec})
		}
		export.Constellations = append(export.Constellations, doc)
	}
	return export
}

func writeJSON(path string, export ChartExport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

func writeGzipJSON(path string, export ChartExport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	enc := json.NewEncoder(gz)
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}
