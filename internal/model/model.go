package model

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skyatlas/chartgen/internal/model/core"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&ChartRun{},
	&Constellation{},
}

// ChartRun records one generation run: when it happened and what it
// produced. Constellations reference their run so repeated runs can
// coexist in one database.
type ChartRun struct {
	gorm.Model
	// No explicit column type so each dialect picks its native
	// timestamp representation; the SQLite fallback cannot scan a
	// Postgres timestamptz column back into time.Time.
	StartedAt       time.Time `json:"startedAt" gorm:"index:idx_chartrun_started"`
	DurationMs      int64     `json:"durationMs"`
	Constellations  int       `json:"constellations"`
	SkippedFigures  int       `json:"skippedFigures"`
	MemberStars     int       `json:"memberStars"`
	BackgroundStars int       `json:"backgroundStars"`
}

func (*ChartRun) TableName() string {
	return "chart_runs"
}

// Constellation is one assembled constellation record. Variable-length
// pieces (stars, lines, background, boundary) are stored as JSON
// documents rather than join tables, the chart is read back whole or
// not at all.
type Constellation struct {
	gorm.Model
	ChartRunID     uint           `json:"chartRunId" gorm:"index:idx_constellation_run_id"`
	ChartRun       ChartRun       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ChartRunID;"`
	Code           string         `json:"abbrev" gorm:"size:3;index:idx_constellation_code"`
	Name           string         `json:"name" gorm:"size:63"`
	Hemisphere     string         `json:"hemisphere" gorm:"size:8"`
	Difficulty     string         `json:"difficulty" gorm:"size:8"`
	Seasons        datatypes.JSON `json:"seasons"`
	RACenter       float64        `json:"raCenter"`
	DecCenter      float64        `json:"decCenter"`
	ProjectionType string         `json:"projectionType" gorm:"size:16"`
	Stars          datatypes.JSON `json:"stars"`
	Lines          datatypes.JSON `json:"lines"`
	Background     datatypes.JSON `json:"backgroundStars"`
	Boundary       datatypes.JSON `json:"boundary"`
}

func (*Constellation) TableName() string {
	return "constellations"
}

// StarDoc is the JSON shape of a placed star, shared by the database
// rows and the file export.
type StarDoc struct {
	HIP       int      `json:"hip"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Magnitude *float64 `json:"magnitude"`
	Bayer     string   `json:"bayer,omitempty"`
	Name      string   `json:"name,omitempty"`
}

// Round6 rounds canvas coordinates for export. Six decimals keeps
// sub-pixel precision on any realistic canvas while keeping documents
// compact.
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Round2 rounds center coordinates for export.
func Round2(v float64) float64 {
	return math.Round(v*1e2) / 1e2
}

// StarDocs flattens normalized stars into their JSON documents, canvas
// coordinates rounded to 6 decimals.
func StarDocs(stars []core.NormalizedStar) []StarDoc {
	docs := make([]StarDoc, 0, len(stars))
	for _, ns := range stars {
		docs = append(docs, StarDoc{
			HIP:       ns.Star.HIP,
			X:         Round6(ns.X),
			Y:         Round6(ns.Y),
			Magnitude: ns.Star.Magnitude,
			Bayer:     ns.Star.Bayer,
			Name:      ns.Star.Name,
		})
	}
	return docs
}

// ConstellationFromCore converts an assembled record into its database
// row. The JSON columns reuse the export document shapes so database
// and file output stay interchangeable.
func ConstellationFromCore(rec core.ConstellationRecord) (Constellation, error) {
	row := Constellation{
		Code:           rec.Code,
		Name:           rec.Name,
		Hemisphere:     rec.Hemisphere,
		Difficulty:     rec.Difficulty,
		RACenter:       Round2(rec.Center.RA),
		DecCenter:      Round2(rec.Center.Dec),
		ProjectionType: rec.Projection,
	}

	lines := rec.Lines
	if lines == nil {
		lines = [][2]int{}
	}
	cols := []struct {
		name string
		dst  *datatypes.JSON
		src  any
	}{
		{"seasons", &row.Seasons, rec.Seasons},
		{"stars", &row.Stars, StarDocs(rec.Stars)},
		{"lines", &row.Lines, lines},
		{"background", &row.Background, StarDocs(rec.Background)},
	}
	for _, c := range cols {
		data, err := json.Marshal(c.src)
		if err != nil {
			return Constellation{}, fmt.Errorf("marshal %s for %s: %w", c.name, rec.Code, err)
		}
		*c.dst = data
	}

	if len(rec.Boundary) > 0 {
		data, err := json.Marshal(rec.Boundary)
		if err != nil {
			return Constellation{}, fmt.Errorf("marshal boundary for %s: %w", rec.Code, err)
		}
		row.Boundary = data
	}
	return row, nil
}
