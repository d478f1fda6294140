package db

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyatlas/chartgen/internal/model"
	"github.com/skyatlas/chartgen/internal/model/core"
)

func mag(v float64) *float64 { return &v }

// testBackend wires the backend straight to in-memory SQLite, skipping
// the Postgres attempt Init would make.
func testBackend(t *testing.T) *Backend {
	t.Helper()
	b := New(zerolog.Nop())
	gdb, err := b.manager.GetSqliteDB("")
	require.NoError(t, err)
	b.manager.DB = gdb
	b.manager.IsValid = true
	require.NoError(t, b.manager.Setup())
	return b
}

func testChart() *core.Chart {
	return &core.Chart{
		GeneratedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Duration:       1500 * time.Millisecond,
		SkippedFigures: 1,
		Records: []core.ConstellationRecord{
			{
				Code:       "Tst",
				Name:       "Testellation",
				Hemisphere: "both",
				Difficulty: "medium",
				Seasons:    []string{"winter"},
				Center:     core.CelestialPoint{RA: 5.23, Dec: 10.33},
				Projection: "stereographic",
				Stars: []core.NormalizedStar{
					{Star: &core.Star{HIP: 101, Magnitude: mag(1.5)}, X: 0.4, Y: 0.6},
					{Star: &core.Star{HIP: 102, Magnitude: mag(2.0)}, X: 0.6, Y: 0.4},
				},
				Lines: [][2]int{{0, 1}},
			},
			{
				Code:       "Tsu",
				Name:       "Southern Test",
				Hemisphere: "south",
				Difficulty: "hard",
				Seasons:    []string{"all"},
				Center:     core.CelestialPoint{RA: 14.0, Dec: -75.0},
				Projection: "polar_south",
				Stars: []core.NormalizedStar{
					{Star: &core.Star{HIP: 201, Magnitude: mag(3.5)}, X: 0.5, Y: 0.5},
				},
			},
		},
	}
}

func TestWriteChart(t *testing.T) {
	b := testBackend(t)
	require.NoError(t, b.WriteChart(testChart()))

	var run model.ChartRun
	require.NoError(t, b.manager.DB.First(&run).Error)
	assert.Equal(t, 2, run.Constellations)
	assert.Equal(t, 3, run.MemberStars)
	assert.Equal(t, int64(1500), run.DurationMs)
	assert.Equal(t, 1, run.SkippedFigures)
	assert.True(t, run.StartedAt.Equal(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)),
		"timestamp survives the SQLite round trip")

	var rows []model.Constellation
	require.NoError(t, b.manager.DB.Order("code").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "Tst", rows[0].Code)
	assert.Equal(t, run.ID, rows[0].ChartRunID)
	assert.Equal(t, "polar_south", rows[1].ProjectionType)
}

func TestWriteChartNotConnected(t *testing.T) {
	b := New(zerolog.Nop())
	assert.Error(t, b.WriteChart(testChart()))
}
