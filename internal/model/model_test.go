package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyatlas/chartgen/internal/model/core"
)

func mag(v float64) *float64 { return &v }

func sampleRecord() core.ConstellationRecord {
	return core.ConstellationRecord{
		Code:       "Tst",
		Name:       "Testellation",
		Hemisphere: "both",
		Difficulty: "medium",
		Seasons:    []string{"winter"},
		Center:     core.CelestialPoint{RA: 5.2333333, Dec: 10.333333},
		Projection: "stereographic",
		Stars: []core.NormalizedStar{
			{Star: &core.Star{HIP: 101, Magnitude: mag(1.5), Bayer: "α Tst", Name: "Testar"}, X: 0.123456789, Y: 0.5},
			{Star: &core.Star{HIP: 102, Magnitude: mag(2.0)}, X: 0.9, Y: 0.100000049},
		},
		Lines:      [][2]int{{0, 1}},
		Background: []core.NormalizedStar{{Star: &core.Star{HIP: 300, Magnitude: mag(5.5)}, X: 0.2, Y: 0.8}},
	}
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 0.123457, Round6(0.123456789))
	assert.Equal(t, 5.23, Round2(5.2333333))
	assert.Equal(t, -0.1, Round6(-0.1))
}

func TestConstellationFromCore(t *testing.T) {
	row, err := ConstellationFromCore(sampleRecord())
	require.NoError(t, err)

	assert.Equal(t, "Tst", row.Code)
	assert.Equal(t, 5.23, row.RACenter)
	assert.Equal(t, 10.33, row.DecCenter)
	assert.Empty(t, row.Boundary, "no boundary leaves the column null")

	var stars []StarDoc
	require.NoError(t, json.Unmarshal(row.Stars, &stars))
	require.Len(t, stars, 2)
	assert.Equal(t, 101, stars[0].HIP)
	assert.Equal(t, 0.123457, stars[0].X)
	assert.Equal(t, "α Tst", stars[0].Bayer)
	assert.Equal(t, "Testar", stars[0].Name)
	assert.Equal(t, 0.1, stars[1].Y, "coordinates rounded to 6 decimals")

	var lines [][2]int
	require.NoError(t, json.Unmarshal(row.Lines, &lines))
	assert.Equal(t, [][2]int{{0, 1}}, lines)

	var bg []StarDoc
	require.NoError(t, json.Unmarshal(row.Background, &bg))
	require.Len(t, bg, 1)
	assert.Equal(t, 300, bg[0].HIP)
}

func TestConstellationFromCoreEmptyLines(t *testing.T) {
	rec := sampleRecord()
	rec.Lines = nil
	row, err := ConstellationFromCore(rec)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(row.Lines), "missing lines serialize as empty array, not null")
}

func TestConstellationFromCoreBoundary(t *testing.T) {
	rec := sampleRecord()
	rec.Boundary = []core.CelestialPoint{{RA: 4.9, Dec: 8.0}, {RA: 5.6, Dec: 8.0}, {RA: 5.6, Dec: 13.0}}
	row, err := ConstellationFromCore(rec)
	require.NoError(t, err)

	var boundary []core.CelestialPoint
	require.NoError(t, json.Unmarshal(row.Boundary, &boundary))
	assert.Equal(t, rec.Boundary, boundary)
}

func TestStarDocOmitsEmptyNames(t *testing.T) {
	doc := StarDoc{HIP: 1, X: 0.5, Y: 0.5}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "bayer")
	assert.NotContains(t, string(data), `"name"`)
	assert.Contains(t, string(data), `"magnitude":null`, "magnitude stays explicit even when unknown")
}
