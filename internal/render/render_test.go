package render

import (
	"strings"
	"testing"

	"github.com/skyatlas/chartgen/internal/model/core"
)

func mag(v float64) *float64 { return &v }

func testRecord() core.ConstellationRecord {
	return core.ConstellationRecord{
		Code:       "Tst",
		Name:       "Testellation",
		Hemisphere: "both",
		Difficulty: "medium",
		Stars: []core.NormalizedStar{
			{Star: &core.Star{HIP: 1, Magnitude: mag(0.5), Name: "Brightest"}, X: 0.1, Y: 0.1},
			{Star: &core.Star{HIP: 2, Magnitude: mag(2.0), Bayer: "β Tst"}, X: 0.9, Y: 0.9},
			{Star: &core.Star{HIP: 3, Magnitude: mag(3.0)}, X: 0.5, Y: 0.1},
			{Star: &core.Star{HIP: 4, Magnitude: mag(5.5)}, X: 0.5, Y: 0.9},
			{Star: &core.Star{HIP: 5}, X: 0.2, Y: 0.5},
		},
		Lines: [][2]int{{0, 1}, {2, 3}},
	}
}

func TestChartGlyphs(t *testing.T) {
	out := Chart(testRecord(), Options{Width: 40, Height: 20, WithLines: false})

	for _, want := range []string{"⬤", "●", "○", "∘"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing glyph %q:\n%s", want, out)
		}
	}
	if strings.ContainsRune(out, lineGlyph) {
		t.Error("lines drawn despite WithLines=false")
	}
}

func TestChartDrawsLines(t *testing.T) {
	out := Chart(testRecord(), Options{Width: 40, Height: 20, WithLines: true})
	if !strings.ContainsRune(out, lineGlyph) {
		t.Errorf("no line glyphs in chart:\n%s", out)
	}
}

func TestChartHeader(t *testing.T) {
	out := Chart(testRecord(), DefaultOptions())
	if !strings.HasPrefix(out, "Testellation (Tst)  both, medium") {
		t.Errorf("unexpected header: %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestLegendOrderAndLabels(t *testing.T) {
	out := Chart(testRecord(), DefaultOptions())

	iBright := strings.Index(out, "Brightest")
	iBeta := strings.Index(out, "β Tst")
	iHip := strings.Index(out, "HIP 3")
	if iBright == -1 || iBeta == -1 || iHip == -1 {
		t.Fatalf("legend missing entries:\n%s", out)
	}
	if !(iBright < iBeta && iBeta < iHip) {
		t.Error("legend not sorted brightest first")
	}
	if strings.Contains(out, "HIP 5") {
		t.Error("star without magnitude listed in legend")
	}
}

func TestChartClipsOutOfRangeStars(t *testing.T) {
	rec := testRecord()
	rec.Stars = append(rec.Stars, core.NormalizedStar{
		Star: &core.Star{HIP: 9, Magnitude: mag(1.0)}, X: 1.7, Y: -0.3,
	})
	// Must not panic, the stray star is simply not drawn.
	out := Chart(rec, Options{Width: 30, Height: 15, WithLines: true})
	if out == "" {
		t.Fatal("empty chart")
	}
}

func TestChartBadOptionsFallBack(t *testing.T) {
	out := Chart(testRecord(), Options{})
	lines := strings.Split(out, "\n")
	if len(lines) < DefaultOptions().Height {
		t.Errorf("expected default canvas height, got %d lines", len(lines))
	}
}
