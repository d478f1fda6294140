package background

import (
	"testing"

	"github.com/skyatlas/chartgen/internal/frame"
	"github.com/skyatlas/chartgen/internal/model/core"
)

func mag(v float64) *float64 { return &v }

func fieldStar(hip int, ra, dec float64, m *float64) *core.Star {
	return &core.Star{HIP: hip, Pos: &core.CelestialPoint{RA: ra, Dec: dec}, Magnitude: m}
}

func testFrame(t *testing.T) frame.Frame {
	t.Helper()
	f, err := frame.Build([]*core.Star{
		fieldStar(1, 6.0, 10.0, mag(2.0)),
		fieldStar(2, 6.0, -10.0, mag(2.5)),
	})
	if err != nil {
		t.Fatalf("frame.Build() error = %v", err)
	}
	return f
}

func TestSelectSkipsIncompleteStars(t *testing.T) {
	f := testFrame(t)
	catalog := []*core.Star{
		{HIP: 10, Magnitude: mag(3.0)},                          // no coordinates
		{HIP: 11, Pos: &core.CelestialPoint{RA: 6.0, Dec: 1.0}}, // no magnitude
		fieldStar(12, 6.0, 1.0, mag(4.1)),                       // complete, near center
		nil,
	}
	got := Select(f, catalog)
	if len(got) != 1 || got[0].Star.HIP != 12 {
		t.Fatalf("Select() = %v, want only HIP 12", got)
	}
}

func TestSelectAngularCutoff(t *testing.T) {
	f := testFrame(t) // max radius 10 deg, padded 20 deg
	catalog := []*core.Star{
		fieldStar(20, 6.0, 14.0, mag(5.0)), // 14 deg out, inside padding
		fieldStar(21, 6.0, 45.0, mag(1.0)), // 45 deg out, past padding
	}
	got := Select(f, catalog)
	if len(got) != 1 || got[0].Star.HIP != 20 {
		t.Fatalf("Select() kept %v, want only HIP 20", got)
	}
}

func TestSelectViewportCutoff(t *testing.T) {
	f := testFrame(t)
	// 19.9 deg from center: survives the angular cutoff but lands far
	// outside the [-0.1, 1.1] viewport (the figure spans only 10 deg
	// to canvas radius 0.4).
	catalog := []*core.Star{fieldStar(30, 6.0, 19.9, mag(3.3))}
	if got := Select(f, catalog); len(got) != 0 {
		t.Fatalf("Select() kept %v, want none", got)
	}
}

func TestSelectOrderInsensitive(t *testing.T) {
	f := testFrame(t)
	a := fieldStar(40, 6.1, 2.0, mag(3.0))
	b := fieldStar(41, 5.9, -3.0, mag(4.0))
	c := fieldStar(42, 6.0, 8.0, mag(2.2))

	first := Select(f, []*core.Star{a, b, c})
	second := Select(f, []*core.Star{c, a, b})
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("selection sizes = %d, %d, want 3 each", len(first), len(second))
	}
	seen := map[int][2]float64{}
	for _, ns := range first {
		seen[ns.Star.HIP] = [2]float64{ns.X, ns.Y}
	}
	for _, ns := range second {
		if got, ok := seen[ns.Star.HIP]; !ok || got != [2]float64{ns.X, ns.Y} {
			t.Errorf("HIP %d placement differs across orderings", ns.Star.HIP)
		}
	}
}
