package projection

import (
	"math"
	"testing"

	"github.com/skyatlas/chartgen/internal/model/core"
)

const eps = 1e-9

func TestAngularDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b core.CelestialPoint
		want float64
	}{
		{
			name: "identical points",
			a:    core.CelestialPoint{RA: 5.5, Dec: 12.0},
			b:    core.CelestialPoint{RA: 5.5, Dec: 12.0},
			want: 0,
		},
		{
			name: "pole to pole",
			a:    core.CelestialPoint{RA: 0, Dec: 90},
			b:    core.CelestialPoint{RA: 12, Dec: -90},
			want: 180,
		},
		{
			name: "quarter circle along equator",
			a:    core.CelestialPoint{RA: 0, Dec: 0},
			b:    core.CelestialPoint{RA: 6, Dec: 0},
			want: 90,
		},
		{
			name: "meridian arc",
			a:    core.CelestialPoint{RA: 3, Dec: 10},
			b:    core.CelestialPoint{RA: 3, Dec: 55},
			want: 45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularDistance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngularDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngularDistanceSymmetric(t *testing.T) {
	a := core.CelestialPoint{RA: 5.9, Dec: 7.4}
	b := core.CelestialPoint{RA: 18.6, Dec: 38.8}
	if d1, d2 := AngularDistance(a, b), AngularDistance(b, a); math.Abs(d1-d2) > eps {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestSelectVariant(t *testing.T) {
	tests := []struct {
		name    string
		meanDec float64
		want    Variant
	}{
		{"equatorial", 10.0, TangentPlane},
		{"exactly at northern threshold", 60.0, TangentPlane},
		{"just past northern threshold", 60.01, PolarNorth},
		{"deep north", 75.0, PolarNorth},
		{"exactly at southern threshold", -60.0, TangentPlane},
		{"deep south", -72.5, PolarSouth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectVariant(tt.meanDec); got != tt.want {
				t.Errorf("SelectVariant(%v) = %v, want %v", tt.meanDec, got, tt.want)
			}
		})
	}
}

func TestVariantString(t *testing.T) {
	if got := TangentPlane.String(); got != "stereographic" {
		t.Errorf("TangentPlane.String() = %q", got)
	}
	if got := PolarNorth.String(); got != "polar_north" {
		t.Errorf("PolarNorth.String() = %q", got)
	}
	if got := PolarSouth.String(); got != "polar_south" {
		t.Errorf("PolarSouth.String() = %q", got)
	}
}

func TestTangentCenterProjectsToOrigin(t *testing.T) {
	center := core.CelestialPoint{RA: 5.2, Dec: 10.3}
	got := Project(center, TangentPlane, center)
	if got.X != 0 || math.Abs(got.Y) > eps {
		t.Errorf("center projected to (%v, %v), want origin", got.X, got.Y)
	}
}

func TestPolarNorthPoleProjectsToOrigin(t *testing.T) {
	pole := core.CelestialPoint{RA: 0, Dec: 90}
	got := Project(pole, PolarNorth, core.CelestialPoint{})
	if math.Abs(got.X) > eps || math.Abs(got.Y) > eps {
		t.Errorf("north pole projected to (%v, %v), want origin", got.X, got.Y)
	}
}

func TestPolarSouthMirrorsNorth(t *testing.T) {
	north := core.CelestialPoint{RA: 4.0, Dec: 70.0}
	south := core.CelestialPoint{RA: 4.0, Dec: -70.0}
	pn := Project(north, PolarNorth, core.CelestialPoint{})
	ps := Project(south, PolarSouth, core.CelestialPoint{})
	if math.Abs(pn.X-ps.X) > eps || math.Abs(pn.Y-ps.Y) > eps {
		t.Errorf("polar south (%v, %v) does not mirror polar north (%v, %v)", ps.X, ps.Y, pn.X, pn.Y)
	}
}

func TestTangentEastPointsLeft(t *testing.T) {
	center := core.CelestialPoint{RA: 6.0, Dec: 0}
	east := core.CelestialPoint{RA: 6.5, Dec: 0}
	got := Project(east, TangentPlane, center)
	if got.X >= 0 {
		t.Errorf("point east of center projected to X = %v, want negative", got.X)
	}
}

func TestProjectDeterministic(t *testing.T) {
	center := core.CelestialPoint{RA: 13.4, Dec: -48.9}
	p := core.CelestialPoint{RA: 12.8, Dec: -50.7}
	first := Project(p, TangentPlane, center)
	for i := 0; i < 10; i++ {
		if got := Project(p, TangentPlane, center); got != first {
			t.Fatalf("projection not deterministic: %v vs %v", got, first)
		}
	}
}
