package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHemisphere(t *testing.T) {
	tests := []struct {
		name string
		dec  float64
		want string
	}{
		{"deep north", 65.0, "north"},
		{"just past northern band", 20.1, "north"},
		{"equatorial", 0.0, "both"},
		{"edge of band counts as both", 20.0, "both"},
		{"southern edge counts as both", -20.0, "both"},
		{"deep south", -45.0, "south"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hemisphere(tt.dec))
		})
	}
}

func TestSeasons(t *testing.T) {
	tests := []struct {
		name string
		ra   float64
		dec  float64
		want []string
	}{
		{"autumn late", 22.5, 0, []string{"autumn"}},
		{"autumn early", 1.0, 0, []string{"autumn"}},
		{"winter", 5.2, 10, []string{"winter"}},
		{"winter lower edge", 3.0, 0, []string{"winter"}},
		{"spring", 12.0, -10, []string{"spring"}},
		{"summer", 18.0, 5, []string{"summer"}},
		{"summer upper edge", 20.99, 5, []string{"summer"}},
		{"northern circumpolar", 2.0, 75.0, []string{"all"}},
		{"southern circumpolar", 14.0, -82.0, []string{"all"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Seasons(tt.ra, tt.dec))
		})
	}
}

func TestDifficultyFor(t *testing.T) {
	assert.Equal(t, Easy, DifficultyFor("Ori"))
	assert.Equal(t, Medium, DifficultyFor("Boo"))
	assert.Equal(t, Hard, DifficultyFor("Mic"))
	assert.Equal(t, Medium, DifficultyFor("Xyz"), "unknown codes default to medium")
}

func TestDifficultyTableCoversAllConstellations(t *testing.T) {
	// 88 modern constellations, with Serpens charted as one figure.
	assert.Len(t, difficultyRatings, 87)
}
