// Package render draws constellation records as ASCII charts for
// quick visual inspection without leaving the terminal. It consumes
// the already-normalized canvas coordinates, so what it shows is
// exactly what chart consumers get.
package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/skyatlas/chartgen/internal/model/core"
)

// Options controls canvas size and whether figure lines are drawn.
type Options struct {
	Width     int
	Height    int
	WithLines bool
}

// DefaultOptions matches a standard 80-column terminal with room for
// the legend.
func DefaultOptions() Options {
	return Options{Width: 70, Height: 45, WithLines: true}
}

const lineGlyph = '·'

// glyph picks a star symbol by brightness. Lower magnitudes are
// brighter.
func glyph(magnitude *float64) rune {
	if magnitude == nil {
		return '∘'
	}
	switch {
	case *magnitude < 1.0:
		return '⬤'
	case *magnitude < 2.5:
		return '●'
	case *magnitude < 4.0:
		return '○'
	default:
		return '∘'
	}
}

// Chart renders the record onto a rune grid and returns it with a
// header and a legend of the brightest members. Stars are drawn over
// lines so line dots never obscure a star.
func Chart(rec core.ConstellationRecord, opts Options) string {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultOptions()
	}

	grid := make([][]rune, opts.Height)
	for i := range grid {
		grid[i] = make([]rune, opts.Width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	if opts.WithLines {
		for _, seg := range rec.Lines {
			if seg[0] < 0 || seg[0] >= len(rec.Stars) || seg[1] < 0 || seg[1] >= len(rec.Stars) {
				continue
			}
			ax, ay := gridPos(rec.Stars[seg[0]], opts)
			bx, by := gridPos(rec.Stars[seg[1]], opts)
			drawLine(grid, ax, ay, bx, by)
		}
	}

	for _, ns := range rec.Stars {
		x, y := gridPos(ns, opts)
		if inBounds(grid, x, y) {
			grid[y][x] = glyph(ns.Star.Magnitude)
		}
	}

	var sb strings.Builder
	title := rec.Name
	if title == "" {
		title = rec.Code
	}
	fmt.Fprintf(&sb, "%s (%s)  %s, %s\n", title, rec.Code, rec.Hemisphere, rec.Difficulty)
	sb.WriteString(strings.Repeat("-", opts.Width) + "\n")
	for _, row := range grid {
		sb.WriteString(string(row) + "\n")
	}
	sb.WriteString(strings.Repeat("-", opts.Width) + "\n")
	sb.WriteString(legend(rec))
	return sb.String()
}

// gridPos maps canvas coordinates onto the grid, flipping Y so north
// is up.
func gridPos(ns core.NormalizedStar, opts Options) (int, int) {
	x := int(math.Round(ns.X * float64(opts.Width-1)))
	y := int(math.Round((1 - ns.Y) * float64(opts.Height-1)))
	return x, y
}

func inBounds(grid [][]rune, x, y int) bool {
	return y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y])
}

// drawLine plots a Bresenham line, skipping cells already holding a
// star glyph.
func drawLine(grid [][]rune, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if inBounds(grid, x0, y0) && grid[y0][x0] == ' ' {
			grid[y0][x0] = lineGlyph
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// legend lists up to the seven brightest members with their labels.
func legend(rec core.ConstellationRecord) string {
	stars := make([]core.NormalizedStar, 0, len(rec.Stars))
	for _, ns := range rec.Stars {
		if ns.Star.Magnitude != nil {
			stars = append(stars, ns)
		}
	}
	sort.SliceStable(stars, func(i, j int) bool {
		return *stars[i].Star.Magnitude < *stars[j].Star.Magnitude
	})
	if len(stars) > 7 {
		stars = stars[:7]
	}

	var sb strings.Builder
	for _, ns := range stars {
		label := ns.Star.Name
		if label == "" {
			label = ns.Star.Bayer
		}
		if label == "" {
			label = fmt.Sprintf("HIP %d", ns.Star.HIP)
		}
		fmt.Fprintf(&sb, "%c %-24s mag %.2f\n", glyph(ns.Star.Magnitude), label, *ns.Star.Magnitude)
	}
	return sb.String()
}
