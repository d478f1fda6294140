package catalog

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/skyatlas/chartgen/internal/model/core"
)

// ParseBoundaries reads IAU boundary vertices as whitespace-separated
// "<ra> <dec> <code>" triples, RA in hours. Vertices keep file order
// per constellation, which is the drawing order of the boundary
// polyline. Unreadable lines are skipped.
func ParseBoundaries(r io.Reader) (map[string][]core.CelestialPoint, error) {
	out := make(map[string][]core.CelestialPoint)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		ra, errRA := strconv.ParseFloat(parts[0], 64)
		dec, errDec := strconv.ParseFloat(parts[1], 64)
		if errRA != nil || errDec != nil {
			continue
		}
		code := parts[2]
		out[code] = append(out[code], core.CelestialPoint{RA: ra, Dec: dec})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
