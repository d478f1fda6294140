package catalog

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/skyatlas/chartgen/internal/model/core"
)

// Column indexes into the pipe-delimited hip_main.dat format.
const (
	hipColID  = 1
	hipColRA  = 3
	hipColDec = 4
	hipColMag = 5
)

// ParseHipparcos reads the pipe-delimited hip_main.dat format. RA in
// the file is in degrees and is converted to hours. Position and
// magnitude are parsed independently: a star with an unreadable
// magnitude still keeps its coordinates and vice versa. Lines without
// a parsable Hipparcos number are dropped.
func ParseHipparcos(r io.Reader) (*Catalog, error) {
	cat := New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), "|")
		if len(parts) <= hipColMag {
			continue
		}

		hip, err := strconv.Atoi(strings.TrimSpace(parts[hipColID]))
		if err != nil {
			continue
		}

		s := &core.Star{HIP: hip}
		ra, errRA := strconv.ParseFloat(strings.TrimSpace(parts[hipColRA]), 64)
		dec, errDec := strconv.ParseFloat(strings.TrimSpace(parts[hipColDec]), 64)
		if errRA == nil && errDec == nil {
			s.Pos = &core.CelestialPoint{RA: ra / 15, Dec: dec}
		}
		if mag, err := strconv.ParseFloat(strings.TrimSpace(parts[hipColMag]), 64); err == nil {
			s.Magnitude = &mag
		}
		cat.Add(s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	return cat, nil
}
