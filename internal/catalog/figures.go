package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/skyatlas/chartgen/internal/model/core"
)

// ParseFigures reads the constellationship.fab format: one line per
// constellation of "<code> <nsegs> <hip> <hip> ...", with each segment
// taking two star ids. Lines that do not look like a constellation
// record (wrong code shape, missing count) are skipped, a declared
// count larger than the ids actually present truncates to whole pairs.
func ParseFigures(r io.Reader) ([]core.Figure, error) {
	var figures []core.Figure

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}
		code := parts[0]
		if !validFigureCode(code) {
			continue
		}
		nsegs, err := strconv.Atoi(parts[1])
		if err != nil || nsegs <= 0 {
			continue
		}

		ids := parts[2:]
		if len(ids) > 2*nsegs {
			ids = ids[:2*nsegs]
		}
		var segments [][2]int
		for i := 0; i+1 < len(ids); i += 2 {
			a, errA := strconv.Atoi(ids[i])
			b, errB := strconv.Atoi(ids[i+1])
			if errA != nil || errB != nil {
				continue
			}
			segments = append(segments, [2]int{a, b})
		}
		if len(segments) == 0 {
			continue
		}
		figures = append(figures, core.Figure{Code: code, Segments: segments})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(figures) == 0 {
		return nil, fmt.Errorf("no constellation figures found")
	}
	return figures, nil
}

// validFigureCode accepts three-character IAU codes starting with an
// uppercase letter, e.g. "Ori" or "CMa".
func validFigureCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	return unicode.IsUpper(rune(code[0]))
}

// ParseFigureNames reads the JSON table mapping IAU codes to full
// constellation names.
func ParseFigureNames(r io.Reader) (map[string]string, error) {
	var names map[string]string
	if err := json.NewDecoder(r).Decode(&names); err != nil {
		return nil, fmt.Errorf("decode constellation names: %w", err)
	}
	return names, nil
}

// ApplyFigureNames fills in the display name on each figure, falling
// back to the code itself when the table has no entry.
func ApplyFigureNames(figures []core.Figure, names map[string]string) {
	for i := range figures {
		if n, ok := names[figures[i].Code]; ok {
			figures[i].Name = n
		} else {
			figures[i].Name = figures[i].Code
		}
	}
}

// ApplyFigureFixes patches known gaps in the upstream segment catalog.
// Hydra's published figure stops short of its tail, the extra segment
// closes it.
func ApplyFigureFixes(figures []core.Figure) {
	for i := range figures {
		if figures[i].Code == "Hya" {
			figures[i].Segments = append(figures[i].Segments, [2]int{53740, 54682})
		}
	}
}
