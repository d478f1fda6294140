package catalog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// greekLetters gates which name.fab designations are kept. A Bayer
// designation such as "α_And" carries a Greek letter; Flamsteed
// numbers ("22_And") and catalog cross-references share the file but
// are noise for chart labels.
const greekLetters = "αβγδεζηθικλμνξοπρστυφχψω"

// ParseBayerDesignations reads the name.fab format of "<hip>|<name>"
// lines and returns designations containing a Greek letter, keyed by
// Hipparcos number. Underscores become spaces, the first designation
// seen for a star wins. Identifiers longer than six digits belong to
// other catalogs and are skipped.
func ParseBayerDesignations(r io.Reader) (map[int]string, error) {
	out := make(map[int]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, name, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}
		id = strings.TrimSpace(id)
		if len(id) > 6 {
			continue
		}
		hip, err := strconv.Atoi(id)
		if err != nil {
			continue
		}

		name = strings.ReplaceAll(strings.TrimSpace(name), "_", " ")
		if !strings.ContainsAny(name, greekLetters) {
			continue
		}
		if _, seen := out[hip]; !seen {
			out[hip] = name
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseProperNames reads the IAU star name CSV and returns proper
// names keyed by Hipparcos number. Column positions come from the
// header row, matched case-insensitively.
func ParseProperNames(r io.Reader) (map[int]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read name catalog header: %w", err)
	}
	hipCol, nameCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "hip":
			hipCol = i
		case "proper names", "proper name", "name":
			if nameCol == -1 {
				nameCol = i
			}
		}
	}
	if hipCol == -1 || nameCol == -1 {
		return nil, fmt.Errorf("name catalog header missing HIP or name column: %v", header)
	}

	out := make(map[int]string)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read name catalog row: %w", err)
		}
		if len(rec) <= hipCol || len(rec) <= nameCol {
			continue
		}
		hip, err := strconv.Atoi(strings.TrimSpace(rec[hipCol]))
		if err != nil {
			continue
		}
		name := strings.TrimSpace(rec[nameCol])
		if name == "" {
			continue
		}
		if _, seen := out[hip]; !seen {
			out[hip] = name
		}
	}
	return out, nil
}

// ApplyDesignations attaches Bayer designations and proper names to
// catalog stars in place. Names for stars missing from the catalog are
// ignored.
func ApplyDesignations(c *Catalog, bayer map[int]string, proper map[int]string) {
	for hip, d := range bayer {
		if s, ok := c.Star(hip); ok {
			s.Bayer = d
		}
	}
	for hip, n := range proper {
		if s, ok := c.Star(hip); ok {
			s.Name = n
		}
	}
}
