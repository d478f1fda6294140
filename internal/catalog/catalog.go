// Package catalog loads the raw astronomical inputs: the Hipparcos
// star catalog, Bayer and proper name tables, constellation line
// figures, and IAU boundary polylines. Parsers are forgiving about
// malformed lines, a bad record is skipped rather than failing the
// whole file.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/skyatlas/chartgen/internal/model/core"
)

// ErrEmptyCatalog indicates an input parsed without error but yielded
// no usable stars, usually a sign the wrong file was supplied.
var ErrEmptyCatalog = errors.New("catalog contains no stars")

// Catalog is the full star table keyed by Hipparcos number. Insertion
// order is preserved so downstream selection is reproducible run to
// run.
type Catalog struct {
	stars map[int]*core.Star
	order []int
}

func New() *Catalog {
	return &Catalog{stars: make(map[int]*core.Star)}
}

// Add inserts a star, replacing any previous entry with the same
// Hipparcos number without disturbing its position in the order.
func (c *Catalog) Add(s *core.Star) {
	if _, ok := c.stars[s.HIP]; !ok {
		c.order = append(c.order, s.HIP)
	}
	c.stars[s.HIP] = s
}

// Star looks up a catalog entry by Hipparcos number.
func (c *Catalog) Star(hip int) (*core.Star, bool) {
	s, ok := c.stars[hip]
	return s, ok
}

// All returns every star in insertion order. The returned slice is
// freshly allocated, the stars themselves are shared.
func (c *Catalog) All() []*core.Star {
	out := make([]*core.Star, 0, len(c.order))
	for _, hip := range c.order {
		out = append(out, c.stars[hip])
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// LoadHipparcos reads a Hipparcos main catalog file from disk.
func LoadHipparcos(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open star catalog: %w", err)
	}
	defer f.Close()
	return ParseHipparcos(f)
}
