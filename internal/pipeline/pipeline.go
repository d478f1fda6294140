// Package pipeline runs the full chart generation: every constellation
// figure through assembly and background selection, with per-figure
// fault isolation so one bad figure never sinks the run.
package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/skyatlas/chartgen/internal/assemble"
	"github.com/skyatlas/chartgen/internal/background"
	"github.com/skyatlas/chartgen/internal/catalog"
	"github.com/skyatlas/chartgen/internal/model/core"
)

// Stats summarizes a generation run.
type Stats struct {
	StartedAt       time.Time
	Duration        time.Duration
	Constellations  int
	Skipped         int
	MemberStars     int
	BackgroundStars int
	ByHemisphere    map[string]int
	ByDifficulty    map[string]int
}

// Pipeline generates a chart from loaded inputs. The pipeline is
// sequential, the whole run is a single pass over fewer than a hundred
// figures.
type Pipeline struct {
	Log       *slog.Logger
	Assembler *assemble.Assembler
	Catalog   *catalog.Catalog
	Figures   []core.Figure
}

// Run assembles every figure into a chart. Figures that fail to
// assemble, or panic while assembling, are logged and skipped.
func (p *Pipeline) Run() (*core.Chart, Stats) {
	stats := Stats{
		StartedAt:    time.Now().UTC(),
		ByHemisphere: make(map[string]int),
		ByDifficulty: make(map[string]int),
	}

	chart := &core.Chart{GeneratedAt: stats.StartedAt}
	field := p.Catalog.All()

	for _, fig := range p.Figures {
		rec, err := p.processOne(fig, field)
		if err != nil {
			p.Log.Warn("skipping constellation", "constellation", fig.Code, "error", err)
			stats.Skipped++
			continue
		}

		chart.Records = append(chart.Records, rec)
		stats.Constellations++
		stats.MemberStars += len(rec.Stars)
		stats.BackgroundStars += len(rec.Background)
		stats.ByHemisphere[rec.Hemisphere]++
		stats.ByDifficulty[rec.Difficulty]++

		p.Log.Debug("assembled constellation",
			"constellation", fig.Code,
			"stars", len(rec.Stars),
			"lines", len(rec.Lines),
			"background", len(rec.Background),
			"projection", rec.Projection)
	}

	stats.Duration = time.Since(stats.StartedAt)
	chart.Duration = stats.Duration
	chart.SkippedFigures = stats.Skipped
	p.Log.Info("chart generation complete",
		"constellations", stats.Constellations,
		"skipped", stats.Skipped,
		"memberStars", stats.MemberStars,
		"backgroundStars", stats.BackgroundStars,
		"duration", stats.Duration)
	return chart, stats
}

// processOne assembles a single figure, converting panics into errors.
func (p *Pipeline) processOne(fig core.Figure, field []*core.Star) (rec core.ConstellationRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic assembling %s: %v", fig.Code, r)
		}
	}()

	rec, fr, err := p.Assembler.Record(fig, p.Catalog)
	if err != nil {
		return core.ConstellationRecord{}, err
	}
	rec.Background = background.Select(fr, field)
	return rec, nil
}
