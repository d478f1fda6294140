// internal/storage/db/db.go
package db

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/skyatlas/chartgen/internal/database"
	"github.com/skyatlas/chartgen/internal/model"
	"github.com/skyatlas/chartgen/internal/model/core"
)

// Backend persists charts through the database manager. Postgres when
// reachable, otherwise an in-memory SQLite database dumped to disk on
// Close.
type Backend struct {
	manager *database.Manager
	log     zerolog.Logger
}

// New creates a database-backed chart store.
func New(log zerolog.Logger) *Backend {
	return &Backend{
		manager: database.NewManager(log),
		log:     log,
	}
}

// Init connects and migrates the schema.
func (b *Backend) Init() error {
	if err := b.manager.Connect(); err != nil {
		return fmt.Errorf("connect chart database: %w", err)
	}
	if b.manager.ShouldSaveLocal {
		b.manager.SqliteFilePath = filepath.Join(
			viper.GetString("storage.memory.outputDir"), "constellations.db")
	}
	if err := b.manager.Setup(); err != nil {
		return fmt.Errorf("set up chart schema: %w", err)
	}
	return nil
}

// Close flushes the SQLite fallback to disk when in use.
func (b *Backend) Close() error {
	if b.manager.ShouldSaveLocal && b.manager.IsValid {
		return b.manager.DumpMemoryToDisk()
	}
	return nil
}

// WriteChart stores the run row and all constellation rows.
func (b *Backend) WriteChart(chart *core.Chart) error {
	if !b.manager.IsValid {
		return fmt.Errorf("chart database not connected")
	}

	start := time.Now()
	run := model.ChartRun{
		StartedAt:      chart.GeneratedAt,
		DurationMs:     chart.Duration.Milliseconds(),
		Constellations: len(chart.Records),
		SkippedFigures: chart.SkippedFigures,
	}
	for _, rec := range chart.Records {
		run.MemberStars += len(rec.Stars)
		run.BackgroundStars += len(rec.Background)
	}
	if err := b.manager.DB.Create(&run).Error; err != nil {
		return fmt.Errorf("store chart run: %w", err)
	}

	rows := make([]model.Constellation, 0, len(chart.Records))
	for _, rec := range chart.Records {
		row, err := model.ConstellationFromCore(rec)
		if err != nil {
			return err
		}
		row.ChartRunID = run.ID
		rows = append(rows, row)
	}
	if err := b.manager.DB.Create(&rows).Error; err != nil {
		return fmt.Errorf("store constellations: %w", err)
	}

	b.log.Debug().
		Int("constellations", len(rows)).
		Dur("duration", time.Since(start)).
		Msg("Chart written to database")
	return nil
}
