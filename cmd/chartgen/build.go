package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/skyatlas/chartgen/internal/boundary"
	"github.com/skyatlas/chartgen/internal/config"
	"github.com/skyatlas/chartgen/internal/influx"
	"github.com/skyatlas/chartgen/internal/pipeline"
	"github.com/skyatlas/chartgen/internal/storage"
)

// runBuild is the main generation path: load inputs, assemble every
// constellation, persist the chart, then report run stats.
func runBuild() error {
	p, err := loadInputs()
	if err != nil {
		return err
	}

	chart, stats := p.Run()
	if stats.Constellations == 0 {
		return fmt.Errorf("no constellations assembled")
	}
	Logger.Info("figure breakdown",
		"byHemisphere", stats.ByHemisphere,
		"byDifficulty", stats.ByDifficulty)

	backend, err := storage.NewBackend(config.Storage(), zerologConsole())
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return err
	}
	if err := backend.WriteChart(chart); err != nil {
		backend.Close()
		return err
	}
	if err := backend.Close(); err != nil {
		return err
	}
	if exp, ok := backend.(storage.Exportable); ok {
		Logger.Info("chart exported", "path", exp.GetExportedFilePath())
	}

	if path := config.GetString("export.boundaryGeoJSON"); path != "" && p.Assembler.Boundaries != nil {
		if err := exportBoundaries(path, p); err != nil {
			Logger.Warn("boundary export failed", "error", err)
		}
	}

	reportRunStats(stats)
	return nil
}

func exportBoundaries(path string, p *pipeline.Pipeline) error {
	fc, failed := boundary.FeatureCollection(p.Assembler.Boundaries)
	for code, err := range failed {
		Logger.Warn("boundary failed validation", "constellation", code, "error", err)
	}
	if err := boundary.WriteGeoJSON(path, fc); err != nil {
		return err
	}
	Logger.Info("boundaries exported", "path", path, "features", len(fc.Features))
	return nil
}

// reportRunStats ships run metrics to InfluxDB when enabled. Metric
// trouble never fails the build, the chart is already on disk.
func reportRunStats(stats pipeline.Stats) {
	if !config.GetBool("influx.enabled") {
		return
	}

	backupPath := filepath.Join(config.GetString("logsDir"),
		fmt.Sprintf("%s_metrics_%s.lp.gz", AppName, RunStartTime.Format("20060102_150405")))
	manager := influx.NewManager(zerologConsole(), backupPath)
	if err := manager.Connect(); err != nil {
		Logger.Warn("metrics disabled", "error", err)
		return
	}
	defer manager.Close()

	err := manager.WriteRunStats(context.Background(), influx.RunStats{
		StartedAt:       stats.StartedAt,
		Duration:        stats.Duration,
		Constellations:  stats.Constellations,
		SkippedFigures:  stats.Skipped,
		MemberStars:     stats.MemberStars,
		BackgroundStars: stats.BackgroundStars,
		ByHemisphere:    stats.ByHemisphere,
		ByDifficulty:    stats.ByDifficulty,
	})
	if err != nil {
		Logger.Warn("failed to write run stats", "error", err)
	}
}
