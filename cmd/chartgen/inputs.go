package main

import (
	"fmt"
	"io"
	"os"

	"github.com/skyatlas/chartgen/internal/assemble"
	"github.com/skyatlas/chartgen/internal/catalog"
	"github.com/skyatlas/chartgen/internal/config"
	"github.com/skyatlas/chartgen/internal/model/core"
	"github.com/skyatlas/chartgen/internal/pipeline"
)

// loadInputs reads every configured data file and wires up the
// pipeline. The star catalog and figure list are required, name tables
// and boundaries only enrich the output and are skipped with a warning
// when missing.
func loadInputs() (*pipeline.Pipeline, error) {
	cat, err := catalog.LoadHipparcos(config.GetString("data.starCatalog"))
	if err != nil {
		return nil, fmt.Errorf("load star catalog: %w", err)
	}
	Logger.Info("star catalog loaded", "stars", cat.Len())

	bayer := loadOptional("data.bayerNames", catalog.ParseBayerDesignations)
	proper := loadOptional("data.properNames", catalog.ParseProperNames)
	catalog.ApplyDesignations(cat, bayer, proper)
	Logger.Info("designations applied", "bayer", len(bayer), "proper", len(proper))

	figuresFile, err := os.Open(config.GetString("data.figures"))
	if err != nil {
		return nil, fmt.Errorf("open figure catalog: %w", err)
	}
	defer figuresFile.Close()
	figures, err := catalog.ParseFigures(figuresFile)
	if err != nil {
		return nil, fmt.Errorf("parse figure catalog: %w", err)
	}
	catalog.ApplyFigureNames(figures, loadOptional("data.figureNames", catalog.ParseFigureNames))
	catalog.ApplyFigureFixes(figures)
	Logger.Info("constellation figures loaded", "figures", len(figures))

	var boundaries map[string][]core.CelestialPoint
	if path := config.GetString("data.boundaries"); path != "" {
		boundaries = loadOptional("data.boundaries", catalog.ParseBoundaries)
		Logger.Info("boundaries loaded", "constellations", len(boundaries))
	}

	return &pipeline.Pipeline{
		Log:       Logger,
		Assembler: &assemble.Assembler{Log: Logger, Boundaries: boundaries},
		Catalog:   cat,
		Figures:   figures,
	}, nil
}

// loadOptional parses an enrichment file, returning the zero map when
// the file is missing or malformed.
func loadOptional[T any](key string, parse func(io.Reader) (T, error)) T {
	var zero T
	path := config.GetString(key)
	if path == "" {
		return zero
	}
	f, err := os.Open(path)
	if err != nil {
		Logger.Warn("skipping optional input", "key", key, "error", err)
		return zero
	}
	defer f.Close()

	out, err := parse(f)
	if err != nil {
		Logger.Warn("skipping unreadable optional input", "key", key, "error", err)
		return zero
	}
	return out
}
