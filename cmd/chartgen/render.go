package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skyatlas/chartgen/internal/config"
	"github.com/skyatlas/chartgen/internal/render"
)

// runRender writes ASCII charts to the gallery directory, two files
// per constellation: with figure lines and stars only. With arguments,
// only the named constellation codes are rendered.
func runRender(codes []string) error {
	p, err := loadInputs()
	if err != nil {
		return err
	}

	only := make(map[string]bool, len(codes))
	for _, c := range codes {
		only[strings.ToLower(c)] = true
	}

	outDir := config.GetString("gallery.outputDir")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create gallery dir: %w", err)
	}

	opts := render.Options{
		Width:  config.GetInt("gallery.width"),
		Height: config.GetInt("gallery.height"),
	}

	chart, _ := p.Run()
	written := 0
	for _, rec := range chart.Records {
		if len(only) > 0 && !only[strings.ToLower(rec.Code)] {
			continue
		}

		opts.WithLines = true
		withLines := filepath.Join(outDir, fmt.Sprintf("%s_with_lines.txt", rec.Code))
		if err := os.WriteFile(withLines, []byte(render.Chart(rec, opts)), 0644); err != nil {
			return fmt.Errorf("write %s: %w", withLines, err)
		}

		opts.WithLines = false
		starsOnly := filepath.Join(outDir, fmt.Sprintf("%s_stars_only.txt", rec.Code))
		if err := os.WriteFile(starsOnly, []byte(render.Chart(rec, opts)), 0644); err != nil {
			return fmt.Errorf("write %s: %w", starsOnly, err)
		}
		written++
	}

	if written == 0 {
		return fmt.Errorf("no constellations matched %v", codes)
	}
	Logger.Info("gallery written", "constellations", written, "dir", outDir)
	return nil
}
