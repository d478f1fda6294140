// internal/storage/memory/memory.go
package memory

import (
	"fmt"
	"sync"

	"github.com/skyatlas/chartgen/internal/config"
	"github.com/skyatlas/chartgen/internal/model/core"
)

// Backend holds the generated chart in memory and exports it to a JSON
// file on write.
type Backend struct {
	cfg config.MemoryConfig

	lastExportPath string
	mu             sync.Mutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init initializes the backend
func (b *Backend) Init() error {
	if b.cfg.OutputDir == "" {
		return fmt.Errorf("memory backend needs an output directory")
	}
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// WriteChart exports the chart as a JSON document, gzipped when
// configured.
func (b *Backend) WriteChart(chart *core.Chart) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.exportJSON(chart)
}

// GetExportedFilePath returns the path of the last written export.
func (b *Backend) GetExportedFilePath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastExportPath
}
