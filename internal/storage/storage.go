// internal/storage/storage.go
package storage

import "github.com/skyatlas/chartgen/internal/model/core"

// Backend is the interface all chart storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// WriteChart persists a complete generated chart.
	WriteChart(chart *core.Chart) error
}

// Exportable is an optional interface for backends that produce a file
// artifact, used to report the output location after a run.
type Exportable interface {
	GetExportedFilePath() string
}
