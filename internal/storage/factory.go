// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skyatlas/chartgen/internal/config"
	"github.com/skyatlas/chartgen/internal/storage/db"
	"github.com/skyatlas/chartgen/internal/storage/memory"
)

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "memory", "json":
		return memory.New(cfg.Memory), nil
	case "database", "db":
		return db.New(log), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
