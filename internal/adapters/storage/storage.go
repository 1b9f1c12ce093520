// Package storage provides ShareLogStore adapters: an in-memory log, a JSON
// file holding the whole log under a single key, and a SQLite table.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
	"github.com/JAKimball/poc-pwa-share-target/internal/ports"
)

// ServiceName identifies the share log in health checks and errors.
const ServiceName = "share-log"

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Store is a share log that can report its health and be closed.
type Store interface {
	ports.ShareLogStore
	ports.HealthChecker
	io.Closer
}

// Config selects and configures a store.
type Config struct {
	// Driver is one of DriverMemory, DriverFile or DriverSQLite.
	Driver string

	// Path is the directory holding the store's files. Unused by the memory driver.
	Path string

	// Capacity is the maximum number of entries kept. Non-positive means domain.DefaultLogCapacity.
	Capacity int
}

// Open creates the store selected by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStore(cfg.Capacity), nil
	case DriverFile:
		return NewFileStore(cfg.Path, cfg.Capacity)
	case DriverSQLite:
		return OpenSQLiteStore(ctx, cfg.Path, cfg.Capacity)
	default:
		return nil, domain.NewValidationError("store.driver", fmt.Sprintf("unknown driver %q", cfg.Driver))
	}
}

func normalizeCapacity(capacity int) int {
	if capacity <= 0 {
		return domain.DefaultLogCapacity
	}

	return capacity
}
