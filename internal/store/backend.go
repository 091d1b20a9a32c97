// Package store is the persistent store: a string key/value backend
// (the durable analogue of browser local storage) with typed, JSON-aware
// table accessors on top.
package store

import (
	"context"
	"fmt"
)

// Backend is the raw string store. Implementations are process-local;
// there is exactly one logical writer at a time, so reads always reflect
// the most recent write made by this process.
type Backend interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the value for key in a single synchronous write.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Config selects and parameterizes a backend.
type Config struct {
	Driver string // "memory" or "sqlite"
	DBPath string
}

// Open builds a backend from config.
func Open(cfg Config) (Backend, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemory(), nil
	case "sqlite":
		return NewSQLite(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Driver)
	}
}
