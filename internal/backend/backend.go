// Package backend selects and constructs the persistence store from
// configuration.
package backend

import (
	"kharcha/internal/kv"
)

// Type names a storage backend.
type Type string

const (
	SQLite Type = "sqlite"
	Memory Type = "memory"
)

func (t Type) IsValid() bool {
	switch t {
	case SQLite, Memory:
		return true
	}
	return false
}

// Config holds what backend construction needs.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the store instance and its cleanup function.
type Result struct {
	Store   kv.Store
	Cleanup CleanupFunc
}
