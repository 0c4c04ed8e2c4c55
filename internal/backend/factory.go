package backend

import (
	"fmt"
	"log/slog"

	"kharcha/internal/kv/memory"
	"kharcha/internal/kv/sqlite"
)

// Factory creates stores based on configuration.
type Factory interface {
	CreateStore(config Config) (*Result, error)
}

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

func (f *DefaultFactory) CreateStore(config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLite:
		store, err := sqlite.New(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("create sqlite store: %w", err)
		}
		f.logger.Debug("Initialized SQLite backend", "path", config.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil
	case Memory:
		store := memory.New()
		f.logger.Debug("Initialized memory backend")
		return &Result{Store: store, Cleanup: store.Close}, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
