// Package cli provides common initialization for the kharcha command:
// logging, .env loading, configuration and store construction.
package cli

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"kharcha/internal/backend"
	"kharcha/internal/config"
	"kharcha/internal/log"
	"kharcha/internal/tracker"
)

// SetupLogger initializes structured logging from the configured level and
// sets it as the process default.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.Config{
		Level:     log.ParseLevel(level),
		Component: log.ComponentCLI,
	})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitTracker builds the store for the configured backend, seeds first-run
// defaults and returns a ready service plus the store cleanup.
func InitTracker(ctx context.Context, cfg *config.Config, logger *log.Logger) (*tracker.Service, backend.CleanupFunc, error) {
	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateStore(backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create store: %w", err)
	}

	svc := tracker.New(result.Store)
	if err := svc.Seed(ctx); err != nil {
		_ = result.Cleanup()
		return nil, nil, fmt.Errorf("seed defaults: %w", err)
	}
	return svc, result.Cleanup, nil
}
