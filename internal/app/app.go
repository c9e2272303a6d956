package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mkalan/bankist/internal/config"
	"github.com/mkalan/bankist/internal/service"
	"github.com/mkalan/bankist/internal/store"
)

type App struct {
	Service *service.Service
	Store   *store.Store
}

// NewApp initializes config, database and core logic, then returns the
// App entity. An empty database path opens the in-memory database.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPath := cfg.Database.Path

	if dbPath == "" {
		dbPath = store.InMemoryPath
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore, dbStore, cfg)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

// AppDataDir is where the config file (and a persistent database, if
// one is configured) lives.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bankist"), nil
	}

	return filepath.Join(configDir, "bankist"), nil
}
