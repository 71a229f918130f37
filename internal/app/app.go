package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goldtrust/gtw/internal/config"
	"github.com/goldtrust/gtw/internal/service"
	"github.com/goldtrust/gtw/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.KeyedStore
	Config  *config.Config
}

// NewApp wires the record store and the wallet services. A database that can
// not be opened degrades to the in-memory store instead of failing: a broken
// storage medium must never take the wallet down.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := getAppDataDir()
		dbPathRaw = filepath.Join(appDir, "gtw.db")
	}

	var kv store.KeyedStore

	kv, err := store.NewSQLiteStore(dbPathRaw, migrationFS)
	if err != nil {
		pterm.Warning.Printfln("Persistent storage unavailable (%v), nothing will be saved", err)
		kv = store.NewMemoryStore()
	}

	svc := service.NewService(kv)

	cleanup := func() {
		if err := kv.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   kv,
		Config:  cfg,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".gtw"), nil
	}

	return filepath.Join(configDir, "gtw"), nil
}
