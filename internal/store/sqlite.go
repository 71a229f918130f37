package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pterm/pterm"
)

// SQLiteStore persists records in a single key/value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string, migrationsFS fs.FS) (*SQLiteStore, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

func (s *SQLiteStore) Put(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		pterm.Warning.Printfln("storage: failed to encode %q: %v", key, err)
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO records (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;
	`, key, string(raw), time.Now().Unix())
	if err != nil {
		pterm.Warning.Printfln("storage: failed to save %q: %v", key, err)
	}
}

func (s *SQLiteStore) Get(key string, dest any) bool {
	var raw string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			pterm.Warning.Printfln("storage: failed to load %q: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// Corrupted values are treated as absent.
		pterm.Warning.Printfln("storage: discarding corrupted value for %q: %v", key, err)
		return false
	}

	return true
}

func (s *SQLiteStore) Remove(key string) {
	if _, err := s.db.Exec("DELETE FROM records WHERE key = ?", key); err != nil {
		pterm.Warning.Printfln("storage: failed to remove %q: %v", key, err)
	}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
