package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// ConnectLocal opens the local SQLite database under dataDir, creating the
// directory and schema when missing. The local store is always available
// and takes every write; the remote store mirrors it best-effort.
func ConnectLocal(dataDir string) (*sqlx.DB, error) {
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "promnemo.db")
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to local database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// ConnectRemote opens the remote Postgres store from a connection URL.
// The remote store holds user data only (study items), no catalog.
func ConnectRemote(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to remote database: %v", err)
	}
	if err := initializeUserDataSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// initializeSchema creates the local tables if they don't exist
func initializeSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT,
			notification_enabled BOOLEAN DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS topics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create topics table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS words (
			id TEXT PRIMARY KEY,
			word TEXT NOT NULL,
			translation TEXT NOT NULL,
			transcription TEXT,
			part_of_speech TEXT,
			topics TEXT,
			mnemonic TEXT,
			examples TEXT,
			image TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create words table: %v", err)
	}

	return initializeUserDataSchema(db)
}

// initializeUserDataSchema creates the study_items table. It is shared by
// the local and the remote store, so the SQL sticks to syntax both SQLite
// and Postgres accept.
func initializeUserDataSchema(db *sqlx.DB) error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.DriverName() == "postgres" {
		serial = "BIGSERIAL PRIMARY KEY"
	}

	_, err := db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS study_items (
			id %s,
			user_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			added_at TIMESTAMP NOT NULL,
			next_review_at TIMESTAMP NOT NULL,
			interval_days INTEGER NOT NULL DEFAULT 0,
			repetitions INTEGER NOT NULL DEFAULT 0,
			last_review_at TIMESTAMP,
			UNIQUE(user_id, item_id)
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create study_items table: %v", err)
	}
	return nil
}
