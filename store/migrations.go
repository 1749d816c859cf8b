package store

import (
	"fmt"

	"galaxygen/internal/log"
)

// Migration represents a database migration
type Migration struct {
	ID          int
	Description string
	SQL         string
}

// migrations contains all database migrations in order
var migrations = []Migration{
	{
		ID:          1,
		Description: "Initial universe schema",
		SQL: `
CREATE TABLE IF NOT EXISTS universes (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	seed INTEGER NOT NULL,
	config TEXT NOT NULL,
	success INTEGER NOT NULL,
	repair_passes INTEGER NOT NULL,
	port_shortfall INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sectors (
	id INTEGER PRIMARY KEY,
	zone INTEGER NOT NULL,
	resource_density INTEGER NOT NULL,
	reserved INTEGER NOT NULL DEFAULT 0,
	port_id INTEGER NOT NULL DEFAULT 0,
	warps TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS edges (
	from_id INTEGER NOT NULL,
	to_id INTEGER NOT NULL,
	kind INTEGER NOT NULL DEFAULT 0,
	cost INTEGER NOT NULL DEFAULT 1,
	PRIMARY KEY (from_id, to_id)
);

CREATE TABLE IF NOT EXISTS ports (
	id INTEGER PRIMARY KEY,
	sector_id INTEGER NOT NULL,
	class INTEGER NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	commodities TEXT NOT NULL DEFAULT '{}'
);

CREATE INDEX IF NOT EXISTS idx_ports_sector ON ports(sector_id);`,
	},
	// Future migrations can be added here
}

// runMigrations executes all pending migrations
func (s *Store) runMigrations() error {
	if err := s.ensureSchemaVersionTable(); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	currentVersion, err := s.getCurrentSchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.ID > currentVersion {
			log.Debug("applying migration", "id", migration.ID, "description", migration.Description)
			if err := s.applyMigration(migration); err != nil {
				return fmt.Errorf("failed to apply migration %d: %w", migration.ID, err)
			}
		}
	}
	return nil
}

func (s *Store) ensureSchemaVersionTable() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`)
	return err
}

func (s *Store) getCurrentSchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (s *Store) applyMigration(m Migration) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.ID); err != nil {
		return err
	}
	return tx.Commit()
}
