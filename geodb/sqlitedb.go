package geodb

import (
	"database/sql"
	"fmt"

	"borgarlina.gagnavist.is/internal/appconf"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// initDB opens a SQLite database and creates the dataset tables.
func initDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("test environment must use an in-memory database, got %q", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err = db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	if err := createTables(tx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_population_area_id ON population(area_id);
		CREATE INDEX IF NOT EXISTS idx_population_age_group ON population(age_group);
		CREATE INDEX IF NOT EXISTS idx_stations_year ON stations(year);
	`)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}

func createTables(tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS small_areas (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL DEFAULT '',
			geometry TEXT NOT NULL,
			area_km2 REAL NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS population (
			area_id TEXT NOT NULL,
			year INTEGER NOT NULL,
			age_group TEXT NOT NULL,
			sex TEXT NOT NULL DEFAULT '',
			count INTEGER NOT NULL,
			PRIMARY KEY (area_id, year, age_group, sex)
		)`,
		`CREATE TABLE IF NOT EXISTS schools (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			lat REAL NOT NULL,
			lon REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS stations (
			year TEXT NOT NULL,
			name TEXT NOT NULL,
			lines TEXT NOT NULL,
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			PRIMARY KEY (year, name)
		)`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
