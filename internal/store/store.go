// Package store is the SQLite data access layer for the menagerie
// roster. It mirrors the animal model as flat records so a Zoo can be
// rebuilt from disk in admission order.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite data access layer for the animals roster.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use in transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate creates the animals table and its index. Idempotent.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS animals (
  id           INTEGER PRIMARY KEY,
  tag          TEXT NOT NULL UNIQUE,
  species      TEXT NOT NULL,
  name         TEXT NOT NULL,
  age          INTEGER NOT NULL CHECK (age >= 0),
  admitted_at  TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_animals_species ON animals(species);
`

// --- Animal operations ---

// InsertAnimal appends a record to the roster and sets r.ID.
func (s *Store) InsertAnimal(r *Record) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO animals (tag, species, name, age, admitted_at) VALUES (?, ?, ?, ?, ?)",
		r.Tag, r.Species, r.Name, r.Age, r.AdmittedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert animal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	r.ID = id
	return id, nil
}

// AnimalByTag returns the record with the given tag, or nil if none
// exists.
func (s *Store) AnimalByTag(tag string) (*Record, error) {
	r := &Record{}
	err := s.db.QueryRow(
		"SELECT id, tag, species, name, age, admitted_at FROM animals WHERE tag = ?", tag,
	).Scan(&r.ID, &r.Tag, &r.Species, &r.Name, &r.Age, &r.AdmittedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("animal by tag: %w", err)
	}
	return r, nil
}

// Animals returns every record in admission order.
func (s *Store) Animals() ([]*Record, error) {
	rows, err := s.db.Query(
		"SELECT id, tag, species, name, age, admitted_at FROM animals ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer rows.Close()
	var records []*Record
	for rows.Next() {
		r := &Record{}
		if err := rows.Scan(&r.ID, &r.Tag, &r.Species, &r.Name, &r.Age, &r.AdmittedAt); err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// AnimalsBySpecies returns the records for one species in admission
// order.
func (s *Store) AnimalsBySpecies(species string) ([]*Record, error) {
	rows, err := s.db.Query(
		"SELECT id, tag, species, name, age, admitted_at FROM animals WHERE species = ? ORDER BY id",
		species,
	)
	if err != nil {
		return nil, fmt.Errorf("animals by species: %w", err)
	}
	defer rows.Close()
	var records []*Record
	for rows.Next() {
		r := &Record{}
		if err := rows.Scan(&r.ID, &r.Tag, &r.Species, &r.Name, &r.Age, &r.AdmittedAt); err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Count returns the number of animals on the roster.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM animals").Scan(&n); err != nil {
		return 0, fmt.Errorf("count animals: %w", err)
	}
	return n, nil
}

// DeleteAll removes every record from the roster.
func (s *Store) DeleteAll() error {
	if _, err := s.db.Exec("DELETE FROM animals"); err != nil {
		return fmt.Errorf("delete animals: %w", err)
	}
	return nil
}
