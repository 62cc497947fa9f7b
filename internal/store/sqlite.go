// Package store holds the persistence collaborators around the estimation
// engine: YAML files for configuration and the feature catalog, SQLite for
// tracked-time entries and CSV import for bulk ingestion. Everything here
// validates at the boundary and hands clean in-memory data to the engine.
package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fathomhq/fathom/internal/model"
)

// TrackedTimeStore persists tracked-time entries in a SQLite database
type TrackedTimeStore struct {
	db *sql.DB
}

// OpenTrackedTimeStore opens (and initializes if needed) the entry database
func OpenTrackedTimeStore(path string) (*TrackedTimeStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS tracked_entries (
		id        TEXT PRIMARY KEY,
		team      TEXT NOT NULL,
		member    TEXT NOT NULL,
		feature   TEXT NOT NULL,
		hours     REAL NOT NULL,
		category  TEXT DEFAULT '',
		logged_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_tracked_entries_feature ON tracked_entries(feature);
	CREATE INDEX IF NOT EXISTS idx_tracked_entries_member ON tracked_entries(member);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &TrackedTimeStore{db: db}, nil
}

// Close closes the underlying database
func (s *TrackedTimeStore) Close() error {
	return s.db.Close()
}

// Insert stores one validated entry
func (s *TrackedTimeStore) Insert(entry model.TrackedTimeEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO tracked_entries (id, team, member, feature, hours, category, logged_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(entry.ID), string(entry.Team), entry.Member, entry.FeatureLabel,
		entry.Hours, entry.Category, nullableTime(entry.Date),
	)
	return err
}

// InsertBatch stores validated entries in a single transaction and returns
// the number inserted. The batch is all-or-nothing at the storage level;
// per-row validation happens before this call (see ImportCSV).
func (s *TrackedTimeStore) InsertBatch(entries []model.TrackedTimeEntry) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO tracked_entries (id, team, member, feature, hours, category, logged_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return inserted, err
		}
		if _, err := stmt.Exec(
			string(entry.ID), string(entry.Team), entry.Member, entry.FeatureLabel,
			entry.Hours, entry.Category, nullableTime(entry.Date),
		); err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, tx.Commit()
}

// ListEntries returns all stored entries. Implements estimate.EntrySource.
func (s *TrackedTimeStore) ListEntries() ([]model.TrackedTimeEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, team, member, feature, hours, category, logged_at
		 FROM tracked_entries ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.TrackedTimeEntry
	for rows.Next() {
		var entry model.TrackedTimeEntry
		var id, team string
		var loggedAt sql.NullTime
		if err := rows.Scan(&id, &team, &entry.Member, &entry.FeatureLabel,
			&entry.Hours, &entry.Category, &loggedAt); err != nil {
			return nil, err
		}
		entry.ID = model.EntryID(id)
		entry.Team = model.Team(team)
		if loggedAt.Valid {
			entry.Date = loggedAt.Time
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ListByFeature returns the entries whose feature label matches the given
// name under normalization
func (s *TrackedTimeStore) ListByFeature(featureName string) ([]model.TrackedTimeEntry, error) {
	all, err := s.ListEntries()
	if err != nil {
		return nil, err
	}
	needle := model.NormalizeName(featureName)
	var matched []model.TrackedTimeEntry
	for _, entry := range all {
		if model.NormalizeName(entry.FeatureLabel) == needle {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
