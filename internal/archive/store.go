// Package archive keeps generated metadata records and their validation
// reports in a local SQLite database.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
	"github.com/Haghighatbin/echem-fairifier/internal/validation"
)

// ErrNotFound is returned by Get for an unknown record id.
var ErrNotFound = errors.New("record not found")

// DefaultListLimit applies when List is called with a non-positive limit.
const DefaultListLimit = 20

// Store is an archive backed by one SQLite file.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the archive at path, creating parent directories
// and the schema as needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	logf("", "archive opened at %s", path)
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			technique TEXT NOT NULL,
			filename TEXT,
			created_at TEXT,
			fair_score REAL,
			completeness_score REAL,
			error_count INTEGER,
			warning_count INTEGER,
			metadata TEXT NOT NULL,
			report TEXT NOT NULL,
			archived_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_technique ON records(technique)`,
		`CREATE TABLE IF NOT EXISTS record_terms (
			record_id TEXT NOT NULL REFERENCES records(id) ON DELETE CASCADE,
			used_for TEXT NOT NULL,
			label TEXT NOT NULL,
			iri TEXT NOT NULL,
			PRIMARY KEY (record_id, used_for)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_record_terms_label ON record_terms(label)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores rec with its validation report, replacing any earlier entry
// with the same id.
func (s *Store) Save(ctx context.Context, rec *metadata.Record, report validation.Report) error {
	if rec == nil || rec.ID == "" {
		return errors.New("record has no id")
	}
	text, err := metadata.Serialize(rec)
	if err != nil {
		return err
	}
	rep, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM record_terms WHERE record_id = ?`, rec.ID); err != nil {
		return fmt.Errorf("clearing terms: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO records
			(id, technique, filename, created_at, fair_score, completeness_score,
			 error_count, warning_count, metadata, report, archived_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Technique.Name, rec.Dataset.Filename, rec.CreatedAt,
		report.FAIRScore, report.CompletenessScore,
		len(report.Errors), len(report.Warnings),
		text, string(rep), s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting record %s: %w", rec.ID, err)
	}

	if rec.Enrichment != nil {
		for _, u := range rec.Enrichment.TermsUsed {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO record_terms (record_id, used_for, label, iri) VALUES (?, ?, ?, ?)`,
				rec.ID, u.UsedFor, u.Label, u.IRI,
			); err != nil {
				return fmt.Errorf("inserting term %s: %w", u.Label, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing record %s: %w", rec.ID, err)
	}
	logf(rec.ID, "archived (fair=%.2f completeness=%.2f)", report.FAIRScore, report.CompletenessScore)
	return nil
}

// Summary is one row of List.
type Summary struct {
	ID                string
	Technique         string
	Filename          string
	CreatedAt         string
	FAIRScore         float64
	CompletenessScore float64
	Errors            int
	Warnings          int
}

// Entry is a stored record with its report.
type Entry struct {
	Summary
	Record     *metadata.Record
	Report     validation.Report
	ArchivedAt time.Time
}

// Get loads the entry for id.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	var (
		e        Entry
		text     string
		rep      string
		archived string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, technique, COALESCE(filename, ''), COALESCE(created_at, ''),
			fair_score, completeness_score, error_count, warning_count,
			metadata, report, archived_at
		 FROM records WHERE id = ?`, id,
	).Scan(&e.ID, &e.Technique, &e.Filename, &e.CreatedAt,
		&e.FAIRScore, &e.CompletenessScore, &e.Errors, &e.Warnings,
		&text, &rep, &archived)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying record %s: %w", id, err)
	}

	if e.Record, err = metadata.Parse(text); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", id, err)
	}
	if err := yaml.Unmarshal([]byte(rep), &e.Report); err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", id, err)
	}
	if e.ArchivedAt, err = time.Parse(time.RFC3339, archived); err != nil {
		return nil, fmt.Errorf("decoding archive time %s: %w", id, err)
	}
	return &e, nil
}

// ListOptions filters List.
type ListOptions struct {
	Technique string
	Limit     int
}

// List returns the most recently archived records first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Summary, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	query := `SELECT id, technique, COALESCE(filename, ''), COALESCE(created_at, ''),
			fair_score, completeness_score, error_count, warning_count
		 FROM records`
	args := []any{}
	if opts.Technique != "" {
		query += ` WHERE technique = ? COLLATE NOCASE`
		args = append(args, opts.Technique)
	}
	query += ` ORDER BY archived_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.ID, &sm.Technique, &sm.Filename, &sm.CreatedAt,
			&sm.FAIRScore, &sm.CompletenessScore, &sm.Errors, &sm.Warnings); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

// RecordsUsingTerm returns the ids of records whose vocabulary enrichment
// used the term with label.
func (s *Store) RecordsUsingTerm(ctx context.Context, label string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT record_id FROM record_terms WHERE label = ? ORDER BY record_id`, label)
	if err != nil {
		return nil, fmt.Errorf("querying term %s: %w", label, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning term row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes the record with id and its terms.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}
