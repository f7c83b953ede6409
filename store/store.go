// Package store persists generated paradigms in SQLite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/paradigm"
)

//go:embed migrations.sql
var migrationsSQL string

// ErrUnknownVerb is returned when no forms are stored for a lemma.
var ErrUnknownVerb = errors.New("verb not in store")

// Form is a stored paradigm cell.
type Form struct {
	Position   int
	Label      string
	Form       string
	Decomposed string
	ErrorKind  string
	RunID      string
}

// Store wraps a SQLite database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens or creates the database at path and applies migrations.
// ":memory:" gives a private in-memory database.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One connection keeps an in-memory database shared by every query.
	db.SetMaxOpenConns(1)
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &Store{db: db, logger: logger}, nil
}

// InitDB runs the embedded migrations on db.
func InitDB(db *sql.DB) error {
	for _, s := range strings.Split(migrationsSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// SaveTable replaces the stored forms of the table's verb under a new run
// and returns the run id.
func (s *Store) SaveTable(ctx context.Context, t paradigm.Table) (string, error) {
	run := uuid.NewString()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO runs (id, created_at) VALUES (?, ?)`, run, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	v := t.Verb
	_, err = tx.ExecContext(ctx, `INSERT INTO verbs (lemma, principal_parts, unit, properties) VALUES (?, ?, ?, ?)
		ON CONFLICT(lemma) DO UPDATE SET principal_parts = excluded.principal_parts,
		unit = excluded.unit, properties = excluded.properties`,
		v.Lemma(), v.String(), v.Unit, int64(v.Properties))
	if err != nil {
		return "", fmt.Errorf("upsert verb %s: %w", v.Lemma(), err)
	}
	var verbID int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM verbs WHERE lemma = ?`, v.Lemma()).Scan(&verbID); err != nil {
		return "", fmt.Errorf("verb id %s: %w", v.Lemma(), err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM forms WHERE verb_id = ?`, verbID); err != nil {
		return "", fmt.Errorf("clear forms %s: %w", v.Lemma(), err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO forms (verb_id, run_id, position, label, form, decomposed, error_kind)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()
	for i, c := range t.Cells {
		if _, err := stmt.ExecContext(ctx, verbID, run, i, c.Label, c.Form, c.Decomposed, c.Kind); err != nil {
			return "", fmt.Errorf("insert form %s %s: %w", v.Lemma(), c.Label, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	s.logger.Debug("paradigm saved", "verb", v.Lemma(), "run", run, "forms", len(t.Cells))
	return run, nil
}

// Forms returns the stored forms of lemma in paradigm order.
func (s *Store) Forms(ctx context.Context, lemma string) ([]Form, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT f.position, f.label, f.form, f.decomposed, f.error_kind, f.run_id
		FROM forms f JOIN verbs v ON v.id = f.verb_id
		WHERE v.lemma = ? ORDER BY f.position`, lemma)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Form
	for rows.Next() {
		var f Form
		if err := rows.Scan(&f.Position, &f.Label, &f.Form, &f.Decomposed, &f.ErrorKind, &f.RunID); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", lemma, ErrUnknownVerb)
	}
	return out, nil
}

// Lemmas lists the stored verbs in insertion order.
func (s *Store) Lemmas(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT lemma FROM verbs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
