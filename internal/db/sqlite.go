//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const (
	SQLITESCHEMA = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	manifest_json TEXT NOT NULL,
	basic_json TEXT NOT NULL,
	enhanced_json TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS run_texts (
	run_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	short_name TEXT NOT NULL,
	title TEXT NOT NULL,
	compound REAL NOT NULL,
	lexical_diversity REAL NOT NULL,
	PRIMARY KEY(run_id, position),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`
)

// SQLiteStore - runs kept in a local sqlite file
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite - open (and if need be create) the store at path
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	for _, p := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err = db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("open sqlite %s: %w", path, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err = s.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Init - create the tables if they are not there yet
func (s *SQLiteStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, SQLITESCHEMA); err != nil {
		return fmt.Errorf("init sqlite schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRun(ctx context.Context, r Run) error {
	const (
		QR = `INSERT INTO runs (id, created_at, manifest_json, basic_json, enhanced_json) VALUES (?, ?, ?, ?, ?)`
		QT = `INSERT INTO run_texts (run_id, position, short_name, title, compound, lexical_diversity) VALUES (?, ?, ?, ?, ?, ?)`
	)

	m, b, e, err := marshalrun(r)
	if err != nil {
		return fmt.Errorf("save run %s: %w", r.ID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, QR, r.ID, r.Created.UTC().Format(time.RFC3339Nano), m, b, e); err != nil {
		return fmt.Errorf("save run %s: %w", r.ID, err)
	}
	for i, t := range runtexts(r) {
		if _, err = tx.ExecContext(ctx, QT, r.ID, i, t.ShortName, t.Title, t.Compound, t.LexicalDiversity); err != nil {
			return fmt.Errorf("save run %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// Runs - the newest runs first
func (s *SQLiteStore) Runs(ctx context.Context, limit int) ([]RunInfo, error) {
	const (
		Q = `SELECT r.id, r.created_at, t.short_name, t.title, t.compound, t.lexical_diversity
			FROM (SELECT id, created_at FROM runs ORDER BY id DESC LIMIT ?) r
			LEFT JOIN run_texts t ON t.run_id = r.id
			ORDER BY r.id DESC, t.position`
	)

	rows, err := s.db.QueryContext(ctx, Q, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var id, created string
		var sn, ti sql.NullString
		var cp, ld sql.NullFloat64
		if err = rows.Scan(&id, &created, &sn, &ti, &cp, &ld); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].ID != id {
			ts, e := time.Parse(time.RFC3339Nano, created)
			if e != nil {
				return nil, fmt.Errorf("run %s: %w", id, e)
			}
			out = append(out, RunInfo{ID: id, Created: ts})
		}
		if sn.Valid {
			last := &out[len(out)-1]
			last.Texts = append(last.Texts, RunText{ShortName: sn.String, Title: ti.String, Compound: cp.Float64, LexicalDiversity: ld.Float64})
		}
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Run(ctx context.Context, id string) (Run, error) {
	const (
		Q = `SELECT created_at, manifest_json, basic_json, enhanced_json FROM runs WHERE id = ?`
	)
	r := Run{ID: id}
	var created, m, b, e string
	err := s.db.QueryRowContext(ctx, Q, id).Scan(&created, &m, &b, &e)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	} else if err != nil {
		return Run{}, fmt.Errorf("load run %s: %w", id, err)
	}
	if r.Created, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Run{}, fmt.Errorf("load run %s: %w", id, err)
	}
	return r, unmarshalrun(&r, m, b, e)
}
