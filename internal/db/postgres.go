//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	PGSCHEMA = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL,
	manifest_json JSONB NOT NULL,
	basic_json JSONB NOT NULL,
	enhanced_json TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS run_texts (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	short_name TEXT NOT NULL,
	title TEXT NOT NULL,
	compound DOUBLE PRECISION NOT NULL,
	lexical_diversity DOUBLE PRECISION NOT NULL,
	PRIMARY KEY(run_id, position)
);
`
)

// PGStore - runs kept in PostgreSQL
type PGStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres - build the pool and make sure the tables exist
func OpenPostgres(ctx context.Context, url string) (*PGStore, error) {
	const (
		FAIL1 = "configuration error: could not execute ParseConfig(url): %w"
		FAIL2 = "could not connect to PostgreSQL: %w"
	)

	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	thepool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf(FAIL2, err)
	}

	s := &PGStore{pool: thepool}
	if err = s.Init(ctx); err != nil {
		thepool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PGStore) Init(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, PGSCHEMA); err != nil {
		return fmt.Errorf("init postgres schema: %w", err)
	}
	return nil
}

func (s *PGStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PGStore) SaveRun(ctx context.Context, r Run) error {
	const (
		QR = `INSERT INTO runs (id, created_at, manifest_json, basic_json, enhanced_json) VALUES ($1, $2, $3, $4, $5)`
		QT = `INSERT INTO run_texts (run_id, position, short_name, title, compound, lexical_diversity) VALUES ($1, $2, $3, $4, $5, $6)`
	)

	m, b, e, err := marshalrun(r)
	if err != nil {
		return fmt.Errorf("save run %s: %w", r.ID, err)
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, QR, r.ID, r.Created, m, b, e); err != nil {
			return fmt.Errorf("save run %s: %w", r.ID, err)
		}
		batch := &pgx.Batch{}
		for i, t := range runtexts(r) {
			batch.Queue(QT, r.ID, i, t.ShortName, t.Title, t.Compound, t.LexicalDiversity)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}

func (s *PGStore) Runs(ctx context.Context, limit int) ([]RunInfo, error) {
	const (
		Q = `SELECT r.id, r.created_at, t.short_name, t.title, t.compound, t.lexical_diversity
			FROM (SELECT id, created_at FROM runs ORDER BY id DESC LIMIT $1) r
			LEFT JOIN run_texts t ON t.run_id = r.id
			ORDER BY r.id DESC, t.position`
	)

	rows, err := s.pool.Query(ctx, Q, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var id string
		var created time.Time
		var sn, ti *string
		var cp, ld *float64
		if err = rows.Scan(&id, &created, &sn, &ti, &cp, &ld); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].ID != id {
			out = append(out, RunInfo{ID: id, Created: created.UTC()})
		}
		if sn != nil {
			last := &out[len(out)-1]
			last.Texts = append(last.Texts, RunText{ShortName: *sn, Title: *ti, Compound: *cp, LexicalDiversity: *ld})
		}
	}
	return out, rows.Err()
}

func (s *PGStore) Run(ctx context.Context, id string) (Run, error) {
	const (
		Q = `SELECT created_at, manifest_json::text, basic_json::text, enhanced_json FROM runs WHERE id = $1`
	)
	r := Run{ID: id}
	var m, b, e string
	err := s.pool.QueryRow(ctx, Q, id).Scan(&r.Created, &m, &b, &e)
	if errors.Is(err, pgx.ErrNoRows) {
		return Run{}, ErrNotFound
	} else if err != nil {
		return Run{}, fmt.Errorf("load run %s: %w", id, err)
	}
	r.Created = r.Created.UTC()
	return r, unmarshalrun(&r, m, b, e)
}
