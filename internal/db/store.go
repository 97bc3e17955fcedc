//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
	"github.com/oklog/ulid/v2"
)

var ErrNotFound = errors.New("no such run")

// Run - one complete analysis as it is stored
type Run struct {
	ID       string              `json:"id"`
	Created  time.Time           `json:"created"`
	Manifest []str.TextSpec      `json:"manifest"`
	Basic    *str.BasicOutput    `json:"basic"`
	Enhanced *str.EnhancedOutput `json:"enhanced,omitempty"`
}

// RunInfo - the summary line for a stored run
type RunInfo struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Texts   []RunText `json:"texts"`
}

type RunText struct {
	ShortName        string  `json:"short_name"`
	Title            string  `json:"title"`
	Compound         float64 `json:"compound"`
	LexicalDiversity float64 `json:"lexical_diversity"`
}

type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, r Run) error
	Runs(ctx context.Context, limit int) ([]RunInfo, error)
	Run(ctx context.Context, id string) (Run, error)
	Close() error
}

// NewRun - stamp the results with a fresh ULID
func NewRun(manifest []str.TextSpec, basic *str.BasicOutput, enhanced *str.EnhancedOutput) Run {
	now := time.Now().UTC()
	return Run{
		ID:       ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Created:  now,
		Manifest: manifest,
		Basic:    basic,
		Enhanced: enhanced,
	}
}

// Open - postgres if the configuration names a postgres dsn, otherwise sqlite in the data directory
func Open(ctx context.Context, cfg *str.CurrentConfiguration) (Store, error) {
	if strings.HasPrefix(cfg.DBURL, "postgres://") || strings.HasPrefix(cfg.DBURL, "postgresql://") {
		return OpenPostgres(ctx, cfg.DBURL)
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return OpenSQLite(ctx, filepath.Join(cfg.DataDir, vv.DBFILE))
}

// runtexts - the per-text summary rows of a run
func runtexts(r Run) []RunText {
	if r.Basic == nil {
		return nil
	}
	rt := make([]RunText, len(r.Basic.Texts))
	for i, t := range r.Basic.Texts {
		rt[i] = RunText{
			ShortName:        t.ShortName,
			Title:            t.Title,
			Compound:         t.Sentiment.Compound,
			LexicalDiversity: t.Vocabulary.LexicalDiversity,
		}
	}
	return rt
}

// marshalrun - manifest, basic and enhanced as json blobs; a nil enhanced is stored as ""
func marshalrun(r Run) (string, string, string, error) {
	m, err := json.Marshal(r.Manifest)
	if err != nil {
		return "", "", "", err
	}
	b, err := json.Marshal(r.Basic)
	if err != nil {
		return "", "", "", err
	}
	e := ""
	if r.Enhanced != nil {
		eb, err := json.Marshal(r.Enhanced)
		if err != nil {
			return "", "", "", err
		}
		e = string(eb)
	}
	return string(m), string(b), e, nil
}

func unmarshalrun(r *Run, m, b, e string) error {
	if err := json.Unmarshal([]byte(m), &r.Manifest); err != nil {
		return fmt.Errorf("run %s manifest: %w", r.ID, err)
	}
	r.Basic = &str.BasicOutput{}
	if err := json.Unmarshal([]byte(b), r.Basic); err != nil {
		return fmt.Errorf("run %s results: %w", r.ID, err)
	}
	if e != "" {
		r.Enhanced = &str.EnhancedOutput{}
		if err := json.Unmarshal([]byte(e), r.Enhanced); err != nil {
			return fmt.Errorf("run %s enhanced results: %w", r.ID, err)
		}
	}
	return nil
}
