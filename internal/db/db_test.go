//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/e-gun/DistantReader/internal/str"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplerun(short ...string) Run {
	var manifest []str.TextSpec
	basic := &str.BasicOutput{}
	for i, s := range short {
		manifest = append(manifest, str.TextSpec{Path: s + ".txt", Title: "Title " + s, ShortName: s})
		ta := str.TextAnalysis{Title: "Title " + s, ShortName: s}
		ta.Sentiment.Compound = 0.1 * float64(i+1)
		ta.Vocabulary.LexicalDiversity = 0.2 * float64(i+1)
		ta.WordFrequencies = str.FreqList{{Word: "sea", Count: 3 + i}}
		basic.Texts = append(basic.Texts, ta)
	}
	return NewRun(manifest, basic, nil)
}

func storesmoke(t *testing.T, s Store) {
	ctx := context.Background()

	first := samplerun("crusoe", "gatsby")
	require.NoError(t, s.SaveRun(ctx, first))
	time.Sleep(2 * time.Millisecond)

	second := samplerun("usher")
	second.Enhanced = &str.EnhancedOutput{Texts: []str.EnhancedText{{ShortName: "usher", Topics: []str.Topic{{ID: 0, Words: []str.TopicWord{{Word: "house", Weight: 0.5}}}}}}}
	require.NoError(t, s.SaveRun(ctx, second))

	runs, err := s.Runs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)
	require.Len(t, runs[1].Texts, 2)
	assert.Equal(t, "crusoe", runs[1].Texts[0].ShortName)
	assert.InDelta(t, 0.4, runs[1].Texts[1].LexicalDiversity, 1e-9)

	one, err := s.Runs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)

	got, err := s.Run(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Enhanced)
	if d := cmp.Diff(first.Manifest, got.Manifest); d != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(first.Basic, got.Basic); d != "" {
		t.Errorf("results mismatch (-want +got):\n%s", d)
	}
	assert.WithinDuration(t, first.Created, got.Created, time.Millisecond)

	got, err = s.Run(ctx, second.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Enhanced)
	assert.Equal(t, "house", got.Enhanced.Texts[0].Topics[0].Words[0].Word)

	_, err = s.Run(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	storesmoke(t, s)
}

func TestSQLiteSchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	r := samplerun("crusoe")
	require.NoError(t, s.SaveRun(ctx, r))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Runs(ctx, 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, r.ID, runs[0].ID)
}

func TestOpenPicksSQLite(t *testing.T) {
	cfg := &str.CurrentConfiguration{DataDir: filepath.Join(t.TempDir(), "nested")}
	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()
	_, ok := s.(*SQLiteStore)
	assert.True(t, ok)
}

func TestPGStore(t *testing.T) {
	url := os.Getenv("DR_TEST_PGURL")
	if url == "" {
		t.Skip("DR_TEST_PGURL not set")
	}
	ctx := context.Background()
	s, err := OpenPostgres(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = s.pool.Exec(ctx, "DROP TABLE IF EXISTS run_texts, runs")
		_ = s.Close()
	})
	_, err = s.pool.Exec(ctx, "TRUNCATE run_texts, runs")
	require.NoError(t, err)
	storesmoke(t, s)
}

func TestInitTwice(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()
	assert.NoError(t, s.Init(context.Background()))
}
