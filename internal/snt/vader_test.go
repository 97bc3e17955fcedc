//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package snt

import (
	"path/filepath"
	"testing"

	"github.com/e-gun/DistantReader/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newtestanalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(filepath.Join("testdata", "mini_lexicon.txt"), filepath.Join("testdata", "mini_emoji.txt"))
	require.NoError(t, err)
	return a
}

func TestNewAnalyzerSkipsBadLines(t *testing.T) {
	a := newtestanalyzer(t)
	assert.Len(t, a.sia.LexiconMap, 6)
	assert.InDelta(t, 1.9, a.sia.LexiconMap["good"], 1e-9)
	assert.NotContains(t, a.sia.LexiconMap, "spiteful")
	assert.Len(t, a.sia.EmojiLexiconMap, 2)
}

func TestNewAnalyzerMissingFiles(t *testing.T) {
	_, err := NewAnalyzer(filepath.Join("testdata", "absent.txt"), "")
	assert.Error(t, err)

	a, err := NewAnalyzer(filepath.Join("testdata", "mini_lexicon.txt"), filepath.Join("testdata", "absent.txt"))
	require.NoError(t, err)
	assert.Empty(t, a.sia.EmojiLexiconMap)
}

func TestScorePolarity(t *testing.T) {
	a := newtestanalyzer(t)

	good := a.Score("The soup was good.")
	assert.Greater(t, good.Compound, 0.0)
	assert.Greater(t, good.Pos, 0.0)

	bad := a.Score("The soup was bad.")
	assert.Less(t, bad.Compound, 0.0)
	assert.Greater(t, bad.Neg, 0.0)

	flat := a.Score("The table is wooden.")
	assert.Equal(t, 0.0, flat.Compound)
	assert.InDelta(t, 1.0, flat.Neu, 1e-9)
}

func TestDocumentIsTheMean(t *testing.T) {
	a := newtestanalyzer(t)
	ss := []string{"I love it.", "I hate it.", "It is here."}

	var want str.Sentiment
	for _, s := range ss {
		sc := a.Score(s)
		want.Pos += sc.Pos / 3
		want.Neg += sc.Neg / 3
		want.Neu += sc.Neu / 3
		want.Compound += sc.Compound / 3
	}
	got := a.Document(ss)
	assert.InDelta(t, want.Pos, got.Pos, 1e-9)
	assert.InDelta(t, want.Neg, got.Neg, 1e-9)
	assert.InDelta(t, want.Neu, got.Neu, 1e-9)
	assert.InDelta(t, want.Compound, got.Compound, 1e-9)

	assert.Equal(t, str.Sentiment{}, a.Document(nil))
}
