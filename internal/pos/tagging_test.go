//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pos

import (
	"context"
	"strings"
	"testing"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunksCutAtWhitespace(t *testing.T) {
	text := "alpha beta gamma delta epsilon"
	cc := Chunks(text, 12)
	for _, c := range cc {
		assert.LessOrEqual(t, len(c), 12)
		assert.Equal(t, strings.TrimSpace(c), c)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(cc, " ")))
}

func TestChunksNeverSplitARune(t *testing.T) {
	cc := Chunks("ééééé", 3)
	assert.Equal(t, []string{"é", "é", "é", "é", "é"}, cc)
	assert.Equal(t, []string{"short"}, Chunks("short", 100))
	assert.Empty(t, Chunks("   ", 100))
}

func TestUniversal(t *testing.T) {
	assert.Equal(t, "NOUN", Universal("NNS"))
	assert.Equal(t, "PROPN", Universal("NNP"))
	assert.Equal(t, "VERB", Universal("VBD"))
	assert.Equal(t, "PUNCT", Universal(","))
	assert.Equal(t, "X", Universal("ZZZ"))
}

func TestTagKeepsContentWords(t *testing.T) {
	stops := gen.ToSet([]string{"i", "am", "a", "the", "in"})
	tg, err := Tag(context.Background(), "I am a sick man. I live in London, 1864.", 100000, stops)
	require.NoError(t, err)

	assert.Equal(t, []string{"sick", "man", "live", "london"}, tg.Tokens)
	assert.Len(t, tg.Tags, len(tg.Tokens))
	assert.Equal(t, "NOUN", tg.Tags[1])

	dist := tg.POSDistribution(10)
	total := 0
	for _, wc := range dist {
		total += wc.Count
	}
	assert.Equal(t, 4, total)
}

func TestTagHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Tag(ctx, "some words here", 100, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTopEntitiesCap(t *testing.T) {
	tg := Tagged{}
	for i := 0; i < 30; i++ {
		tg.Entities = append(tg.Entities, str.Entity{Text: "X", Label: "GPE"})
	}
	assert.Len(t, tg.TopEntities(20), 20)
	assert.Len(t, Tagged{}.TopEntities(20), 0)
}
