//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborsEmptyInput(t *testing.T) {
	nn, err := Neighbors(context.Background(), nil, []string{"man"}, 3, DefaultW2VVectors(1))
	require.NoError(t, err)
	assert.Empty(t, nn)
}

func TestNeighborsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	words := strings.Fields(strings.Repeat("the sea was calm and the ship sailed on ", 50))
	_, err := Neighbors(ctx, words, []string{"sea"}, 3, DefaultW2VVectors(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNeighborsTrains(t *testing.T) {
	if testing.Short() {
		t.Skip("word2vec training is slow")
	}
	corpus := strings.Repeat("the sea was calm and the ship sailed on the sea ", 200) +
		strings.Repeat("the field was green and the cattle grazed in the field ", 200)
	words := strings.Fields(corpus)

	cfg := DefaultW2VVectors(2)
	cfg.MinCount = 1
	cfg.Dim = 20
	cfg.Iter = 3

	nn, err := Neighbors(context.Background(), words, []string{"sea", "sea", "unseen"}, 3, cfg)
	require.NoError(t, err)
	require.Contains(t, nn, "sea")
	assert.NotContains(t, nn, "unseen")
	assert.LessOrEqual(t, len(nn["sea"]), 3)
	for _, n := range nn["sea"] {
		assert.NotEqual(t, "sea", n.Word)
		assert.LessOrEqual(t, n.Similarity, 1.0001)
	}
}
