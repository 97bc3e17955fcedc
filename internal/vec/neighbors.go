//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/e-gun/wego/pkg/search"
)

// DefaultW2VVectors - wego's skipgram settings, tuned for a single novel
func DefaultW2VVectors(workers int) word2vec.Options {
	return word2vec.Options{
		BatchSize:          1024,
		Dim:                125,
		DocInMemory:        true,
		Goroutines:         max(workers, 1),
		Initlr:             0.025,
		Iter:               15,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           150,
		MinCount:           10,
		MinLR:              0.0000025,
		ModelType:          "skipgram",
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             8,
	}
}

// Embeddings - train word2vec over the words of a text
func Embeddings(ctx context.Context, words []string, cfg word2vec.Options) (embedding.Embeddings, error) {
	const (
		FAIL1 = "model initialization failed: %w"
		FAIL2 = "failed to train vector embeddings: %w"
		FAIL3 = "failed to save vector embeddings: %w"
		FAIL4 = "failed to load vector embeddings: %w"
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vmodel, err := word2vec.NewForOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	// input for Train() is 'io.ReadSeeker'
	b := bytes.NewReader([]byte(strings.Join(words, " ")))

	finished := make(chan error, 1)
	go func() {
		finished <- vmodel.Train(b)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err = <-finished:
		if err != nil {
			return nil, fmt.Errorf(FAIL2, err)
		}
	}

	// use buffers; skip the disk
	var buf bytes.Buffer
	if err = vmodel.Save(&buf, vector.Agg); err != nil {
		return nil, fmt.Errorf(FAIL3, err)
	}
	embs, err := embedding.Load(&buf)
	if err != nil {
		return nil, fmt.Errorf(FAIL4, err)
	}
	return embs, nil
}

// Neighbors - the k nearest words to each target; targets the model never learned are skipped
func Neighbors(ctx context.Context, words []string, targets []string, k int, cfg word2vec.Options) (map[string][]str.Neighbor, error) {
	nn := make(map[string][]str.Neighbor)
	if len(words) == 0 || len(targets) == 0 {
		return nn, nil
	}

	embs, err := Embeddings(ctx, words, cfg)
	if err != nil {
		return nil, err
	}
	if len(embs) == 0 {
		return nn, nil
	}

	searcher, err := search.New(embs...)
	if err != nil {
		return nil, fmt.Errorf("failed to produce a Searcher: %w", err)
	}

	for _, t := range gen.Unique(targets) {
		neighbors, e := searcher.SearchInternal(t, k)
		if e != nil {
			continue
		}
		for _, n := range neighbors {
			nn[t] = append(nn[t], str.Neighbor{Word: n.Word, Similarity: gen.Round(n.Similarity, 4)})
		}
	}
	return nn, nil
}
