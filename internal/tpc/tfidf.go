//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/nlp"
)

// Distinctive - for each text the n words that tf-idf weighs heaviest against the other texts
func Distinctive(texts [][]string, n int) ([][]str.TopicWord, error) {
	out := make([][]str.TopicWord, len(texts))
	if len(texts) < 2 {
		return out, nil
	}

	docs := make([]string, len(texts))
	for i, t := range texts {
		docs[i] = strings.Join(t, " ")
	}

	vectoriser := nlp.NewCountVectoriser()
	transformer := nlp.NewTfidfTransformer()
	pipeline := nlp.NewPipeline(vectoriser, transformer)

	weights, err := pipeline.FitTransform(docs...)
	if err != nil {
		return nil, fmt.Errorf("tf-idf: %w", err)
	}
	if len(vectoriser.Vocabulary) == 0 {
		return out, nil
	}

	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}

	terms, ndocs := weights.Dims()
	for d := 0; d < ndocs; d++ {
		var tw []str.TopicWord
		for t := 0; t < terms; t++ {
			if w := weights.At(t, d); w > 0 {
				tw = append(tw, str.TopicWord{Word: vocab[t], Weight: w})
			}
		}
		sort.Slice(tw, func(i, j int) bool {
			if tw[i].Weight != tw[j].Weight {
				return tw[i].Weight > tw[j].Weight
			}
			return tw[i].Word < tw[j].Word
		})
		if len(tw) > n {
			tw = tw[:n]
		}
		for i := range tw {
			tw[i].Weight = gen.Round(tw[i].Weight, 4)
		}
		out[d] = tw
	}
	return out, nil
}
