//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

const (
	ITERSPERPASS = 5
)

// Settings - how to model one text
type Settings struct {
	Topics    int
	Passes    int
	TopWords  int
	DocTokens int // tokens per pseudo-document
	MinLen    int // shortest token admitted
	Seed      uint64
	Workers   int
}

// Model - topics plus the pseudo-documents placed on a topic map
type Model struct {
	Topics []str.Topic
	Map    []str.MapPoint
}

// Documents - content tokens, minus stopwords and short words, joined into pseudo-documents of n tokens
func Documents(tokens []string, stops map[string]struct{}, minlen int, n int) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if utf8.RuneCountInString(t) < minlen {
			continue
		}
		if _, ok := stops[t]; ok {
			continue
		}
		kept = append(kept, t)
	}

	var docs []string
	for _, c := range gen.ChunkSlice(kept, n) {
		docs = append(docs, strings.Join(c, " "))
	}
	return docs
}

// Topics - fit an LDA model to the pseudo-documents; no documents means no topics
func Topics(docs []string, s Settings) (Model, error) {
	if len(docs) == 0 || s.Topics < 1 {
		return Model{}, nil
	}

	vectoriser := nlp.NewCountVectoriser()
	docsOverTopics, topicsOverWords, err := ldamodel(s, docs, vectoriser)
	if err != nil {
		return Model{}, err
	}
	if len(vectoriser.Vocabulary) == 0 {
		return Model{}, nil
	}

	sorted := ldasortedtopics(s.TopWords, topicsOverWords, vectoriser)
	counts := ldadocpertopic(s.Topics, docsOverTopics)
	shares := ldadocbyweight(s.Topics, docsOverTopics)

	var m Model
	for i := 0; i < s.Topics; i++ {
		t := str.Topic{ID: i, Words: sorted[i], Docs: counts[i], Share: gen.Round(shares[i], 4)}
		m.Topics = append(m.Topics, t)
	}
	m.Map = TopicMap(docsOverTopics)
	return m, nil
}

// ldamodel - build the lda model for the corpus
func ldamodel(s Settings, corpus []string, vectoriser *nlp.CountVectoriser) (mat.Matrix, mat.Matrix, error) {
	lda := nlp.NewLatentDirichletAllocation(s.Topics)
	lda.Processes = max(s.Workers, 1)
	lda.Iterations = max(s.Passes, 1) * ITERSPERPASS
	lda.TransformationPasses = lda.Iterations / 2
	lda.Rnd = rand.New(rand.NewSource(s.Seed))

	pipeline := nlp.NewPipeline(vectoriser, lda)

	docsOverTopics, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, nil, fmt.Errorf("model topics: %w", err)
	}

	topicsOverWords := lda.Components()
	return docsOverTopics, topicsOverWords, nil
}

// ldasortedtopics - the heaviest words of each topic; weights are normalised so that each topic sums to 1
func ldasortedtopics(top int, topicsOverWords mat.Matrix, vectoriser *nlp.CountVectoriser) map[int][]str.TopicWord {
	tr, tc := topicsOverWords.Dims()

	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}

	tops := make(map[int][]str.TopicWord)
	for topic := 0; topic < tr; topic++ {
		var sum float64
		for word := 0; word < tc; word++ {
			sum += topicsOverWords.At(topic, word)
		}
		tss := make([]str.TopicWord, tc)
		for word := 0; word < tc; word++ {
			w := topicsOverWords.At(topic, word)
			if sum > 0 {
				w = w / sum
			}
			tss[word] = str.TopicWord{Word: vocab[word], Weight: w}
		}
		sort.Slice(tss, func(i, j int) bool {
			if tss[i].Weight != tss[j].Weight {
				return tss[i].Weight > tss[j].Weight
			}
			return tss[i].Word < tss[j].Word
		})
		if len(tss) > top {
			tss = tss[0:top]
		}
		for i := range tss {
			tss[i].Weight = gen.Round(tss[i].Weight, 4)
		}
		tops[topic] = tss
	}
	return tops
}

// ldadocpertopic - N documents have topic X as their dominant topic
func ldadocpertopic(ntopics int, docsOverTopics mat.Matrix) []int {
	counter := make([]int, ntopics)
	_, dc := docsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		counter[dominant(docsOverTopics, doc)] += 1
	}
	return counter
}

// ldadocbyweight - scaled total accumulated weight of each topic
func ldadocbyweight(ntopics int, docsOverTopics mat.Matrix) []float64 {
	counter := make([]float64, ntopics)
	dr, dc := docsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			// any given corpus[doc] will look like
			// Topic #0=0.006009, Topic #1=0.006915, Topic #2=0.000688, Topic #3=0.449514, Topic #4=0.536875
			counter[topic] += docsOverTopics.At(topic, doc)
		}
	}

	high := 0.0
	for _, c := range counter {
		high = max(high, c)
	}

	scaled := make([]float64, ntopics)
	if high == 0 {
		return scaled
	}
	for i := 0; i < ntopics; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}

// dominant - the heaviest topic of a document; the first wins a tie
func dominant(docsOverTopics mat.Matrix, doc int) int {
	dr, _ := docsOverTopics.Dims()
	hi := -1.0
	winner := 0
	for topic := 0; topic < dr; topic++ {
		if v := docsOverTopics.At(topic, doc); v > hi {
			winner = topic
			hi = v
		}
	}
	return winner
}
