//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mtr

import (
	"unicode/utf8"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
)

// Vocabulary - richness measures over every alphabetic word, stopwords included
func Vocabulary(words []string, nsentences int) str.Vocabulary {
	var chars int
	for _, w := range words {
		chars += utf8.RuneCountInString(w)
	}

	unique := len(gen.ToSet(words))
	return str.Vocabulary{
		TotalWords:        len(words),
		UniqueWords:       unique,
		TypeTokenRatio:    gen.Round(gen.Ratio(unique, len(words)), 4),
		LexicalDiversity:  gen.Round(LexicalDiversity(words, vv.DIVERSITYWINDOW), 4),
		AvgWordLength:     gen.Round(gen.Ratio(chars, len(words)), 2),
		AvgSentenceLength: gen.Round(gen.Ratio(len(words), nsentences), 2),
	}
}

// LexicalDiversity - the type-token ratio of the first n words
func LexicalDiversity(words []string, n int) float64 {
	if len(words) > n {
		words = words[:n]
	}
	return gen.Ratio(len(gen.ToSet(words)), len(words))
}
