//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mtr

import (
	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/str"
)

// Style - measures over content tokens only; unlike Vocabulary the diversity here is not windowed
func Style(tokens []string, nsentences int) str.Style {
	unique := len(gen.ToSet(tokens))
	ttr := gen.Round(gen.Ratio(unique, len(tokens)), 4)
	return str.Style{
		AvgSentenceLength: gen.Round(gen.Ratio(len(tokens), nsentences), 2),
		TypeTokenRatio:    ttr,
		LexicalDiversity:  ttr,
		TotalSentences:    nsentences,
		TotalTokens:       len(tokens),
		UniqueTokens:      unique,
	}
}
