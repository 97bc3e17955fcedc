//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package anl

import (
	"fmt"

	"github.com/e-gun/DistantReader/internal/str"
)

// Insights - the four comparative sentences; ties go to the earlier text
func Insights(records []str.TextAnalysis) []string {
	const (
		SENT = "%s has the most positive sentiment (compound score: %.3f), while %s is the most negative (compound score: %.3f)."
		VOCB = "%s demonstrates the richest vocabulary with a lexical diversity of %.4f."
		DIAL = "%s contains the most dialogue (%.1f%% of sentences), while %s is predominantly narrative (%.1f%% dialogue only)."
		WLEN = "%s uses the longest words on average (%.2f characters), suggesting a more complex or formal writing style."
	)

	if len(records) == 0 {
		return nil
	}

	compound := func(r str.TextAnalysis) float64 { return r.Sentiment.Compound }
	diversity := func(r str.TextAnalysis) float64 { return r.Vocabulary.LexicalDiversity }
	dialogue := func(r str.TextAnalysis) float64 { return r.DialogueNarrative.DialogueRatio }
	wordlen := func(r str.TextAnalysis) float64 { return r.Vocabulary.AvgWordLength }

	mostpos := extreme(records, compound, true)
	mostneg := extreme(records, compound, false)
	richest := extreme(records, diversity, true)
	mostdial := extreme(records, dialogue, true)
	mostnarr := extreme(records, dialogue, false)
	longest := extreme(records, wordlen, true)

	return []string{
		fmt.Sprintf(SENT, mostpos.Title, compound(mostpos), mostneg.Title, compound(mostneg)),
		fmt.Sprintf(VOCB, richest.Title, diversity(richest)),
		fmt.Sprintf(DIAL, mostdial.Title, dialogue(mostdial)*100, mostnarr.Title, dialogue(mostnarr)*100),
		fmt.Sprintf(WLEN, longest.Title, wordlen(longest)),
	}
}

// extreme - the first record with the largest (or smallest) value
func extreme(records []str.TextAnalysis, val func(str.TextAnalysis) float64, largest bool) str.TextAnalysis {
	best := records[0]
	for _, r := range records[1:] {
		if largest && val(r) > val(best) {
			best = r
		} else if !largest && val(r) < val(best) {
			best = r
		}
	}
	return best
}
