//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mtr

import (
	"strings"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
)

// IsDialogue - any quotation mark at all makes a sentence dialogue
func IsDialogue(sentence string) bool {
	for _, q := range vv.DialogueMarks {
		if strings.Contains(sentence, q) {
			return true
		}
	}
	return false
}

func DialogueNarrative(sentences []string) str.DialogueNarrative {
	d := 0
	for _, s := range sentences {
		if IsDialogue(s) {
			d++
		}
	}
	n := len(sentences) - d
	// an empty text is all narrative
	dr := gen.Ratio(d, len(sentences))
	return str.DialogueNarrative{
		DialogueRatio:      gen.Round(dr, 4),
		NarrativeRatio:     gen.Round(1-dr, 4),
		TotalSentences:     len(sentences),
		DialogueSentences:  d,
		NarrativeSentences: n,
	}
}
