//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mtr

import (
	"strings"
	"testing"

	"github.com/e-gun/DistantReader/internal/str"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestVocabulary(t *testing.T) {
	words := strings.Fields("i am a sick man i am a spiteful man")
	v := Vocabulary(words, 2)

	assert.Equal(t, 10, v.TotalWords)
	assert.Equal(t, 6, v.UniqueWords)
	assert.Equal(t, 0.6, v.TypeTokenRatio)
	assert.Equal(t, 0.6, v.LexicalDiversity)
	assert.Equal(t, 2.6, v.AvgWordLength) // 26 letters / 10 words
	assert.Equal(t, 5.0, v.AvgSentenceLength)
}

func TestVocabularyEmpty(t *testing.T) {
	assert.Equal(t, str.Vocabulary{}, Vocabulary(nil, 0))
}

func TestLexicalDiversityWindow(t *testing.T) {
	words := []string{"a", "b", "a", "c", "d", "e"}
	assert.Equal(t, 2.0/3.0, LexicalDiversity(words, 3))
	assert.Equal(t, 5.0/6.0, LexicalDiversity(words, 100))
	assert.Equal(t, 0.0, LexicalDiversity(nil, 10))
}

func TestDialogueNarrative(t *testing.T) {
	ss := []string{
		`"You will say," he cried.`,
		"“Nonsense,” she answered.",
		"He sat in the corner.",
		"It was raining”",
		"Nobody came.",
		"It's not a quote.",
	}
	dn := DialogueNarrative(ss)
	assert.Equal(t, str.DialogueNarrative{
		DialogueRatio:      0.5,
		NarrativeRatio:     0.5,
		TotalSentences:     6,
		DialogueSentences:  3,
		NarrativeSentences: 3,
	}, dn)

	assert.Equal(t, str.DialogueNarrative{NarrativeRatio: 1}, DialogueNarrative(nil))

	dn = DialogueNarrative(ss[:3])
	assert.Equal(t, 0.6667, dn.DialogueRatio)
	assert.Equal(t, 0.3333, dn.NarrativeRatio)
}

func TestTopWordsOrderAndStops(t *testing.T) {
	words := strings.Fields("the man and the sick man and the spiteful liver man liver")
	stops := map[string]struct{}{"the": {}, "and": {}}

	got := TopWords(words, stops, 3)
	want := str.FreqList{{Word: "man", Count: 3}, {Word: "liver", Count: 2}, {Word: "sick", Count: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopWords (-want +got):\n%s", diff)
	}

	assert.Len(t, TopWords(words, stops, 100), 4)
	assert.Empty(t, TopWords(nil, stops, 10))
}

func TestCountsAndMostCommon(t *testing.T) {
	fl := Counts([]string{"NOUN", "VERB", "NOUN", "ADJ", "VERB", "NOUN"})
	assert.Equal(t, str.FreqList{{Word: "NOUN", Count: 3}, {Word: "VERB", Count: 2}, {Word: "ADJ", Count: 1}}, fl)
	assert.Len(t, MostCommon(fl, 2), 2)
	assert.Len(t, MostCommon(fl, -1), 3)
	assert.Equal(t, "NOUN", fl[0].Word, "MostCommon must not reorder its input")
}

func TestStyle(t *testing.T) {
	s := Style(strings.Fields("sick man spiteful man unattractive man"), 3)
	assert.Equal(t, 2.0, s.AvgSentenceLength)
	assert.Equal(t, 0.6667, s.TypeTokenRatio)
	assert.Equal(t, s.TypeTokenRatio, s.LexicalDiversity)
	assert.Equal(t, 6, s.TotalTokens)
	assert.Equal(t, 4, s.UniqueTokens)
	assert.Equal(t, 3, s.TotalSentences)
}
