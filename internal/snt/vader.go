//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package snt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/drankou/go-vader/vader"
	"github.com/e-gun/DistantReader/internal/str"
	"gonum.org/v1/gonum/stat"
)

// Analyzer - VADER with lexica loaded from disk
type Analyzer struct {
	sia vader.SentimentIntensityAnalyzer
}

// NewAnalyzer - load the lexicon at lexpath and, if present, the emoji lexicon at emojipath
func NewAnalyzer(lexpath string, emojipath string) (*Analyzer, error) {
	lex, err := os.ReadFile(lexpath)
	if err != nil {
		return nil, fmt.Errorf("load vader lexicon: %w", err)
	}
	clean := sanitize(string(lex), true)
	if clean == "" {
		return nil, fmt.Errorf("load vader lexicon: %s has no usable entries", lexpath)
	}

	a := &Analyzer{}
	a.sia.LexiconMap = vader.MakeLexiconMap(clean)
	a.sia.SpecialCaseIdioms = vader.SpecialCaseIdioms
	a.sia.EmojiLexiconMap = make(map[string]string)

	if emojipath == "" {
		return a, nil
	}
	emo, err := os.ReadFile(emojipath)
	if errors.Is(err, fs.ErrNotExist) {
		return a, nil
	} else if err != nil {
		return nil, fmt.Errorf("load emoji lexicon: %w", err)
	}
	if clean = sanitize(string(emo), false); clean != "" {
		a.sia.EmojiLexiconMap = vader.MakeEmojiLexiconMap(clean)
	}
	return a, nil
}

// sanitize - keep only "token<TAB>value..." lines; the lexicon readers give up on anything else
func sanitize(lexicon string, numeric bool) string {
	var keep []string
	for _, l := range strings.Split(lexicon, "\n") {
		l = strings.TrimSpace(l)
		vals := strings.Split(l, "\t")
		if len(vals) < 2 || vals[0] == "" {
			continue
		}
		if numeric {
			if _, err := strconv.ParseFloat(vals[1], 64); err != nil {
				continue
			}
		}
		keep = append(keep, l)
	}
	return strings.Join(keep, "\n")
}

// Score - the polarity scores of one sentence
func (a *Analyzer) Score(sentence string) str.Sentiment {
	ps := a.sia.PolarityScores(sentence)
	return str.Sentiment{
		Pos:      ps["pos"],
		Neg:      ps["neg"],
		Neu:      ps["neu"],
		Compound: ps["compound"],
	}
}

// Document - the mean of the per-sentence scores; zero when there are no sentences
func (a *Analyzer) Document(sentences []string) str.Sentiment {
	if len(sentences) == 0 {
		return str.Sentiment{}
	}

	pos := make([]float64, len(sentences))
	neg := make([]float64, len(sentences))
	neu := make([]float64, len(sentences))
	cmp := make([]float64, len(sentences))
	for i, s := range sentences {
		sc := a.Score(s)
		pos[i] = sc.Pos
		neg[i] = sc.Neg
		neu[i] = sc.Neu
		cmp[i] = sc.Compound
	}

	return str.Sentiment{
		Pos:      stat.Mean(pos, nil),
		Neg:      stat.Mean(neg, nil),
		Neu:      stat.Mean(neu, nil),
		Compound: stat.Mean(cmp, nil),
	}
}
