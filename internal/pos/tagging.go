//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pos

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/mtr"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/jdkato/prose/v2"
)

// penntouniversal - Penn Treebank tags collapsed onto the universal tagset
var penntouniversal = map[string]string{
	"CC": "CCONJ", "CD": "NUM", "DT": "DET", "EX": "PRON", "FW": "X", "IN": "ADP",
	"JJ": "ADJ", "JJR": "ADJ", "JJS": "ADJ", "LS": "X", "MD": "AUX",
	"NN": "NOUN", "NNS": "NOUN", "NNP": "PROPN", "NNPS": "PROPN",
	"PDT": "DET", "POS": "PART", "PRP": "PRON", "PRP$": "PRON",
	"RB": "ADV", "RBR": "ADV", "RBS": "ADV", "RP": "PART", "SYM": "SYM", "TO": "PART", "UH": "INTJ",
	"VB": "VERB", "VBD": "VERB", "VBG": "VERB", "VBN": "VERB", "VBP": "VERB", "VBZ": "VERB",
	"WDT": "DET", "WP": "PRON", "WP$": "PRON", "WRB": "ADV",
}

// Universal - the universal tag for a Penn tag; punctuation and the unknown fall to PUNCT and X
func Universal(penn string) string {
	if u, ok := penntouniversal[penn]; ok {
		return u
	}
	for _, r := range penn {
		if unicode.IsLetter(r) {
			return "X"
		}
	}
	return "PUNCT"
}

// Tagged - what the tagger makes of a whole text
type Tagged struct {
	Tokens   []string     // lowercased content words, in text order
	Tags     []string     // the universal tag of each of Tokens
	Entities []str.Entity // in text order, uncapped
}

// POSDistribution - the n most common tags of the content words
func (t Tagged) POSDistribution(n int) str.FreqList {
	return mtr.MostCommon(mtr.Counts(t.Tags), n)
}

// TopEntities - the first n entities
func (t Tagged) TopEntities(n int) []str.Entity {
	if len(t.Entities) > n {
		return t.Entities[:n]
	}
	return t.Entities
}

// Tag - run the tagger over text in chunks of at most chunkchars bytes; stops is the stopword set
func Tag(ctx context.Context, text string, chunkchars int, stops map[string]struct{}) (Tagged, error) {
	var tg Tagged
	for i, chunk := range Chunks(text, chunkchars) {
		if err := ctx.Err(); err != nil {
			return Tagged{}, err
		}
		doc, err := prose.NewDocument(chunk, prose.WithSegmentation(false))
		if err != nil {
			return Tagged{}, fmt.Errorf("tag chunk %d: %w", i, err)
		}
		for _, tok := range doc.Tokens() {
			if !gen.IsAlpha(tok.Text) {
				continue
			}
			w := strings.ToLower(tok.Text)
			if _, ok := stops[w]; ok {
				continue
			}
			tg.Tokens = append(tg.Tokens, w)
			tg.Tags = append(tg.Tags, Universal(tok.Tag))
		}
		for _, e := range doc.Entities() {
			tg.Entities = append(tg.Entities, str.Entity{Text: e.Text, Label: e.Label})
		}
	}
	return tg, nil
}

// Chunks - cut text into pieces of at most n bytes, at whitespace where possible and never inside a rune
func Chunks(text string, n int) []string {
	if n < 1 {
		return []string{text}
	}
	var out []string
	for len(text) > n {
		cut := strings.LastIndexFunc(text[:n], unicode.IsSpace)
		if cut <= 0 {
			cut = n
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			if cut == 0 {
				_, cut = utf8.DecodeRuneInString(text)
			}
		}
		out = append(out, text[:cut])
		text = strings.TrimLeftFunc(text[cut:], unicode.IsSpace)
	}
	if strings.TrimSpace(text) != "" {
		out = append(out, text)
	}
	return out
}
