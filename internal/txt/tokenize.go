//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/e-gun/DistantReader/internal/gen"
)

var (
	dashes     = regexp.MustCompile(`-{2,}|[—–―]`)
	ellipses   = regexp.MustCompile(`\.{2,}|…`)
	clitics    = []string{"n't", "'s", "'m", "'d", "'ll", "'re", "'ve"}
	apostrophe = strings.NewReplacer("’", "'", "‘", "'")
)

// Words - lowercase alphabetic tokens of one sentence
func Words(sentence string) []string {
	// "I don't know, Mr. Wells—do you?" -> [i do know wells do you]
	// only the sentence-final period is split off: "mr." and "_notes_" stay whole and fail the alphabetic test;
	// contractions split the treebank way and the clitic is then dropped for not being alphabetic;
	// "well-known" and "1864" are dropped whole

	s := strings.ToLower(sentence)
	s = apostrophe.Replace(s)
	s = dashes.ReplaceAllString(s, " ")
	s = ellipses.ReplaceAllString(s, " ")

	ff := strings.FieldsFunc(s, isbreak)
	var out []string
	for i, f := range ff {
		if i == len(ff)-1 {
			f = strings.TrimRight(f, ".")
		}
		f = strings.Trim(f, "'-")
		if f == "" {
			continue
		}
		for _, p := range splitclitic(f) {
			if gen.IsAlpha(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// SentenceWords - the words of each sentence in turn
func SentenceWords(sentences []string) []string {
	var out []string
	for _, s := range sentences {
		out = append(out, Words(s)...)
	}
	return out
}

// isbreak - whitespace and punctuation end a token, except the marks that can sit inside a word
func isbreak(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '\'', '-', '.', '_':
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func splitclitic(w string) []string {
	for _, c := range clitics {
		if strings.HasSuffix(w, c) && len(w) > len(c) {
			return []string{w[:len(w)-len(c)], c}
		}
	}
	return []string{w}
}
