//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Splitter - a punkt sentence tokenizer trained for English
type Splitter struct {
	tk *sentences.DefaultSentenceTokenizer
}

func NewSplitter() (*Splitter, error) {
	tk, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence model: %w", err)
	}
	return &Splitter{tk: tk}, nil
}

// Sentences - the non-empty sentences of text, trimmed
func (s *Splitter) Sentences(text string) []string {
	var out []string
	for _, st := range s.tk.Tokenize(text) {
		t := strings.TrimSpace(st.Text)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
