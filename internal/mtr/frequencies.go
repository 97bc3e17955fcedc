//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mtr

import (
	"sort"

	"github.com/e-gun/DistantReader/internal/str"
)

// Counts - how often each item appears, in order of first appearance
func Counts(items []string) str.FreqList {
	idx := make(map[string]int)
	var fl str.FreqList
	for _, w := range items {
		if i, ok := idx[w]; ok {
			fl[i].Count++
			continue
		}
		idx[w] = len(fl)
		fl = append(fl, str.WordCount{Word: w, Count: 1})
	}
	return fl
}

// MostCommon - the n heaviest entries; ties keep their order of first appearance
func MostCommon(fl str.FreqList, n int) str.FreqList {
	out := make(str.FreqList, len(fl))
	copy(out, fl)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopWords - the n most frequent words that are not stopwords
func TopWords(words []string, stops map[string]struct{}, n int) str.FreqList {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := stops[w]; !ok {
			kept = append(kept, w)
		}
	}
	return MostCommon(Counts(kept), n)
}
