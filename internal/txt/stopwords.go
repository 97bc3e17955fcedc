//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/vv"
)

// englishstops - the NLTK english list
var englishstops = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're", "you've", "you'll", "you'd",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself", "she", "she's", "her", "hers",
	"herself", "it", "it's", "its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which",
	"who", "whom", "this", "that", "that'll", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
	"or", "because", "as", "until", "while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to", "from", "up", "down", "in", "out",
	"on", "off", "over", "under", "again", "further", "then", "once", "here", "there", "when", "where", "why",
	"how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just", "don", "don't",
	"should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn",
	"couldn't", "didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven", "haven't",
	"isn", "isn't", "ma", "mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't",
	"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
}

// EnglishStops - a fresh copy of the built-in list
func EnglishStops() []string {
	return slices.Clone(englishstops)
}

// StopSet - the list as a set
func StopSet(stops []string) map[string]struct{} {
	return gen.ToSet(stops)
}

// ReadStopConfig - the user's stopword file at path; if it is not there write the built-in list to it first
func ReadStopConfig(path string) ([]string, bool, error) {
	// the bool reports whether the file had to be written
	stops := EnglishStops()
	if path == "" {
		return stops, false, nil
	}

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		slices.Sort(stops)
		content, e := json.MarshalIndent(stops, "", vv.JSONINDENT)
		if e != nil {
			return nil, false, e
		}
		if e = os.MkdirAll(filepath.Dir(path), 0755); e != nil {
			return nil, false, fmt.Errorf("write stops %s: %w", path, e)
		}
		if e = os.WriteFile(path, content, vv.WRITEPERMS); e != nil {
			return nil, false, fmt.Errorf("write stops %s: %w", path, e)
		}
		return stops, true, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("stat stops %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read stops %s: %w", path, err)
	}
	var stp []string
	if err = json.Unmarshal(data, &stp); err != nil {
		return nil, false, fmt.Errorf("parse stops %s: %w", path, err)
	}
	return stp, false, nil
}
