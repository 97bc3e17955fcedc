//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type WordCount struct {
	Word  string
	Count int
}

// FreqList - an ordered word->count list that marshals as a JSON object without losing its order
type FreqList []WordCount

func (fl FreqList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, wc := range fl {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(wc.Word)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.WriteString(fmt.Sprintf("%d", wc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (fl *FreqList) UnmarshalJSON(b []byte) error {
	const (
		FAIL1 = "FreqList: expected an object"
		FAIL2 = "FreqList: expected a string key"
	)
	dec := json.NewDecoder(bytes.NewReader(b))
	t, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return errors.New(FAIL1)
	}

	var out FreqList
	for dec.More() {
		t, err = dec.Token()
		if err != nil {
			return err
		}
		k, ok := t.(string)
		if !ok {
			return errors.New(FAIL2)
		}
		var c int
		if err = dec.Decode(&c); err != nil {
			return err
		}
		out = append(out, WordCount{Word: k, Count: c})
	}
	*fl = out
	return nil
}

// Map - the unordered view
func (fl FreqList) Map() map[string]int {
	m := make(map[string]int, len(fl))
	for _, wc := range fl {
		m[wc.Word] = wc.Count
	}
	return m
}
