//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreqListKeepsOrder(t *testing.T) {
	fl := FreqList{{"man", 40}, {"life", 12}, {"zebra", 12}, {"and", 1}}

	b, err := json.Marshal(fl)
	require.NoError(t, err)
	assert.Equal(t, `{"man":40,"life":12,"zebra":12,"and":1}`, string(b))

	var back FreqList
	require.NoError(t, json.Unmarshal(b, &back))
	if diff := cmp.Diff(fl, back); diff != "" {
		t.Errorf("round trip changed the list (-want +got):\n%s", diff)
	}
}

func TestFreqListEscapesKeys(t *testing.T) {
	b, err := json.Marshal(FreqList{{`say "hi"`, 2}})
	require.NoError(t, err)
	assert.Equal(t, `{"say \"hi\"":2}`, string(b))
}

func TestFreqListEmptyAndInvalid(t *testing.T) {
	b, err := json.Marshal(FreqList{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))

	var fl FreqList
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &fl))
	assert.Error(t, json.Unmarshal([]byte(`{"a":"b"}`), &fl))
}

func TestFreqListInsideStruct(t *testing.T) {
	ta := TextAnalysis{Title: "T", ShortName: "t", WordFrequencies: FreqList{{"b", 2}, {"a", 1}}}
	b, err := json.Marshal(ta)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"word_frequencies":{"b":2,"a":1}`)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, ta.WordFrequencies.Map())
}
