//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripGutenberg(t *testing.T) {
	raw, err := ReadText(filepath.Join("testdata", "gutenberg_sample.txt"), "")
	require.NoError(t, err)

	body := StripGutenberg(raw)
	assert.True(t, strings.HasPrefix(body, "I am a sick man."), body)
	assert.True(t, strings.HasSuffix(body, "But I don't care."), body)
	assert.NotContains(t, body, "Project Gutenberg")
}

func TestStripGutenbergMissingMarkers(t *testing.T) {
	assert.Equal(t, "plain text", StripGutenberg("  plain text \n"))
	assert.Equal(t, "body", StripGutenberg("head\n"+GUTSTART+" X ***\nbody\n"))
	assert.Equal(t, "body", StripGutenberg("body\n"+GUTEND+" X ***\nlicence"))
	assert.Equal(t, "", StripGutenberg("head "+GUTSTART))
}

func TestReadTextEncodings(t *testing.T) {
	s, err := ReadText(filepath.Join("testdata", "latin1.txt"), "latin1")
	require.NoError(t, err)
	assert.Equal(t, "café au lait\n", s)

	// not valid UTF-8: falls back to windows-1252
	s, err = ReadText(filepath.Join("testdata", "latin1.txt"), "")
	require.NoError(t, err)
	assert.Equal(t, "café au lait\n", s)

	_, err = ReadText(filepath.Join("testdata", "latin1.txt"), "klingon")
	assert.Error(t, err)

	_, err = ReadText(filepath.Join("testdata", "nope.txt"), "")
	assert.Error(t, err)
}

func TestDecodeDropsBOM(t *testing.T) {
	s, err := Decode([]byte("\xef\xbb\xbfHello"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "Hello", s)

	s, err = Decode([]byte("\xff\xfeH\x00i\x00"), "utf-16")
	require.NoError(t, err)
	assert.Equal(t, "Hi", s)
}

func TestSentenceWords(t *testing.T) {
	got := SentenceWords([]string{"I met Mr. Wells.", "He was late."})
	assert.Equal(t, []string{"i", "met", "wells", "he", "was", "late"}, got)
	assert.Nil(t, SentenceWords(nil))
}

func TestReadTextHTML(t *testing.T) {
	s, err := ReadText(filepath.Join("testdata", "sample.html"), "")
	require.NoError(t, err)
	assert.Contains(t, s, "Chapter One")
	assert.Contains(t, s, "It was a bright day.")
	assert.NotContains(t, s, "hidden")
	assert.NotContains(t, s, "color")
}

func TestSentences(t *testing.T) {
	sp, err := NewSplitter()
	require.NoError(t, err)

	ss := sp.Sentences("I am a sick man. I am a spiteful man. I am an unattractive man.")
	assert.Equal(t, []string{"I am a sick man.", "I am a spiteful man.", "I am an unattractive man."}, ss)
	assert.Empty(t, sp.Sentences("   "))
}

func TestWords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"I am a sick man.", []string{"i", "am", "a", "sick", "man"}},
		{"But I don't care.", []string{"but", "i", "do", "care"}},
		{"It’s a well-known fact, in 1864.", []string{"it", "a", "fact", "in"}},
		{`"You will say," he cried—"vulgar!"`, []string{"you", "will", "say", "he", "cried", "vulgar"}},
		{"Wait--what?", []string{"wait", "what"}},
		{"Ça ira", []string{"ça", "ira"}},
		{"Mr. Wells met Dr. Lopukhov in St. Petersburg.", []string{"wells", "met", "lopukhov", "in", "petersburg"}},
		{"He read _Notes_ twice... then slept", []string{"he", "read", "twice", "then", "slept"}},
		{"", nil},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Words(c.in), c.in)
	}
}

func TestEnglishStops(t *testing.T) {
	st := EnglishStops()
	assert.Len(t, st, 179)
	set := StopSet(st)
	assert.Contains(t, set, "the")
	assert.NotContains(t, set, "man")

	st[0] = "changed"
	assert.Equal(t, "i", EnglishStops()[0], "callers get a copy")
}

func TestReadStopConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg", "stops.json")

	st, wrote, err := ReadStopConfig(p)
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.Len(t, st, 179)

	require.NoError(t, os.WriteFile(p, []byte(`["man","sick"]`), 0644))
	st, wrote, err = ReadStopConfig(p)
	require.NoError(t, err)
	assert.False(t, wrote)
	assert.Equal(t, []string{"man", "sick"}, st)

	require.NoError(t, os.WriteFile(p, []byte(`{"man":1}`), 0644))
	_, _, err = ReadStopConfig(p)
	var se *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &se)

	st, wrote, err = ReadStopConfig("")
	require.NoError(t, err)
	assert.False(t, wrote)
	assert.Len(t, st, 179)
}
