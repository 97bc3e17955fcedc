//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-gun/DistantReader/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()
	assert.Equal(t, vv.SERVEDFROMPORT, c.HostPort)
	assert.Equal(t, vv.LDATOPICS, c.LdaTopics)
	assert.True(t, c.Enhanced)
	assert.Positive(t, c.WorkerCount)
}

func TestDefaultTextsValidate(t *testing.T) {
	tt := DefaultTexts("corpus")
	require.Len(t, tt, 3)
	assert.Equal(t, filepath.Join("corpus", "pg600.txt"), tt[0].Path)
	assert.True(t, tt[0].Gutenberg)
	assert.False(t, tt[1].Gutenberg)
	assert.Equal(t, "wells", tt[2].ShortName)
	assert.NoError(t, ValidateTexts(tt))
}

func TestLoadConfigFileOverlays(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "dr.yaml")
	body := strings.Join([]string{
		"hostport: 9001",
		"loglevel: 5",
		"texts:",
		"  - path: a.txt",
		"    title: A",
		"    short_name: a",
		"    gutenberg: true",
	}, "\n")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))

	c := BuildDefaultConfig()
	require.NoError(t, LoadConfigFile(c, p))
	assert.Equal(t, 9001, c.HostPort)
	assert.Equal(t, 5, c.LogLevel)
	assert.Equal(t, vv.SERVEDFROMHOST, c.HostIP, "untouched fields keep their defaults")
	require.Len(t, c.Texts, 1)
	assert.True(t, c.Texts[0].Gutenberg)

	tt, err := ResolveTexts(c)
	require.NoError(t, err)
	assert.Equal(t, "a", tt[0].ShortName)
}

func TestLoadConfigFileErrors(t *testing.T) {
	c := BuildDefaultConfig()
	assert.NoError(t, LoadConfigFile(c, ""))
	assert.Error(t, LoadConfigFile(c, filepath.Join(t.TempDir(), "missing.yaml")))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("hostport: [1, 2"), 0644))
	assert.Error(t, LoadConfigFile(c, bad))
}

func TestLoadManifest(t *testing.T) {
	p := filepath.Join(t.TempDir(), "m.yaml")
	body := "- path: x.txt\n  title: X\n  short_name: x\n- path: y.txt\n  title: Y\n  short_name: y\n  encoding: latin1\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))

	tt, err := LoadManifest(p)
	require.NoError(t, err)
	require.Len(t, tt, 2)
	assert.Equal(t, "latin1", tt[1].Encoding)
}

func TestValidateTexts(t *testing.T) {
	tt := DefaultTexts("t")
	tt[2].ShortName = "dostoyevsky"
	assert.ErrorContains(t, ValidateTexts(tt), "used twice")

	tt = DefaultTexts("t")
	tt[0].ShortName = "Bad Name"
	assert.Error(t, ValidateTexts(tt))

	tt = DefaultTexts("t")
	tt[1].Path = ""
	assert.Error(t, ValidateTexts(tt))

	assert.Error(t, ValidateTexts(nil))
}

func TestVersionLine(t *testing.T) {
	c := BuildDefaultConfig()
	l := VersionLine(c)
	assert.Contains(t, l, vv.MYNAME)
	assert.Contains(t, l, "gl=2")
}
