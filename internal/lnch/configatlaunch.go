//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
	"gopkg.in/yaml.v3"
)

var (
	Config = BuildDefaultConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// BuildDefaultConfig - the configuration before any file or flag has had a say
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.DataDir = vv.DATADIR
	c.DBURL = ""
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.EmojiLexicon = vv.DEFAULTEMOJILEX
	c.Enhanced = true
	c.Gzip = false
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.ImageDir = vv.IMAGEDIR
	c.LdaPasses = vv.LDAPASSES
	c.LdaTopics = vv.LDATOPICS
	c.Lexicon = vv.DEFAULTLEXICON
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.Neighbors = false
	c.NoStore = false
	c.Profile = ""
	c.StopFile = ""
	c.TextDir = vv.DEFAULTTEXTDIR
	c.Texts = nil
	c.WorkerCount = runtime.NumCPU()
	return &c
}

// DefaultTexts - the three texts of the study, looked for in textdir
func DefaultTexts(textdir string) []str.TextSpec {
	return []str.TextSpec{
		{
			Path:      filepath.Join(textdir, "pg600.txt"),
			Title:     "Dostoyevsky's Notes from the Underground",
			ShortName: "dostoyevsky",
			Gutenberg: true,
		},
		{
			Path:      filepath.Join(textdir, "Chernyshevsky_What_Is_To_Be_Done_UTF8.txt"),
			Title:     "Chernyshevsky's What Is To Be Done?",
			ShortName: "chernyshevsky",
		},
		{
			Path:      filepath.Join(textdir, "WellsModernUtopia.txt"),
			Title:     "Wells' A Modern Utopia",
			ShortName: "wells",
		},
	}
}

// FindConfigFile - an explicit path wins; then ./distantreader.yaml; then ~/.config/distantreader.yaml
func FindConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(vv.CONFIGBASIC); err == nil {
		return vv.CONFIGBASIC
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	alt := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC
	if _, err = os.Stat(alt); err == nil {
		return alt
	}
	return ""
}

// LoadConfigFile - overlay the YAML at path onto cfg; fields absent from the file keep their values
func LoadConfigFile(cfg *str.CurrentConfiguration, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// LoadManifest - read a YAML list of texts
func LoadManifest(path string) ([]str.TextSpec, error) {
	// example:
	//	- path: texts/pg600.txt
	//	  title: "Dostoyevsky's Notes from the Underground"
	//	  short_name: dostoyevsky
	//	  gutenberg: true
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}
	var tt []str.TextSpec
	if err = yaml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return tt, ValidateTexts(tt)
}

// ResolveTexts - the manifest in the config, else the default texts in the text directory
func ResolveTexts(cfg *str.CurrentConfiguration) ([]str.TextSpec, error) {
	tt := cfg.Texts
	if len(tt) == 0 {
		tt = DefaultTexts(cfg.TextDir)
	}
	return tt, ValidateTexts(tt)
}

// ValidateTexts - every text needs a path and a unique, filename-safe short name
func ValidateTexts(tt []str.TextSpec) error {
	const (
		FAIL1 = "manifest is empty"
		FAIL2 = "text #%d has no path"
		FAIL3 = "text #%d (%s) has no short_name"
		FAIL4 = "short_name '%s' is used twice"
		FAIL5 = "short_name '%s' may only contain lowercase letters, digits, '-' and '_'"
	)
	if len(tt) == 0 {
		return errors.New(FAIL1)
	}
	seen := make(map[string]bool)
	for i, t := range tt {
		if t.Path == "" {
			return fmt.Errorf(FAIL2, i+1)
		}
		if t.ShortName == "" {
			return fmt.Errorf(FAIL3, i+1, t.Path)
		}
		if seen[t.ShortName] {
			return fmt.Errorf(FAIL4, t.ShortName)
		}
		if strings.Trim(t.ShortName, "abcdefghijklmnopqrstuvwxyz0123456789-_") != "" {
			return fmt.Errorf(FAIL5, t.ShortName)
		}
		seen[t.ShortName] = true
	}
	return nil
}

// ConfigDir - ~/.config or, failing that, the working directory
func ConfigDir() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return fmt.Sprintf(vv.CONFIGALTAPTH, h)
}

// NewMessageMakerWithDefaults - a MessageMaker for use before the configuration is known
func NewMessageMakerWithDefaults() *mm.MessageMaker {
	return mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION+VersSuppl, vv.DEFAULTGOLOGLEVEL, vv.BLACKANDWHITE)
}
