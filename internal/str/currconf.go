//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool       `yaml:"blackandwhite"`
	DataDir       string     `yaml:"datadir"`
	DBURL         string     `yaml:"dburl"` // a postgres:// dsn; empty means sqlite in DataDir
	EchoLog       int        `yaml:"echolog"` // 0: "none", 1: "terse", 2: "prolix"
	EmojiLexicon  string     `yaml:"emojilexicon"`
	Enhanced      bool       `yaml:"enhanced"`
	Gzip          bool       `yaml:"gzip"`
	HostIP        string     `yaml:"hostip"`
	HostPort      int        `yaml:"hostport"`
	ImageDir      string     `yaml:"imagedir"`
	LdaPasses     int        `yaml:"ldapasses"`
	LdaTopics     int        `yaml:"ldatopics"`
	Lexicon       string     `yaml:"lexicon"`
	LogLevel      int        `yaml:"loglevel"`
	Neighbors     bool       `yaml:"neighbors"`
	NoStore       bool       `yaml:"nostore"`
	Profile       string     `yaml:"profile"` // "cpu", "mem" or ""
	StopFile      string     `yaml:"stopfile"`
	TextDir       string     `yaml:"textdir"`
	Texts         []TextSpec `yaml:"texts"`
	WorkerCount   int        `yaml:"workers"`
}

// TextSpec - one entry in the manifest
type TextSpec struct {
	Path      string `yaml:"path" json:"path"`
	Title     string `yaml:"title" json:"title"`
	ShortName string `yaml:"short_name" json:"short_name"`
	Gutenberg bool   `yaml:"gutenberg" json:"gutenberg"`
	Encoding  string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
}
