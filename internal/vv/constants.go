//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "Distant Reader"
	SHORTNAME = "DR"
	VERSION   = "0.3.1"

	BLACKANDWHITE            = false
	CHUNKCHARS               = 100000 // tagger input is cut into chunks no longer than this
	CONFIGALTAPTH            = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC              = "distantreader.yaml"
	CONFIGSTOPS              = "distantreader-stops.json"
	DATADIR                  = "data"
	DBFILE                   = "distantreader.db"
	DEFAULTECHOLOGLEVEL      = 0
	DEFAULTGOLOGLEVEL        = 2
	DEFAULTLEXICON           = "data/vader_lexicon.txt"
	DEFAULTEMOJILEX          = "data/emoji_utf8_lexicon.txt"
	DEFAULTTEXTDIR           = "texts"
	DIVERSITYWINDOW          = 10000 // lexical diversity is measured over this many leading words
	ENHANCEDOUTFILE          = "enhanced_analysis.json"
	ENTITYCAP                = 20
	IMAGEDIR                 = "images"
	JSONINDENT               = "  "
	LDADOCTOKENS             = 1000
	LDAMINTOKENLEN           = 3
	LDAPASSES                = 10
	LDASEED                  = 42
	LDATOPICS                = 5
	LDATOPWORDS              = 10
	MAXECHOREQPERSECONDPERIP = 60
	NEIGHBORSCOUNT           = 8
	NEIGHBORTARGETS          = 5
	POSCAP                   = 10
	RESULTSOUTFILE           = "analysis_results.json"
	SERVEDFROMHOST           = "127.0.0.1"
	SERVEDFROMPORT           = 8000
	TFIDFTOPWORDS            = 15
	TOPWORDSBASIC            = 100
	TOPWORDSENHANCED         = 50
	WATCHDEBOUNCE            = 750 * time.Millisecond
	WRITEPERMS               = 0644
	WSPOLLINGPAUSE           = 100 * time.Millisecond

	ANALYSISTYPE = "Distant Reading Analysis"
)

var (
	BasicMethods = []string{
		"VADER Sentiment Analysis (document-level)",
		"Vocabulary Richness (TTR, Lexical Diversity)",
		"Dialogue vs. Narrative Ratio",
		"Word Frequency Analysis",
	}
	EnhancedMethods = []string{"VADER Sentiment", "Part-of-Speech Tagging", "LDA Topic Modeling"}
	EnhancedTools   = []string{"go-vader", "prose", "nlp"}

	// DialogueMarks - a sentence containing any of these counts as dialogue
	DialogueMarks = []string{`"`, "“", "”"}
)
