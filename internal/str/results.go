//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

//
// BASIC ANALYSIS: data/analysis_results.json
//

// Sentiment - VADER scores averaged over the sentences of a text
type Sentiment struct {
	Pos      float64 `json:"positive"`
	Neg      float64 `json:"negative"`
	Neu      float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

type Vocabulary struct {
	TotalWords        int     `json:"total_words"`
	UniqueWords       int     `json:"unique_words"`
	TypeTokenRatio    float64 `json:"type_token_ratio"`
	LexicalDiversity  float64 `json:"lexical_diversity"`
	AvgWordLength     float64 `json:"avg_word_length"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

type DialogueNarrative struct {
	DialogueRatio      float64 `json:"dialogue_ratio"`
	NarrativeRatio     float64 `json:"narrative_ratio"`
	TotalSentences     int     `json:"total_sentences"`
	DialogueSentences  int     `json:"dialogue_sentences"`
	NarrativeSentences int     `json:"narrative_sentences"`
}

type TextAnalysis struct {
	Title             string            `json:"title"`
	Sentiment         Sentiment         `json:"sentiment"`
	Vocabulary        Vocabulary        `json:"vocabulary"`
	DialogueNarrative DialogueNarrative `json:"dialogue_narrative"`
	WordFrequencies   FreqList          `json:"word_frequencies"`
	ShortName         string            `json:"short_name"`
}

type AnalysisMeta struct {
	AnalysisType string   `json:"analysis_type"`
	Methods      []string `json:"methods"`
}

type BasicOutput struct {
	Texts             []TextAnalysis `json:"texts"`
	NarrativeInsights []string       `json:"narrative_insights"`
	Metadata          AnalysisMeta   `json:"metadata"`
}

//
// ENHANCED ANALYSIS: data/enhanced_analysis.json
//

type TextMeta struct {
	Title         string `json:"title"`
	WordCount     int    `json:"word_count"`
	SentenceCount int    `json:"sentence_count"`
	UniqueWords   int    `json:"unique_words"`
}

type Style struct {
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	TypeTokenRatio    float64 `json:"type_token_ratio"`
	LexicalDiversity  float64 `json:"lexical_diversity"`
	TotalSentences    int     `json:"total_sentences"`
	TotalTokens       int     `json:"total_tokens"`
	UniqueTokens      int     `json:"unique_tokens"`
}

type TopicWord struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

type Topic struct {
	ID    int         `json:"id"`
	Words []TopicWord `json:"words"`
	Docs  int         `json:"documents"` // pseudo-documents with this as the dominant topic
	Share float64     `json:"share"`     // accumulated weight scaled against the heaviest topic
}

type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// MapPoint - one pseudo-document placed on the topic map
type MapPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Topic int     `json:"topic"`
	Doc   int     `json:"doc"`
}

type Neighbor struct {
	Word       string  `json:"word"`
	Similarity float64 `json:"similarity"`
}

type EnhancedText struct {
	Metadata        TextMeta              `json:"metadata"`
	Sentiment       Sentiment             `json:"sentiment"`
	Style           Style                 `json:"style"`
	TopWords        FreqList              `json:"top_words"`
	Topics          []Topic               `json:"topics"`
	TopicMap        []MapPoint            `json:"topic_map"`
	POSDistribution FreqList              `json:"pos_distribution"`
	Entities        []Entity              `json:"entities"`
	Distinctive     []TopicWord           `json:"distinctive"`
	Neighbors       map[string][]Neighbor `json:"neighbors,omitempty"`
	ShortName       string                `json:"short_name"`
}

type AnalysisInfo struct {
	Methods []string `json:"methods"`
	Tools   []string `json:"tools"`
}

type EnhancedOutput struct {
	Texts        []EnhancedText `json:"texts"`
	AnalysisInfo AnalysisInfo   `json:"analysis_info"`
}

// Progress - a pipeline status report; see web.RtWebsocket()
type Progress struct {
	Stage string `json:"stage"`
	Text  string `json:"text"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}
