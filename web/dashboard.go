//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/lnch"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
	"github.com/go-echarts/go-echarts/v2/components"
)

var (
	ErrNoChart   = errors.New("no such chart")
	ErrNoResults = errors.New("no results: run the analysis first")
	ChartKinds   = []string{"sentiment", "vocabulary", "dialogue", "cloud", "topics", "pos", "topicmap", "neighbors"}
)

// Tab - one text's panel on the dashboard
type Tab struct {
	Short       string
	Title       string
	Charts      []template.HTML
	Entities    []str.Entity
	Distinctive []str.TopicWord
}

// TableRow - one line of the overview table, already formatted
type TableRow struct {
	Title     string
	Words     string
	Sentences string
	Compound  string
	Diversity string
	Dialogue  string
	WordLen   string
}

type dashdata struct {
	Title     string
	Version   string
	Generated string
	Assets    []string
	CSS       template.CSS
	Live      bool // served, so the page may offer to re-run the analysis
	Empty     bool
	Insights  []string
	Rows      []TableRow
	Overview  []template.HTML
	Tabs      []Tab
	Topics    []Tab
}

// BuildDashboard - the whole dashboard as one html page with every chart inlined
func BuildDashboard(b *str.BasicOutput, e *str.EnhancedOutput, live bool) ([]byte, error) {
	const (
		TMPL = "emb/dashboard.html"
		CSS  = "emb/dashboard.css"
	)

	page, err := efs.ReadFile(TMPL)
	if err != nil {
		return nil, err
	}
	css, err := efs.ReadFile(CSS)
	if err != nil {
		return nil, err
	}

	dd := dashdata{
		Title:     vv.ANALYSISTYPE,
		Version:   lnch.VersionLine(lnch.Config),
		Generated: time.Now().Format(time.RFC1123),
		CSS:       template.CSS(css),
		Live:      live,
		Empty:     b == nil || len(b.Texts) == 0,
	}

	if !dd.Empty {
		if err = dd.fill(b, e); err != nil {
			return nil, err
		}
	}

	tpl, err := template.New("dashboard").Parse(string(page))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = tpl.Execute(&buf, dd); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fill - render every chart and collect the scripts they need
func (dd *dashdata) fill(b *str.BasicOutput, e *str.EnhancedOutput) error {
	var assets []string
	frag := func(cc ...components.Charter) ([]template.HTML, error) {
		var out []template.HTML
		for _, c := range cc {
			h, js, err := Fragment(c)
			if err != nil {
				return nil, err
			}
			out = append(out, h)
			assets = append(assets, js...)
		}
		return out, nil
	}

	dd.Insights = b.NarrativeInsights
	for _, t := range b.Texts {
		dd.Rows = append(dd.Rows, TableRow{
			Title:     t.Title,
			Words:     gen.Commas(t.Vocabulary.TotalWords),
			Sentences: gen.Commas(t.DialogueNarrative.TotalSentences),
			Compound:  fmt.Sprintf("%.3f", t.Sentiment.Compound),
			Diversity: fmt.Sprintf("%.4f", t.Vocabulary.LexicalDiversity),
			Dialogue:  fmt.Sprintf("%.1f%%", t.DialogueNarrative.DialogueRatio*100),
			WordLen:   fmt.Sprintf("%.2f", t.Vocabulary.AvgWordLength),
		})
	}

	var err error
	if dd.Overview, err = frag(SentimentChart(b), VocabularyChart(b)); err != nil {
		return err
	}

	for _, t := range b.Texts {
		tab := Tab{Short: t.ShortName, Title: t.Title}
		cc := []components.Charter{DialogueChart(t), CloudChart(t.Title, t.WordFrequencies)}

		et, ok := enhancedfor(e, t.ShortName)
		if ok {
			tab.Entities = et.Entities
			cc = append(cc, POSChart(et))
			if len(et.Neighbors) > 0 {
				cc = append(cc, NeighborsChart(et))
			}
		}
		if tab.Charts, err = frag(cc...); err != nil {
			return err
		}
		dd.Tabs = append(dd.Tabs, tab)

		if !ok || len(et.Topics) == 0 {
			continue
		}
		tp := Tab{Short: t.ShortName, Title: t.Title, Distinctive: et.Distinctive}
		cc = []components.Charter{TopicsChart(et)}
		if len(et.TopicMap) > 0 {
			cc = append(cc, TopicMapChart(et))
		}
		if tp.Charts, err = frag(cc...); err != nil {
			return err
		}
		dd.Topics = append(dd.Topics, tp)
	}

	dd.Assets = scripts(assets)
	return nil
}

func enhancedfor(e *str.EnhancedOutput, short string) (str.EnhancedText, bool) {
	if e == nil {
		return str.EnhancedText{}, false
	}
	for _, t := range e.Texts {
		if t.ShortName == short {
			return t, true
		}
	}
	return str.EnhancedText{}, false
}

// ChartFor - one chart by kind; the per-text kinds need the text's short name
func ChartFor(kind string, short string, b *str.BasicOutput, e *str.EnhancedOutput) (components.Charter, error) {
	if b == nil {
		return nil, ErrNoResults
	}

	switch kind {
	case "sentiment":
		return SentimentChart(b), nil
	case "vocabulary":
		return VocabularyChart(b), nil
	case "dialogue", "cloud":
		for _, t := range b.Texts {
			if t.ShortName != short {
				continue
			}
			if kind == "dialogue" {
				return DialogueChart(t), nil
			}
			return CloudChart(t.Title, t.WordFrequencies), nil
		}
		return nil, ErrNoChart
	}

	et, ok := enhancedfor(e, short)
	if !ok {
		return nil, ErrNoChart
	}
	switch kind {
	case "topics":
		if len(et.Topics) > 0 {
			return TopicsChart(et), nil
		}
	case "pos":
		return POSChart(et), nil
	case "topicmap":
		if len(et.TopicMap) > 0 {
			return TopicMapChart(et), nil
		}
	case "neighbors":
		if len(et.Neighbors) > 0 {
			return NeighborsChart(et), nil
		}
	}
	return nil, ErrNoChart
}
