//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"math"
	"strings"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// see also: https://echarts.apache.org/en/option.html

const (
	CHRTWIDTH   = "900px"
	CHRTHEIGHT  = "520px"
	CLOUDWIDTH  = "1200px"
	CLOUDHEIGHT = "800px"
	LEFTALIGN   = "20"
	SAVETYPE    = "png"
	SAVESTR     = "Save to file..."
	TOPICWORDS  = 4 // words shown in a topic's axis label
)

// chartinit - the options every chart shares: size, title, a save button and a tooltip
func chartinit(title string, subtitle string, w string, h string) []charts.GlobalOpts {
	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  gen.StripaccentsSTR(title),
		Title: SAVESTR,
	}

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: w, Height: h}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle, Left: LEFTALIGN}),
		charts.WithToolboxOpts(opts.Toolbox{Show: true, Orient: "vertical", Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs}}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	}
}

// SentimentChart - the four mean VADER scores of every text side by side
func SentimentChart(b *str.BasicOutput) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(chartinit("Sentiment", "mean VADER scores per sentence", CHRTWIDTH, CHRTHEIGHT)...)
	bar.SetGlobalOptions(charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}))

	var names []string
	var pos, neg, neu, cmp []opts.BarData
	for _, t := range b.Texts {
		names = append(names, t.ShortName)
		pos = append(pos, opts.BarData{Value: gen.Round(t.Sentiment.Pos, 4)})
		neg = append(neg, opts.BarData{Value: gen.Round(t.Sentiment.Neg, 4)})
		neu = append(neu, opts.BarData{Value: gen.Round(t.Sentiment.Neu, 4)})
		cmp = append(cmp, opts.BarData{Value: gen.Round(t.Sentiment.Compound, 4)})
	}

	bar.SetXAxis(names).
		AddSeries("positive", pos).
		AddSeries("negative", neg).
		AddSeries("neutral", neu).
		AddSeries("compound", cmp)
	return bar
}

// VocabularyChart - vocabulary and dialogue measures on one radar; the open-ended axes are scaled to the largest value
func VocabularyChart(b *str.BasicOutput) *charts.Radar {
	const (
		HEADROOM = 1.2
	)

	var wl, sl float64
	for _, t := range b.Texts {
		wl = math.Max(wl, t.Vocabulary.AvgWordLength)
		sl = math.Max(sl, t.Vocabulary.AvgSentenceLength)
	}
	ceil := func(f float64) float32 { return float32(math.Ceil(math.Max(f, 1) * HEADROOM)) }

	ind := []*opts.Indicator{
		{Name: "type/token", Max: 1},
		{Name: "lexical diversity", Max: 1},
		{Name: "avg word length", Max: ceil(wl)},
		{Name: "avg sentence length", Max: ceil(sl)},
		{Name: "dialogue", Max: 1},
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(chartinit("Vocabulary", "richness and dialogue", CHRTWIDTH, CHRTHEIGHT)...)
	radar.SetGlobalOptions(
		charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: ind, Shape: "polygon"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
	)

	for _, t := range b.Texts {
		v := []float64{
			t.Vocabulary.TypeTokenRatio,
			t.Vocabulary.LexicalDiversity,
			t.Vocabulary.AvgWordLength,
			t.Vocabulary.AvgSentenceLength,
			t.DialogueNarrative.DialogueRatio,
		}
		radar.AddSeries(t.ShortName, []opts.RadarData{{Name: t.ShortName, Value: v}})
	}
	return radar
}

// DialogueChart - dialogue against narrative sentences for one text
func DialogueChart(t str.TextAnalysis) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(chartinit("Dialogue and narrative", t.Title, CHRTWIDTH, CHRTHEIGHT)...)

	pd := []opts.PieData{
		{Name: "dialogue", Value: t.DialogueNarrative.DialogueSentences},
		{Name: "narrative", Value: t.DialogueNarrative.NarrativeSentences},
	}
	pie.AddSeries("sentences", pd,
		charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {d}%"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}))
	return pie
}

// CloudChart - a word cloud of the most frequent words
func CloudChart(title string, fl str.FreqList) *charts.WordCloud {
	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(chartinit("Word cloud", title, CLOUDWIDTH, CLOUDHEIGHT)...)

	wd := make([]opts.WordCloudData, len(fl))
	for i, w := range fl {
		wd[i] = opts.WordCloudData{Name: w.Word, Value: w.Count}
	}
	wc.AddSeries("words", wd,
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{SizeRange: []float32{12, 96}, Shape: "circle"}))
	return wc
}

// TopicsChart - each topic's share of the text, labelled with its heaviest words
func TopicsChart(t str.EnhancedText) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(chartinit("Topics", t.Metadata.Title, CHRTWIDTH, CHRTHEIGHT)...)

	var labels []string
	var share, docs []opts.BarData
	for _, tp := range t.Topics {
		labels = append(labels, topiclabel(tp))
		share = append(share, opts.BarData{Value: tp.Share})
		docs = append(docs, opts.BarData{Value: tp.Docs})
	}
	bar.SetXAxis(labels).
		AddSeries("weight", share).
		AddSeries("documents", docs)
	bar.XYReversal()
	return bar
}

func topiclabel(tp str.Topic) string {
	var ww []string
	for _, w := range tp.Words[:min(TOPICWORDS, len(tp.Words))] {
		ww = append(ww, w.Word)
	}
	return fmt.Sprintf("%d: %s", tp.ID, strings.Join(ww, " "))
}

// POSChart - the coarse part-of-speech distribution of one text
func POSChart(t str.EnhancedText) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(chartinit("Parts of speech", t.Metadata.Title, CHRTWIDTH, CHRTHEIGHT)...)

	pd := make([]opts.PieData, len(t.POSDistribution))
	for i, p := range t.POSDistribution {
		pd[i] = opts.PieData{Name: p.Word, Value: p.Count}
	}
	pie.AddSeries("tags", pd,
		charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {d}%"}),
		charts.WithPieChartOpts(opts.PieChart{RoseType: "radius"}))
	return pie
}

// TopicMapChart - the pseudo-documents projected into two dimensions, one series per dominant topic
func TopicMapChart(t str.EnhancedText) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(chartinit("Topic map", t.Metadata.Title, CHRTWIDTH, CHRTHEIGHT)...)
	sc.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "PC1"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "PC2"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
	)

	bytopic := make(map[int][]opts.ScatterData)
	for _, p := range t.TopicMap {
		sd := opts.ScatterData{Name: fmt.Sprintf("doc %d", p.Doc), Value: []float64{p.X, p.Y}, SymbolSize: 12}
		bytopic[p.Topic] = append(bytopic[p.Topic], sd)
	}

	for _, tp := range t.Topics {
		if pts, ok := bytopic[tp.ID]; ok {
			sc.AddSeries(topiclabel(tp), pts)
		}
	}
	return sc
}

// NeighborsChart - the word2vec neighbours of the most frequent words as a force-directed graph
func NeighborsChart(t str.EnhancedText) *charts.Graph {
	const (
		SYMSIZE     = 25
		PERIPHSYMSZ = 12
		SIZEDISTORT = 2.25
		REPULSION   = 3000
		GRAVITY     = .15
		EDGELEN     = 60
		EDGEFNTSZ   = 8
		LAYOUTTYPE  = "force"
		LABELPOSITN = "right"
	)

	graph := charts.NewGraph()
	graph.SetGlobalOptions(chartinit("Nearest neighbours", t.Metadata.Title, CHRTWIDTH, CHRTHEIGHT)...)

	valuelabel := opts.EdgeLabel{Show: true, FontSize: EDGEFNTSZ, Formatter: "{c}"}
	round := func(val float64) float32 { return float32(gen.Round(val, 4)) }

	targets := gen.StringMapKeysIntoSlice(t.Neighbors)

	var maxsim float64
	for _, nn := range t.Neighbors {
		for _, w := range nn {
			maxsim = math.Max(maxsim, w.Similarity)
		}
	}

	var gnn []opts.GraphNode
	var gll []opts.GraphLink
	used := make(map[string]bool)
	linked := make(map[[2]string]bool)

	for _, tg := range targets {
		gnn = append(gnn, opts.GraphNode{Name: tg, SymbolSize: SYMSIZE * SIZEDISTORT, Category: 0})
		used[tg] = true
	}
	for _, tg := range targets {
		for _, w := range t.Neighbors[tg] {
			if !used[w.Word] {
				sz := PERIPHSYMSZ + (w.Similarity/math.Max(maxsim, 1e-9))*SYMSIZE
				gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: sz, Category: 1})
				used[w.Word] = true
			}
			pair := [2]string{min(tg, w.Word), max(tg, w.Word)}
			if linked[pair] {
				continue
			}
			linked[pair] = true
			gll = append(gll, opts.GraphLink{Source: tg, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
		}
	}

	cats := []*opts.GraphCategory{{Name: "frequent"}, {Name: "neighbour"}}
	graph.AddSeries("neighbours", gnn, gll,
		charts.WithLabelOpts(opts.Label{Show: true, Position: LABELPOSITN}),
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:             LAYOUTTYPE,
			Force:              &opts.GraphForce{Repulsion: REPULSION, Gravity: GRAVITY, EdgeLength: EDGELEN},
			Roam:               true,
			FocusNodeAdjacency: true,
			Categories:         cats,
		}),
	)
	return graph
}
