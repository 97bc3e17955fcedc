//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package anl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
)

// Report - a markdown summary of the results: insights, a table per text and, if present, the topics
func Report(b *str.BasicOutput, e *str.EnhancedOutput) string {
	const (
		HEAD = "# %s\n\n"
		TROW = "| %s | %s | %.3f | %.4f | %.1f%% | %.2f |\n"
	)

	var sb strings.Builder
	fmt.Fprintf(&sb, HEAD, vv.ANALYSISTYPE)
	if b == nil {
		sb.WriteString("_no results yet_\n")
		return sb.String()
	}

	sb.WriteString("## Insights\n\n")
	for i, in := range b.NarrativeInsights {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, in)
	}

	sb.WriteString("\n## Texts\n\n")
	sb.WriteString("| Text | Words | Compound | Lexical diversity | Dialogue | Avg word length |\n")
	sb.WriteString("|---|---:|---:|---:|---:|---:|\n")
	for _, t := range b.Texts {
		fmt.Fprintf(&sb, TROW, t.Title, gen.Commas(t.Vocabulary.TotalWords), t.Sentiment.Compound,
			t.Vocabulary.LexicalDiversity, t.DialogueNarrative.DialogueRatio*100, t.Vocabulary.AvgWordLength)
	}

	if e == nil {
		return sb.String()
	}

	for _, t := range e.Texts {
		if len(t.Topics) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n## Topics: %s\n\n", t.Metadata.Title)
		for _, tp := range t.Topics {
			ww := make([]string, len(tp.Words))
			for i, w := range tp.Words {
				ww[i] = w.Word
			}
			fmt.Fprintf(&sb, "- **%d** (%d docs): %s\n", tp.ID, tp.Docs, strings.Join(ww, ", "))
		}
	}
	return sb.String()
}

// RenderReport - the markdown styled for the terminal; plain styling in black-and-white mode
func RenderReport(md string, width int, bw bool) (string, error) {
	style := glamour.WithAutoStyle()
	if bw {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("report: %w", err)
	}
	return r.Render(md)
}
