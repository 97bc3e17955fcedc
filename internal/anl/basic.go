//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package anl

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/e-gun/DistantReader/internal/mtr"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
)

// Basic - sentiment, vocabulary, dialogue and word frequencies per text, plus the comparative insights
func (p *Pipeline) Basic(ctx context.Context, pp []Prepared) (*str.BasicOutput, error) {
	const (
		MSG1 = "%s: compound C2%.3fC0; lexical diversity C2%.4fC0; dialogue C2%.2f%%C0"
	)

	records := make([]str.TextAnalysis, len(pp))
	var done atomic.Int64

	err := p.each(ctx, len(pp), func(gctx context.Context, i int) error {
		records[i] = p.basicrecord(pp[i])
		r := records[i]
		Msg.Emit(Msg.Color(fmt.Sprintf(MSG1, r.ShortName, r.Sentiment.Compound, r.Vocabulary.LexicalDiversity, r.DialogueNarrative.DialogueRatio*100)), mm.MSGFYI)
		p.report(gctx, "basic", r.ShortName, int(done.Add(1)), len(pp))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &str.BasicOutput{
		Texts:             records,
		NarrativeInsights: Insights(records),
		Metadata: str.AnalysisMeta{
			AnalysisType: vv.ANALYSISTYPE,
			Methods:      slices.Clone(vv.BasicMethods),
		},
	}, nil
}

func (p *Pipeline) basicrecord(pr Prepared) str.TextAnalysis {
	return str.TextAnalysis{
		Title:             pr.Spec.Title,
		Sentiment:         p.sia.Document(pr.Sentences),
		Vocabulary:        mtr.Vocabulary(pr.Words, len(pr.Sentences)),
		DialogueNarrative: mtr.DialogueNarrative(pr.Sentences),
		WordFrequencies:   mtr.TopWords(pr.Words, p.stopset, vv.TOPWORDSBASIC),
		ShortName:         pr.Spec.ShortName,
	}
}
