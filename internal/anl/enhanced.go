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

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/e-gun/DistantReader/internal/mtr"
	"github.com/e-gun/DistantReader/internal/pos"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/tpc"
	"github.com/e-gun/DistantReader/internal/vec"
	"github.com/e-gun/DistantReader/internal/vv"
)

// Enhanced - tagging, style, topics and (optionally) embeddings per text; then tf-idf across the texts
func (p *Pipeline) Enhanced(ctx context.Context, pp []Prepared) (*str.EnhancedOutput, error) {
	const (
		MSG1 = "%s: C2%sC0 content tokens; C2%dC0 topics"
	)

	records := make([]str.EnhancedText, len(pp))
	tokens := make([][]string, len(pp))
	var done atomic.Int64

	err := p.each(ctx, len(pp), func(gctx context.Context, i int) error {
		rec, tk, err := p.enhancedrecord(gctx, pp[i])
		if err != nil {
			return fmt.Errorf("%s: %w", pp[i].Spec.ShortName, err)
		}
		records[i] = rec
		tokens[i] = tk
		Msg.Emit(Msg.Color(fmt.Sprintf(MSG1, rec.ShortName, gen.Commas(len(tk)), len(rec.Topics))), mm.MSGFYI)
		p.report(gctx, "enhanced", rec.ShortName, int(done.Add(1)), len(pp))
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.report(ctx, "distinctive", "", 0, 1)
	dist, err := tpc.Distinctive(tokens, vv.TFIDFTOPWORDS)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Distinctive = dist[i]
	}

	return &str.EnhancedOutput{
		Texts: records,
		AnalysisInfo: str.AnalysisInfo{
			Methods: slices.Clone(vv.EnhancedMethods),
			Tools:   slices.Clone(vv.EnhancedTools),
		},
	}, nil
}

// enhancedrecord - one text; also hands back the content tokens for the cross-text tf-idf
func (p *Pipeline) enhancedrecord(ctx context.Context, pr Prepared) (str.EnhancedText, []string, error) {
	tg, err := pos.Tag(ctx, pr.Clean, vv.CHUNKCHARS, p.stopset)
	if err != nil {
		return str.EnhancedText{}, nil, err
	}
	p.report(ctx, "tag", pr.Spec.ShortName, 1, 1)

	style := mtr.Style(tg.Tokens, len(pr.Sentences))
	rec := str.EnhancedText{
		Metadata: str.TextMeta{
			Title:         pr.Spec.Title,
			WordCount:     style.TotalTokens,
			SentenceCount: style.TotalSentences,
			UniqueWords:   style.UniqueTokens,
		},
		Sentiment:       p.sia.Document(pr.Sentences),
		Style:           style,
		TopWords:        mtr.TopWords(tg.Tokens, p.stopset, vv.TOPWORDSENHANCED),
		POSDistribution: tg.POSDistribution(vv.POSCAP),
		Entities:        tg.TopEntities(vv.ENTITYCAP),
		ShortName:       pr.Spec.ShortName,
	}

	docs := tpc.Documents(tg.Tokens, p.stopset, vv.LDAMINTOKENLEN, vv.LDADOCTOKENS)
	model, err := tpc.Topics(docs, p.ldasettings())
	if err != nil {
		return str.EnhancedText{}, nil, err
	}
	rec.Topics = model.Topics
	rec.TopicMap = model.Map
	p.report(ctx, "topics", pr.Spec.ShortName, 1, 1)

	if p.Cfg.Neighbors {
		var targets []string
		for _, wc := range mtr.MostCommon(rec.TopWords, vv.NEIGHBORTARGETS) {
			targets = append(targets, wc.Word)
		}
		nn, err := vec.Neighbors(ctx, pr.Words, targets, vv.NEIGHBORSCOUNT, vec.DefaultW2VVectors(p.Cfg.WorkerCount))
		if err != nil {
			return str.EnhancedText{}, nil, err
		}
		rec.Neighbors = nn
		p.report(ctx, "neighbors", pr.Spec.ShortName, 1, 1)
	}

	return rec, tg.Tokens, nil
}

func (p *Pipeline) ldasettings() tpc.Settings {
	return tpc.Settings{
		Topics:    p.Cfg.LdaTopics,
		Passes:    p.Cfg.LdaPasses,
		TopWords:  vv.LDATOPWORDS,
		DocTokens: vv.LDADOCTOKENS,
		MinLen:    vv.LDAMINTOKENLEN,
		Seed:      vv.LDASEED,
		Workers:   p.Cfg.WorkerCount,
	}
}
