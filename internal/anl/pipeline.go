//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package anl

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/e-gun/DistantReader/internal/db"
	"github.com/e-gun/DistantReader/internal/lnch"
	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/e-gun/DistantReader/internal/snt"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/txt"
	"github.com/e-gun/DistantReader/internal/vv"
	"golang.org/x/sync/errgroup"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Pipeline - what every text in a run shares: configuration, lexicon, stopwords
type Pipeline struct {
	Cfg      *str.CurrentConfiguration
	Store    db.Store            // nil: runs are not stored
	Progress chan<- str.Progress // nil: nobody is listening
	sia      *snt.Analyzer
	stops    []string
	stopset  map[string]struct{}
}

// Prepared - a text read, stripped and split
type Prepared struct {
	Spec      str.TextSpec
	Clean     string
	Sentences []string
	Words     []string
}

// Outcome - everything one run produced
type Outcome struct {
	RunID    string
	Basic    *str.BasicOutput
	Enhanced *str.EnhancedOutput
}

// NewPipeline - load the lexicon and the stopwords named by the configuration
func NewPipeline(cfg *str.CurrentConfiguration) (*Pipeline, error) {
	const (
		MSG1 = "wrote the default stopword list to C3%sC0; edit it to change what counts as a stopword"
	)

	sia, err := snt.NewAnalyzer(cfg.Lexicon, cfg.EmojiLexicon)
	if err != nil {
		return nil, err
	}

	sf := cfg.StopFile
	if sf == "" {
		sf = filepath.Join(lnch.ConfigDir(), vv.CONFIGSTOPS)
	}
	stops, wrote, err := txt.ReadStopConfig(sf)
	if err != nil {
		return nil, err
	}
	if wrote {
		Msg.Emit(Msg.Color(fmt.Sprintf(MSG1, sf)), mm.MSGNOTE)
	}

	return &Pipeline{Cfg: cfg, sia: sia, stops: stops, stopset: txt.StopSet(stops)}, nil
}

// Stops - the stopword list in use
func (p *Pipeline) Stops() []string {
	return p.stops
}

// Run - prepare, analyse, write both json files and store the run
func (p *Pipeline) Run(ctx context.Context, texts []str.TextSpec) (*Outcome, error) {
	start := time.Now()
	previous := start

	pp, err := p.Prepare(ctx, texts)
	if err != nil {
		return nil, err
	}
	Msg.Timer("A", "texts read", start, previous)
	previous = time.Now()

	oc := &Outcome{}
	if oc.Basic, err = p.Basic(ctx, pp); err != nil {
		return nil, err
	}
	Msg.Timer("B", "basic analysis", start, previous)
	previous = time.Now()

	if p.Cfg.Enhanced {
		if oc.Enhanced, err = p.Enhanced(ctx, pp); err != nil {
			return nil, err
		}
		Msg.Timer("C", "enhanced analysis", start, previous)
	}

	p.report(ctx, "write", "", 0, 1)
	if err = WriteJSON(p.Cfg.DataDir, vv.RESULTSOUTFILE, oc.Basic); err != nil {
		return nil, err
	}
	if oc.Enhanced != nil {
		if err = WriteJSON(p.Cfg.DataDir, vv.ENHANCEDOUTFILE, oc.Enhanced); err != nil {
			return nil, err
		}
	}

	if p.Store != nil {
		r := db.NewRun(texts, oc.Basic, oc.Enhanced)
		if err = p.Store.SaveRun(ctx, r); err != nil {
			return nil, err
		}
		oc.RunID = r.ID
	}
	p.report(ctx, "done", "", 1, 1)
	Msg.Timer("D", "run complete", start, time.Now())
	return oc, nil
}

// Prepare - read, strip and split every text, in parallel; output order follows the manifest
func (p *Pipeline) Prepare(ctx context.Context, texts []str.TextSpec) ([]Prepared, error) {
	out := make([]Prepared, len(texts))
	var done atomic.Int64

	err := p.each(ctx, len(texts), func(gctx context.Context, i int) error {
		t := texts[i]
		raw, err := txt.ReadText(t.Path, t.Encoding)
		if err != nil {
			return fmt.Errorf("%s: %w", t.ShortName, err)
		}
		if t.Gutenberg {
			raw = txt.StripGutenberg(raw)
		}

		sp, err := txt.NewSplitter()
		if err != nil {
			return fmt.Errorf("%s: %w", t.ShortName, err)
		}
		ss := sp.Sentences(raw)
		out[i] = Prepared{
			Spec:      t,
			Clean:     raw,
			Sentences: ss,
			Words:     txt.SentenceWords(ss),
		}
		p.report(gctx, "read", t.ShortName, int(done.Add(1)), len(texts))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// each - run fn for every index under an errgroup limited to the worker count
func (p *Pipeline) each(ctx context.Context, n int, fn func(context.Context, int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.Cfg.WorkerCount, 1))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	return g.Wait()
}

// report - publish a progress event if anyone is listening
func (p *Pipeline) report(ctx context.Context, stage string, text string, done int, total int) {
	if p.Progress == nil {
		return
	}
	select {
	case p.Progress <- str.Progress{Stage: stage, Text: text, Done: done, Total: total}:
	case <-ctx.Done():
	}
}
