//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/e-gun/DistantReader/internal/anl"
	"github.com/e-gun/DistantReader/internal/db"
	"github.com/e-gun/DistantReader/internal/lnch"
	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
	"github.com/e-gun/DistantReader/web"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// flagvals - what the command line said; only flags actually given override the configuration
type flagvals struct {
	config   string
	manifest string
	textdir  string
	datadir  string
	lexicon  string
	stopfile string
	dburl    string
	loglevel int
	bw       bool
	workers  int
	profile  string
	nostore  bool
}

var (
	fv       flagvals
	profiler interface{ Stop() }
)

// NewRootCmd - the command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "distantreader",
		Short:         "Distant reading of a handful of literary texts: sentiment, vocabulary, dialogue, topics",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configure(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&fv.config, "config", "c", "", "YAML configuration file (default ./"+vv.CONFIGBASIC+" or ~/.config/"+vv.CONFIGBASIC+")")
	pf.StringVarP(&fv.manifest, "manifest", "m", "", "YAML list of texts to analyse")
	pf.StringVar(&fv.textdir, "textdir", vv.DEFAULTTEXTDIR, "where to find the default texts")
	pf.StringVar(&fv.datadir, "datadir", vv.DATADIR, "where the results are written")
	pf.StringVar(&fv.lexicon, "lexicon", vv.DEFAULTLEXICON, "the VADER lexicon")
	pf.StringVar(&fv.stopfile, "stops", "", "stopword list as a JSON array (default ~/.config/"+vv.CONFIGSTOPS+")")
	pf.StringVar(&fv.dburl, "db", "", "a postgres:// url for the run store (default sqlite in the data directory)")
	pf.IntVarP(&fv.loglevel, "loglevel", "l", vv.DEFAULTGOLOGLEVEL, fmt.Sprintf("message level (%d-%d)", mm.MSGCRIT, mm.MSGTMI))
	pf.BoolVar(&fv.bw, "bw", vv.BLACKANDWHITE, "no colour in terminal output")
	pf.IntVarP(&fv.workers, "workers", "w", 0, "texts processed at once (default: number of CPUs)")
	pf.StringVar(&fv.profile, "profile", "", "write a 'cpu' or 'mem' profile")
	pf.BoolVar(&fv.nostore, "nostore", false, "do not record runs in the run store")

	root.AddCommand(analyzeCmd(), serveCmd(), renderCmd(), reportCmd(), runsCmd(), versionCmd())
	return root
}

// configure - defaults, then the config file, then the manifest, then the flags
func configure(cmd *cobra.Command) error {
	const (
		FAIL1 = "--profile must be 'cpu' or 'mem', not '%s'"
		MSG1  = "using the configuration at C3%sC0"
	)

	cfg := lnch.Config
	path := lnch.FindConfigFile(fv.config)
	if err := lnch.LoadConfigFile(cfg, path); err != nil {
		return err
	}

	if fv.manifest != "" {
		tt, err := lnch.LoadManifest(fv.manifest)
		if err != nil {
			return err
		}
		cfg.Texts = tt
	}

	f := cmd.Flags()
	set := func(name string, fn func()) {
		if f.Changed(name) {
			fn()
		}
	}
	set("textdir", func() { cfg.TextDir = fv.textdir })
	set("datadir", func() { cfg.DataDir = fv.datadir })
	set("lexicon", func() { cfg.Lexicon = fv.lexicon })
	set("stops", func() { cfg.StopFile = fv.stopfile })
	set("db", func() { cfg.DBURL = fv.dburl })
	set("loglevel", func() { cfg.LogLevel = fv.loglevel })
	set("bw", func() { cfg.BlackAndWhite = fv.bw })
	set("workers", func() { cfg.WorkerCount = fv.workers })
	set("profile", func() { cfg.Profile = fv.profile })
	set("nostore", func() { cfg.NoStore = fv.nostore })

	for _, m := range []*mm.MessageMaker{lnch.Msg, anl.Msg, web.Msg} {
		lnch.UpdateMessageMakerWithConfig(m, cfg)
	}
	if path != "" {
		lnch.Msg.Emit(lnch.Msg.Color(fmt.Sprintf(MSG1, path)), mm.MSGFYI)
	}

	switch cfg.Profile {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return fmt.Errorf(FAIL1, cfg.Profile)
	}
	return nil
}

func stopprofiling() {
	if profiler != nil {
		profiler.Stop()
	}
}

// openstore - the run store, unless storing has been switched off
func openstore(ctx context.Context, cfg *str.CurrentConfiguration) (db.Store, error) {
	if cfg.NoStore {
		return nil, nil
	}
	return db.Open(ctx, cfg)
}

//
// ANALYZE
//

func analyzeCmd() *cobra.Command {
	var watch, neighbors, basiconly bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyse the texts and write the JSON results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := lnch.Config
			if cmd.Flags().Changed("neighbors") {
				cfg.Neighbors = neighbors
			}
			if basiconly {
				cfg.Enhanced = false
			}
			return analyze(cmd.Context(), cfg, watch)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run whenever one of the texts changes")
	cmd.Flags().BoolVar(&neighbors, "neighbors", false, "train word2vec and report the neighbours of the most frequent words")
	cmd.Flags().BoolVar(&basiconly, "basic", false, "skip tagging and topic modelling")
	return cmd
}

func analyze(ctx context.Context, cfg *str.CurrentConfiguration, watch bool) error {
	const (
		MSG1 = "run C6%sC0 stored"
		MSG2 = "\nNarrative Insights:"
		MSG3 = "  %d. %s"
	)

	texts, err := lnch.ResolveTexts(cfg)
	if err != nil {
		return err
	}

	st, err := openstore(ctx, cfg)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	p, err := anl.NewPipeline(cfg)
	if err != nil {
		return err
	}
	p.Store = st

	once := func(ctx context.Context) error {
		oc, e := p.Run(ctx, texts)
		if e != nil {
			return e
		}
		if oc.RunID != "" {
			lnch.Msg.Emit(lnch.Msg.Color(fmt.Sprintf(MSG1, oc.RunID)), mm.MSGFYI)
		}
		lnch.Msg.Emit(MSG2, mm.MSGMAND)
		for i, in := range oc.Basic.NarrativeInsights {
			lnch.Msg.Emit(fmt.Sprintf(MSG3, i+1, in), mm.MSGMAND)
		}
		return nil
	}

	if err = once(ctx); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	paths := make([]string, len(texts))
	for i, t := range texts {
		paths[i] = t.Path
	}
	return anl.Watch(ctx, paths, vv.WATCHDEBOUNCE, func(ctx context.Context) {
		if e := once(ctx); e != nil && !errors.Is(e, context.Canceled) {
			lnch.Msg.Emit(e.Error(), mm.MSGWARN)
		}
	})
}

//
// SERVE
//

func serveCmd() *cobra.Command {
	var host string
	var port, echolog int
	var gzip bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard and the JSON api",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := lnch.Config
			f := cmd.Flags()
			if f.Changed("host") {
				cfg.HostIP = host
			}
			if f.Changed("port") {
				cfg.HostPort = port
			}
			if f.Changed("echolog") {
				cfg.EchoLog = echolog
			}
			if f.Changed("gzip") {
				cfg.Gzip = gzip
			}

			texts, err := lnch.ResolveTexts(cfg)
			if err != nil {
				return err
			}
			st, err := openstore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if st != nil {
				defer st.Close()
			}

			lnch.PrintVersion(cfg)
			return web.StartEchoServer(cmd.Context(), web.NewServer(cmd.Context(), cfg, st, texts))
		},
	}
	cmd.Flags().StringVar(&host, "host", vv.SERVEDFROMHOST, "address to listen on")
	cmd.Flags().IntVarP(&port, "port", "p", vv.SERVEDFROMPORT, "port to listen on")
	cmd.Flags().IntVar(&echolog, "echolog", vv.DEFAULTECHOLOGLEVEL, "request logging: 0 none, 1 terse, 2 prolix, 3 full")
	cmd.Flags().BoolVar(&gzip, "gzip", false, "gzip responses")
	return cmd
}

//
// RENDER
//

func renderCmd() *cobra.Command {
	const (
		MSG1 = "wrote C3%sC0"
	)
	var out string
	var png bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the dashboard as one self-contained html file; optionally the word clouds as png",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := lnch.Config
			b, e, err := readresults(cfg)
			if err != nil {
				return err
			}

			page, err := web.BuildDashboard(b, e, false)
			if err != nil {
				return err
			}
			if err = os.WriteFile(out, page, vv.WRITEPERMS); err != nil {
				return err
			}
			lnch.Msg.Emit(lnch.Msg.Color(fmt.Sprintf(MSG1, out)), mm.MSGNOTE)

			if png {
				_, err = web.Snapshot(cmd.Context(), b, cfg.ImageDir)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dashboard.html", "where to write the page")
	cmd.Flags().BoolVar(&png, "png", false, "also write images/<short>_wordcloud.png with a headless browser")
	return cmd
}

// readresults - the basic results are required, the enhanced ones are not
func readresults(cfg *str.CurrentConfiguration) (*str.BasicOutput, *str.EnhancedOutput, error) {
	b, err := anl.ReadResults(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("%w; run 'distantreader analyze' first", err)
	}
	e, err := anl.ReadEnhanced(cfg.DataDir)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil, nil
	}
	return b, e, err
}

//
// REPORT
//

func reportCmd() *cobra.Command {
	var width int
	var raw bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarise the latest results in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := lnch.Config
			b, e, err := readresults(cfg)
			if err != nil {
				return err
			}
			md := anl.Report(b, e)
			if raw {
				fmt.Print(md)
				return nil
			}
			out, err := anl.RenderReport(md, width, cfg.BlackAndWhite)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 100, "wrap the report at this many columns")
	cmd.Flags().BoolVar(&raw, "markdown", false, "print the markdown itself")
	return cmd
}

//
// RUNS
//

func runsCmd() *cobra.Command {
	const (
		LINE = "C6%sC0  %s"
		TEXT = "    %-16s compound C2%+.3fC0  lexical diversity C2%.4fC0"
	)
	var limit int

	cmd := &cobra.Command{
		Use:   "runs [id]",
		Short: "List the stored runs, or print one of them as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := lnch.Config
			cfg.NoStore = false
			st, err := openstore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 1 {
				r, err := st.Run(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", vv.JSONINDENT)
				return enc.Encode(r)
			}

			runs, err := st.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, r := range runs {
				fmt.Println(lnch.Msg.Color(fmt.Sprintf(LINE, r.ID, r.Created.Local().Format("2006-01-02 15:04:05"))))
				for _, t := range r.Texts {
					fmt.Println(lnch.Msg.Color(fmt.Sprintf(TEXT, t.ShortName, t.Compound, t.LexicalDiversity)))
				}
			}
			if len(runs) == 0 {
				fmt.Println("no runs stored yet")
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "how many runs to list")
	return cmd
}

//
// VERSION
//

func versionCmd() *cobra.Command {
	var build bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			lnch.PrintVersion(lnch.Config)
			if build {
				lnch.PrintBuildInfo(lnch.Config)
			}
		},
	}
	cmd.Flags().BoolVar(&build, "build", false, "also print build information")
	return cmd
}
