//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/e-gun/DistantReader/internal/anl"
	"github.com/e-gun/DistantReader/internal/db"
	"github.com/e-gun/DistantReader/internal/lnch"
	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

// Server - what the routes need: the configuration, the run store, the texts and the jobs started from the browser
type Server struct {
	Cfg   *str.CurrentConfiguration
	Store db.Store // may be nil
	Texts []str.TextSpec
	Run   Runner
	Jobs  *JobVault
	ctx   context.Context
}

// NewServer - jobs started through the server live as long as ctx
func NewServer(ctx context.Context, cfg *str.CurrentConfiguration, store db.Store, texts []str.TextSpec) *Server {
	s := &Server{Cfg: cfg, Store: store, Texts: texts, Jobs: NewJobVault(), ctx: ctx}
	s.Run = s.pipelinerunner
	return s
}

// pipelinerunner - the real analysis, reporting to progress
func (s *Server) pipelinerunner(ctx context.Context, progress chan<- str.Progress) (*anl.Outcome, error) {
	p, err := anl.NewPipeline(s.Cfg)
	if err != nil {
		return nil, err
	}
	p.Store = s.Store
	p.Progress = progress
	return p.Run(ctx, s.Texts)
}

// NewEcho - the echo instance with the middleware and every route attached
func (s *Server) NewEcho() *echo.Echo {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	// ctf - a CustomTagFunc return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		if len(ua) == 0 {
			return 0, nil
		}
		return buf.WriteString(ua[len(ua)-1])
	}

	//
	// SETUP
	//

	e := echo.New()

	switch s.Cfg.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if s.Cfg.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
			Level: 5,
			// the upgrade has to see the raw response writer
			Skipper: func(c echo.Context) bool { return strings.HasPrefix(c.Path(), "/ws/") },
		}))
	}

	//
	// ROUTES
	//

	// [a] the dashboard ("rt-frontpage.go")

	e.GET("/", s.RtFrontpage)
	e.GET("/emb/dashboard.css", RtEmbCSS)

	// [b] json ("rt-api.go")

	e.GET("/api/results", s.RtResults)   // analysis_results.json
	e.GET("/api/enhanced", s.RtEnhanced) // enhanced_analysis.json
	e.GET("/api/runs", s.RtRuns)         // "/api/runs?limit=5"
	e.GET("/api/runs/:id", s.RtRun)      // "/api/runs/01HZX3Q6W4N9J3S0T8R6M2K1AB"
	e.POST("/api/analyze", s.RtAnalyze)  // returns {"id": "7b6a..."}

	// [c] charts ("rt-charts.go")

	e.GET("/chart/:kind", s.RtChart)        // "/chart/sentiment"
	e.GET("/chart/:kind/:short", s.RtChart) // "/chart/cloud/wells"

	// [d] websocket ("rt-websocket.go")

	e.GET("/ws/:id", s.RtWebsocket)

	e.HideBanner = true
	e.HidePort = false
	e.Debug = false
	e.DisableHTTP2 = true
	return e
}

// StartEchoServer - serve until ctx is done, then shut down gracefully
func StartEchoServer(ctx context.Context, s *Server) error {
	const (
		MSG1    = "serving the dashboard at C3http://%s:%dC0"
		GRACE   = 5 * time.Second
		SHUTMSG = "shutting down the server"
	)

	e := s.NewEcho()
	Msg.Emit(Msg.Color(fmt.Sprintf(MSG1, s.Cfg.HostIP, s.Cfg.HostPort)), mm.MSGMAND)

	errs := make(chan error, 1)
	go func() {
		errs <- e.Start(fmt.Sprintf("%s:%d", s.Cfg.HostIP, s.Cfg.HostPort))
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		Msg.Emit(SHUTMSG, mm.MSGNOTE)
		sctx, cancel := context.WithTimeout(context.Background(), GRACE)
		defer cancel()
		if err := e.Shutdown(sctx); err != nil {
			return err
		}
		if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
