//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/e-gun/DistantReader/internal/db"
	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/labstack/echo/v4"
)

const (
	DEFAULTRUNLIMIT = 20
	MAXRUNLIMIT     = 500
)

// RtResults - the basic results document
func (s *Server) RtResults(c echo.Context) error {
	b, _, err := s.results()
	if errors.Is(err, ErrNoResults) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	} else if err != nil {
		return err
	}
	return gen.JSONresponse(c, b)
}

// RtEnhanced - the enhanced results document
func (s *Server) RtEnhanced(c echo.Context) error {
	_, e, err := s.results()
	if errors.Is(err, ErrNoResults) || (err == nil && e == nil) {
		return echo.NewHTTPError(http.StatusNotFound, ErrNoResults.Error())
	} else if err != nil {
		return err
	}
	return gen.JSONresponse(c, e)
}

// RtRuns - the stored runs, newest first: "/api/runs?limit=5"
func (s *Server) RtRuns(c echo.Context) error {
	limit := DEFAULTRUNLIMIT
	if l := c.QueryParam("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = min(n, MAXRUNLIMIT)
	}

	if s.Store == nil {
		return gen.JSONresponse(c, []db.RunInfo{})
	}
	runs, err := s.Store.Runs(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if runs == nil {
		runs = []db.RunInfo{}
	}
	return gen.JSONresponse(c, runs)
}

// RtRun - one stored run in full
func (s *Server) RtRun(c echo.Context) error {
	if s.Store == nil {
		return echo.NewHTTPError(http.StatusNotFound, db.ErrNotFound.Error())
	}
	r, err := s.Store.Run(c.Request().Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	} else if err != nil {
		return err
	}
	return gen.JSONresponse(c, r)
}

// RtAnalyze - start an analysis; progress can be followed at "/ws/:id"
func (s *Server) RtAnalyze(c echo.Context) error {
	j, err := s.Jobs.Launch(s.ctx, s.Run)
	if errors.Is(err, ErrBusy) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	} else if err != nil {
		return err
	}
	Msg.Emit(Msg.Color("analysis C6"+j.ID+"C0 started from the browser"), mm.MSGNOTE)
	return c.JSON(http.StatusAccepted, map[string]string{"id": j.ID})
}
