//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/e-gun/DistantReader/internal/anl"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/labstack/echo/v4"
)

// RtFrontpage - send the html for "/": the whole dashboard, or an empty one if nothing has been analysed yet
func (s *Server) RtFrontpage(c echo.Context) error {
	b, e, err := s.results()
	if err != nil && !errors.Is(err, ErrNoResults) {
		return err
	}
	page, err := BuildDashboard(b, e, true)
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, page)
}

// results - what is on disk now; enhanced results are optional
func (s *Server) results() (*str.BasicOutput, *str.EnhancedOutput, error) {
	b, err := anl.ReadResults(s.Cfg.DataDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, ErrNoResults
	} else if err != nil {
		return nil, nil, err
	}
	e, err := anl.ReadEnhanced(s.Cfg.DataDir)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil, nil
	} else if err != nil {
		return nil, nil, err
	}
	return b, e, nil
}
