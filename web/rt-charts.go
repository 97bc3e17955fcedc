//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RtChart - the html+js for one chart: "/chart/sentiment", "/chart/cloud/wells"
func (s *Server) RtChart(c echo.Context) error {
	b, e, err := s.results()
	if errors.Is(err, ErrNoResults) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	} else if err != nil {
		return err
	}

	ch, err := ChartFor(c.Param("kind"), c.Param("short"), b, e)
	if errors.Is(err, ErrNoChart) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	} else if err != nil {
		return err
	}

	htmlandjs, _, err := Fragment(ch)
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, string(htmlandjs))
}
