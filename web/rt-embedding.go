//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed emb
var efs embed.FS

// RtEmbCSS - the dashboard stylesheet on its own
func RtEmbCSS(c echo.Context) error {
	const (
		ECSS = "emb/dashboard.css"
	)
	j, e := efs.ReadFile(ECSS)
	if e != nil {
		return c.String(http.StatusNotFound, "")
	}
	return c.Blob(http.StatusOK, "text/css", j)
}
