//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"net/http"
	"time"

	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/e-gun/DistantReader/internal/vv"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var (
	Upgrader = websocket.Upgrader{}
)

//
// THE ROUTE
//

// RtWebsocket - relay the progress of an analysis job until it is over; several clients may follow the same job
func (s *Server) RtWebsocket(c echo.Context) error {
	const (
		FAILCON = "RtWebsocket(): ws connection failed"
		WRITEDL = 5 * time.Second
	)

	j, ok := s.Jobs.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no such job")
	}

	ws, err := Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		Msg.Emit(FAILCON, mm.MSGNOTE)
		return nil
	}
	defer ws.Close()

	ticker := time.NewTicker(vv.WSPOLLINGPAUSE)
	defer ticker.Stop()

	sent := 0
	for {
		ev, done, _ := j.Since(sent)
		for _, p := range ev {
			_ = ws.SetWriteDeadline(time.Now().Add(WRITEDL))
			if err = ws.WriteJSON(p); err != nil {
				// the client went away
				return nil
			}
		}
		sent += len(ev)

		if done {
			_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return nil
		}

		select {
		case <-ticker.C:
		case <-c.Request().Context().Done():
			return nil
		case <-s.ctx.Done():
			return nil
		}
	}
}
