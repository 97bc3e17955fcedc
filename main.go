//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/e-gun/DistantReader/internal/lnch"
)

func main() {
	// go tool pprof --pdf ./DistantReader cpu.pprof > profile.pdf
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	stopprofiling()
	lnch.Msg.EC(err)
}
