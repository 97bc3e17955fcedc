//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"runtime"

	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
)

//
// VERSION INFO BUILD TIME INJECTION
//

// these next variables should be injected at build time: 'go build -ldflags "-X github.com/e-gun/DistantReader/internal/lnch.GitCommit=$GIT_COMMIT"', etc

var GitCommit string
var VersSuppl string
var BuildDate string

// VersionLine - e.g. "[DR] Distant Reader (v0.3.1) [git: 64974732] [gl=2; el=0]"
func VersionLine(cc *str.CurrentConfiguration) string {
	const (
		SN = "[C1%sC0] "
		GC = " [C4git: C4%sC0]"
		LL = " [C6gl=%d; el=%dC0]"
		ME = "C5%sC0 (C2v%sC0)"
	)
	sn := fmt.Sprintf(SN, vv.SHORTNAME)
	gc := ""
	if GitCommit != "" {
		gc = fmt.Sprintf(GC, GitCommit)
	}
	ll := fmt.Sprintf(LL, cc.LogLevel, cc.EchoLog)
	versioninfo := fmt.Sprintf(ME, vv.MYNAME, vv.VERSION+VersSuppl)
	return sn + versioninfo + gc + ll
}

func PrintVersion(cc *str.CurrentConfiguration) {
	fmt.Println(Msg.ColStyle(VersionLine(cc)))
}

func PrintBuildInfo(cc *str.CurrentConfiguration) {
	// example:
	// 	Built:	2025-11-14@19:02:51		Golang:	go1.24.4
	//	System:	darwin-arm64			WKvCPU:	20/20
	const (
		BD = "\tS2Built:S0\tC3%sC0\t\tS2Golang:S0\tC3%sC0\n"
		SY = "\tS2System:S0\tC3%s-%sC0\t\tS2WKvCPU:S0\tC3%d/%dC0"
	)
	bd := BuildDate
	if bd == "" {
		bd = "unknown"
	}
	fmt.Println(Msg.ColStyle(fmt.Sprintf(BD, bd, runtime.Version())))
	fmt.Println(Msg.ColStyle(fmt.Sprintf(SY, runtime.GOOS, runtime.GOARCH, cc.WorkerCount, runtime.NumCPU())))
}
