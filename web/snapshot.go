//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	SNAPSETTLE  = 1500 * time.Millisecond // the word cloud layout animates before it holds still
	SNAPTIMEOUT = 30 * time.Second
)

// StandalonePage - one chart as a complete html document
func StandalonePage(title string, fragment template.HTML, assets []string) []byte {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", template.HTMLEscapeString(title))
	for _, a := range assets {
		fmt.Fprintf(&sb, "<script src=\"%s\"></script>\n", template.HTMLEscapeString(a))
	}
	sb.WriteString("</head>\n<body style=\"margin:0;background:#fff\">\n")
	sb.WriteString(string(fragment))
	sb.WriteString("\n</body>\n</html>\n")
	return []byte(sb.String())
}

// Snapshot - rasterise each text's word cloud to dir/<short>_wordcloud.png with a headless browser
func Snapshot(ctx context.Context, b *str.BasicOutput, dir string) ([]string, error) {
	const (
		FAIL1 = "could not launch a headless browser: %w"
		FAIL2 = "snapshot %s: %w"
		MSG1  = "wrote C3%sC0"
		PNGFN = "%s_wordcloud.png"
	)

	if b == nil || len(b.Texts) == 0 {
		return nil, ErrNoResults
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	scratch, err := os.MkdirTemp("", "distantreader-snap-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(scratch)

	l := launcher.New().Headless(true).Context(ctx)
	defer l.Cleanup()
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	browser := rod.New().ControlURL(u).Context(ctx)
	if err = browser.Connect(); err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}
	defer browser.Close()

	var written []string
	for _, t := range b.Texts {
		cloud := CloudChart(t.Title, t.WordFrequencies)
		frag, assets, e := Fragment(cloud)
		if e != nil {
			return written, fmt.Errorf(FAIL2, t.ShortName, e)
		}

		src := filepath.Join(scratch, t.ShortName+".html")
		if e = os.WriteFile(src, StandalonePage(t.Title, frag, assets), vv.WRITEPERMS); e != nil {
			return written, fmt.Errorf(FAIL2, t.ShortName, e)
		}

		png, e := shoot(browser, "file://"+src, "#"+cloud.ChartID)
		if e != nil {
			return written, fmt.Errorf(FAIL2, t.ShortName, e)
		}

		fn := filepath.Join(dir, fmt.Sprintf(PNGFN, t.ShortName))
		if e = os.WriteFile(fn, png, vv.WRITEPERMS); e != nil {
			return written, fmt.Errorf(FAIL2, t.ShortName, e)
		}
		Msg.Emit(Msg.Color(fmt.Sprintf(MSG1, fn)), mm.MSGNOTE)
		written = append(written, fn)
	}
	return written, nil
}

// shoot - load url and capture the element at selector once the page has settled
func shoot(browser *rod.Browser, url string, selector string) ([]byte, error) {
	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Timeout(SNAPTIMEOUT)
	if err = page.WaitLoad(); err != nil {
		return nil, err
	}
	el, err := page.Element(selector)
	if err != nil {
		return nil, err
	}
	if err = page.WaitStable(SNAPSETTLE); err != nil {
		return nil, err
	}
	return el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
}
