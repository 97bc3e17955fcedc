//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package anl

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/fsnotify/fsnotify"
)

// Watch - call fn whenever one of the files at paths changes; a burst of events within wait yields one call
func Watch(ctx context.Context, paths []string, wait time.Duration, fn func(ctx context.Context)) error {
	const (
		MSG1 = "watching C3%dC0 file(s) for changes"
		MSG2 = "C6%sC0 changed"
		FAIL = "watch: %w"
	)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf(FAIL, err)
	}
	defer w.Close()

	// editors often replace a file rather than write to it, so watch the directories
	wanted := make(map[string]bool)
	var dirs []string
	for _, p := range paths {
		abs, e := filepath.Abs(p)
		if e != nil {
			return fmt.Errorf(FAIL, e)
		}
		wanted[abs] = true
		dirs = append(dirs, filepath.Dir(abs))
	}
	for _, d := range gen.Unique(dirs) {
		if err = w.Add(d); err != nil {
			return fmt.Errorf(FAIL, err)
		}
	}
	Msg.Emit(Msg.Color(fmt.Sprintf(MSG1, len(wanted))), mm.MSGNOTE)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !wanted[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			Msg.Emit(Msg.Color(fmt.Sprintf(MSG2, ev.Name)), mm.MSGFYI)
			timer.Reset(wait)
		case e, ok := <-w.Errors:
			if !ok {
				return nil
			}
			Msg.Emit(e.Error(), mm.MSGWARN)
		case <-timer.C:
			fn(ctx)
		}
	}
}
