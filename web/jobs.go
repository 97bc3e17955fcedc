//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/e-gun/DistantReader/internal/anl"
	"github.com/e-gun/DistantReader/internal/str"
	"github.com/google/uuid"
)

var ErrBusy = errors.New("an analysis is already running")

// Runner - whatever executes an analysis and reports progress along the way
type Runner func(ctx context.Context, progress chan<- str.Progress) (*anl.Outcome, error)

// Job - one analysis started from the browser
type Job struct {
	ID      string
	Started time.Time
	mtx     sync.Mutex
	events  []str.Progress
	done    bool
	err     error
	outcome *anl.Outcome
}

func (j *Job) add(p str.Progress) {
	j.mtx.Lock()
	defer j.mtx.Unlock()
	j.events = append(j.events, p)
}

func (j *Job) finish(oc *anl.Outcome, err error) {
	j.mtx.Lock()
	defer j.mtx.Unlock()
	j.outcome = oc
	j.err = err
	j.done = true
}

// Since - the events after the first n; done reports that no more will come
func (j *Job) Since(n int) (ev []str.Progress, done bool, err error) {
	j.mtx.Lock()
	defer j.mtx.Unlock()
	if n < len(j.events) {
		ev = append(ev, j.events[n:]...)
	}
	return ev, j.done, j.err
}

// JobVault - the jobs this server has started; only one may run at a time
type JobVault struct {
	mtx  sync.Mutex
	jobs map[string]*Job
}

func NewJobVault() *JobVault {
	return &JobVault{jobs: make(map[string]*Job)}
}

func (v *JobVault) Get(id string) (*Job, bool) {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	j, ok := v.jobs[id]
	return j, ok
}

// Launch - start run in the background unless another job is still going
func (v *JobVault) Launch(ctx context.Context, run Runner) (*Job, error) {
	const (
		PROGBUFF = 16
	)

	v.mtx.Lock()
	for _, j := range v.jobs {
		j.mtx.Lock()
		busy := !j.done
		j.mtx.Unlock()
		if busy {
			v.mtx.Unlock()
			return nil, ErrBusy
		}
	}
	j := &Job{ID: uuid.New().String(), Started: time.Now()}
	v.jobs[j.ID] = j
	v.mtx.Unlock()

	ch := make(chan str.Progress, PROGBUFF)
	relayed := make(chan struct{})

	go func() {
		for p := range ch {
			j.add(p)
		}
		close(relayed)
	}()

	go func() {
		oc, err := run(ctx, ch)
		close(ch)
		<-relayed
		if err != nil {
			j.add(str.Progress{Stage: "error", Text: err.Error()})
		}
		j.finish(oc, err)
	}()

	return j, nil
}
