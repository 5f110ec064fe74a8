package nnet

import (
	"context"
	"log"
	"sync"
	"time"
)

// Runner calls a tick function at a fixed period from a background goroutine
// until it is stopped. It replaces an ambient interval timer with explicit
// start and stop so the goroutine never outlives its owner.
type Runner struct {
	Name   string
	tick   func()
	period time.Duration
	cancel context.CancelFunc
	done   chan struct{}
	sync.Mutex
}

// NewRunner creates a stopped runner.
func NewRunner(name string, period time.Duration, tick func()) *Runner {
	return &Runner{Name: name, tick: tick, period: period}
}

// Start the ticker if not already running.
func (r *Runner) Start() {
	r.Lock()
	defer r.Unlock()
	r.start()
}

// Stop the ticker and wait for the goroutine to exit. It is safe to call on a stopped runner.
// The tick function must not call Stop or Start on the same runner.
func (r *Runner) Stop() {
	r.Lock()
	defer r.Unlock()
	r.stop()
}

// Running returns true if the ticker is active.
func (r *Runner) Running() bool {
	r.Lock()
	defer r.Unlock()
	return r.cancel != nil
}

// Period returns the current tick period.
func (r *Runner) Period() time.Duration {
	r.Lock()
	defer r.Unlock()
	return r.period
}

// SetPeriod changes the tick period, restarting the ticker if it is running.
// A non-positive period is ignored.
func (r *Runner) SetPeriod(d time.Duration) {
	r.Lock()
	defer r.Unlock()
	if d <= 0 || d == r.period {
		return
	}
	r.period = d
	if r.cancel != nil {
		r.stop()
		r.start()
	}
}

func (r *Runner) start() {
	if r.cancel != nil {
		return
	}
	log.Printf("%s: start period=%s\n", r.Name, r.period)
	var ctx context.Context
	ctx, r.cancel = context.WithCancel(context.Background())
	r.done = make(chan struct{})
	go r.loop(ctx, r.period, r.done)
}

func (r *Runner) stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel, r.done = nil, nil
	log.Printf("%s: stopped\n", r.Name)
}

func (r *Runner) loop(ctx context.Context, period time.Duration, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			r.tick()
		}
	}
}
