// Package counter animates a displayed integer from zero to a target with a
// cubic ease-out. Runs are driven by a FrameScheduler and are superseded, not
// canceled: starting a new run turns every pending frame of the old one into a
// no-op.
package counter

import (
	"math"
	"time"
)

// DefaultDuration is the length of one counter run
const DefaultDuration = 1500 * time.Millisecond

// FrameScheduler requests a callback on the next animation frame
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time))
}

// Engine owns the single live counter run
type Engine struct {
	scheduler FrameScheduler
	duration  time.Duration
	now       func() time.Time
	live      *Run
}

// Run is the handle of one counter animation
type Run struct {
	engine     *Engine
	target     int
	start      time.Time
	last       time.Duration
	onFrame    func(int)
	onComplete func()
	done       bool
}

// NewEngine creates an engine. A non-positive duration selects
// DefaultDuration.
func NewEngine(scheduler FrameScheduler, duration time.Duration) *Engine {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Engine{
		scheduler: scheduler,
		duration:  duration,
		now:       time.Now,
	}
}

// Duration returns the length of a run
func (e *Engine) Duration() time.Duration {
	return e.duration
}

// Live returns the run currently allowed to write frames, or nil
func (e *Engine) Live() *Run {
	return e.live
}

// Start begins a run towards target and supersedes any run in flight.
// onFrame receives 0 immediately, then one value per frame, and finally the
// exact target right before onComplete.
func (e *Engine) Start(target int, onFrame func(int), onComplete func()) *Run {
	if target < 0 {
		target = 0
	}
	if onFrame == nil {
		onFrame = func(int) {}
	}
	if onComplete == nil {
		onComplete = func() {}
	}

	r := &Run{
		engine:     e,
		target:     target,
		start:      e.now(),
		onFrame:    onFrame,
		onComplete: onComplete,
	}
	e.live = r

	r.onFrame(0)
	e.scheduler.RequestFrame(r.step)
	return r
}

// Supersede drops the live run without starting a new one. Pending frames of
// the dropped run become no-ops.
func (e *Engine) Supersede() {
	e.live = nil
}

// Target returns the value the run counts towards
func (r *Run) Target() int {
	return r.target
}

// Done reports whether the run delivered its final frame
func (r *Run) Done() bool {
	return r.done
}

// Stale reports whether a newer run (or Supersede) took over the output
func (r *Run) Stale() bool {
	return r.engine.live != r
}

func (r *Run) step(now time.Time) {
	if r.done || r.Stale() {
		return
	}

	elapsed := now.Sub(r.start)
	if elapsed < r.last {
		elapsed = r.last
	}
	r.last = elapsed

	p := Progress(elapsed, r.engine.duration)
	if p < 1 {
		r.onFrame(Value(r.target, p))
		r.engine.scheduler.RequestFrame(r.step)
		return
	}

	r.done = true
	r.engine.live = nil
	r.onFrame(r.target)
	r.onComplete()
}

// Progress returns min(elapsed/duration, 1), clamped at 0
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(duration)
	return math.Max(0, math.Min(p, 1))
}

// EaseOutCubic maps p in [0,1] to 1-(1-p)^3
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// Value returns floor(target * EaseOutCubic(p))
func Value(target int, p float64) int {
	return int(math.Floor(float64(target) * EaseOutCubic(p)))
}
