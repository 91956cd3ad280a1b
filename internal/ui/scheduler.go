package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scheduler adapts the player's timers and the counter's frame requests to
// bubbletea. Callbacks only ever run inside Update, so the core stays
// single-threaded. Commands produced while handling a message are collected
// and returned by Cmd.
type scheduler struct {
	frameInterval time.Duration

	nextID int
	timers map[int]func()

	frames  []func(time.Time)
	ticking bool

	cmds []tea.Cmd
}

func newScheduler(frameRate int) *scheduler {
	if frameRate < 1 {
		frameRate = 60
	}
	return &scheduler{
		frameInterval: time.Second / time.Duration(frameRate),
		timers:        make(map[int]func()),
	}
}

// After implements player.Scheduler
func (s *scheduler) After(d time.Duration, fn func()) {
	s.nextID++
	id := s.nextID
	s.timers[id] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}

// RequestFrame implements counter.FrameScheduler. All callbacks requested
// before the next frame share one tick.
func (s *scheduler) RequestFrame(fn func(now time.Time)) {
	s.frames = append(s.frames, fn)
	if s.ticking {
		return
	}
	s.ticking = true
	s.cmds = append(s.cmds, tea.Tick(s.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	}))
}

func (s *scheduler) fireTimer(id int) {
	fn, ok := s.timers[id]
	if !ok {
		return
	}
	delete(s.timers, id)
	fn()
}

// fireFrame runs the callbacks requested before this frame; callbacks they
// request wait for the next one
func (s *scheduler) fireFrame(now time.Time) {
	s.ticking = false
	batch := s.frames
	s.frames = nil
	for _, fn := range batch {
		fn(now)
	}
}

// Cmd returns the commands collected since the last call
func (s *scheduler) Cmd() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}
