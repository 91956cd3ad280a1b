// Package player implements the playback state machine: it owns the current
// slide index and lifecycle state, and drives the renderer and the counter
// animation on every slide activation.
package player

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yildizm/recap/internal/counter"
	"github.com/yildizm/recap/internal/deck"
	"github.com/yildizm/recap/internal/logger"
	"github.com/yildizm/recap/internal/progress"
)

// DefaultLoadingDelay is how long the loading indicator is shown
const DefaultLoadingDelay = 1500 * time.Millisecond

// Env holds the collaborators the controller writes to
type Env struct {
	Renderer Renderer
	Prompt   PromptField
	Timers   Scheduler
	Counter  *counter.Engine
}

// Options tunes the controller
type Options struct {
	LoadingDelay time.Duration
	// AutoAdvance injects Advance periodically while playing; 0 disables it
	AutoAdvance time.Duration
	Locale      language.Tag
	Logger      *slog.Logger
}

// Controller is the playback state machine. It is not safe for concurrent
// use; every call must come from the goroutine that runs the timers.
type Controller struct {
	deck    *deck.Deck
	env     Env
	opts    Options
	printer *message.Printer
	log     *slog.Logger

	state State
	index int
	// epoch changes on every Open and Close so timers armed for an earlier
	// session can tell they are stale
	epoch uint64
	// autoArmed is set while an auto-advance timer of the current epoch is pending
	autoArmed bool
}

// New creates a closed controller for the deck
func New(d *deck.Deck, env Env, opts Options) (*Controller, error) {
	if d.Len() == 0 {
		return nil, &deck.ConfigurationError{Index: -1, Message: "controller needs a deck", Cause: deck.ErrEmptyDeck}
	}
	if opts.LoadingDelay < 0 {
		opts.LoadingDelay = 0
	}
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Controller{
		deck:    d,
		env:     env,
		opts:    opts,
		printer: message.NewPrinter(opts.Locale),
		log:     log,
		state:   StateClosed,
	}, nil
}

// State returns the lifecycle state
func (c *Controller) State() State {
	return c.state
}

// Index returns the current slide index; ok is false unless playing
func (c *Controller) Index() (index int, ok bool) {
	if c.state != StatePlaying {
		return 0, false
	}
	return c.index, true
}

// Deck returns the deck being played
func (c *Controller) Deck() *deck.Deck {
	return c.deck
}

// Progress returns the progress percentage, 0 unless playing
func (c *Controller) Progress() float64 {
	i, ok := c.Index()
	if !ok {
		return 0
	}
	return progress.Percent(i, c.deck.Len())
}

// Handle applies a command. Every (state, command) pair is defined;
// commands that do not apply are no-ops.
func (c *Controller) Handle(cmd Command) {
	switch cmd {
	case CommandOpen:
		c.Open("")
	case CommandClose:
		c.Close()
	case CommandAdvance:
		c.Advance()
	case CommandRetreat:
		c.Retreat()
	case CommandReplay:
		c.Replay()
	}
}

// Open shows the loading indicator and schedules the start of playback.
// A non-empty prompt replaces the prompt field text.
func (c *Controller) Open(prompt string) {
	if c.state != StateClosed {
		c.log.Debug("open ignored", "state", c.state)
		return
	}
	if prompt != "" && c.env.Prompt != nil {
		c.env.Prompt.SetPrompt(prompt)
	}

	c.state = StateLoading
	c.epoch++
	epoch := c.epoch
	c.log.Info("loading", "delay", c.opts.LoadingDelay, "epoch", epoch)

	c.env.Renderer.ShowLoading(true)
	c.env.Timers.After(c.opts.LoadingDelay, func() {
		c.finishLoading(epoch)
	})
}

func (c *Controller) finishLoading(epoch uint64) {
	if c.state != StateLoading || c.epoch != epoch {
		c.log.Debug("stale loading timer", "state", c.state, "epoch", epoch, "current", c.epoch)
		return
	}

	c.env.Renderer.ShowLoading(false)
	c.env.Renderer.RenderDeck(c.deck)
	c.env.Renderer.ShowPlayer(true)

	c.state = StatePlaying
	c.log.Info("playing", "slides", c.deck.Len())
	c.activate(0)
}

// Close hides the player, shows the main surface and clears the prompt
func (c *Controller) Close() {
	if c.state == StateClosed {
		return
	}
	wasLoading := c.state == StateLoading

	c.state = StateClosed
	c.index = 0
	c.epoch++
	c.autoArmed = false
	if c.env.Counter != nil {
		c.env.Counter.Supersede()
	}

	if wasLoading {
		c.env.Renderer.ShowLoading(false)
	}
	c.env.Renderer.ShowPlayer(false)
	if c.env.Prompt != nil {
		c.env.Prompt.ClearPrompt()
	}
	c.log.Info("closed", "during_loading", wasLoading)
}

// Advance moves to the next slide; it stays put on the last one
func (c *Controller) Advance() {
	if c.state != StatePlaying || c.index >= c.deck.Len()-1 {
		return
	}
	c.activate(c.index + 1)
}

// Retreat moves to the previous slide; it stays put on the first one
func (c *Controller) Retreat() {
	if c.state != StatePlaying || c.index <= 0 {
		return
	}
	c.activate(c.index - 1)
}

// Replay jumps back to the first slide
func (c *Controller) Replay() {
	if c.state != StatePlaying {
		return
	}
	c.activate(0)
}

// activate makes slide k the only active slide, refreshes progress and
// starts the entrance counter of stat slides
func (c *Controller) activate(k int) {
	c.index = k
	for i, s := range c.deck.Slides() {
		c.env.Renderer.Position(i, s, PositionOf(i, k))
	}
	c.env.Renderer.SetProgress(progress.Percent(k, c.deck.Len()))
	c.log.Debug("activated", "index", k, "kind", c.deck.At(k).Kind())
	if k < c.deck.Len()-1 {
		c.scheduleAutoAdvance(c.epoch)
	}

	stat, ok := c.deck.At(k).(deck.Stat)
	if !ok {
		c.supersedeCounter()
		return
	}

	target, ok := stat.Target()
	if !ok || c.env.Counter == nil {
		c.supersedeCounter()
		c.env.Renderer.SetStatValue(k, stat.Value)
		return
	}

	c.startCounter(k, stat, target)
}

func (c *Controller) startCounter(k int, stat deck.Stat, target int) {
	c.env.Counter.Start(target,
		func(v int) {
			c.env.Renderer.SetStatValue(k, c.FormatNumber(v))
		},
		func() {
			c.env.Renderer.SetStatValue(k, stat.Value)
		})
}

func (c *Controller) supersedeCounter() {
	if c.env.Counter != nil {
		c.env.Counter.Supersede()
	}
}

// FormatNumber formats n with the thousands separators of the locale
func (c *Controller) FormatNumber(n int) string {
	return c.printer.Sprintf("%d", n)
}

// scheduleAutoAdvance arms one auto-advance timer unless one is pending.
// Every activation before the last slide re-arms it, so Replay and Retreat
// from the last slide resume the chain.
func (c *Controller) scheduleAutoAdvance(epoch uint64) {
	if c.opts.AutoAdvance <= 0 || c.autoArmed {
		return
	}
	c.autoArmed = true
	c.env.Timers.After(c.opts.AutoAdvance, func() {
		if c.epoch != epoch {
			return
		}
		c.autoArmed = false
		if c.state != StatePlaying {
			return
		}
		c.Advance()
	})
}
