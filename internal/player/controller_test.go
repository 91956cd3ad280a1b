package player

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/yildizm/recap/internal/counter"
	"github.com/yildizm/recap/internal/deck"
)

// recorder is a Renderer and PromptField that remembers what it was told
type recorder struct {
	loading    bool
	player     bool
	rendered   int
	positions  map[int]Position
	progress   float64
	statValues map[int][]string
	prompt     string
	cleared    int
}

func newRecorder() *recorder {
	return &recorder{
		positions:  make(map[int]Position),
		statValues: make(map[int][]string),
	}
}

func (r *recorder) ShowLoading(v bool)    { r.loading = v }
func (r *recorder) ShowPlayer(v bool)     { r.player = v }
func (r *recorder) RenderDeck(*deck.Deck) { r.rendered++ }
func (r *recorder) Position(i int, _ deck.Slide, p Position) {
	r.positions[i] = p
}
func (r *recorder) SetProgress(p float64) { r.progress = p }
func (r *recorder) SetStatValue(i int, text string) {
	r.statValues[i] = append(r.statValues[i], text)
}
func (r *recorder) SetPrompt(text string) { r.prompt = text }
func (r *recorder) ClearPrompt() {
	r.prompt = ""
	r.cleared++
}

func (r *recorder) lastStat(i int) string {
	vals := r.statValues[i]
	if len(vals) == 0 {
		return ""
	}
	return vals[len(vals)-1]
}

// timers holds scheduled callbacks until the test fires them
type timers struct {
	pending []timer
}

type timer struct {
	d  time.Duration
	fn func()
}

func (t *timers) After(d time.Duration, fn func()) {
	t.pending = append(t.pending, timer{d: d, fn: fn})
}

func (t *timers) fireAll() {
	batch := t.pending
	t.pending = nil
	for _, tm := range batch {
		tm.fn()
	}
}

type frames struct {
	pending []func(time.Time)
}

func (f *frames) RequestFrame(fn func(time.Time)) {
	f.pending = append(f.pending, fn)
}

// finish runs frames until every live run completed
func (f *frames) finish() {
	for i := 0; len(f.pending) > 0 && i < 100; i++ {
		batch := f.pending
		f.pending = nil
		for _, fn := range batch {
			fn(time.Now().Add(time.Hour))
		}
	}
}

type harness struct {
	ctrl   *Controller
	rec    *recorder
	timers *timers
	frames *frames
}

func newHarness(t *testing.T, slides []deck.Slide, opts Options) *harness {
	t.Helper()
	d, err := deck.Build(slides)
	if err != nil {
		t.Fatalf("Failed to build deck: %v", err)
	}
	h := &harness{rec: newRecorder(), timers: &timers{}, frames: &frames{}}
	ctrl, err := New(d, Env{
		Renderer: h.rec,
		Prompt:   h.rec,
		Timers:   h.timers,
		Counter:  counter.NewEngine(h.frames, 0),
	}, opts)
	if err != nil {
		t.Fatalf("Failed to create controller: %v", err)
	}
	h.ctrl = ctrl
	return h
}

func (h *harness) open(t *testing.T) {
	t.Helper()
	h.ctrl.Open("")
	h.timers.fireAll()
	if h.ctrl.State() != StatePlaying {
		t.Fatalf("Expected playing after loading, got %s", h.ctrl.State())
	}
}

func (h *harness) index(t *testing.T) int {
	t.Helper()
	i, ok := h.ctrl.Index()
	if !ok {
		t.Fatalf("Expected an index while %s", h.ctrl.State())
	}
	return i
}

func scenarioDeck() []deck.Slide {
	return []deck.Slide{
		deck.Intro{Subtitle: "Looking back"},
		deck.Stat{Icon: "☕", Label: "We drank", Value: "2,048", Unit: "cups"},
		deck.Outro{Thanks: "Thanks", Message: "See you"},
	}
}

func TestNewRequiresDeck(t *testing.T) {
	_, err := New(nil, Env{}, Options{})
	if !errors.Is(err, deck.ErrEmptyDeck) {
		t.Errorf("Expected ErrEmptyDeck, got %v", err)
	}
}

func TestAdvanceClampsAtLastSlide(t *testing.T) {
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			slides := make([]deck.Slide, n)
			for i := range slides {
				slides[i] = deck.Text{Content: fmt.Sprint(i)}
			}
			h := newHarness(t, slides, Options{})
			h.open(t)

			for i := 0; i < n-1; i++ {
				h.ctrl.Advance()
			}
			if got := h.index(t); got != n-1 {
				t.Fatalf("Expected index %d after %d advances, got %d", n-1, n-1, got)
			}

			for i := 0; i < 3; i++ {
				h.ctrl.Advance()
				if got := h.index(t); got != n-1 {
					t.Errorf("Advance past the end moved to %d", got)
				}
			}
		})
	}
}

func TestRetreatAtFirstSlideIsNoop(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{})
	h.open(t)

	h.ctrl.Retreat()
	if got := h.index(t); got != 0 {
		t.Errorf("Expected index 0, got %d", got)
	}

	h.ctrl.Advance()
	h.ctrl.Retreat()
	if got := h.index(t); got != 0 {
		t.Errorf("Expected index 0 after advance+retreat, got %d", got)
	}
}

func TestReplayFromAnyIndex(t *testing.T) {
	slides := []deck.Slide{deck.Intro{}, deck.Text{}, deck.Text{}, deck.Photo{}, deck.Outro{}}
	for start := range slides {
		h := newHarness(t, slides, Options{})
		h.open(t)
		for i := 0; i < start; i++ {
			h.ctrl.Advance()
		}

		h.ctrl.Replay()
		if got := h.index(t); got != 0 {
			t.Errorf("Replay from %d landed on %d", start, got)
		}
		if h.rec.positions[0] != PositionActive {
			t.Errorf("Replay from %d did not activate slide 0", start)
		}
	}
}

func TestActivationPartitionsSlides(t *testing.T) {
	slides := []deck.Slide{deck.Intro{}, deck.Text{}, deck.Text{}, deck.Outro{}}
	h := newHarness(t, slides, Options{})
	h.open(t)
	h.ctrl.Advance()
	h.ctrl.Advance()

	want := []Position{PositionBefore, PositionBefore, PositionActive, PositionAfter}
	for i, p := range want {
		if h.rec.positions[i] != p {
			t.Errorf("Slide %d: expected %s, got %s", i, p, h.rec.positions[i])
		}
	}
	if h.rec.progress != 75 {
		t.Errorf("Expected progress 75, got %v", h.rec.progress)
	}
	if got := h.ctrl.Progress(); got != 75 {
		t.Errorf("Expected controller progress 75, got %v", got)
	}
}

func TestCommandsOutsidePlayingAreNoops(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{})

	for _, cmd := range []Command{CommandAdvance, CommandRetreat, CommandReplay, CommandClose, CommandNone} {
		h.ctrl.Handle(cmd)
		if h.ctrl.State() != StateClosed {
			t.Errorf("%s changed closed state to %s", cmd, h.ctrl.State())
		}
	}
	if _, ok := h.ctrl.Index(); ok {
		t.Errorf("Expected no index while closed")
	}

	h.ctrl.Handle(CommandOpen)
	for _, cmd := range []Command{CommandAdvance, CommandRetreat, CommandReplay, CommandOpen} {
		h.ctrl.Handle(cmd)
		if h.ctrl.State() != StateLoading {
			t.Errorf("%s changed loading state to %s", cmd, h.ctrl.State())
		}
	}
	if len(h.timers.pending) != 1 {
		t.Errorf("Expected a single loading timer, got %d", len(h.timers.pending))
	}
}

func TestScenarioAdvanceThroughStat(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{})

	h.ctrl.Open("Show our year")
	if h.ctrl.State() != StateLoading || !h.rec.loading {
		t.Fatalf("Expected loading indicator after open")
	}
	if h.rec.prompt != "Show our year" {
		t.Errorf("Expected prompt to be set, got %q", h.rec.prompt)
	}

	h.timers.fireAll()
	if h.index(t) != 0 || h.rec.loading || !h.rec.player || h.rec.rendered != 1 {
		t.Fatalf("Unexpected state after loading: %+v", h.rec)
	}

	h.ctrl.Advance()
	if h.index(t) != 1 {
		t.Fatalf("Expected index 1")
	}
	live := h.ctrl.env.Counter.Live()
	if live == nil || live.Target() != 2048 {
		t.Fatalf("Expected a counter run towards 2048, got %v", live)
	}

	h.frames.finish()
	vals := h.rec.statValues[1]
	if vals[0] != "0" {
		t.Errorf("Expected first displayed value 0, got %q", vals[0])
	}
	if len(vals) < 2 || vals[len(vals)-2] != "2,048" {
		t.Errorf("Expected exact target before completion, got %v", vals)
	}
	if got := h.rec.lastStat(1); got != "2,048" {
		t.Errorf("Expected raw value restored, got %q", got)
	}

	h.ctrl.Advance()
	h.ctrl.Advance()
	if got := h.index(t); got != 2 {
		t.Errorf("Expected to stay on 2, got %d", got)
	}
}

func TestScenarioCloseAndReopen(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{})
	h.ctrl.Open("prompt")
	h.timers.fireAll()
	h.ctrl.Advance()
	h.ctrl.Advance()

	h.ctrl.Close()
	if h.ctrl.State() != StateClosed {
		t.Fatalf("Expected closed, got %s", h.ctrl.State())
	}
	if h.rec.player || h.rec.prompt != "" || h.rec.cleared != 1 {
		t.Errorf("Expected player hidden and prompt cleared: %+v", h.rec)
	}

	h.open(t)
	if got := h.index(t); got != 0 {
		t.Errorf("Expected reopen at 0, got %d", got)
	}
}

func TestUnparseableStatShowsRawValue(t *testing.T) {
	h := newHarness(t, []deck.Slide{deck.Stat{Value: "abc"}}, Options{})
	h.open(t)

	if got := h.rec.statValues[0]; len(got) != 1 || got[0] != "abc" {
		t.Errorf("Expected literal abc once, got %v", got)
	}
	if h.ctrl.env.Counter.Live() != nil {
		t.Errorf("Expected no counter run")
	}
	if len(h.frames.pending) != 0 {
		t.Errorf("Expected no frames requested")
	}
}

func TestLeavingStatSupersedesCounter(t *testing.T) {
	slides := []deck.Slide{deck.Stat{Value: "1,000"}, deck.Text{Content: "x"}}
	h := newHarness(t, slides, Options{})
	h.open(t)

	before := len(h.rec.statValues[0])
	h.ctrl.Advance()
	h.frames.finish()

	if got := len(h.rec.statValues[0]); got != before {
		t.Errorf("Stale counter wrote %d values after leaving the slide", got-before)
	}
}

func TestLoadingTimerAfterCloseIsNoop(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{})

	h.ctrl.Open("")
	h.ctrl.Close()
	if h.ctrl.State() != StateClosed || h.rec.loading {
		t.Fatalf("Expected close during loading to hide the indicator")
	}

	h.timers.fireAll()
	if h.ctrl.State() != StateClosed {
		t.Errorf("Stale loading timer moved state to %s", h.ctrl.State())
	}
}

func TestStaleLoadingTimerFromEarlierOpen(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{})

	h.ctrl.Open("")
	first := h.timers.pending[0]
	h.timers.pending = nil
	h.ctrl.Close()
	h.ctrl.Open("")

	first.fn()
	if h.ctrl.State() != StateLoading {
		t.Errorf("Timer from an earlier open changed state to %s", h.ctrl.State())
	}

	h.timers.fireAll()
	if h.ctrl.State() != StatePlaying {
		t.Errorf("Expected current timer to start playback, got %s", h.ctrl.State())
	}
}

func TestAutoAdvanceStopsAtLastSlide(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{AutoAdvance: 5 * time.Second})
	h.open(t)

	for i := 0; i < 10 && len(h.timers.pending) > 0; i++ {
		h.timers.fireAll()
	}
	if got := h.index(t); got != 2 {
		t.Errorf("Expected auto-advance to reach 2, got %d", got)
	}
	if len(h.timers.pending) != 0 {
		t.Errorf("Expected auto-advance to stop at the last slide")
	}
}

func TestAutoAdvanceResumesAfterReplay(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{AutoAdvance: time.Second})
	h.open(t)

	for i := 0; i < 10 && len(h.timers.pending) > 0; i++ {
		h.timers.fireAll()
	}
	if got := h.index(t); got != 2 {
		t.Fatalf("Expected auto-advance to reach 2, got %d", got)
	}

	h.ctrl.Replay()
	if len(h.timers.pending) != 1 {
		t.Fatalf("Expected one auto-advance timer after replay, got %d", len(h.timers.pending))
	}
	h.timers.fireAll()
	if got := h.index(t); got != 1 {
		t.Errorf("Expected auto-advance to resume after replay, got %d", got)
	}
}

func TestAutoAdvanceResumesAfterRetreatFromLast(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{AutoAdvance: time.Second})
	h.open(t)

	for i := 0; i < 10 && len(h.timers.pending) > 0; i++ {
		h.timers.fireAll()
	}
	h.ctrl.Retreat()
	h.timers.fireAll()
	if got := h.index(t); got != 2 {
		t.Errorf("Expected auto-advance to move back to 2, got %d", got)
	}
}

func TestAutoAdvanceDoesNotStack(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{AutoAdvance: time.Second})
	h.open(t)

	h.ctrl.Replay()
	h.ctrl.Replay()
	if len(h.timers.pending) != 1 {
		t.Errorf("Expected a single pending auto-advance timer, got %d", len(h.timers.pending))
	}

	h.timers.fireAll()
	if got := h.index(t); got != 1 {
		t.Errorf("Expected one step per interval, got index %d", got)
	}
}

func TestAutoAdvanceStopsOnClose(t *testing.T) {
	h := newHarness(t, scenarioDeck(), Options{AutoAdvance: time.Second})
	h.open(t)
	h.ctrl.Close()

	h.timers.fireAll()
	if h.ctrl.State() != StateClosed {
		t.Errorf("Auto-advance fired after close: %s", h.ctrl.State())
	}
}

func TestPositionOf(t *testing.T) {
	if PositionOf(0, 1) != PositionBefore || PositionOf(1, 1) != PositionActive || PositionOf(2, 1) != PositionAfter {
		t.Errorf("Unexpected positions")
	}
}
