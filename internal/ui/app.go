package ui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/recap/internal/config"
	"github.com/yildizm/recap/internal/counter"
	"github.com/yildizm/recap/internal/deck"
	"github.com/yildizm/recap/internal/input"
	"github.com/yildizm/recap/internal/logger"
	"github.com/yildizm/recap/internal/player"
	"github.com/yildizm/recap/internal/ui/components"
)

const spinInterval = 100 * time.Millisecond

// Model is the bubbletea model of the presentation player
type Model struct {
	width  int
	height int

	cfg    *config.Config
	styles *Styles
	log    *slog.Logger

	player     *player.Controller
	dispatcher *input.Dispatcher
	surface    *surface
	prompt     *promptField
	timers     *scheduler

	suggestions *components.SuggestionList
	spinner     *components.Spinner
	spinning    bool
	quitting    bool
}

// NewModel wires a controller for the deck to a terminal surface
func NewModel(cfg *config.Config, d *deck.Deck, log *slog.Logger) (*Model, error) {
	if log == nil {
		log = logger.Discard()
	}

	timers := newScheduler(cfg.Display.FrameRate)
	surf := newSurface()
	prompt := newPromptField("Ask about the year...")

	ctrl, err := player.New(d, player.Env{
		Renderer: surf,
		Prompt:   prompt,
		Timers:   timers,
		Counter:  counter.NewEngine(timers, cfg.Presentation.CounterDuration),
	}, player.Options{
		LoadingDelay: cfg.Presentation.LoadingDuration,
		AutoAdvance:  cfg.Presentation.AutoAdvance,
		Locale:       cfg.Presentation.LocaleTag(),
		Logger:       logger.WithComponent(log, "player"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	items := make([]components.Suggestion, 0, len(cfg.Suggestions))
	for _, s := range cfg.Suggestions {
		items = append(items, components.Suggestion{Label: s.Label, Prompt: s.Prompt})
	}

	spinner := components.NewSpinner()
	spinner.SetLabel("Putting your year together...")

	styles := GetStyles()
	suggestions := components.NewSuggestionList(items, 0)
	suggestions.Style = styles.Suggestion
	suggestions.SelectedStyle = styles.PickedSuggestion

	return &Model{
		cfg:         cfg,
		styles:      styles,
		log:         logger.WithComponent(log, "ui"),
		player:      ctrl,
		dispatcher:  input.NewDispatcher(input.DefaultKeyMap(), prompt),
		surface:     surf,
		prompt:      prompt,
		timers:      timers,
		suggestions: suggestions,
		spinner:     spinner,
	}, nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.suggestions.Width = msg.Width
		m.prompt.setWidth(promptWidth(msg.Width) - 6)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case timerMsg:
		m.timers.fireTimer(msg.id)
		return m, m.afterCore()
	case frameMsg:
		m.timers.fireFrame(time.Time(msg))
		return m, m.afterCore()
	case spinMsg:
		if !m.surface.loading {
			m.spinning = false
			return m, nil
		}
		m.spinner.Tick()
		return m, spin()
	}

	return m, nil
}

// handleKeyPress routes keys by lifecycle state. While closed, keys edit the
// prompt and pick suggestions; while playing they go to the dispatcher.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}

	switch m.player.State() {
	case player.StateClosed:
		return m.handleClosedKey(msg)
	case player.StateLoading:
		if msg.String() == "esc" {
			return m.control(input.ControlEvent{Action: input.ActionClose})
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m.handleQuit()
	case "r":
		if m.onOutro() {
			return m.control(input.ControlEvent{Action: input.ActionReplay})
		}
	}
	return m.dispatch(input.KeyEvent{Key: msg.String()})
}

func (m *Model) handleClosedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.handleQuit()
	case "tab", "down":
		m.suggestions.Next()
		return m, nil
	case "shift+tab", "up":
		m.suggestions.Previous()
		return m, nil
	case "enter":
		if s, ok := m.suggestions.Current(); ok {
			m.suggestions.Clear()
			return m.control(input.ControlEvent{Action: input.ActionSuggestion, Prompt: s.Prompt})
		}
		return m.control(input.ControlEvent{Action: input.ActionSubmit, Prompt: m.prompt.Value()})
	}

	m.suggestions.Clear()
	return m, m.prompt.update(msg)
}

// handleMouse turns clicks into control actions or pointer events
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.player.State() {
	case player.StateClosed:
		if s, ok := m.suggestions.At(msg.Y - suggestionsRow); ok {
			return m.control(input.ControlEvent{Action: input.ActionSuggestion, Prompt: s.Prompt})
		}
		return m, nil
	case player.StatePlaying:
		if action, onControl := m.controlAt(msg.X, msg.Y); onControl {
			if action == nil {
				return m, nil
			}
			return m.control(input.ControlEvent{Action: *action})
		}
		return m.dispatch(input.PointerEvent{X: msg.X, Width: m.width})
	}
	return m, nil
}

// controlAt reports whether a cell belongs to the control bars and which
// control, if any, sits under it
func (m *Model) controlAt(x, y int) (*input.Action, bool) {
	switch {
	case y == 0:
		if x < closeButtonWidth() {
			action := input.ActionClose
			return &action, true
		}
		return nil, true
	case y == m.height-1:
		if m.onOutro() && x < replayButtonWidth() {
			action := input.ActionReplay
			return &action, true
		}
		return nil, true
	}
	return nil, false
}

func (m *Model) control(ev input.ControlEvent) (tea.Model, tea.Cmd) {
	if ev.Action == input.ActionSubmit {
		m.log.Debug("prompt submitted", "prompt", ev.Prompt)
	}
	return m.dispatch(ev)
}

func (m *Model) dispatch(ev input.Event) (tea.Model, tea.Cmd) {
	res := m.dispatcher.Dispatch(m.player.State(), ev)
	if !res.OK() {
		return m, nil
	}
	m.player.Handle(res.Command)
	m.log.Debug("command handled",
		"command", res.Command,
		"state", m.player.State(),
		"slides", positionsSummary(m.surface.positions))
	return m, m.afterCore()
}

// afterCore collects the commands the core scheduled and keeps the
// spinner running while loading is shown
func (m *Model) afterCore() tea.Cmd {
	cmd := m.timers.Cmd()
	if m.surface.loading && !m.spinning {
		m.spinning = true
		return tea.Batch(cmd, spin())
	}
	return cmd
}

func (m *Model) onOutro() bool {
	i, ok := m.player.Index()
	if !ok {
		return false
	}
	_, outro := m.player.Deck().At(i).(deck.Outro)
	return outro
}

func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.player.Close()
	return m, tea.Quit
}

func spin() tea.Cmd {
	return tea.Tick(spinInterval, func(t time.Time) tea.Msg {
		return spinMsg(t)
	})
}

// Run runs the presentation player
func Run(cfg *config.Config, d *deck.Deck, log *slog.Logger) error {
	model, err := NewModel(cfg, d, log)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !cfg.Display.DisableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, opts...)
	_, err = p.Run()
	return err
}
