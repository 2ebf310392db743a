package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/platy/tag-sim/internal/core"
	"github.com/platy/tag-sim/internal/game"
	"github.com/platy/tag-sim/internal/sim"
	"github.com/platy/tag-sim/internal/storage"
	"github.com/platy/tag-sim/internal/viewer"
)

// KeyMap defines the key bindings for the live viewer.
type KeyMap struct {
	Pause   key.Binding
	StepOne key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Restart key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.StepOne, k.Restart, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.StepOne, k.Faster, k.Slower},
		{k.Restart, k.Quit, k.Help},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		StepOne: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "single step"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart with new seed"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Model is the Bubble Tea model for watching a run live.
type Model struct {
	simCfg   sim.Config
	sim      *sim.Simulation
	renderer *viewer.Renderer
	screen   *core.Screen
	store    *storage.Store

	tickRate int
	paused   bool
	keys     KeyMap
	help     help.Model

	lastFrame sim.Frame
	runSaved  bool
	quitting  bool
}

// NewModel creates a model for the given run configuration.
func NewModel(simCfg sim.Config, tickRate int, store *storage.Store) (Model, error) {
	s, err := sim.New(simCfg)
	if err != nil {
		return Model{}, err
	}

	r := viewer.New(simCfg.Field)
	w, h := r.ScreenSize()

	return Model{
		simCfg:   simCfg,
		sim:      s,
		renderer: r,
		screen:   core.NewScreen(w, h+1), // extra row for the help footer
		store:    store,
		tickRate: tickRate,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		lastFrame: sim.Frame{
			Players: s.Snapshot(),
		},
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.StepOne):
		if !m.sim.Done() {
			m.paused = true
			m.lastFrame = m.sim.Step()
		}

	case key.Matches(msg, m.keys.Faster):
		m.tickRate = core.Min(m.tickRate*2, 120)

	case key.Matches(msg, m.keys.Slower):
		m.tickRate = core.Max(m.tickRate/2, 1)

	case key.Matches(msg, m.keys.Restart):
		cfg := m.simCfg
		cfg.Seed = time.Now().UnixNano()
		if s, err := sim.New(cfg); err == nil {
			m.simCfg = cfg
			m.sim = s
			m.lastFrame = sim.Frame{Players: s.Snapshot()}
			m.runSaved = false
			m.paused = false
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.sim.Done() {
		m.lastFrame = m.sim.Step()
	}

	if m.sim.Done() && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.tickRate)
}

// saveRun records the finished run. Best effort; the viewer keeps working
// without storage.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	finalIt := 0
	for _, p := range m.sim.Snapshot() {
		if p.Role == game.It {
			finalIt = p.Player
		}
	}
	//nolint:errcheck // Best-effort save, viewer continues regardless
	m.store.SaveRun(storage.RunEntry{
		Players:     m.simCfg.Players,
		Steps:       m.simCfg.Steps,
		FieldWidth:  m.simCfg.Field.W,
		FieldHeight: m.simCfg.Field.H,
		Seed:        m.simCfg.Seed,
		Tags:        m.sim.TagCount(),
		FinalIt:     finalIt,
	})
}

// View renders the current frame with the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.RenderFrame(m.lastFrame, m.simCfg.Steps, m.screen)

	status := fmt.Sprintf(" %d steps/s", m.tickRate)
	switch {
	case m.sim.Done():
		status = " finished — r to restart"
	case m.paused:
		status = " paused"
	}
	m.screen.DrawText(m.screen.Width()-len(status)-1, 0, status)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
