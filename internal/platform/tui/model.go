package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// Option configures a Model.
type Option func(*Model)

// WithAudio plays effects for the events of each tick.
func WithAudio(p core.SoundPlayer) Option {
	return func(m *Model) {
		m.player = p
	}
}

// WithLogger sets the logger for frontend events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// Model is the Bubble Tea model running a single game.
type Model struct {
	game     core.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	queue    *core.ActionQueue
	keys     KeyMap
	help     help.Model
	player   core.SoundPlayer
	logger   *log.Logger
	state    core.GameState
	width    int
	height   int
	tooSmall bool
	quitting bool
}

// NewModel resets game to cfg and wraps it in a Bubble Tea model.
// cfg.Seed is used as is.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	game.Reset(cfg)

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		queue:  &core.ActionQueue{},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		player: core.Silent{},
		logger: log.New(io.Discard),
		state:  game.State(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick. Quit is handled at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.game.Step(quitFrame())
		m.quitting = true
		return m, tea.Quit
	}
	m.queue.Push(action)
	return m, nil
}

// handleResize suspends the simulation while the window cannot hold the
// screen the game was sized for.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	tooSmall := msg.Width < m.config.ScreenW || msg.Height < m.config.ScreenH
	if tooSmall != m.tooSmall {
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height, "suspended", tooSmall)
	}
	m.tooSmall = tooSmall
	return m, nil
}

// handleTick drains queued input and advances the game by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := core.DrainInput(m.queue)
	if m.tooSmall {
		if !frame.Empty() {
			m.logger.Debug("input dropped while suspended", "actions", len(frame.Actions))
		}
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.state = result.State
	m.player.Play(result.Events)

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return m.tooSmallView()
	}

	m.game.Render(m.screen)
	if m.state.Phase == core.PhaseMenu {
		hint := m.keys.HintLine()
		if len(hint) < m.screen.Width() {
			m.screen.DrawTextCentered(m.screen.Height()-3, hint, core.ColorGray)
		}
	}
	return RenderScreen(m.screen)
}

func (m Model) tooSmallView() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	notice := fmt.Sprintf("Terminal too small: %dx%d, need %dx%d",
		m.width, m.height, m.config.ScreenW, m.config.ScreenH)
	return style.Render(notice) + "\n" + m.help.View(m.keys)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

func quitFrame() core.InputFrame {
	f := core.NewInputFrame()
	f.Set(core.ActionQuit)
	return f
}

// Run starts the Bubble Tea program on the alternate screen and blocks
// until the player quits. The terminal is restored on every exit path.
func Run(game core.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
