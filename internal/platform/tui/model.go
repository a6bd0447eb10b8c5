package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/auto-arcade/internal/core"
	"github.com/vovakirdan/auto-arcade/internal/registry"
	"github.com/vovakirdan/auto-arcade/internal/scores"
)

// commandCharLimit bounds the typed command line.
const commandCharLimit = 64

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	board      *scores.Board
	logger     *log.Logger
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	input      textinput.Model
	textRow    bool // game can take typed commands; the last row is reserved
	quitting   bool
	scoreSaved bool // Whether score has been saved for the current run
}

// NewModel creates a new Bubble Tea model for the given game.
// board and logger may be nil.
func NewModel(game registry.Game, board *scores.Board, logger *log.Logger, cfg core.RuntimeConfig) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = NopLogger()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = commandCharLimit
	ti.Placeholder = "send 0x201 01"

	_, textRow := game.(registry.TextEntry)

	m := &Model{
		game:       game,
		board:      board,
		logger:     logger.With("game", game.ID()),
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		input:      ti,
		textRow:    textRow,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.logger.Info("game launched", "width", cfg.ScreenW, "height", cfg.ScreenH, "fps", cfg.TickRate)

	return m
}

// gameHeight is the number of rows handed to the game.
func (m *Model) gameHeight() int {
	if m.textRow {
		return max(1, m.config.ScreenH-1)
	}
	return m.config.ScreenH
}

func (m *Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if registry.AcceptsText(m.game) {
		return m.handleTextKey(msg)
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		return m.quit()
	}
	return m, nil
}

// handleTextKey routes keys to the command line while the game is
// collecting typed input.
func (m *Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if action, handled := m.keyMapper.MapTextKey(msg); handled {
		if action == core.ActionQuit {
			return m.quit()
		}
		m.inputFrame.Set(action)
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		m.inputFrame.Submit(m.input.Value())
		m.input.Reset()
		return m, nil
	}

	if !m.input.Focused() {
		m.input.Focus()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("quit", "score", m.gameState.Score, "phase", m.gameState.Phase)
	return m, tea.Quit
}

// handleResize adapts the screen buffer. The game keeps its state and
// draws into whatever size it is given.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight())
	m.input.Width = max(0, msg.Width-len(m.input.Prompt)-1)
	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Save score on game over (once per run)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.board != nil && m.gameState.Score > 0 {
			m.board.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	if registry.AcceptsText(m.game) {
		if !m.input.Focused() {
			m.input.Focus()
		}
	} else if m.input.Focused() {
		m.input.Blur()
		m.input.Reset()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventStarted:
			m.scoreSaved = false
			m.logger.Info("run started", "mode", ev.Detail)
		case core.EventGameOver:
			m.logger.Info("game over", "score", m.gameState.Score, "reason", ev.Detail)
		case core.EventRejected:
			m.logger.Warn("input rejected", "reason", ev.Detail)
		case core.EventMission:
			m.logger.Info("mission completed", "mission", ev.Detail)
		case core.EventScored:
			m.logger.Debug("scored", "score", m.gameState.Score, "detail", ev.Detail)
		}
	}
}

// State returns the last observed game state.
func (m *Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.textRow {
		line := ""
		if registry.AcceptsText(m.game) {
			line = m.input.View()
		}
		out += "\n" + line
	}
	return out
}

// Run starts the Bubble Tea program for one game session.
func Run(game registry.Game, board *scores.Board, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, board, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
