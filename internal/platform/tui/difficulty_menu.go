package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/auto-arcade/internal/config"
	"github.com/vovakirdan/auto-arcade/internal/core"
)

// difficultyChoice is one row of the difficulty picker.
type difficultyChoice struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyChoices = []difficultyChoice{
	{config.DifficultyEasy, "Easy    - ramps up from base speed"},
	{config.DifficultyNormal, "Normal  - starts 30% into the ramp"},
	{config.DifficultyHard, "Hard    - starts 70% into the ramp"},
	{config.DifficultyFixed, "Fixed   - speed never changes"},
}

// DifficultyModel lets users choose a difficulty preset before a run.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a picker with the cursor on the given preset.
func NewDifficultyModel(title string, current config.DifficultyPreset, width, height int) DifficultyModel {
	cursor := 1
	for i, c := range difficultyChoices {
		if c.preset == current {
			cursor = i
		}
	}
	return DifficultyModel{
		title:     title,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyChoices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = difficultyChoices[m.cursor].preset
		return m, tea.Quit
	}
	return m, nil
}

// View renders the picker.
func (m DifficultyModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, c := range difficultyChoices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, c.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset and whether a choice was made.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	return m.selection, !m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// DifficultyResult holds the outcome of the difficulty picker.
type DifficultyResult struct {
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
	Back   bool // return to the game menu
	Quit   bool
}

// RunDifficultySelector shows the picker for a game and returns the choice.
func RunDifficultySelector(title string, current config.DifficultyPreset, cfg core.RuntimeConfig) (DifficultyResult, error) {
	p := tea.NewProgram(
		NewDifficultyModel(title, current, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return DifficultyResult{Config: cfg}, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return DifficultyResult{Config: cfg, Quit: true}, nil
	}

	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	res := DifficultyResult{Config: cfg, Back: m.WantsBack(), Quit: m.IsQuitting()}
	if preset, ok := m.Selected(); ok {
		res.Preset = preset
	}
	return res, nil
}
