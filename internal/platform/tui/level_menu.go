package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/games/breakout"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#33FF99"))
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#33FF99"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

// LevelMenuModel lets users pick the level to play.
type LevelMenuModel struct {
	levels    []*breakout.Level
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *breakout.Level
	quitting  bool
}

// NewLevelMenuModel creates a level selection model over the built-in levels.
func NewLevelMenuModel(width, height int) LevelMenuModel {
	return LevelMenuModel{
		levels:    breakout.BuiltinLevels(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.levels[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list and a preview of the highlighted level.
func (m LevelMenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B O U N C E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select level:", m.width))
	b.WriteString("\n\n")

	for i, level := range m.levels {
		line := fmt.Sprintf("  %d. %s", i+1, level.Name)
		if i == m.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %d. %s", i+1, level.Name))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	preview := strings.TrimSuffix(m.levels[m.cursor].Preview(), "\n")
	for _, row := range strings.Split(preview, "\n") {
		b.WriteString(centerText(previewStyle.Render(row), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(footerStyle.Render("Enter: Select  |  Esc/Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen level, or nil if none was chosen.
func (m LevelMenuModel) Selected() *breakout.Level {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunLevelSelector runs the level selection and returns the chosen level.
// A nil level means the user quit.
func RunLevelSelector(cfg core.RuntimeConfig) (*breakout.Level, error) {
	model := NewLevelMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
