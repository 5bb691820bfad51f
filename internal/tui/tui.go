// Package tui provides a Bubble Tea terminal user interface for magnet-calculator.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/handiism/magnet-calculator/internal/config"
	"github.com/handiism/magnet-calculator/internal/magnet"
	"github.com/handiism/magnet-calculator/internal/model"
	"github.com/handiism/magnet-calculator/internal/shell"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateMenu State = iota
	StateInput
	StateResult
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	flows     []shell.Flow
	cursor    int
	textInput textinput.Model
	parse     shell.ParseFunc
	logger    *zap.Logger

	// Current calculation
	flow     shell.Flow
	values   []float64
	inputErr string
	result   model.Result

	width  int
	height int
}

// NewModel creates a new TUI model. A nil logger discards diagnostics.
func NewModel(settings *config.Settings, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "0.0"
	ti.CharLimit = 64
	ti.Width = 30

	parse := shell.ParseFloat
	if settings != nil && settings.StrictNumericInput {
		parse = shell.ParseFloatStrict
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		state:     StateMenu,
		flows:     shell.Flows(),
		textInput: ti,
		parse:     parse,
		logger:    logger,
	}
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Result returns the last calculation result.
func (m Model) Result() model.Result {
	return m.result
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateInput:
			return m.updateInput(msg)
		case StateResult:
			return m.updateResult(msg)
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.flows)-1 {
			m.cursor++
		}

	case "enter":
		return m.startFlow(m.flows[m.cursor])

	default:
		for i := range m.flows {
			if key == fmt.Sprint(i+1) {
				m.cursor = i
				return m.startFlow(m.flows[i])
			}
		}
	}

	return m, nil
}

func (m Model) startFlow(flow shell.Flow) (tea.Model, tea.Cmd) {
	m.state = StateInput
	m.flow = flow
	m.values = make([]float64, 0, len(flow.Fields))
	m.inputErr = ""
	m.textInput.SetValue("")
	return m, m.textInput.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.textInput.Blur()
		m.state = StateMenu
		return m, nil

	case "enter":
		v, err := m.parse(m.textInput.Value())
		if err != nil {
			m.logger.Debug("rejected input", zap.String("field", m.flow.Fields[len(m.values)].Label), zap.Error(err))
			m.inputErr = shell.InvalidNumber
			m.textInput.SetValue("")
			return m, nil
		}

		m.inputErr = ""
		m.values = append(m.values, v)
		m.textInput.SetValue("")

		if len(m.values) < len(m.flow.Fields) {
			return m, nil
		}

		m.result = magnet.Calculate(m.flow.Build(m.values))
		m.logger.Debug("calculated",
			zap.Stringer("geometry", m.flow.Geometry),
			zap.Float64s("inputs", m.values),
			zap.Float64("tesla", m.result.Value()),
			zap.Error(m.result.Err()))
		m.textInput.Blur()
		m.state = StateResult
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r", "enter":
		m.state = StateMenu
		m.values = nil
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🧲 Magnet Calculator"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("On-axis flux density of permanent magnets"))
	b.WriteString("\n\n")

	switch m.state {
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StateInput:
		b.WriteString(m.viewInput())
	case StateResult:
		b.WriteString(m.viewResult())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Choose a magnet:"))
	b.WriteString("\n\n")

	for i, f := range m.flows {
		line := fmt.Sprintf("%d. %s", i+1, f.MenuLabel())
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.flow.Heading()))
	b.WriteString("\n\n")

	for i, field := range m.flow.Fields {
		switch {
		case i < len(m.values):
			b.WriteString(successStyle.Render(fmt.Sprintf("  ✓ %s: %g", field.Label, m.values[i])))
		case i == len(m.values):
			b.WriteString(infoStyle.Render(fmt.Sprintf("  › %s: ", field.Label)))
			b.WriteString(m.textInput.View())
		default:
			b.WriteString(dimStyle.Render(fmt.Sprintf("    %s", field.Label)))
		}
		b.WriteString("\n")
	}

	if m.inputErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.inputErr))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewResult() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.flow.Heading()))
	b.WriteString("\n\n")

	style := successStyle
	if !m.result.IsOk() {
		style = errorStyle
	}
	b.WriteString(boxStyle.Render(style.Render(shell.ResultLine(m.result))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateMenu:
		return "↑/↓: move • 1-3/enter: select • q: quit"
	case StateInput:
		return "enter: confirm value • esc: back to menu"
	case StateResult:
		return "r: new calculation • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings, logger *zap.Logger) error {
	p := tea.NewProgram(NewModel(settings, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
