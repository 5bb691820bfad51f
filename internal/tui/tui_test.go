package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/handiism/magnet-calculator/internal/config"
	"github.com/handiism/magnet-calculator/internal/shell"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeValue(t *testing.T, m Model, value string) Model {
	t.Helper()
	for _, r := range value {
		m = send(t, m, runes(string(r)))
	}
	return send(t, m, enter)
}

func TestModel_CylinderCalculation(t *testing.T) {
	m := NewModel(config.DefaultSettings(), nil)

	m = send(t, m, runes("3"))
	if m.State() != StateInput {
		t.Fatalf("state = %v, want StateInput", m.State())
	}

	for _, v := range []string{"1.2", "5", "10"} {
		m = typeValue(t, m, v)
	}

	if m.State() != StateResult {
		t.Fatalf("state = %v, want StateResult", m.State())
	}
	if got := shell.ResultLine(m.Result()); got != "Calculated Magnetic Field: 0.424264 T" {
		t.Errorf("result = %q", got)
	}
	if !strings.Contains(m.View(), "0.424264") {
		t.Error("View() should show the result")
	}

	m = send(t, m, runes("r"))
	if m.State() != StateMenu {
		t.Errorf("state after r = %v, want StateMenu", m.State())
	}
}

func TestModel_MenuNavigation(t *testing.T) {
	m := NewModel(nil, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, enter)
	if m.State() != StateInput {
		t.Fatalf("state = %v, want StateInput", m.State())
	}
	if !strings.Contains(m.View(), "--- Ring Magnet Calculator ---") {
		t.Error("enter on second entry should open the ring flow")
	}
	if m.textInput.Value() != "" {
		t.Errorf("menu key leaked into input: %q", m.textInput.Value())
	}
}

func TestModel_InvalidInputStaysOnField(t *testing.T) {
	m := NewModel(config.DefaultSettings(), nil)
	m = send(t, m, runes("3"))

	m = typeValue(t, m, "abc")
	if len(m.values) != 0 {
		t.Fatalf("values = %v, want none", m.values)
	}
	if !strings.Contains(m.View(), shell.InvalidNumber) {
		t.Error("View() should show the invalid input message")
	}
	if m.textInput.Value() != "" {
		t.Errorf("rejected text should be cleared, got %q", m.textInput.Value())
	}

	m = typeValue(t, m, "1.2")
	if len(m.values) != 1 || m.inputErr != "" {
		t.Errorf("values = %v, inputErr = %q", m.values, m.inputErr)
	}
}

func TestModel_StrictSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.StrictNumericInput = true

	m := NewModel(settings, nil)
	m = send(t, m, runes("3"))
	m = typeValue(t, m, "12abc")
	if len(m.values) != 0 {
		t.Errorf("strict model accepted %v", m.values)
	}
}

func TestModel_DivisionByZero(t *testing.T) {
	m := NewModel(nil, nil)
	m = send(t, m, runes("3"))
	for _, v := range []string{"1", "0", "0"} {
		m = typeValue(t, m, v)
	}

	if m.Result().IsOk() {
		t.Fatal("expected a failed result")
	}
	if !strings.Contains(m.View(), "Error: Division by zero in cylinder_magnet calculation.") {
		t.Error("View() should show the error")
	}
}

func TestModel_EscReturnsToMenu(t *testing.T) {
	m := NewModel(nil, nil)
	m = send(t, m, runes("1"), tea.KeyMsg{Type: tea.KeyEsc})

	if m.State() != StateMenu {
		t.Errorf("state = %v, want StateMenu", m.State())
	}
}

func TestModel_LogsCalculations(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := NewModel(nil, zap.New(core))

	m = send(t, m, runes("2"))
	for _, v := range []string{"x", "1.2", "5", "20", "10"} {
		m = typeValue(t, m, v)
	}

	if n := logs.FilterMessage("rejected input").Len(); n != 1 {
		t.Errorf("logged %d rejected inputs, want 1", n)
	}
	calculated := logs.FilterMessage("calculated").All()
	if len(calculated) != 1 {
		t.Fatalf("logged %d calculations, want 1", len(calculated))
	}
	if got := calculated[0].ContextMap()["geometry"]; got != "Ring" {
		t.Errorf("geometry field = %v, want Ring", got)
	}
}
