package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"numinput/internal/config"
	"numinput/internal/numeric"
	"numinput/internal/tui/widgets/numberinput"
)

func testConfig() *config.Config {
	return &config.Config{Fields: map[string]config.Field{
		"price": {Decimal: 2, Min: config.Float(0), ShowStepper: true},
		"qty":   {Value: config.Float(3), Max: config.Float(5), ShowCounter: true},
	}}
}

func mustModel(t *testing.T, c *config.Config, opts Options) model {
	t.Helper()
	m, err := newModel(c, Options{NoColor: true, Reload: opts.Reload, Logf: opts.Logf})
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	return m
}

func press(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestNewModelRejectsConflict(t *testing.T) {
	c := &config.Config{Fields: map[string]config.Field{"x": {ShowStepper: true, ShowCounter: true}}}
	_, err := newModel(c, Options{})
	if !errors.Is(err, config.ErrConfigurationConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if _, err := newModel(&config.Config{}, Options{}); err == nil {
		t.Fatalf("expected error for empty config")
	}
}

func TestTabCommitsAndLogsCorrection(t *testing.T) {
	m := mustModel(t, testConfig(), Options{})
	if m.names[0] != "price" || !m.fields[0].Focused() {
		t.Fatalf("expected price focused first")
	}
	m = press(m, runes("1.005"), tea.KeyMsg{Type: tea.KeyTab})
	if m.ui.Focus != 1 || !m.fields[1].Focused() || m.fields[0].Focused() {
		t.Fatalf("focus did not move to qty")
	}
	if got := m.values()["price"]; got.Text != "1.01" {
		t.Fatalf("expected 1.01, got %+v", got)
	}
	var change *entry
	for i := range m.log.entries {
		if m.log.entries[i].kind == "change" && m.log.entries[i].field == "price" {
			change = &m.log.entries[i]
		}
	}
	if change == nil || change.fix.plain() != "1.005 → 1.01" {
		t.Fatalf("expected a correction entry, got %+v", m.log.entries)
	}
	last := m.log.entries[len(m.log.entries)-1]
	if last.kind != "blur" || last.field != "price" {
		t.Fatalf("expected blur last, got %+v", last)
	}
	if !strings.Contains(m.View(), "1.005 → 1.01") {
		t.Fatalf("view should show the correction:\n%s", m.View())
	}
}

func TestFocusWrapsAndStepsFocusedField(t *testing.T) {
	m := mustModel(t, testConfig(), Options{})
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ui.Focus != 1 {
		t.Fatalf("shift+tab should wrap to the last field, got %d", m.ui.Focus)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	want := numeric.Value{Text: "5", AtUpper: true}
	if got := m.values()["qty"]; got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if !strings.Contains(m.View(), "[Max]") {
		t.Fatalf("expected Max chip in view:\n%s", m.View())
	}
}

func TestDoneAndCancel(t *testing.T) {
	m := mustModel(t, testConfig(), Options{})
	m = press(m, runes("7"))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	if cmd == nil || m.cancelled {
		t.Fatalf("esc should quit without cancelling")
	}
	if got := m.values()["price"]; got.Text != "7.00" {
		t.Fatalf("esc should commit the focused field, got %+v", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(model).cancelled {
		t.Fatalf("ctrl+c should cancel")
	}
}

func TestReload(t *testing.T) {
	var logged []string
	reloaded := testConfig()
	q := reloaded.Fields["qty"]
	q.Max = config.Float(2)
	reloaded.Fields["qty"] = q
	p := reloaded.Fields["price"]
	p.ShowCounter = true
	reloaded.Fields["price"] = p

	m := mustModel(t, testConfig(), Options{
		Reload: func() (*config.Config, error) { return reloaded, nil },
		Logf:   func(format string, args ...any) { logged = append(logged, format) },
	})
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := m.values()["qty"]; got.Text != "2" || !got.AtUpper {
		t.Fatalf("expected qty clamped to 2, got %+v", got)
	}
	if !m.fields[0].Field().ShowStepper || m.fields[0].Field().ShowCounter {
		t.Fatalf("conflicting reload must keep the old configuration")
	}
	if !strings.Contains(m.ui.Notice, "1 field(s) rejected") || len(logged) == 0 {
		t.Fatalf("unexpected notice %q, logged %v", m.ui.Notice, logged)
	}

	m = mustModel(t, testConfig(), Options{
		Reload: func() (*config.Config, error) { return nil, errors.New("boom") },
	})
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.ui.Notice != "reload failed" {
		t.Fatalf("unexpected notice %q", m.ui.Notice)
	}
}

func TestHelpToggleAndResize(t *testing.T) {
	m := mustModel(t, testConfig(), Options{})
	short := m.View()
	m = press(m, runes("?"), tea.WindowSizeMsg{Width: 120, Height: 40})
	if !m.ui.ShowHelp || m.ui.Width != 120 {
		t.Fatalf("unexpected ui state %+v", m.ui)
	}
	if m.fields[0].Raw() != "" {
		t.Fatalf("? must not reach the field")
	}
	if full := m.View(); !strings.Contains(full, "reload config") || strings.Contains(short, "reload config") {
		t.Fatalf("full help should add the reload binding")
	}
}

func TestCopiedNotice(t *testing.T) {
	m := mustModel(t, testConfig(), Options{})
	m = press(m, numberinput.CopiedMsg{Text: "5"})
	if m.ui.Notice != "copied 5" {
		t.Fatalf("unexpected notice %q", m.ui.Notice)
	}
}
