package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"numinput/internal/config"
	"numinput/internal/numeric"
	"numinput/internal/tui/state"
	"numinput/internal/tui/util"
	"numinput/internal/tui/widgets/helpoverlay"
	"numinput/internal/tui/widgets/numberinput"
	"numinput/internal/tui/widgets/statusbar"
	"numinput/internal/tui/widgets/tagchips"
)

// ErrCancelled is returned by Run when the user quits with ctrl+c.
var ErrCancelled = errors.New("cancelled")

// Options configures the form.
type Options struct {
	// Reload re-reads the configuration on ctrl+r. Nil disables reloading.
	Reload  func() (*config.Config, error)
	Logf    func(format string, args ...any)
	NoColor bool
}

// Run shows one number input per configured field and returns the committed
// values once the user leaves with esc. Fields are visited in name order.
func Run(c *config.Config, opts Options) (map[string]numeric.Value, error) {
	m, err := newModel(c, opts)
	if err != nil {
		return nil, err
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}
	fm := final.(model)
	if fm.cancelled {
		return nil, ErrCancelled
	}
	return fm.values(), nil
}

// ===== Model =====

const maxLog = 6

type hostKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Reload key.Binding
	Help   key.Binding
	Done   key.Binding
	Cancel key.Binding
}

func defaultHostKeys() hostKeys {
	return hostKeys{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Reload: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload config")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Done:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		Cancel: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
	}
}

func (k hostKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Help, k.Done}
}

func (k hostKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Reload, k.Help},
		{k.Done, k.Cancel},
	}
}

// entry is one line of the event log.
type entry struct {
	field string
	kind  string // change, blur, enter
	value numeric.Value
	fix   correction
}

// eventLog is shared by the field callbacks and every copy of the model.
type eventLog struct {
	typed   string // field text just before the message that fired the event
	entries []entry
}

func (l *eventLog) record(field, kind string) func(numberinput.Event) {
	return func(e numberinput.Event) {
		en := entry{field: field, kind: kind, value: e.Value}
		if kind == "change" {
			en.fix = newCorrection(l.typed, e.Value.Text)
			l.typed = e.Value.Text
		}
		l.entries = append(l.entries, en)
		if len(l.entries) > maxLog {
			l.entries = l.entries[len(l.entries)-maxLog:]
		}
	}
}

type model struct {
	names  []string
	fields []numberinput.Model

	ui     state.UIState
	keys   hostKeys
	status statusbar.StatusBar
	help   helpoverlay.HelpOverlay
	log    *eventLog

	reload func() (*config.Config, error)
	logf   func(format string, args ...any)

	cancelled bool
}

func newModel(c *config.Config, opts Options) (model, error) {
	if c == nil || len(c.Fields) == 0 {
		return model{}, fmt.Errorf("no fields to edit")
	}
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	noColor := util.NoColor(opts.NoColor)
	styles := util.NewStyles(util.DefaultPalette(), noColor)

	m := model{
		names:  config.FieldNames(c),
		keys:   defaultHostKeys(),
		status: statusbar.NewStatusBar(),
		help:   helpoverlay.NewHelpOverlay(),
		log:    &eventLog{},
		reload: opts.Reload,
		logf:   logf,
	}
	for _, name := range m.names {
		f, err := numberinput.New(c.Fields[name],
			numberinput.OnChange(m.log.record(name, "change")),
			numberinput.OnBlur(m.log.record(name, "blur")),
			numberinput.OnPressEnter(m.log.record(name, "enter")),
			numberinput.WithLogger(prefixed(logf, name)),
			numberinput.WithStyles(styles),
		)
		if err != nil {
			return model{}, fmt.Errorf("field %q: %w", name, err)
		}
		m.fields = append(m.fields, f)
	}
	m.ui = state.UIState{Count: len(m.fields), NoColor: noColor}
	m.fields[0].Focus()
	m.log.typed = m.fields[0].Raw()
	return m, nil
}

func prefixed(logf func(string, ...any), name string) func(string, ...any) {
	return func(format string, args ...any) {
		logf("[%s] "+format, append([]any{name}, args...)...)
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

// Update routes host keys and forwards everything else to the focused field.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width)
		return m, nil

	case numberinput.CopiedMsg:
		if msg.Err != nil {
			m.logf("clipboard: %v", msg.Err)
			m.ui = state.SetNotice(m.ui, "copy failed")
		} else {
			m.ui = state.SetNotice(m.ui, "copied "+msg.Text)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Done):
			m.blurFocused()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(state.FocusNext)
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(state.FocusPrev)
		case key.Matches(msg, m.keys.Help):
			m.ui = state.ToggleHelp(m.ui)
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.reloadConfig()
			return m, nil
		}
	}

	i := m.ui.Focus
	m.log.typed = m.fields[i].Raw()
	var cmd tea.Cmd
	m.fields[i], cmd = m.fields[i].Update(msg)
	return m, cmd
}

func (m *model) blurFocused() {
	i := m.ui.Focus
	m.log.typed = m.fields[i].Raw()
	m.fields[i].Blur()
}

func (m *model) moveFocus(move func(state.UIState) state.UIState) tea.Cmd {
	m.blurFocused()
	m.ui = move(m.ui)
	m.ui = state.SetNotice(m.ui, "")
	return m.fields[m.ui.Focus].Focus()
}

// reloadConfig re-reads the configuration and reconfigures every field that
// is still present. Added or removed fields need a restart.
func (m *model) reloadConfig() {
	if m.reload == nil {
		m.ui = state.SetNotice(m.ui, "reload not available")
		return
	}
	c, err := m.reload()
	if err != nil {
		m.logf("reload: %v", err)
		m.ui = state.SetNotice(m.ui, "reload failed")
		return
	}
	failed := 0
	for i, name := range m.names {
		f, ok := c.Fields[name]
		if !ok {
			m.logf("reload: field %q removed, keeping current configuration", name)
			continue
		}
		m.log.typed = m.fields[i].Raw()
		if err := m.fields[i].Reconfigure(f); err != nil {
			m.logf("reload: field %q: %v", name, err)
			failed++
		}
	}
	if failed > 0 {
		m.ui = state.SetNotice(m.ui, fmt.Sprintf("reloaded, %d field(s) rejected", failed))
		return
	}
	m.ui = state.SetNotice(m.ui, "reloaded")
}

func (m model) values() map[string]numeric.Value {
	out := make(map[string]numeric.Value, len(m.fields))
	for i, name := range m.names {
		out[name] = m.fields[i].Value()
	}
	return out
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	labelStyle = lipgloss.NewStyle().Width(12)
)

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Number fields") + "\n\n")
	for i, name := range m.names {
		f := m.fields[i]
		label := labelStyle.Render("  " + name)
		if i == m.ui.Focus {
			label = labelStyle.Render(selStyle.Render("> " + name))
		}
		chips := tagchips.View(util.ComputeTags(f.Edit(), f.Field().Disabled, f.Field().ReadOnly), m.ui.NoColor)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, label, f.View(), " ", chips) + "\n")
	}

	if len(m.log.entries) > 0 {
		b.WriteString("\n" + titleStyle.Render("Events") + "\n")
		for _, e := range m.log.entries {
			b.WriteString(m.viewEntry(e) + "\n")
		}
	}

	f := m.fields[m.ui.Focus]
	b.WriteString("\n" + m.status.View(m.ui, statusbar.Field{
		Name:  m.names[m.ui.Focus],
		Value: f.Value(),
		Chips: tagchips.View(util.ComputeTags(f.Edit(), f.Field().Disabled, f.Field().ReadOnly), true),
	}) + "\n")
	b.WriteString(m.help.View(m.ui, helpoverlay.Merge(f.KeyMap, m.keys)) + "\n")
	return b.String()
}

func (m model) viewEntry(e entry) string {
	head := faint.Render(fmt.Sprintf("%-6s %s", e.kind, e.field))
	if e.kind != "change" || !e.fix.changed() {
		return head + " " + e.value.String()
	}
	return head + " " + e.fix.plain() + "\n" + indent(e.fix.render(m.ui.NoColor), "    ")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
