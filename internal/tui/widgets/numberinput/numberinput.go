// Package numberinput is a Bubble Tea text field that only takes numbers.
// It rounds committed values to a fixed number of decimal places, clamps
// them to an optional range and offers stepper or counter controls.
package numberinput

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"numinput/internal/config"
	"numinput/internal/numeric"
	"numinput/internal/tui/state"
	"numinput/internal/tui/util"
)

// Model is a single number input. It owns its edit state; copies of a Model
// are independent fields.
type Model struct {
	field  config.Field
	limits numeric.Limits
	units  int64 // step size in units of 10^-decimal
	edit   state.Edit

	input  textinput.Model
	KeyMap KeyMap
	Styles util.Styles

	onChange     func(Event)
	onBlur       func(Event)
	onPressEnter func(Event)
	logf         func(format string, args ...any)
	copyText     func(string) error
}

// Option configures a Model at construction.
type Option func(*Model)

// OnChange registers the callback fired after every commit, step and
// relevant reconfiguration.
func OnChange(fn func(Event)) Option { return func(m *Model) { m.onChange = fn } }

// OnBlur registers the callback fired after the commit caused by Blur.
func OnBlur(fn func(Event)) Option { return func(m *Model) { m.onBlur = fn } }

// OnPressEnter registers the callback fired after the commit caused by enter.
func OnPressEnter(fn func(Event)) Option { return func(m *Model) { m.onPressEnter = fn } }

// WithLogger routes diagnostics (rejected edits, failed commits, blocked
// steps) to logf.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(m *Model) {
		if logf != nil {
			m.logf = logf
		}
	}
}

// WithStyles overrides the default styles.
func WithStyles(s util.Styles) Option { return func(m *Model) { m.Styles = s } }

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.copyText = write }
}

// New validates f and builds a field holding its normalized initial value.
// Construction does not fire OnChange.
func New(f config.Field, opts ...Option) (Model, error) {
	if err := f.Validate(); err != nil {
		return Model{}, fmt.Errorf("number input: %w", err)
	}
	lim, units, edit, err := derive(f)
	if err != nil {
		return Model{}, fmt.Errorf("number input: %w", err)
	}

	ti := textinput.New()
	ti.Prompt = ""
	m := Model{
		field:    f.Clone(),
		limits:   lim,
		units:    units,
		edit:     edit,
		input:    ti,
		KeyMap:   DefaultKeyMap(),
		Styles:   util.NewStyles(util.DefaultPalette(), util.NoColor(false)),
		logf:     func(string, ...any) {},
		copyText: clipboard.WriteAll,
	}
	m.applyPresentation()
	m.input.SetValue(edit.Raw)
	m.input.CursorEnd()
	for _, o := range opts {
		o(&m)
	}
	return m, nil
}

func derive(f config.Field) (numeric.Limits, int64, state.Edit, error) {
	lim, err := f.Limits()
	if err != nil {
		return numeric.Limits{}, 0, state.Edit{}, err
	}
	units, err := numeric.StepUnits(f.Step, f.Decimal)
	if err != nil {
		return numeric.Limits{}, 0, state.Edit{}, err
	}
	edit, err := state.Seed(f.Value, lim)
	if err != nil {
		return numeric.Limits{}, 0, state.Edit{}, fmt.Errorf("value: %w", err)
	}
	return lim, units, edit, nil
}

func (m *Model) applyPresentation() {
	m.input.Placeholder = m.field.Placeholder
	if m.field.Width > 0 {
		m.input.Width = m.field.Width
	}
}

// Reconfigure applies a new configuration. A conflicting configuration is
// rejected and leaves the model untouched. When decimal, min, max, value or
// disabled changed, the value is recomputed from the configured value and
// OnChange fires; other changes apply silently.
func (m *Model) Reconfigure(f config.Field) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("number input: %w", err)
	}
	lim, units, edit, err := derive(f)
	if err != nil {
		return fmt.Errorf("number input: %w", err)
	}
	prev := m.field
	m.field, m.limits, m.units = f.Clone(), lim, units
	m.applyPresentation()
	if !valueAffecting(prev, f) {
		return nil
	}
	m.setEdit(edit)
	m.logf("number input: reconfigured, value %s", edit.Value)
	m.emit(m.onChange)
	return nil
}

func valueAffecting(a, b config.Field) bool {
	return a.Decimal != b.Decimal ||
		a.Disabled != b.Disabled ||
		!sameFloat(a.Value, b.Value) ||
		!sameFloat(a.Min, b.Min) ||
		!sameFloat(a.Max, b.Max)
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses while the field is focused. Every change the
// text input proposes is checked by the acceptor and reverted if rejected.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.KeyMap.Increment):
			_ = m.Increment()
			return m, nil
		case key.Matches(k, m.KeyMap.Decrement):
			_ = m.Decrement()
			return m, nil
		case key.Matches(k, m.KeyMap.Commit):
			m.Enter()
			return m, nil
		case key.Matches(k, m.KeyMap.Copy):
			return m, m.copyCmd()
		}
	}

	prev, pos := m.input.Value(), m.input.Position()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	next := m.input.Value()
	if next == prev {
		return m, cmd
	}
	if !m.editable() {
		m.revert(prev, pos)
		return m, cmd
	}
	edit, ok := state.Propose(m.edit, next)
	if !ok {
		m.logf("number input: rejected %q", next)
		m.revert(prev, pos)
		return m, cmd
	}
	m.edit = edit
	return m, cmd
}

func (m *Model) revert(text string, pos int) {
	m.input.SetValue(text)
	m.input.SetCursor(pos)
}

// editable reports whether direct text edits are allowed. Disabled fields
// reject them just like read-only ones.
func (m Model) editable() bool { return !m.field.Disabled && !m.field.ReadOnly }

// Focus focuses the field.
func (m *Model) Focus() tea.Cmd { return m.input.Focus() }

// Focused reports whether the field has focus.
func (m Model) Focused() bool { return m.input.Focused() }

// Blur removes focus, commits the held text and fires OnChange then OnBlur.
func (m *Model) Blur() numeric.Value {
	m.input.Blur()
	m.commit()
	m.emit(m.onBlur)
	return m.edit.Value
}

// Enter commits the held text and fires OnChange then OnPressEnter.
func (m *Model) Enter() numeric.Value {
	m.commit()
	m.emit(m.onPressEnter)
	return m.edit.Value
}

func (m *Model) commit() {
	edit, err := state.Commit(m.edit, m.limits)
	if err != nil {
		m.logf("number input: commit %q: %v", m.edit.Raw, err)
		edit = state.Edit{Raw: m.edit.Value.Text, Value: m.edit.Value}
	}
	m.setEdit(edit)
	m.emit(m.onChange)
}

// Increment steps the value up. It returns an error wrapping
// numeric.ErrStepDisabled when the field is disabled, read-only or already
// at max.
func (m *Model) Increment() error { return m.step(m.units) }

// Decrement steps the value down. See Increment.
func (m *Model) Decrement() error { return m.step(-m.units) }

func (m *Model) step(units int64) error {
	if m.field.Disabled || m.field.ReadOnly {
		m.logf("number input: step %+d ignored, field is disabled or read-only", units)
		return fmt.Errorf("number input: %w", numeric.ErrStepDisabled)
	}
	edit, err := state.Step(m.edit, m.limits, units)
	if state.IsStepDisabled(err) {
		m.logf("number input: step %+d blocked at %s", units, m.edit.Value)
		return fmt.Errorf("number input: %w", err)
	}
	if err != nil {
		m.logf("number input: step %+d from %q: %v", units, m.edit.Raw, err)
		return fmt.Errorf("number input: %w", err)
	}
	m.setEdit(edit)
	m.emit(m.onChange)
	return nil
}

// stepAllowed checks configuration and the committed boundary flags. While
// the field holds uncommitted text the flags are stale and any step is
// allowed; the result is clamped.
func (m Model) stepAllowed(units int64) bool {
	if m.field.Disabled || m.field.ReadOnly {
		return false
	}
	return m.edit.Dirty() || !state.Blocked(m.edit, units)
}

// IncrementDisabled reports whether the increment affordance is disabled.
func (m Model) IncrementDisabled() bool { return !m.stepAllowed(1) }

// DecrementDisabled reports whether the decrement affordance is disabled.
func (m Model) DecrementDisabled() bool { return !m.stepAllowed(-1) }

func (m *Model) setEdit(e state.Edit) {
	m.edit = e
	m.input.SetValue(e.Raw)
	m.input.CursorEnd()
}

func (m Model) emit(fn func(Event)) {
	if fn == nil {
		return
	}
	fn(Event{Value: m.edit.Value, Target: m.field.Clone()})
}

func (m Model) copyCmd() tea.Cmd {
	text, write := m.edit.Value.Text, m.copyText
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: write(text)}
	}
}

// Value returns the last committed canonical value.
func (m Model) Value() numeric.Value { return m.edit.Value }

// Raw returns the text currently in the field.
func (m Model) Raw() string { return m.edit.Raw }

// Edit returns the full edit state.
func (m Model) Edit() state.Edit { return m.edit }

// Field returns the active configuration.
func (m Model) Field() config.Field { return m.field.Clone() }
