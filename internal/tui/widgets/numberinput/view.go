package numberinput

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	glyphUp    = "▲"
	glyphDown  = "▼"
	glyphMinus = "−"
	glyphPlus  = "+"
)

// View renders the framed field with its stepping affordance. The stepper
// stacks ▲ over ▼ on the right; the counter puts − and + on either side.
func (m Model) View() string {
	frame := m.Styles.Frame
	if m.input.Focused() {
		frame = m.Styles.FocusedFrame
	}
	body := m.input.View()
	if !m.editable() {
		body = m.Styles.DisabledText.Render(m.input.Value())
		if m.input.Value() == "" {
			body = m.Styles.DisabledText.Render(m.input.Placeholder)
		}
	}
	box := frame.Render(body)

	switch {
	case m.field.ShowStepper:
		stepper := lipgloss.JoinVertical(lipgloss.Center,
			m.affordance(glyphUp, m.IncrementDisabled()),
			m.affordance(glyphDown, m.DecrementDisabled()),
		)
		return lipgloss.JoinHorizontal(lipgloss.Center, box, " ", stepper)
	case m.field.ShowCounter:
		return lipgloss.JoinHorizontal(lipgloss.Center,
			m.affordance(glyphMinus, m.DecrementDisabled()), " ",
			box,
			" ", m.affordance(glyphPlus, m.IncrementDisabled()),
		)
	}
	return box
}

func (m Model) affordance(glyph string, off bool) string {
	if off {
		return m.Styles.AffordanceOff.Render(glyph)
	}
	return m.Styles.Affordance.Render(glyph)
}
