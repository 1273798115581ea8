package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors shared by the number input and its host form.
type Palette struct {
    Accent   lipgloss.Color // focused field, enabled affordances
    Bound    lipgloss.Color // value sits on min or max
    Edited   lipgloss.Color // uncommitted text
    Danger   lipgloss.Color // rejected keystroke, config errors
    Muted    lipgloss.Color // disabled affordances, placeholders
    OnAccent lipgloss.Color // text drawn on colored chips
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Accent:   lipgloss.Color("#3D6DFF"),
        Bound:    lipgloss.Color("#F0AD4E"),
        Edited:   lipgloss.Color("#2AA876"),
        Danger:   lipgloss.Color("#D9534F"),
        Muted:    lipgloss.Color("#6C757D"),
        OnAccent: lipgloss.Color("#FFFFFF"),
    }
}

// Styles are the rendered styles of one number input.
type Styles struct {
    Frame         lipgloss.Style
    FocusedFrame  lipgloss.Style
    Affordance    lipgloss.Style
    AffordanceOff lipgloss.Style
    DisabledText  lipgloss.Style
}

// NewStyles builds input styles from p. With noColor only borders and the
// faint attribute are used.
func NewStyles(p Palette, noColor bool) Styles {
    frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
    if noColor {
        return Styles{
            Frame:         frame,
            FocusedFrame:  frame.Border(lipgloss.ThickBorder()),
            Affordance:    lipgloss.NewStyle().Bold(true),
            AffordanceOff: lipgloss.NewStyle().Faint(true),
            DisabledText:  lipgloss.NewStyle().Faint(true),
        }
    }
    return Styles{
        Frame:         frame.BorderForeground(p.Muted),
        FocusedFrame:  frame.BorderForeground(p.Accent),
        Affordance:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
        AffordanceOff: lipgloss.NewStyle().Faint(true).Foreground(p.Muted),
        DisabledText:  lipgloss.NewStyle().Foreground(p.Muted),
    }
}
