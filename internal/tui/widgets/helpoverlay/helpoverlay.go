package helpoverlay

import (
    "github.com/charmbracelet/bubbles/help"
    "github.com/charmbracelet/bubbles/key"

    "numinput/internal/tui/state"
)

type HelpOverlay struct {
    model help.Model
}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{model: help.New()} }

// View renders the short key help, or every binding grouped in columns when
// the help toggle is on.
func (h HelpOverlay) View(s state.UIState, keys help.KeyMap) string {
    m := h.model
    m.ShowAll = s.ShowHelp
    if s.Width > 0 {
        m.Width = s.Width
    }
    return m.View(keys)
}

// Merge combines the field bindings with the host bindings so both show up
// in a single help view.
func Merge(maps ...help.KeyMap) help.KeyMap { return merged(maps) }

type merged []help.KeyMap

func (ms merged) ShortHelp() []key.Binding {
    var out []key.Binding
    for _, m := range ms {
        out = append(out, m.ShortHelp()...)
    }
    return out
}

func (ms merged) FullHelp() [][]key.Binding {
    var out [][]key.Binding
    for _, m := range ms {
        out = append(out, m.FullHelp()...)
    }
    return out
}
