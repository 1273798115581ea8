package statusbar

import (
    "fmt"
    "strings"

    "numinput/internal/numeric"
    "numinput/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// Field is what the status bar shows about the focused field.
type Field struct {
    Name  string
    Value numeric.Value
    Chips string // rendered tag chips
}

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState, f Field) string {
    pos := fmt.Sprintf("%d/%d", s.Focus+1, s.Count)
    if s.Count == 0 {
        pos = "0/0"
    }
    parts := []string{pos}
    if f.Name != "" {
        parts = append(parts, f.Name+": "+f.Value.String())
    }
    if f.Chips != "" {
        parts = append(parts, f.Chips)
    }
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
