package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "numinput/internal/tui/state"
    "numinput/internal/tui/util"
)

// View renders field status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t, util.DefaultPalette()).Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.EMPTY:
        return "Empty"
    case state.AT_MIN:
        return "Min"
    case state.AT_MAX:
        return "Max"
    case state.EDITED:
        return "Edited"
    case state.DISABLED:
        return "Disabled"
    case state.READ_ONLY:
        return "Read only"
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag, p util.Palette) lipgloss.Style {
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.OnAccent)
    switch t.Kind {
    case state.AT_MIN, state.AT_MAX:
        return base.Background(p.Bound).Foreground(lipgloss.Color("#111111"))
    case state.EDITED:
        return base.Background(p.Edited)
    case state.DISABLED, state.READ_ONLY, state.EMPTY:
        return base.Background(p.Muted)
    default:
        return base
    }
}
