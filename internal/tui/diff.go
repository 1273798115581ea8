package tui

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
    diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    diffDelChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    diffAddChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint       = lipgloss.NewStyle().Faint(true)
)

// correction holds the char-level difference between what the user typed
// and what the field committed.
type correction struct {
    typed, committed string
    diffs            []dmp.Diff
}

func newCorrection(typed, committed string) correction {
    d := dmp.New()
    diffs := d.DiffMain(typed, committed, false)
    d.DiffCleanupSemantic(diffs)
    return correction{typed: typed, committed: committed, diffs: diffs}
}

// changed reports whether committing rewrote the text (rounding, padding,
// clamping or simplification).
func (c correction) changed() bool { return c.typed != c.committed }

// plain renders the correction without styles, e.g. "1.005 → 1.01".
func (c correction) plain() string {
    typed := c.typed
    if typed == "" {
        typed = "(empty)"
    }
    committed := c.committed
    if committed == "" {
        committed = "(empty)"
    }
    return typed + " → " + committed
}

// render shows the typed text on a "-" line and the committed text on a "+"
// line, underlining the characters that differ.
func (c correction) render(noColor bool) string {
    if !c.changed() {
        return faint.Render("  " + c.committed)
    }
    if noColor {
        return "- " + c.typed + "\n+ " + c.committed
    }
    var sb strings.Builder
    sb.WriteString(diffDelLine.Render("- "))
    for _, df := range c.diffs {
        switch df.Type {
        case dmp.DiffDelete:
            sb.WriteString(diffDelChar.Render(df.Text))
        case dmp.DiffEqual:
            sb.WriteString(diffDelLine.Render(df.Text))
        }
    }
    sb.WriteString("\n")
    sb.WriteString(diffAddLine.Render("+ "))
    for _, df := range c.diffs {
        switch df.Type {
        case dmp.DiffInsert:
            sb.WriteString(diffAddChar.Render(df.Text))
        case dmp.DiffEqual:
            sb.WriteString(diffAddLine.Render(df.Text))
        }
    }
    return sb.String()
}

// inserted returns the text the commit added, e.g. the padding zeros of
// "3" → "3.00".
func (c correction) inserted() string {
    var sb strings.Builder
    for _, df := range c.diffs {
        if df.Type == dmp.DiffInsert {
            sb.WriteString(df.Text)
        }
    }
    return sb.String()
}
