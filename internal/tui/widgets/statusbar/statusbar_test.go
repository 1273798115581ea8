package statusbar

import (
    "strings"
    "testing"

    "numinput/internal/numeric"
    "numinput/internal/tui/state"
)

func TestView(t *testing.T) {
    s := state.UIState{Focus: 1, Count: 3, Notice: "copied 5.0"}
    out := NewStatusBar().View(s, Field{Name: "qty", Value: numeric.Value{Text: "5.0"}, Chips: "[Max]"})
    for _, w := range []string{"2/3", "qty: 5.0", "[Max]", "copied 5.0"} {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in %q", w, out)
        }
    }
    if out := NewStatusBar().View(state.UIState{}, Field{Name: "x"}); !strings.Contains(out, "0/0") || !strings.Contains(out, "x: (empty)") {
        t.Fatalf("unexpected empty-form status %q", out)
    }
}
