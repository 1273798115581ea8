package tui

import (
    "strings"
    "testing"
)

func TestCorrectionSnapshot(t *testing.T) {
    c := newCorrection("3", "3.00")
    if !c.changed() || c.inserted() != ".00" {
        t.Fatalf("expected padding insert, got %q", c.inserted())
    }
    out := c.render(true)
    if out != "- 3\n+ 3.00" {
        t.Fatalf("unexpected no-color render %q", out)
    }
    if c.plain() != "3 → 3.00" {
        t.Fatalf("unexpected plain %q", c.plain())
    }
}

func TestCorrectionUnchangedAndEmpty(t *testing.T) {
    c := newCorrection("5.0", "5.0")
    if c.changed() || !strings.Contains(c.render(true), "5.0") {
        t.Fatalf("unchanged correction should render the value only")
    }
    if got := newCorrection("-", "").plain(); got != "- → (empty)" {
        t.Fatalf("unexpected plain %q", got)
    }
}
