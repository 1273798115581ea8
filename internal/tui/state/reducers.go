package state

import (
    "errors"

    "numinput/internal/numeric"
)

// Seed builds the initial edit state from a configured value. A nil value
// yields an empty field.
func Seed(initial *float64, l numeric.Limits) (Edit, error) {
    if initial == nil {
        return Edit{}, nil
    }
    v, err := numeric.NormalizeFloat(*initial, l)
    if err != nil {
        return Edit{}, err
    }
    return Edit{Raw: v.Text, Value: v}, nil
}

// Propose applies a proposed next text if the acceptor allows it.
// A rejected proposal returns e unchanged and false.
func Propose(e Edit, text string) (Edit, bool) {
    if !numeric.Accept(text) {
        return e, false
    }
    e.Raw = text
    return e, true
}

// Commit simplifies the held text and normalizes it. On error e is returned
// unchanged so the caller keeps the last good value.
func Commit(e Edit, l numeric.Limits) (Edit, error) {
    raw := numeric.Simplify(e.Raw)
    if raw == "" {
        return Edit{}, nil
    }
    v, err := numeric.Normalize(raw, l)
    if err != nil {
        return e, err
    }
    return Edit{Raw: v.Text, Value: v}, nil
}

// Step moves the held value by units. A committed value on the bound in the
// direction of travel is blocked; uncommitted text is shifted and clamped
// instead, since the boundary flags do not describe it yet. Blocked or failed
// steps return e unchanged together with the error.
func Step(e Edit, l numeric.Limits, units int64) (Edit, error) {
    var (
        v   numeric.Value
        err error
    )
    if e.Dirty() {
        v, err = numeric.Shift(numeric.Simplify(e.Raw), l, units)
    } else if Blocked(e, units) {
        return e, numeric.ErrStepDisabled
    } else {
        v, err = numeric.Step(e.Value.Text, l, units)
    }
    if err != nil {
        return e, err
    }
    return Edit{Raw: v.Text, Value: v}, nil
}

// Blocked reports whether a step in the direction of units is disabled by
// the committed boundary flags.
func Blocked(e Edit, units int64) bool {
    return (units > 0 && e.Value.AtUpper) || (units < 0 && e.Value.AtLower)
}

// IsStepDisabled reports whether err came from a blocked step.
func IsStepDisabled(err error) bool { return errors.Is(err, numeric.ErrStepDisabled) }

// FocusNext moves focus forward, wrapping around.
func FocusNext(s UIState) UIState {
    if s.Count == 0 {
        return s
    }
    s.Focus = (s.Focus + 1) % s.Count
    return s
}

// FocusPrev moves focus backward, wrapping around.
func FocusPrev(s UIState) UIState {
    if s.Count == 0 {
        return s
    }
    s.Focus = (s.Focus - 1 + s.Count) % s.Count
    return s
}

// ToggleHelp flips between the short and the full key help.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// Resize updates width and clears a notice that no longer fits.
func Resize(s UIState, width int) UIState {
    s.Width = width
    if width > 0 && len([]rune(s.Notice)) > width {
        s.Notice = ""
    }
    return s
}

// SetNotice sets a brief status message.
func SetNotice(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}
