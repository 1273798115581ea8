package state

import "numinput/internal/numeric"

// Edit holds the editing state of one number field.
type Edit struct {
    Raw   string        // text in the field, possibly incomplete ("-", "1.", ".5")
    Value numeric.Value // last committed canonical value
}

// Dirty reports whether the field holds text that has not been committed.
func (e Edit) Dirty() bool { return e.Raw != e.Value.Text }

// UIState holds cross-widget UI state of the form host: focus, help and
// status notices.
type UIState struct {
    Focus    int
    Count    int // number of fields
    Width    int
    ShowHelp bool
    NoColor  bool

    // Notices and ephemeral messages
    Notice string
}
