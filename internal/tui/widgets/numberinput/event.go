package numberinput

import (
	"numinput/internal/config"
	"numinput/internal/numeric"
)

// Event is passed to the change, blur and enter callbacks.
type Event struct {
	Value  numeric.Value // canonical value after the commit
	Target config.Field  // configuration active when the event fired
}

// Float returns the committed number, or false for an empty field.
func (e Event) Float() (float64, bool) { return e.Value.Float() }

// PreventDefault exists for callers written against DOM-style events.
// A number input has no default action.
func (Event) PreventDefault() {}

// StopPropagation is a no-op; events are delivered to one callback only.
func (Event) StopPropagation() {}

// CopiedMsg reports the result of copying the value to the clipboard.
type CopiedMsg struct {
	Text string
	Err  error
}
