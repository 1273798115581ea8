package util

import (
    "numinput/internal/tui/state"
)

// ComputeTags calculates the status chips for a field from its edit state
// and its disabled/read-only configuration.
//
// The returned slice preserves a stable order:
//   Empty, At Min, At Max, Edited, Disabled, Read Only
//
// Rules:
// - Empty, At Min and At Max describe the committed value, not the raw text.
// - At Min and At Max may both be present when min == max.
// - Edited means the field holds uncommitted text.
func ComputeTags(e state.Edit, disabled, readOnly bool) []state.Tag {
    tags := make([]state.Tag, 0, 6)

    if e.Value.IsEmpty() {
        tags = append(tags, state.Tag{Kind: state.EMPTY})
    }
    if e.Value.AtLower {
        tags = append(tags, state.Tag{Kind: state.AT_MIN})
    }
    if e.Value.AtUpper {
        tags = append(tags, state.Tag{Kind: state.AT_MAX})
    }
    if e.Dirty() {
        tags = append(tags, state.Tag{Kind: state.EDITED})
    }
    if disabled {
        tags = append(tags, state.Tag{Kind: state.DISABLED})
    }
    if readOnly {
        tags = append(tags, state.Tag{Kind: state.READ_ONLY})
    }
    return tags
}

// HasTag reports whether kind is present in tags.
func HasTag(tags []state.Tag, kind state.TagKind) bool {
    for _, t := range tags {
        if t.Kind == kind {
            return true
        }
    }
    return false
}
