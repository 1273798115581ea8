package state

// TagKind enumerates the status chips shown next to a field.
type TagKind int

const (
    // Stable ordering for display: Empty, At Min, At Max, Edited, Disabled, Read Only
    EMPTY TagKind = iota
    AT_MIN
    AT_MAX
    EDITED
    DISABLED
    READ_ONLY
)

// Tag represents a single status chip.
type Tag struct {
    Kind TagKind
}
