package util

import (
    "testing"

    "numinput/internal/numeric"
    "numinput/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
    for i, t := range tags {
        if t.Kind == k {
            return i, true
        }
    }
    return -1, false
}

func TestEmptyFieldTags(t *testing.T) {
    tags := ComputeTags(state.Edit{}, false, false)
    if len(tags) != 1 || tags[0].Kind != state.EMPTY {
        t.Fatalf("expected only EMPTY, got %v", tags)
    }
}

func TestBoundTags(t *testing.T) {
    e := state.Edit{Raw: "3", Value: numeric.Value{Text: "3", AtLower: true, AtUpper: true}}
    tags := ComputeTags(e, false, false)
    if _, ok := findKind(tags, state.AT_MIN); !ok {
        t.Fatalf("expected AT_MIN tag present")
    }
    if _, ok := findKind(tags, state.AT_MAX); !ok {
        t.Fatalf("expected AT_MAX tag present")
    }
    if HasTag(tags, state.EDITED) || HasTag(tags, state.EMPTY) {
        t.Fatalf("unexpected tags: %v", tags)
    }
}

func TestEditedTracksUncommittedText(t *testing.T) {
    e := state.Edit{Raw: "4.", Value: numeric.Value{Text: "4"}}
    if !HasTag(ComputeTags(e, false, false), state.EDITED) {
        t.Fatalf("expected EDITED for uncommitted text")
    }
}

func TestStableOrder(t *testing.T) {
    e := state.Edit{Raw: "-", Value: numeric.Value{Text: "0", AtLower: true}}
    tags := ComputeTags(e, true, true)
    // Expected order: AT_MIN, EDITED, DISABLED, READ_ONLY
    order := []state.TagKind{state.AT_MIN, state.EDITED, state.DISABLED, state.READ_ONLY}
    pos := map[state.TagKind]int{}
    for i, tg := range tags {
        pos[tg.Kind] = i
    }
    prev := -1
    for _, k := range order {
        idx, ok := pos[k]
        if !ok {
            t.Fatalf("tag %v missing", k)
        }
        if idx < prev {
            t.Fatalf("tag %v appears before previous; order unstable", k)
        }
        prev = idx
    }
}
