// Package layout is the meeting-grid engine's entry point. Compute takes one
// Options value describing the container, the participant count and the
// layout preferences, picks a strategy, and returns an immutable Result the
// rendering layer queries per index.
//
// Strategy selection, in order: an empty roster short-circuits to a
// degenerate result; spotlight mode isolates one item; a pinned index invokes
// the pin-plus-strip planner; exactly two unpinned participants get the
// floating self-view treatment; genuinely mixed per-item aspect ratios go
// through the justified packer; everything else is a uniform grid over the
// paginated visible subset.
//
// Every planner is a pure function of its inputs. Callers recompute on any
// input change and discard the previous Result; identical inputs always
// produce identical output.
package layout
