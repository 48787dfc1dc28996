// Package grain contains the core interval algebra for track views.
//
// This package represents the innermost layer of grainview. It has no
// dependencies on infrastructure concerns (file system, logging, rendering)
// and contains only pure functions over grain sequences.
//
// # Entities
//
//   - [Grain]: a half-open sample interval [Start, End) with attached metadata
//   - [Sequence]: an ordered, gap-free, non-overlapping list of grains covering a track
//   - [View]: a requested sample-index window to be rendered
//
// # Design Principles
//
// Algebra operations are:
//   - Pure: they borrow an input sequence immutably and return a new one
//   - Total over valid input: boundary conditions resolve to no-ops or
//     (value, ok) results, never errors
//   - Loud on contract violations: an empty sequence panics rather than
//     producing a silently wrong answer
package grain
