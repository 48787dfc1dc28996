package grain

// Grain represents a half-open interval [Start, End) over integer sample
// indices of a track. A grain carries caller-supplied metadata in Tags plus
// two reserved fields used by view reconstruction: Filler marks a synthetic
// grain covering viewport space with no real content, and More signals that
// additional real content exists beyond the filler's far edge.
type Grain struct {
	// Start is the first sample index covered by the grain.
	Start int64

	// End is one past the last sample index covered by the grain.
	End int64

	// Filler marks a synthetic grain produced by view reconstruction.
	Filler bool

	// More is meaningful only on filler grains. It tells the renderer to
	// draw a "there is more content" affordance, independent of the
	// filler's length.
	More bool

	// Tags holds arbitrary caller metadata, preserved verbatim across
	// split operations.
	Tags map[string]string
}

// Len returns the number of samples covered by the grain.
func (g Grain) Len() int64 {
	return g.End - g.Start
}

// Contains reports whether target falls inside the grain's interval.
// It is the single source of truth for interval membership; the binary
// search comparator is derived from it.
func Contains(target int64, g Grain) bool {
	return target >= g.Start && target < g.End
}

// withBounds returns an independent copy of the grain with new bounds.
// Tags are copied structurally so the result shares no state with g.
func (g Grain) withBounds(start, end int64) Grain {
	out := g
	out.Start = start
	out.End = end
	if g.Tags != nil {
		out.Tags = make(map[string]string, len(g.Tags))
		for k, v := range g.Tags {
			out.Tags[k] = v
		}
	}
	return out
}

// SplitOne splits a grain at the given sample index. A split point landing
// on or before the grain's start, or on or after its last valid sample,
// produces no new boundary: the original grain is returned alone. This
// avoids degenerate near-zero-length grains at the edges. Otherwise the
// result is two grains, [g.Start, at) and [at, g.End), each carrying an
// independent copy of the original metadata.
func SplitOne(g Grain, at int64) []Grain {
	if at <= g.Start || at >= g.End-1 {
		return []Grain{g}
	}
	return []Grain{
		g.withBounds(g.Start, at),
		g.withBounds(at, g.End),
	}
}
