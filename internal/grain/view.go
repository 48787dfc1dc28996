package grain

import "github.com/wav-labs/grainview/internal/numutil"

// View is a requested sample-index window, half-open [Start, End). It is
// not necessarily aligned to grain boundaries and may extend beyond the
// track on either side.
type View struct {
	Start int64
	End   int64
}

// GrainsInView resolves the index range of grains intersecting the view.
// startIdx is the grain containing view.Start, clamped to the first grain
// when the view begins before the track and to the last grain when it
// begins past the track's end. endIdx is the grain containing the view's
// last sample (View.End - 1), clamped to the last grain when the view
// extends past the track's end.
func GrainsInView(s Sequence, v View) (startIdx, endIdx int) {
	s.mustNotBeEmpty()
	_, trackEnd := s.Span()

	startIdx, ok := s.IndexWithin(v.Start, trackEnd)
	if !ok {
		if v.Start >= trackEnd {
			startIdx = len(s) - 1
		} else {
			startIdx = 0
		}
	}

	endIdx, ok = s.IndexWithin(v.End-1, trackEnd)
	if !ok {
		if v.End-1 < s[0].Start {
			endIdx = 0
		} else {
			endIdx = len(s) - 1
		}
	}
	return startIdx, endIdx
}

// GrainsToShow reconstructs the sequence of grains to render for a view.
// Real grains from startIdx through endIdx are included in order, each
// clipped into the view's window, bracketed by one synthetic filler grain
// at each end. Fillers cover viewport space that extends beyond actual
// track content and are zero-length when the view lies inside the track;
// every interval in the result is confined to [v.Start, v.End), so the
// output is contiguous and spans the view exactly even when the view lies
// entirely outside the track. The start filler's More flag is set when
// whole grains exist before the first visible one; the end filler's More
// flag is set when real content exists beyond the view's end.
func GrainsToShow(s Sequence, v View) Sequence {
	s.mustNotBeEmpty()
	_, trackEnd := s.Span()
	startIdx, endIdx := GrainsInView(s, v)

	out := make(Sequence, 0, endIdx-startIdx+3)

	startFiller := Grain{
		Start:  v.Start,
		End:    numutil.Clamp(s[startIdx].Start, v.Start, v.End),
		Filler: true,
		More:   startIdx != 0,
	}
	out = append(out, startFiller)

	for i := startIdx; i <= endIdx; i++ {
		g := s[i]
		lo := numutil.Clamp(g.Start, v.Start, v.End)
		hi := numutil.Clamp(g.End, lo, v.End)
		if lo != g.Start || hi != g.End {
			g = g.withBounds(lo, hi)
		}
		out = append(out, g)
	}

	endFiller := Grain{
		Start:  numutil.Clamp(s[endIdx].End, v.Start, v.End),
		End:    v.End,
		Filler: true,
		More:   v.End < trackEnd,
	}
	out = append(out, endFiller)

	return out
}
