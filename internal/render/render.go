// Package render draws a fixed-width ASCII panel of a track view. It is
// the in-repo stand-in for the UI layer: one call per view change, feeding
// the grain algebra's view reconstruction and sample-case extraction.
package render

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/wav-labs/grainview/internal/grain"
	"github.com/wav-labs/grainview/internal/numutil"
)

// Options controls panel geometry and sampling density.
type Options struct {
	// Width is the panel width in columns.
	Width int

	// Height is the bar height in rows.
	Height int

	// CaseRate is the sample-case density passed to the algebra: one
	// representative value per CaseRate samples of grain length.
	CaseRate int

	// Rng drives sample-case extraction. When nil a time-seeded source
	// is used.
	Rng *rand.Rand
}

// DefaultOptions returns panel options suited to an 80-column terminal.
func DefaultOptions() Options {
	return Options{Width: 80, Height: 8, CaseRate: 441}
}

// TrackView renders the grains visible in the view as amplitude bars, one
// bar block per grain, with a ruler line marking grain boundaries. Filler
// columns are drawn as dots; a filler carrying the More flag puts a '<' or
// '>' affordance at the matching edge of the ruler.
func TrackView(s grain.Sequence, v grain.View, data []float64, opts Options) string {
	shown := grain.GrainsToShow(s, v)

	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cases := grain.SampleCases(shown, data, opts.CaseRate, rng)

	viewLen := v.End - v.Start
	col := func(x int64) int {
		return int((x - v.Start) * int64(opts.Width) / viewLen)
	}

	heights := make([]int, opts.Width)
	isFiller := make([]bool, opts.Width)
	boundary := make([]bool, opts.Width)

	for i, g := range shown {
		c0, c1 := col(g.Start), col(g.End)
		if c1 > opts.Width {
			c1 = opts.Width
		}
		bar := int(numutil.Clamp(int64(math.Round(mean(cases[i])*float64(opts.Height))), 0, int64(opts.Height)))
		for c := c0; c < c1; c++ {
			heights[c] = bar
			isFiller[c] = g.Filler
		}
		if !g.Filler && c0 < opts.Width {
			boundary[c0] = true
		}
	}

	var b strings.Builder
	for row := opts.Height; row >= 1; row-- {
		for c := 0; c < opts.Width; c++ {
			switch {
			case isFiller[c]:
				b.WriteByte('.')
			case heights[c] >= row:
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	ruler := make([]byte, opts.Width)
	for c := range ruler {
		if boundary[c] {
			ruler[c] = '|'
		} else {
			ruler[c] = '-'
		}
	}
	if shown[0].More {
		ruler[0] = '<'
	}
	if shown[len(shown)-1].More {
		ruler[opts.Width-1] = '>'
	}
	b.Write(ruler)
	b.WriteByte('\n')

	return b.String()
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
