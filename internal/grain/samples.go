package grain

import (
	"math"
	"math/rand"

	"github.com/wav-labs/grainview/internal/numutil"
)

// SampleCases computes, for each grain, ceil(grainLength / caseRate)
// representative values by drawing uniformly random indices from the
// grain's span and taking the absolute value of the data at each. Indices
// falling outside the data (filler grains reaching past track content)
// contribute zero. The returned outer slice has the same length as the
// sequence and is positionally aligned with it. Sampling is intentionally
// non-deterministic: the result is a visual summary, not an exact
// representation.
func SampleCases(s Sequence, data []float64, caseRate int, rng *rand.Rand) [][]float64 {
	s.mustNotBeEmpty()
	if caseRate <= 0 {
		panic("grain: non-positive case rate")
	}

	out := make([][]float64, len(s))
	for i, g := range s {
		n := int(math.Ceil(float64(g.Len()) / float64(caseRate)))
		cases := make([]float64, n)
		for j := range cases {
			idx := numutil.RandRange(rng, g.Start, g.End)
			if idx >= 0 && idx < int64(len(data)) {
				cases[j] = math.Abs(data[idx])
			}
		}
		out[i] = cases
	}
	return out
}
