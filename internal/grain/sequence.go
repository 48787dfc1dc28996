package grain

import (
	"fmt"

	"github.com/wav-labs/grainview/internal/numutil"
)

// Sequence is an ordered list of grains covering a track. Adjacent grains
// touch exactly: grain[i].End == grain[i+1].Start, with no gaps or overlaps.
// Sequences are never mutated in place; every operation returns a new
// sequence and leaves its input untouched.
type Sequence []Grain

// mustNotBeEmpty enforces the non-empty precondition shared by all
// operations that index the sequence. An empty sequence means the caller
// contract is broken; failing loudly beats a silently wrong answer.
func (s Sequence) mustNotBeEmpty() {
	if len(s) == 0 {
		panic("grain: operation on empty sequence")
	}
}

// Span returns the first and one-past-last sample index covered by the
// sequence.
func (s Sequence) Span() (start, end int64) {
	s.mustNotBeEmpty()
	return s[0].Start, s[len(s)-1].End
}

// Validate checks the contiguity invariant: every grain is non-empty and
// adjacent grains touch exactly.
func (s Sequence) Validate() error {
	for i, g := range s {
		if g.Start >= g.End {
			return fmt.Errorf("grain %d: empty interval [%d, %d)", i, g.Start, g.End)
		}
		if i > 0 && s[i-1].End != g.Start {
			return fmt.Errorf("grain %d: starts at %d, previous ends at %d", i, g.Start, s[i-1].End)
		}
	}
	return nil
}

// Split returns a new sequence with the grain containing the split point
// replaced by the result of SplitOne, all other grains untouched and in
// order. Split points at or before the first sample, or at or after the
// last valid sample, return the input sequence unchanged, mirroring the
// single-grain edge policy at the sequence level.
func (s Sequence) Split(at int64) Sequence {
	s.mustNotBeEmpty()

	first, last := s.Span()
	if at <= first || at >= last-1 {
		return s
	}

	i, ok := s.IndexAt(at)
	if !ok {
		return s
	}

	out := make(Sequence, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, SplitOne(s[i], at)...)
	out = append(out, s[i+1:]...)
	return out
}

// PartitionEqually partitions [0, sampleCount) into consecutive grains of
// secondsPerGrain length, converted to samples at the given rate. The final
// grain is shortened to fit when sampleCount is not an exact multiple. This
// is the only constructor of a fresh sequence from raw data; later
// sequences derive from it via Split.
func PartitionEqually(sampleCount int64, secondsPerGrain float64, sampleRate int) Sequence {
	if sampleCount <= 0 {
		panic("grain: partition of non-positive sample count")
	}
	size := numutil.SecondsToSamples(secondsPerGrain, sampleRate)
	if size <= 0 {
		panic("grain: non-positive grain size")
	}

	out := make(Sequence, 0, sampleCount/size+1)
	for start := int64(0); start < sampleCount; start += size {
		end := start + size
		if end > sampleCount {
			end = sampleCount
		}
		out = append(out, Grain{Start: start, End: end})
	}
	return out
}
