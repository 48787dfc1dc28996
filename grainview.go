// Package grainview manages a track's partition into grains for a waveform
// editor's visual track view: splitting grains at arbitrary points,
// resolving which grain owns a sample index, and reconstructing the grains
// visible in a viewport, with filler grains synthesized where the view
// extends beyond track content.
//
// Example usage:
//
//	cfg := grainview.DefaultConfig()
//	s, err := grainview.Open("track.wav", cfg, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := s.Split(44100); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(s.Render(s.ViewAt(0, 2.0)))
package grainview

import (
	"github.com/wav-labs/grainview/internal/cliconfig"
	"github.com/wav-labs/grainview/internal/grain"
	"github.com/wav-labs/grainview/internal/session"
	"github.com/wav-labs/grainview/pkg/log"
)

// Grain is a half-open sample interval with attached metadata.
type Grain = grain.Grain

// Sequence is an ordered, gap-free, non-overlapping list of grains
// covering a track.
type Sequence = grain.Sequence

// View is a requested sample-index window to be rendered.
type View = grain.View

// Config holds the tunables for opening tracks.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// Session owns one open track and its edit log.
type Session = session.Session

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Open decodes a WAV file, partitions it into equal grains, and replays
// any persisted edits. A nil logger disables logging.
func Open(path string, cfg Config, logger log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return session.New(path, session.Config{
		GrainSeconds: cfg.GrainSeconds,
		CaseRate:     cfg.CaseRate,
		ViewWidth:    cfg.ViewWidth,
		ViewHeight:   cfg.ViewHeight,
		StateDir:     cfg.StateDir,
	}, logger)
}

// Contains reports whether target falls inside the grain's interval.
func Contains(target int64, g Grain) bool {
	return grain.Contains(target, g)
}

// SplitOne splits a grain at a sample index, or returns it unchanged when
// the point lands on an edge.
func SplitOne(g Grain, at int64) []Grain {
	return grain.SplitOne(g, at)
}

// PartitionEqually partitions [0, sampleCount) into equal grains of
// secondsPerGrain length at the given sample rate.
func PartitionEqually(sampleCount int64, secondsPerGrain float64, sampleRate int) Sequence {
	return grain.PartitionEqually(sampleCount, secondsPerGrain, sampleRate)
}

// GrainsToShow reconstructs the grains to render for a view, with filler
// grains at the edges.
func GrainsToShow(s Sequence, v View) Sequence {
	return grain.GrainsToShow(s, v)
}
