package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/wav-labs/grainview/internal/grain"
)

func flatTrack(n int, amp float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = amp
	}
	return data
}

func testOptions() Options {
	return Options{Width: 40, Height: 4, CaseRate: 5, Rng: rand.New(rand.NewSource(1))}
}

func TestTrackView_PanelGeometry(t *testing.T) {
	s := grain.PartitionEqually(400, 0.1, 1000) // 4 grains of 100
	out := TrackView(s, grain.View{Start: 0, End: 400}, flatTrack(400, 0.5), testOptions())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 4 bar rows + ruler, got %d lines", len(lines))
	}
	for i, line := range lines {
		if len(line) != 40 {
			t.Fatalf("line %d width %d, want 40", i, len(line))
		}
	}
}

func TestTrackView_BarHeightTracksAmplitude(t *testing.T) {
	s := grain.PartitionEqually(100, 0.1, 1000)

	loud := TrackView(s, grain.View{Start: 0, End: 100}, flatTrack(100, 1.0), testOptions())
	quiet := TrackView(s, grain.View{Start: 0, End: 100}, flatTrack(100, 0.0), testOptions())

	if !strings.Contains(loud, "#") {
		t.Fatalf("full-scale track rendered no bars:\n%s", loud)
	}
	if strings.Contains(quiet, "#") {
		t.Fatalf("silent track rendered bars:\n%s", quiet)
	}
}

func TestTrackView_MoreAffordances(t *testing.T) {
	s := grain.PartitionEqually(400, 0.1, 1000)

	// Middle window: real content exists on both sides.
	out := TrackView(s, grain.View{Start: 100, End: 300}, flatTrack(400, 0.5), testOptions())
	ruler := lastLine(out)
	if ruler[0] != '<' || ruler[len(ruler)-1] != '>' {
		t.Fatalf("expected < and > affordances on ruler, got %q", ruler)
	}

	// Full track: nothing off-view.
	out = TrackView(s, grain.View{Start: 0, End: 400}, flatTrack(400, 0.5), testOptions())
	ruler = lastLine(out)
	if strings.ContainsAny(ruler, "<>") {
		t.Fatalf("unexpected affordance on full-track ruler: %q", ruler)
	}
}

func TestTrackView_FillerColumnsAreDots(t *testing.T) {
	s := grain.PartitionEqually(200, 0.1, 1000)

	// View extends 200 samples past the track: the right half is filler.
	out := TrackView(s, grain.View{Start: 0, End: 400}, flatTrack(200, 0.5), testOptions())
	top := strings.Split(out, "\n")[0]
	if !strings.Contains(top[20:], ".") {
		t.Fatalf("expected filler dots past track end, got %q", top)
	}
}

func TestTrackView_ViewEntirelyPastTrack(t *testing.T) {
	s := grain.PartitionEqually(50, 0.01, 1000) // 5 grains of 10

	// Nothing in [100, 200) exists; the panel is all filler.
	out := TrackView(s, grain.View{Start: 100, End: 200}, flatTrack(50, 0.5), testOptions())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 4 bar rows + ruler, got %d lines", len(lines))
	}
	for i, line := range lines {
		if len(line) != 40 {
			t.Fatalf("line %d width %d, want 40", i, len(line))
		}
	}
	if strings.Contains(out, "#") {
		t.Fatalf("off-track view rendered content bars:\n%s", out)
	}
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	return lines[len(lines)-1]
}
