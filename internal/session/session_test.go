package session

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wav-labs/grainview/internal/grain"
)

// writeTestWAV writes a mono 16-bit PCM file with n half-scale samples.
func writeTestWAV(t *testing.T, dir string, rate, n int) string {
	t.Helper()

	dataLen := 2 * n
	buf := make([]byte, 0, 44+dataLen)
	u16 := func(v int) []byte {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(v))
		return b
	}
	u32 := func(v int) []byte {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(v))
		return b
	}
	buf = append(buf, "RIFF"...)
	buf = append(buf, u32(36+dataLen)...)
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = append(buf, u32(16)...)
	buf = append(buf, u16(1)...)
	buf = append(buf, u16(1)...)
	buf = append(buf, u32(rate)...)
	buf = append(buf, u32(rate*2)...)
	buf = append(buf, u16(2)...)
	buf = append(buf, u16(16)...)
	buf = append(buf, "data"...)
	buf = append(buf, u32(dataLen)...)
	for i := 0; i < n; i++ {
		buf = append(buf, u16(16384)...)
	}

	path := filepath.Join(dir, "test.wav")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write wav: %v", err)
	}
	return path
}

func testConfig() Config {
	return Config{
		GrainSeconds: 0.1,
		CaseRate:     10,
		ViewWidth:    40,
		ViewHeight:   4,
	}
}

func TestSession_PartitionsOnOpen(t *testing.T) {
	dir := t.TempDir()
	path := writeTestWAV(t, dir, 1000, 500)

	s, err := New(path, testConfig(), nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	seq := s.Sequence()
	if len(seq) != 5 {
		t.Fatalf("expected 5 grains of 100 samples, got %d", len(seq))
	}
	if err := seq.Validate(); err != nil {
		t.Fatalf("invalid sequence: %v", err)
	}
}

func TestSession_SplitPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := writeTestWAV(t, dir, 1000, 500)

	s, err := New(path, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Split(150); err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(s.Sequence()) != 6 {
		t.Fatalf("expected 6 grains after split, got %d", len(s.Sequence()))
	}

	reopened, err := New(path, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(reopened.Sequence()) != 6 {
		t.Fatalf("edit log not replayed on reopen: %d grains", len(reopened.Sequence()))
	}
}

func TestSession_BoundarySplitNotRecorded(t *testing.T) {
	dir := t.TempDir()
	path := writeTestWAV(t, dir, 1000, 500)

	s, err := New(path, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	// 100 is already a grain boundary.
	if err := s.Split(100); err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(s.Sequence()) != 5 {
		t.Fatalf("boundary split changed the sequence: %d grains", len(s.Sequence()))
	}

	reopened, err := New(path, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(reopened.Sequence()) != 5 {
		t.Fatalf("no-op split leaked into the edit log")
	}
}

func TestSession_ViewAt(t *testing.T) {
	dir := t.TempDir()
	path := writeTestWAV(t, dir, 1000, 500)

	s, err := New(path, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	v := s.ViewAt(0.1, 0.2)
	if v.Start != 100 || v.End != 300 {
		t.Fatalf("view = %+v, want [100, 300)", v)
	}

	// Zero duration extends to the end of the track.
	v = s.ViewAt(0.1, 0)
	if v.Start != 100 || v.End != 500 {
		t.Fatalf("view = %+v, want [100, 500)", v)
	}
}

func TestSession_ViewAtPastTrackEndStaysRenderable(t *testing.T) {
	dir := t.TempDir()
	path := writeTestWAV(t, dir, 1000, 500)

	s, err := New(path, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// Start offset past the 0.5s track with the duration defaulted: the
	// window must not collapse to zero samples.
	v := s.ViewAt(1.0, 0)
	if v.End <= v.Start {
		t.Fatalf("view = %+v, want End > Start", v)
	}

	out := s.Render(v)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 4 bar rows + ruler, got %d lines", len(lines))
	}
}

func TestSession_RenderGeometry(t *testing.T) {
	dir := t.TempDir()
	path := writeTestWAV(t, dir, 1000, 500)

	s, err := New(path, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	out := s.Render(grain.View{Start: 0, End: 500})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 4 bar rows + ruler, got %d lines", len(lines))
	}
}
