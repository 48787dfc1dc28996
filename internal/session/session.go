// Package session wires a track's lifecycle together: decode the audio,
// build the initial equal partition, replay the persisted edit log, and
// serve view renderings and new cuts against the current sequence.
package session

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/wav-labs/grainview/internal/grain"
	"github.com/wav-labs/grainview/internal/numutil"
	"github.com/wav-labs/grainview/internal/render"
	"github.com/wav-labs/grainview/internal/track"
	"github.com/wav-labs/grainview/internal/wav"
	"github.com/wav-labs/grainview/pkg/log"
)

// Config holds the tunables a session needs.
type Config struct {
	// GrainSeconds is the duration of each grain in the initial equal
	// partition.
	GrainSeconds float64

	// CaseRate is the sample-case density for rendering.
	CaseRate int

	// ViewWidth and ViewHeight set the rendered panel geometry.
	ViewWidth  int
	ViewHeight int

	// StateDir is where the edit log lives. Empty means alongside the
	// track file.
	StateDir string
}

// Session owns one open track: its decoded samples, its current grain
// sequence, and its edit log.
type Session struct {
	logger   log.Logger
	id       string
	path     string
	audio    *wav.Track
	store    *track.Store
	state    track.State
	stateDir string
	cfg      Config
	rng      *rand.Rand
}

// New opens a track file, partitions it, and replays any persisted cuts.
func New(path string, cfg Config, logger log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	s := &Session{
		logger:   logger,
		id:       filepath.Base(path),
		path:     path,
		stateDir: cfg.StateDir,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if s.stateDir == "" {
		s.stateDir = filepath.Dir(path)
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load decodes the audio and rebuilds the current sequence from the edit
// log. It is also the reload path used in follow mode.
func (s *Session) load() error {
	audio, err := wav.DecodeFile(s.path)
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}
	if audio.Len() == 0 {
		return fmt.Errorf("open track: %s has no samples", s.path)
	}

	state, err := track.LoadState(s.stateDir)
	if err != nil {
		return fmt.Errorf("load edit log: %w", err)
	}

	seq := grain.PartitionEqually(audio.Len(), s.cfg.GrainSeconds, audio.SampleRate)
	seq = track.Replay(seq, state.Cuts[s.id])

	store := track.NewStore()
	if err := store.Add(s.id, seq); err != nil {
		return err
	}

	s.audio = audio
	s.state = state
	s.store = store

	s.logger.Info("track opened",
		log.String("track", s.id),
		log.Int64("samples", audio.Len()),
		log.Int("rate", audio.SampleRate),
		log.Float64("seconds", audio.Seconds()),
		log.Int("grains", len(seq)),
		log.Int("cuts", len(state.Cuts[s.id])),
	)
	return nil
}

// Reload re-decodes the track and replays the edit log, picking up
// external changes to either.
func (s *Session) Reload() error {
	return s.load()
}

// Sequence returns the track's current grain sequence.
func (s *Session) Sequence() grain.Sequence {
	seq, _ := s.store.Sequence(s.id)
	return seq
}

// Audio returns the decoded track.
func (s *Session) Audio() *wav.Track {
	return s.audio
}

// Path returns the track file path.
func (s *Session) Path() string {
	return s.path
}

// StateDir returns the directory holding the edit log.
func (s *Session) StateDir() string {
	return s.stateDir
}

// Split cuts the track at the given sample index, records the cut in the
// edit log, and persists it. Cuts landing on boundaries or outside the
// track change nothing and are not recorded.
func (s *Session) Split(at int64) error {
	before := s.Sequence()
	if err := s.store.Split(s.id, at); err != nil {
		return err
	}
	after := s.Sequence()

	if len(after) == len(before) {
		s.logger.Debug("split was a no-op", log.String("track", s.id), log.Int64("at", at))
		return nil
	}

	s.state.RecordCut(s.id, at)
	if err := track.SaveState(s.stateDir, s.state); err != nil {
		return fmt.Errorf("save edit log: %w", err)
	}

	s.logger.Info("track split",
		log.String("track", s.id),
		log.Int64("at", at),
		log.Int("grains", len(after)),
	)
	return nil
}

// ViewAt builds a view window from a start offset and duration in seconds.
// A non-positive duration extends the view to the end of the track. The
// returned window is never empty: a start offset at or past the track's
// end still yields a renderable one-sample window of filler.
func (s *Session) ViewAt(fromSec, durSec float64) grain.View {
	start := numutil.SecondsToSamples(fromSec, s.audio.SampleRate)
	end := s.audio.Len()
	if durSec > 0 {
		end = start + numutil.SecondsToSamples(durSec, s.audio.SampleRate)
	}
	if end <= start {
		end = start + 1
	}
	return grain.View{Start: start, End: end}
}

// Render draws the view as an ASCII panel.
func (s *Session) Render(v grain.View) string {
	opts := render.Options{
		Width:    s.cfg.ViewWidth,
		Height:   s.cfg.ViewHeight,
		CaseRate: s.cfg.CaseRate,
		Rng:      s.rng,
	}
	return render.TrackView(s.Sequence(), v, s.audio.Samples, opts)
}
