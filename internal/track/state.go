package track

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/wav-labs/grainview/internal/grain"
)

// State records the edit log for each track: the split points applied to
// the initial equal partition, in the order they were made. Replaying the
// log over a fresh partition reproduces the track's current sequence.
type State struct {
	Cuts      map[string][]int64 `json:"cuts"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewState returns an empty edit log.
func NewState() State {
	return State{Cuts: make(map[string][]int64)}
}

// RecordCut appends a split point to a track's edit log.
func (s *State) RecordCut(id string, at int64) {
	if s.Cuts == nil {
		s.Cuts = make(map[string][]int64)
	}
	s.Cuts[id] = append(s.Cuts[id], at)
	s.UpdatedAt = time.Now().UTC()
}

// Replay applies a track's recorded cuts to a sequence in order. Cuts that
// land on boundaries created by earlier cuts are no-ops, so replaying is
// safe even if the log contains duplicates.
func Replay(seq grain.Sequence, cuts []int64) grain.Sequence {
	for _, at := range cuts {
		seq = seq.Split(at)
	}
	return seq
}

// StateFile returns the edit log path inside dir. Exposed so follow mode
// can watch the file for external changes.
func StateFile(dir string) string { return filepath.Join(dir, "grain-state.json") }

// LoadState reads the edit log from dir. A missing file is not an error;
// it yields an empty log.
func LoadState(dir string) (State, error) {
	b, err := os.ReadFile(StateFile(dir))
	if os.IsNotExist(err) {
		return NewState(), nil
	}
	if err != nil {
		return State{}, err
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return State{}, err
	}
	if st.Cuts == nil {
		st.Cuts = make(map[string][]int64)
	}
	return st, nil
}

// SaveState writes the edit log to dir atomically (write to a temp file,
// then rename over the target).
func SaveState(dir string, st State) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp := StateFile(dir) + ".tmp"
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, StateFile(dir))
}
