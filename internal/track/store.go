// Package track owns the current grain sequence for each open track. The
// store is the single writer for a track's sequence: edits replace the
// sequence wholesale, so concurrent readers never observe a partial update.
package track

import (
	"fmt"
	"sync"

	"github.com/wav-labs/grainview/internal/grain"
	"github.com/wav-labs/grainview/internal/numutil"
)

// Store holds the grain sequences of open tracks, keyed by track ID.
// It also tracks which track is selected for editing.
type Store struct {
	mu       sync.RWMutex
	order    []string
	tracks   map[string]grain.Sequence
	selected int
}

// NewStore creates an empty track store.
func NewStore() *Store {
	return &Store{tracks: make(map[string]grain.Sequence)}
}

// Add registers a track with its initial sequence and selects it.
func (st *Store) Add(id string, seq grain.Sequence) error {
	if len(seq) == 0 {
		return fmt.Errorf("track %s: empty sequence", id)
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.tracks[id]; exists {
		return fmt.Errorf("track %s: already open", id)
	}
	st.tracks[id] = seq
	st.order = append(st.order, id)
	st.selected = len(st.order) - 1
	return nil
}

// Remove closes a track. Selection moves to the nearest remaining track.
func (st *Store) Remove(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.tracks[id]; !exists {
		return fmt.Errorf("track %s: not open", id)
	}
	delete(st.tracks, id)
	for i, tid := range st.order {
		if tid == id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	st.selected = int(numutil.Clamp(int64(st.selected), 0, int64(len(st.order)-1)))
	return nil
}

// Select makes the given track the editing target.
func (st *Store) Select(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	for i, tid := range st.order {
		if tid == id {
			st.selected = i
			return nil
		}
	}
	return fmt.Errorf("track %s: not open", id)
}

// Selected returns the ID of the currently selected track.
func (st *Store) Selected() (string, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if len(st.order) == 0 {
		return "", false
	}
	return st.order[st.selected], true
}

// Sequence returns the current sequence for a track. The returned value is
// immutable by convention; callers must not modify it.
func (st *Store) Sequence(id string) (grain.Sequence, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	seq, ok := st.tracks[id]
	return seq, ok
}

// Split cuts the track's sequence at the given sample index and installs
// the result as the track's new current sequence. A split point on a
// boundary or outside the track leaves the sequence unchanged.
func (st *Store) Split(id string, at int64) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	seq, ok := st.tracks[id]
	if !ok {
		return fmt.Errorf("track %s: not open", id)
	}
	st.tracks[id] = seq.Split(at)
	return nil
}

// IDs returns the open track IDs in the order they were added.
func (st *Store) IDs() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return append([]string(nil), st.order...)
}
