package alignment

import (
	"sync"

	"ibadah/internal/modules/qibla"
)

// Observation is a State plus whether this sample flipped the device from
// not aligned to aligned. Callers fire haptics on BecameAligned.
type Observation struct {
	State
	BecameAligned bool `json:"became_aligned"`
}

// Watcher remembers only the last aligned flag of one sensor stream. It is
// safe for concurrent use.
type Watcher struct {
	tracker *Tracker

	mu      sync.Mutex
	aligned bool
}

func NewWatcher(tracker *Tracker) *Watcher {
	return &Watcher{tracker: tracker}
}

// Observe evaluates a sample. Invalid samples return an error and leave the
// remembered flag untouched.
func (w *Watcher) Observe(heading HeadingSample, bearing qibla.BearingResult) (Observation, error) {
	st, err := w.tracker.Evaluate(heading, bearing)
	if err != nil {
		return Observation{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	became := BecameAligned(w.aligned, st)
	w.aligned = st.IsAligned
	return Observation{State: st, BecameAligned: became}, nil
}

// Reset forgets the previous sample, e.g. after the user position changes.
func (w *Watcher) Reset() {
	w.mu.Lock()
	w.aligned = false
	w.mu.Unlock()
}

// BecameAligned reports a not-aligned to aligned flip between the previous
// sample's flag and st.
func BecameAligned(wasAligned bool, st State) bool {
	return st.IsAligned && !wasAligned
}
