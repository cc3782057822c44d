// Package performance provides lightweight performance tracking for
// cardpress render and build operations.
package performance

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Marker tracks one timed operation.
type Marker struct {
	ID        string        `json:"id"`
	Operation string        `json:"operation"`
	CardRef   string        `json:"cardRef,omitempty"`
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`
	Success   bool          `json:"success"`

	tracker *Tracker
	done    bool
}

// Complete finalizes the marker's duration. Safe to call once; repeated
// calls are ignored.
func (m *Marker) Complete() {
	if m.done {
		return
	}
	m.done = true
	m.Duration = time.Since(m.StartTime)
	if m.tracker != nil {
		m.tracker.record(m)
	}
}

// SetSuccess flags the operation outcome.
func (m *Marker) SetSuccess(ok bool) {
	m.Success = ok
}

// Tracker manages performance markers for completed operations.
type Tracker struct {
	mu         sync.RWMutex
	completed  []*Marker
	maxMarkers int
}

// NewTracker creates a tracker retaining up to maxMarkers completed
// operations.
func NewTracker(maxMarkers int) *Tracker {
	if maxMarkers <= 0 {
		maxMarkers = 1000
	}
	return &Tracker{maxMarkers: maxMarkers}
}

// StartOperation begins a new timed marker.
func (t *Tracker) StartOperation(operation, cardRef string) *Marker {
	return &Marker{
		ID:        ulid.Make().String(),
		Operation: operation,
		CardRef:   cardRef,
		StartTime: time.Now(),
		tracker:   t,
	}
}

func (t *Tracker) record(m *Marker) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.completed = append(t.completed, m)
	if len(t.completed) > t.maxMarkers {
		t.completed = t.completed[len(t.completed)-t.maxMarkers:]
	}
}

// Recent returns the most recently completed markers, newest last.
func (t *Tracker) Recent(n int) []*Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n <= 0 || n > len(t.completed) {
		n = len(t.completed)
	}
	out := make([]*Marker, n)
	copy(out, t.completed[len(t.completed)-n:])
	return out
}
