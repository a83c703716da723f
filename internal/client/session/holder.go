package session

import (
	"sync"

	"github.com/vkozyrev/floodwatch/internal/client/models"
)

// StateHolder is the in-memory observable holder for the current phase and
// user snapshot. It performs no I/O; the owning session service is the only
// intended writer. Subscribers receive snapshots on every write via
// non-blocking fan-out: a subscriber that does not drain its channel misses
// intermediate states but always observes the latest on the next read.
type StateHolder struct {
	mu    sync.RWMutex
	phase Phase
	user  *models.UserRecord
	subs  []chan Snapshot
}

// NewStateHolder starts in the Uninitialized phase with no user.
func NewStateHolder() *StateHolder {
	return &StateHolder{phase: PhaseUninitialized()}
}

// UpdateState sets the phase and, when user is non-nil, the user snapshot.
func (h *StateHolder) UpdateState(phase Phase, user *models.UserRecord) {
	h.mu.Lock()
	h.phase = phase
	if user != nil {
		h.user = user
	}
	snap := h.snapshotLocked()
	h.mu.Unlock()
	h.notify(snap)
}

// UpdateCurrentUser sets only the user cell, leaving the phase untouched.
func (h *StateHolder) UpdateCurrentUser(user *models.UserRecord) {
	h.mu.Lock()
	h.user = user
	snap := h.snapshotLocked()
	h.mu.Unlock()
	h.notify(snap)
}

// ResetState moves to Unauthenticated and clears the user cell.
func (h *StateHolder) ResetState() {
	h.mu.Lock()
	h.phase = PhaseUnauthenticated()
	h.user = nil
	snap := h.snapshotLocked()
	h.mu.Unlock()
	h.notify(snap)
}

// Phase returns the current phase.
func (h *StateHolder) Phase() Phase {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.phase
}

// CurrentUser returns the current user snapshot, nil when unauthenticated.
func (h *StateHolder) CurrentUser() *models.UserRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user
}

// Snapshot returns phase and user atomically.
func (h *StateHolder) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snapshotLocked()
}

// Subscribe registers an observer channel. The channel is buffered; writes
// never block the holder.
func (h *StateHolder) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 16)
	h.mu.Lock()
	h.subs = append(h.subs, ch)
	h.mu.Unlock()
	return ch
}

func (h *StateHolder) snapshotLocked() Snapshot {
	return Snapshot{Phase: h.phase, User: h.user}
}

func (h *StateHolder) notify(snap Snapshot) {
	h.mu.RLock()
	subs := h.subs
	h.mu.RUnlock()
	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
