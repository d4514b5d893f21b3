package flamingarrows

import (
	"sync"

	"github.com/google/uuid"
)

// Registry tracks the players currently in ignition mode.
// Membership lives in memory only and is lost on restart.
type Registry struct {
	mu      sync.Mutex
	players map[uuid.UUID]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{players: make(map[uuid.UUID]struct{})}
}

// Toggle removes the player if present and adds it otherwise. It returns true
// if the player is enabled afterwards.
func (r *Registry) Toggle(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[id]; ok {
		delete(r.players, id)
		return false
	}
	r.players[id] = struct{}{}
	return true
}

// ToggleIf works like Toggle, but only adds the player if admit returns true.
// It reports whether the player is enabled afterwards and whether membership
// changed. admit runs with the registry locked and must not call back into it.
func (r *Registry) ToggleIf(id uuid.UUID, admit func() bool) (enabled, changed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[id]; ok {
		delete(r.players, id)
		return false, true
	}
	if !admit() {
		return false, false
	}
	r.players[id] = struct{}{}
	return true, true
}

// Enabled reports whether the player is in ignition mode.
func (r *Registry) Enabled(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.players[id]
	return ok
}

// Enable adds the player.
func (r *Registry) Enable(id uuid.UUID) {
	r.mu.Lock()
	r.players[id] = struct{}{}
	r.mu.Unlock()
}

// Remove removes the player and reports whether it was present.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.players[id]
	delete(r.players, id)
	return ok
}

// Len returns the number of enabled players.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// Clear removes every player.
func (r *Registry) Clear() {
	r.mu.Lock()
	clear(r.players)
	r.mu.Unlock()
}
