// Package session maps live connections to the identity they chose at join
// time: a display name and a room key, fixed for the connection's lifetime.
package session

import (
	"sync"

	"github.com/google/uuid"
)

type Session struct {
	Username string
	Website  string
}

type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]Session),
	}
}

// Bind associates a connection with its display name and room. The first
// bind wins; a rebind attempt is reported to the caller.
func (r *Registry) Bind(connID uuid.UUID, username, website string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[connID]; ok {
		return false
	}
	r.sessions[connID] = Session{Username: username, Website: website}
	return true
}

func (r *Registry) Lookup(connID uuid.UUID) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[connID]
	return s, ok
}

func (r *Registry) Unbind(connID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, connID)
}
