// Package sessions tracks the players connected to a server, whatever the
// transport. The SSH and web front ends register each player for the
// lifetime of their connection.
package sessions

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Transport names the front end a player connected through.
type Transport string

const (
	TransportSSH Transport = "ssh"
	TransportWeb Transport = "web"
)

// Info describes one connected player.
type Info struct {
	ID        string    `json:"id"`
	Transport Transport `json:"transport"`
	User      string    `json:"user,omitempty"`
	Remote    string    `json:"remote"`
	Connected time.Time `json:"connected"`
}

// ShortID is the prefix of the session ID used in log lines.
func (i Info) ShortID() string {
	if len(i.ID) > 8 {
		return i.ID[:8]
	}
	return i.ID
}

// Registry tracks connected players.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Info
	now      func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]Info),
		now:      time.Now,
	}
}

// Register adds a player and returns the stored info together with the
// function that removes it again. An empty ID gets a fresh UUID and a zero
// Connected time is stamped with the current time. The returned function is
// safe to call more than once.
func (r *Registry) Register(info Info) (Info, func()) {
	if info.ID == "" {
		info.ID = uuid.NewString()
	}
	if info.Connected.IsZero() {
		info.Connected = r.now()
	}

	r.mu.Lock()
	r.sessions[info.ID] = info
	r.mu.Unlock()

	var once sync.Once
	return info, func() {
		once.Do(func() { r.Unregister(info.ID) })
	}
}

// Unregister removes a player.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a player by session ID.
func (r *Registry) Get(id string) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.sessions[id]
	return info, ok
}

// Count returns the number of connected players.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CountBy returns the number of players connected through t.
func (r *Registry) CountBy(t Transport) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, info := range r.sessions {
		if info.Transport == t {
			n++
		}
	}
	return n
}

// List returns every connected player, longest connected first.
func (r *Registry) List() []Info {
	r.mu.RLock()
	out := make([]Info, 0, len(r.sessions))
	for _, info := range r.sessions {
		out = append(out, info)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Connected.Equal(out[j].Connected) {
			return out[i].Connected.Before(out[j].Connected)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
