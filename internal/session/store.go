// Package session holds the authenticated operator's state for the
// lifetime of a console run: the bearer token issued at login and the
// user profile that came with it.
package session

import (
	"sync"

	"github.com/commercia/backoffice/internal/domain/user"
)

// Store is the session state written at login, read by the route guard
// and the request header builder, and cleared at logout. Implementations
// must be safe for concurrent use.
type Store interface {
	// Token returns the stored bearer token, or "" when no session exists.
	Token() string
	// User returns the stored profile and whether one is present.
	User() (user.Profile, bool)
	// SetCredentials stores the token and profile of a fresh login.
	SetCredentials(token string, profile user.Profile) error
	// Clear discards the session.
	Clear() error
}

// Memory is an in-process session store.
type Memory struct {
	mu      sync.RWMutex
	token   string
	profile user.Profile
	active  bool
}

// NewMemory creates an empty in-memory session store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Memory) User() (user.Profile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile, m.active
}

func (m *Memory) SetCredentials(token string, profile user.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.profile = profile
	m.active = true
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.profile = user.Profile{}
	m.active = false
	return nil
}
