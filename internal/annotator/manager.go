package annotator

import (
	"sync"

	"github.com/killallgit/annotator-api/pkg/errors"
)

// Manager is the registry of live sessions for the HTTP layer. Sessions
// themselves serialize their own mutations; the manager only guards the
// registry map.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Start creates and registers a session for the given user.
func (m *Manager) Start(user User) (*Session, error) {
	session, err := NewSession(user)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()
	return session, nil
}

// Get returns a registered session by id.
func (m *Manager) Get(sessionID string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("session", sessionID)
	}
	return session, nil
}

// End removes a session from the registry. In-memory stores and ledger
// go with it; anything worth keeping must have been saved first.
func (m *Manager) End(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return errors.NotFound("session", sessionID)
	}
	delete(m.sessions, sessionID)
	return nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
