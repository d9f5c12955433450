package httpapi

import (
	"sync"

	"github.com/luyandaaaa/Farm2city/internal/ussd"
)

// SessionManager tracks active sessions by id. Every session starts from the
// same seed data.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*ussd.Session
	seed     ussd.Seed
	opts     []ussd.Option
}

func NewSessionManager(seed ussd.Seed, opts ...ussd.Option) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*ussd.Session),
		seed:     seed,
		opts:     opts,
	}
}

func (m *SessionManager) Create() *ussd.Session {
	s := ussd.NewSession(m.seed, m.opts...)
	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	return s
}

func (m *SessionManager) Get(id string) (*ussd.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Delete closes the session and forgets it.
func (m *SessionManager) Delete(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}

func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
