// Package store holds the in-memory chat session store.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/briefbot/briefbot/internal/domain"
)

// ChatStore keeps every chat session for the process in memory. All state is
// lost on restart. Safe for concurrent use; appends to the same session
// serialize behind the mutex so turn order is preserved.
type ChatStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	order    []string // session ids in creation order
	activeID string
}

// NewChatStore creates an empty store with no active session.
func NewChatStore() *ChatStore {
	return &ChatStore{sessions: make(map[string]*domain.Session)}
}

// CreateSession inserts a fresh untitled session, makes it active, and
// returns its id. The previously active session stays in the store.
func (s *ChatStore) CreateSession() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.sessions[id] = &domain.Session{SessionID: id}
	s.order = append(s.order, id)
	s.activeID = id
	return id
}

// GetActive returns a copy of the active session, or nil if none is active.
func (s *ChatStore) GetActive() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[s.activeID]
	if !ok {
		return nil
	}
	return cloneSession(sess)
}

// GetSession returns a copy of the session with the given id.
func (s *ChatStore) GetSession(id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrUnknownSession
	}
	return cloneSession(sess), nil
}

// AppendTurn appends a turn to the active session. The first turn of a
// session also sets its title from the user text.
func (s *ChatStore) AppendTurn(turn domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[s.activeID]
	if !ok {
		return domain.ErrNoActiveSession
	}
	if len(sess.Turns) == 0 {
		sess.Title = turn.User
	}
	sess.Turns = append(sess.Turns, turn)
	return nil
}

// SelectSession makes the given session active. The active id is left
// unchanged when the id is unknown.
func (s *ChatStore) SelectSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrUnknownSession
	}
	s.activeID = id
	return nil
}

// ClearAll drops every session and unsets the active id. Idempotent.
func (s *ChatStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[string]*domain.Session)
	s.order = nil
	s.activeID = ""
}

// ListSessions enumerates sessions as (id, title) pairs in creation order.
func (s *ChatStore) ListSessions() []domain.SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]domain.SessionInfo, 0, len(s.order))
	for _, id := range s.order {
		infos = append(infos, domain.SessionInfo{SessionID: id, Title: s.sessions[id].Title})
	}
	return infos
}

// SetSummary overwrites the summary of the session with the given id.
func (s *ChatStore) SetSummary(id, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.ErrUnknownSession
	}
	sess.Summary = text
	return nil
}

// cloneSession copies a session so callers never share the store's slices.
func cloneSession(sess *domain.Session) *domain.Session {
	out := *sess
	out.Turns = make([]domain.Turn, len(sess.Turns))
	copy(out.Turns, sess.Turns)
	return &out
}
