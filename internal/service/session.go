package service

import "github.com/briefbot/briefbot/internal/domain"

// NewSession starts a fresh conversation and makes it active.
func (s *Service) NewSession() string {
	return s.chats.CreateSession()
}

// ListSessions enumerates sessions in creation order.
func (s *Service) ListSessions() []domain.SessionInfo {
	return s.chats.ListSessions()
}

// SelectSession makes the given session active.
func (s *Service) SelectSession(id string) error {
	return s.chats.SelectSession(id)
}

// GetSession returns the session with its turns and summary.
func (s *Service) GetSession(id string) (*domain.Session, error) {
	return s.chats.GetSession(id)
}

// ActiveHistory returns the turns of the active session in chronological
// order, or an empty list when no session is active.
func (s *Service) ActiveHistory() []domain.Turn {
	if sess := s.chats.GetActive(); sess != nil {
		return sess.Turns
	}
	return []domain.Turn{}
}

// ClearHistory drops every session.
func (s *Service) ClearHistory() {
	s.chats.ClearAll()
}
