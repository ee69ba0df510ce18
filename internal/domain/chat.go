// Package domain defines the core domain models for briefbot.
package domain

// Turn represents a single user/bot exchange. Immutable once recorded.
type Turn struct {
	Date     string   `json:"date"`
	User     string   `json:"user"`
	BotLines []string `json:"bot"`
}

// Session represents one conversation thread. Turns are append-only and kept
// in chronological order. Title is set from the first user message and never
// changes afterwards.
type Session struct {
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
	Turns     []Turn `json:"turns"`
	Summary   string `json:"summary,omitempty"`
}

// SessionInfo is a sidebar-style listing entry for a session.
type SessionInfo struct {
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
}
