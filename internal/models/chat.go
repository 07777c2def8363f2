package models

import "time"

// ChatRole identifies who produced a chat turn
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatTurn is one message in a session transcript
type ChatTurn struct {
	Role    ChatRole  `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// ChatReply is the assistant answer plus the data that informed it
type ChatReply struct {
	SessionID string     `json:"session_id"`
	Content   string     `json:"content"`
	Symbol    string     `json:"symbol,omitempty"`
	Quote     *Quote     `json:"quote,omitempty"`
	Headlines []NewsItem `json:"headlines,omitempty"`
	Source    string     `json:"source"` // "model" or "fallback"
}
