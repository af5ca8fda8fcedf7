package models

import "time"

// Direction tells whether a chat entry was received or sent.
type Direction string

const (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
)

// Conversation is an inbox thread with one contact.
type Conversation struct {
	ID          int64
	ContactID   int64
	Name        string
	Phone       string
	LastMessage string
	LastAt      time.Time
	Unread      int
}

// ChatEntry is one bubble in a conversation.
type ChatEntry struct {
	// ID is a local identifier; entries sent in the current session get a
	// UUID, sample entries keep their stored id.
	ID        string
	Body      string
	At        time.Time
	Direction Direction
	// Status is the last known delivery state of outgoing entries.
	Status string
	// ProviderID is the backend message id once known.
	ProviderID string
}
