package domain

import "time"

// Inbound is a chat message received by the relay listener.
type Inbound struct {
	UpdateID int64
	ChatID   int64
	UserID   int64
	Username string
	Text     string
	SentAt   time.Time
}

// Outcome describes how an inbound message was handled. Reply is sent back
// to the chat when not empty.
type Outcome struct {
	Status Status
	PostID string
	Reply  string
	Err    error
}
