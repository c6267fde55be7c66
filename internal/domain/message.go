package domain

import "time"

// Message belongs to exactly one match. ReceiverID is always the match
// participant who is not the sender; it is denormalized so unread counts
// are a single indexed predicate.
type Message struct {
	ID         string    `json:"id" db:"id"`
	MatchID    string    `json:"match_id" db:"match_id"`
	SenderID   string    `json:"sender_id" db:"sender_id"`
	ReceiverID string    `json:"receiver_id" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	IsRead     bool      `json:"is_read" db:"is_read"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Conversation is one row of the inbox: a match seen from one
// participant's side.
type Conversation struct {
	MatchID     string      `json:"match_id"`
	OtherUser   UserSummary `json:"other_user"`
	LastMessage *Message    `json:"last_message"`
	UnreadCount int         `json:"unread_count"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
