package domain

// Push event types delivered over live connections.
const (
	PushNewMatch     = "NEW_MATCH"
	PushProfileLiked = "PROFILE_LIKED"
	PushNewMessage   = "NEW_MESSAGE"
	PushUnreadCount  = "UNREAD_COUNT"
	PushTyping       = "TYPING"
)

// PushEvent is the payload shape shared by every real-time push. Only the
// fields relevant to the event type are set.
type PushEvent struct {
	Type        string       `json:"type"`
	MatchID     string       `json:"match_id,omitempty"`
	SenderID    string       `json:"sender_id,omitempty"`
	SenderName  string       `json:"sender_name,omitempty"`
	Preview     string       `json:"preview,omitempty"`
	UnreadCount *int         `json:"unread_count,omitempty"`
	OtherUser   *UserSummary `json:"other_user,omitempty"`
	Message     *Message     `json:"message,omitempty"`
	IsTyping    *bool        `json:"is_typing,omitempty"`
}

// Notifier is the injected push capability. Delivery is best-effort:
// events for users with no live connection are dropped silently, and the
// recipient re-derives state (unread count, match list) on the next pull.
type Notifier interface {
	// Deliver pushes an event to every live connection owned by the user.
	Deliver(userID string, event PushEvent)
	// BroadcastToMatch pushes an event to every connection currently
	// joined to the match's room.
	BroadcastToMatch(matchID string, event PushEvent)
}
