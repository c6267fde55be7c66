package domain

import "time"

type PostType string

const (
	PostTypePost          PostType = "POST"
	PostTypeTestimony     PostType = "TESTIMONY"
	PostTypeVerseOfDay    PostType = "VERSE_OF_DAY"
	PostTypeEncouragement PostType = "ENCOURAGEMENT"
)

type CommunityPost struct {
	ID           string      `json:"id" db:"id"`
	UserID       string      `json:"user_id" db:"user_id"`
	Content      string      `json:"content" db:"content"`
	Type         PostType    `json:"type" db:"type"`
	Verse        *string     `json:"verse" db:"verse"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	Author       UserSummary `json:"author" db:"-"`
	LikeCount    int         `json:"like_count" db:"like_count"`
	CommentCount int         `json:"comment_count" db:"comment_count"`
}

type PostComment struct {
	ID        string      `json:"id" db:"id"`
	PostID    string      `json:"post_id" db:"post_id"`
	UserID    string      `json:"user_id" db:"user_id"`
	Content   string      `json:"content" db:"content"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	Author    UserSummary `json:"author" db:"-"`
}

type EventType string

const (
	EventTypeBibleStudy EventType = "BIBLE_STUDY"
	EventTypeWorship    EventType = "WORSHIP"
	EventTypeSocial     EventType = "SOCIAL"
	EventTypeService    EventType = "SERVICE"
)

type Event struct {
	ID            string      `json:"id" db:"id"`
	HostID        string      `json:"host_id" db:"host_id"`
	Title         string      `json:"title" db:"title"`
	Description   string      `json:"description" db:"description"`
	Type          EventType   `json:"type" db:"type"`
	Date          time.Time   `json:"date" db:"date"`
	Time          string      `json:"time" db:"time"`
	Location      string      `json:"location" db:"location"`
	IsVirtual     bool        `json:"is_virtual" db:"is_virtual"`
	MaxAttendees  *int        `json:"max_attendees" db:"max_attendees"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	Host          UserSummary `json:"host" db:"-"`
	AttendeeCount int         `json:"attendee_count" db:"attendee_count"`
}

type PrayerRequest struct {
	ID          string       `json:"id" db:"id"`
	UserID      *string      `json:"user_id" db:"user_id"`
	Content     string       `json:"content" db:"content"`
	IsAnonymous bool         `json:"is_anonymous" db:"is_anonymous"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	Author      *UserSummary `json:"author,omitempty" db:"-"`
	PrayerCount int          `json:"prayer_count" db:"prayer_count"`
}

type BlessWallEntry struct {
	ID        string      `json:"id" db:"id"`
	UserID    string      `json:"user_id" db:"user_id"`
	Content   string      `json:"content" db:"content"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	Author    UserSummary `json:"author" db:"-"`
}
