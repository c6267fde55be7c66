package domain

import "time"

// Like is a directed edge: LikerID expressed interest in LikedID. The
// ordered pair is unique and a like is never deleted by normal user flow.
type Like struct {
	ID        string    `json:"id" db:"id"`
	LikerID   string    `json:"liker_id" db:"liker_id"`
	LikedID   string    `json:"liked_id" db:"liked_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
