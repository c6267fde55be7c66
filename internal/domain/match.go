package domain

import "time"

type MatchStatus string

const MatchStatusMatched MatchStatus = "MATCHED"

// Match pairs exactly two distinct users. The pair is stored normalized
// (User1ID < User2ID) so the unique constraint on (user1_id, user2_id)
// guarantees at most one match per unordered pair.
type Match struct {
	ID        string      `json:"id" db:"id"`
	User1ID   string      `json:"user1_id" db:"user1_id"`
	User2ID   string      `json:"user2_id" db:"user2_id"`
	Status    MatchStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

func (m *Match) HasUser(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// OtherUserID returns the match participant that is not userID. Callers
// check HasUser first; for a non-participant it returns the empty string.
func (m *Match) OtherUserID(userID string) string {
	if m.User1ID == userID {
		return m.User2ID
	}
	if m.User2ID == userID {
		return m.User1ID
	}
	return ""
}

// NormalizePair orders two user ids for storage under the unordered-pair
// constraint.
func NormalizePair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
