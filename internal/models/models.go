package models

import "time"

// Score holds the per-difficulty counters for a user. Counters only ever
// increase; there is no decrement path in the game.
type Score struct {
	Easy   int `json:"easy" db:"score_easy"`
	Medium int `json:"medium" db:"score_medium"`
	Hard   int `json:"hard" db:"score_hard"`
}

// User represents a registered player.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Score        Score     `json:"score"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// PuzzleQuestion is a banana puzzle fetched from the external provider and
// persisted for later review.
type PuzzleQuestion struct {
	ID        int64     `json:"id" db:"id"`
	Question  string    `json:"question" db:"question"`
	Solution  int       `json:"solution" db:"solution"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
