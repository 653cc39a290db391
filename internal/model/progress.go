package model

import "time"

// GameProgress is one recorded score for a completed practice session.
// Records are append-only and kept in insertion order per user.
type GameProgress struct {
	ID          int64     `json:"id"          db:"id"`
	UserID      int64     `json:"userId"      db:"user_id"`
	GameType    string    `json:"gameType"    db:"game_type"` // e.g. "math_easy"
	Score       int       `json:"score"       db:"score"`
	CompletedAt time.Time `json:"completedAt" db:"completed_at"`
}
