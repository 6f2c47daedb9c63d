package entity

import (
	"time"

	"github.com/google/uuid"
)

// DayComplete is the next-day sentinel for a user who finished every slot.
const DayComplete = 0

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

type ChallengeDay struct {
	UserID      uuid.UUID  `json:"uid"`
	DayNumber   int        `json:"day_number"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type UserProgress struct {
	UserID      uuid.UUID  `json:"uid"`
	Streak      int        `json:"streak"`
	LastCheckIn *time.Time `json:"last_check_in,omitempty"`
}

type ChallengeStats struct {
	CompletedCount      int   `json:"completed_count"`
	TotalDays           int   `json:"total_days"`
	Percent             int   `json:"percent"`
	CurrentStreak       int   `json:"current_streak"`
	NextDay             int   `json:"next_day"`
	CooldownRemainingMS int64 `json:"cooldown_remaining_ms"`
	IsChallengeComplete bool  `json:"is_challenge_complete"`
}

// CompletionEvent is handed to downstream consumers (achievements,
// notifications) at-least-once. ProfileTag is opaque metadata.
type CompletionEvent struct {
	UserID     uuid.UUID `json:"uid"`
	DayNumber  int       `json:"day_number"`
	NewStreak  int       `json:"new_streak"`
	Timestamp  time.Time `json:"timestamp"`
	ProfileTag string    `json:"profile_tag,omitempty"`
}
