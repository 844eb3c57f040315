package models

import "time"

// Challenge types and difficulties
const (
	ChallengeTypeDaily  = "daily"
	ChallengeTypeWeekly = "weekly"
	ChallengeTypeStreak = "streak"
	ChallengeTypeGoal   = "goal"

	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// ChallengeRequirements is the JSON-encoded requirement payload
type ChallengeRequirements struct {
	Target    int    `json:"target"`
	Metric    string `json:"metric"`
	Timeframe string `json:"timeframe,omitempty"`
}

// Challenge is an admin-authored challenge template
type Challenge struct {
	ID           uint64                `json:"id" db:"id"`
	Title        string                `json:"title" db:"title"`
	Description  string                `json:"description" db:"description"`
	Type         string                `json:"type" db:"type"`
	Difficulty   string                `json:"difficulty" db:"difficulty"`
	Points       int                   `json:"points" db:"points"`
	Requirements ChallengeRequirements `json:"requirements" db:"requirements"`
	StartDate    time.Time             `json:"start_date" db:"start_date"`
	EndDate      time.Time             `json:"end_date" db:"end_date"`
	IsActive     bool                  `json:"is_active" db:"is_active"`
	CreatedAt    time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at" db:"updated_at"`
}

// ChallengeParticipant is the per-user join row. Completed is terminal:
// progress cannot be logged and the participation cannot be quit once set.
type ChallengeParticipant struct {
	ID             uint64     `json:"id" db:"id"`
	ChallengeID    uint64     `json:"challenge_id" db:"challenge_id"`
	UserID         uint64     `json:"user_id" db:"user_id"`
	Progress       int        `json:"progress" db:"progress"`
	Completed      bool       `json:"completed" db:"completed"`
	CompletionDate *time.Time `json:"completion_date" db:"completion_date"`
	StreakCount    int        `json:"streak_count" db:"streak_count"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// ChallengeView is a challenge decorated with participation data for one viewer
type ChallengeView struct {
	Challenge
	ParticipantsCount int                   `json:"participants_count"`
	UserProgress      *ChallengeParticipant `json:"user_progress,omitempty"`
}

// Badge is one earned badge record
type Badge struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	EarnedAt time.Time `json:"earned_at"`
}

// UserRewards accumulates points and badges; lazily created on first access
type UserRewards struct {
	ID        uint64    `json:"id" db:"id"`
	UserID    uint64    `json:"user_id" db:"user_id"`
	Points    int       `json:"points" db:"points"`
	Badges    []Badge   `json:"badges" db:"badges"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
