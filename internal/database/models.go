package database

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UserID           string     `json:"user_id"`
	Username         *string    `json:"username"`
	TotalSolved      int32      `json:"total_solved"`
	CurrentStreak    int32      `json:"current_streak"`
	LastStreakUpdate *time.Time `json:"last_streak_update"`
	BestTime         *int32     `json:"best_time"`
	JoinedAt         time.Time  `json:"joined_at"`
}

type Submission struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	ProblemID     string    `json:"problem_id"`
	IsCorrect     bool      `json:"is_correct"`
	TimeTaken     int32     `json:"time_taken"`
	HintsUsed     int32     `json:"hints_used"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Code          *string   `json:"code"`
	Language      *string   `json:"language"`
	ExecutionTime *string   `json:"execution_time"`
	Memory        *int32    `json:"memory"`
}
