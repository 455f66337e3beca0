package submission_service

import (
	"github.com/bighasbula/ITEENS/internal/database"
	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/bighasbula/ITEENS/internal/service/leaderboard_service"
	"github.com/bighasbula/ITEENS/internal/service/user_service"
	"github.com/google/uuid"
)

type SubmissionService struct {
	DB                *database.Queries
	UserConfig        *user_service.UserService
	LeaderboardConfig *leaderboard_service.LeaderboardService
}

// RecordSubmissionRequest is the UI-facing payload of a finished
// problem-solving session.
type RecordSubmissionRequest struct {
	ProblemID       string  `json:"problem_id" validate:"required"`
	Language        *string `json:"language"`
	Code            *string `json:"code"`
	ExecutionTime   *string `json:"execution_time"`
	Memory          *int32  `json:"memory"`
	TestCasesPassed int32   `json:"test_cases_passed" validate:"gte=0"`
	TotalTestCases  int32   `json:"total_test_cases" validate:"gte=1"`
	TimeTaken       int32   `json:"time_taken" validate:"gte=0"`
	HintsUsed       int32   `json:"hints_used" validate:"gte=0"`
}

// IsCorrect derives correctness from the test run outcome.
func (r RecordSubmissionRequest) IsCorrect() bool {
	return r.TestCasesPassed == r.TotalTestCases
}

// UserStatsSnapshot is the post-update view of the caller's aggregates.
type UserStatsSnapshot struct {
	TotalSolved   int32  `json:"total_solved"`
	CurrentStreak int32  `json:"current_streak"`
	BestTime      *int32 `json:"best_time"`
}

type RecordSubmissionResponse struct {
	SubmissionID uuid.UUID         `json:"submission_id"`
	UserStats    UserStatsSnapshot `json:"user_stats"`
}

// UserSubmissionStats aggregates a user's whole submission history on demand.
type UserSubmissionStats struct {
	TotalSubmissions   int     `json:"total_submissions"`
	CorrectSubmissions int     `json:"correct_submissions"`
	SuccessRate        float64 `json:"success_rate"`
	AverageTime        float64 `json:"average_time"`
}

var errMsgs = map[string]map[string]string{
	iteens_errors.CodeForeignKeyConstraint: {
		"fk_submissions_user": "no record found for user",
	},
}
