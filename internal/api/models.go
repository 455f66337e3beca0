package api

import (
	"github.com/bighasbula/ITEENS/internal/service/judge_service"
	"github.com/bighasbula/ITEENS/internal/service/leaderboard_service"
	"github.com/bighasbula/ITEENS/internal/service/problem_service"
	"github.com/bighasbula/ITEENS/internal/service/submission_service"
	"github.com/bighasbula/ITEENS/internal/service/user_service"
)

type Api struct {
	JudgeServiceConfig       *judge_service.JudgeService
	ProblemServiceConfig     *problem_service.ProblemService
	UserServiceConfig        *user_service.UserService
	SubmissionServiceConfig  *submission_service.SubmissionService
	LeaderboardServiceConfig *leaderboard_service.LeaderboardService
}

// RunCodeRequest asks for the caller's code to be judged against a catalog
// problem's test cases.
type RunCodeRequest struct {
	ProblemID string `json:"problem_id" validate:"required"`
	Language  string `json:"language" validate:"required,oneof=python javascript java cpp"`
	Code      string `json:"code" validate:"required"`
}
