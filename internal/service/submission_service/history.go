package submission_service

import (
	"context"
	"fmt"
	"math"

	"github.com/bighasbula/ITEENS/internal/database"
	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/bighasbula/ITEENS/internal/service"
)

// GetUserSubmissions returns the caller's submissions, newest first.
func (s *SubmissionService) GetUserSubmissions(ctx context.Context) ([]database.Submission, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	submissions, dbErr := s.DB.GetSubmissionsByUser(ctx, claims.UserID)
	if dbErr != nil {
		return nil, iteens_errors.HandleDBErrors(
			dbErr,
			nil,
			fmt.Sprintf("cannot fetch submissions of user %s", claims.UserID),
		)
	}
	return submissions, nil
}

// GetProblemSubmissions returns all submissions to one problem, newest first.
func (s *SubmissionService) GetProblemSubmissions(
	ctx context.Context,
	problemID string,
) ([]database.Submission, error) {
	if problemID == "" {
		return nil, fmt.Errorf(
			"%w, problem_id must be provided",
			iteens_errors.ErrInvalidRequest,
		)
	}

	submissions, dbErr := s.DB.GetSubmissionsByProblem(ctx, problemID)
	if dbErr != nil {
		return nil, iteens_errors.HandleDBErrors(
			dbErr,
			nil,
			fmt.Sprintf("cannot fetch submissions of problem %s", problemID),
		)
	}
	return submissions, nil
}

// GetUserProblemSubmissions returns the caller's submissions to one problem,
// newest first.
func (s *SubmissionService) GetUserProblemSubmissions(
	ctx context.Context,
	problemID string,
) ([]database.Submission, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	submissions, dbErr := s.DB.GetSubmissionsByUserAndProblem(
		ctx,
		database.GetSubmissionsByUserAndProblemParams{
			UserID:    claims.UserID,
			ProblemID: problemID,
		},
	)
	if dbErr != nil {
		return nil, iteens_errors.HandleDBErrors(
			dbErr,
			nil,
			fmt.Sprintf(
				"cannot fetch submissions of user %s to problem %s",
				claims.UserID,
				problemID,
			),
		)
	}
	return submissions, nil
}

// GetUserSubmissionStats recomputes success rate and average solve time from
// the caller's full history. The persisted aggregates stay incremental; this
// is a read-only derivation.
func (s *SubmissionService) GetUserSubmissionStats(ctx context.Context) (UserSubmissionStats, error) {
	submissions, err := s.GetUserSubmissions(ctx)
	if err != nil {
		return UserSubmissionStats{}, err
	}

	stats := UserSubmissionStats{
		TotalSubmissions: len(submissions),
	}

	var correctTimeSum int64
	for _, submission := range submissions {
		if submission.IsCorrect {
			stats.CorrectSubmissions++
			correctTimeSum += int64(submission.TimeTaken)
		}
	}

	if stats.TotalSubmissions > 0 {
		rate := float64(stats.CorrectSubmissions) / float64(stats.TotalSubmissions) * 100
		stats.SuccessRate = math.Round(rate*100) / 100
	}
	if stats.CorrectSubmissions > 0 {
		avg := float64(correctTimeSum) / float64(stats.CorrectSubmissions)
		stats.AverageTime = math.Round(avg*100) / 100
	}

	return stats, nil
}
