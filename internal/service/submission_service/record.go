package submission_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bighasbula/ITEENS/internal/database"
	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/bighasbula/ITEENS/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

// Record appends the submission and updates the caller's aggregates as one
// transaction. The user row is locked for the duration, so concurrent
// submissions from the same user serialize instead of clobbering each other.
func (s *SubmissionService) Record(
	ctx context.Context,
	req RecordSubmissionRequest,
) (RecordSubmissionResponse, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return RecordSubmissionResponse{}, err
	}

	if err = service.ValidateInput(req); err != nil {
		return RecordSubmissionResponse{}, err
	}
	if req.TestCasesPassed > req.TotalTestCases {
		return RecordSubmissionResponse{}, fmt.Errorf(
			"%w, test_cases_passed cannot exceed total_test_cases",
			iteens_errors.ErrInvalidRequest,
		)
	}

	tx, err := service.GetNewTransaction(ctx)
	if err != nil {
		return RecordSubmissionResponse{}, err
	}
	defer tx.Rollback(ctx)

	qtx := s.DB.WithTx(tx)

	user, dbErr := qtx.GetUserByUserIDForUpdate(ctx, claims.UserID)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"%w, cannot record submission of unknown user %s",
				iteens_errors.ErrUserNotFound,
				claims.UserID,
			)
			log.Error(err)
			return RecordSubmissionResponse{}, err
		}
		return RecordSubmissionResponse{}, iteens_errors.HandleDBErrors(
			dbErr,
			errMsgs,
			fmt.Sprintf("cannot lock user row of %s", claims.UserID),
		)
	}

	isCorrect := req.IsCorrect()

	submission, dbErr := qtx.InsertSubmission(ctx, database.InsertSubmissionParams{
		ID:            uuid.New(),
		UserID:        claims.UserID,
		ProblemID:     req.ProblemID,
		IsCorrect:     isCorrect,
		TimeTaken:     req.TimeTaken,
		HintsUsed:     req.HintsUsed,
		Code:          req.Code,
		Language:      req.Language,
		ExecutionTime: req.ExecutionTime,
		Memory:        req.Memory,
	})
	if dbErr != nil {
		return RecordSubmissionResponse{}, iteens_errors.HandleDBErrors(
			dbErr,
			errMsgs,
			fmt.Sprintf(
				"cannot insert submission of user %s to problem %s",
				claims.UserID,
				req.ProblemID,
			),
		)
	}

	updated, dbErr := qtx.UpdateUserStats(
		ctx,
		applySubmission(user, isCorrect, req.TimeTaken, time.Now()),
	)
	if dbErr != nil {
		return RecordSubmissionResponse{}, iteens_errors.HandleDBErrors(
			dbErr,
			errMsgs,
			fmt.Sprintf("cannot update aggregates of user %s", claims.UserID),
		)
	}

	if err = tx.Commit(ctx); err != nil {
		err = fmt.Errorf(
			"%w, cannot commit submission of user %s, %w",
			iteens_errors.ErrInternal,
			claims.UserID,
			err,
		)
		log.Error(err)
		return RecordSubmissionResponse{}, err
	}

	log.WithFields(log.Fields{
		"user_id":    claims.UserID,
		"problem_id": req.ProblemID,
		"is_correct": isCorrect,
	}).Info("recorded submission")

	// best effort side effects, never fail the recorded submission
	s.UserConfig.InvalidateCache(claims.UserID)
	if isCorrect && s.LeaderboardConfig != nil {
		if lbErr := s.LeaderboardConfig.RecordSolve(ctx, claims.UserID); lbErr != nil {
			log.Warnf("leaderboard update skipped for user %s, %v", claims.UserID, lbErr)
		}
	}

	return RecordSubmissionResponse{
		SubmissionID: submission.ID,
		UserStats: UserStatsSnapshot{
			TotalSolved:   updated.TotalSolved,
			CurrentStreak: updated.CurrentStreak,
			BestTime:      updated.BestTime,
		},
	}, nil
}
