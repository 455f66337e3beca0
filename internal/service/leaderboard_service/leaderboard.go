package leaderboard_service

import (
	"context"
	"fmt"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const solvedLeaderboardKey = "leaderboard:solved"

type LeaderboardService struct {
	RDB *redis.Client
}

type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Solved int64  `json:"solved"`
}

// RecordSolve bumps the user's solved count on the leaderboard. Callers treat
// this as best effort; a returned error must not fail the submission.
func (l *LeaderboardService) RecordSolve(ctx context.Context, userID string) error {
	if err := l.RDB.ZIncrBy(ctx, solvedLeaderboardKey, 1, userID).Err(); err != nil {
		err = fmt.Errorf(
			"%w, cannot increment leaderboard score of user %s, %w",
			iteens_errors.ErrInternal,
			userID,
			err,
		)
		log.Error(err)
		return err
	}
	return nil
}

// Top returns the highest solved counts in descending order.
func (l *LeaderboardService) Top(ctx context.Context, limit int64) ([]LeaderboardEntry, error) {
	scores, err := l.RDB.ZRevRangeWithScores(ctx, solvedLeaderboardKey, 0, limit-1).Result()
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot fetch leaderboard, %w",
			iteens_errors.ErrInternal,
			err,
		)
		log.Error(err)
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(scores))
	for _, score := range scores {
		userID, ok := score.Member.(string)
		if !ok {
			log.Warnf("skipping leaderboard member of unexpected type %T", score.Member)
			continue
		}
		entries = append(entries, LeaderboardEntry{
			UserID: userID,
			Solved: int64(score.Score),
		})
	}
	return entries, nil
}
