package database

import (
	"context"
	"time"
)

const createUser = `
INSERT INTO users (user_id, username, total_solved, current_streak, best_time, last_streak_update)
VALUES ($1, $2, 0, 0, NULL, NULL)
RETURNING user_id, username, total_solved, current_streak, last_streak_update, best_time, joined_at
`

type CreateUserParams struct {
	UserID   string
	Username *string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser, arg.UserID, arg.Username)
	var i User
	err := row.Scan(
		&i.UserID,
		&i.Username,
		&i.TotalSolved,
		&i.CurrentStreak,
		&i.LastStreakUpdate,
		&i.BestTime,
		&i.JoinedAt,
	)
	return i, err
}

const getUserByUserID = `
SELECT user_id, username, total_solved, current_streak, last_streak_update, best_time, joined_at
FROM users
WHERE user_id = $1
`

func (q *Queries) GetUserByUserID(ctx context.Context, userID string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByUserID, userID)
	var i User
	err := row.Scan(
		&i.UserID,
		&i.Username,
		&i.TotalSolved,
		&i.CurrentStreak,
		&i.LastStreakUpdate,
		&i.BestTime,
		&i.JoinedAt,
	)
	return i, err
}

const getUserByUserIDForUpdate = `
SELECT user_id, username, total_solved, current_streak, last_streak_update, best_time, joined_at
FROM users
WHERE user_id = $1
FOR UPDATE
`

// GetUserByUserIDForUpdate locks the user row for the duration of the
// surrounding transaction so concurrent stat updates serialize.
func (q *Queries) GetUserByUserIDForUpdate(ctx context.Context, userID string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByUserIDForUpdate, userID)
	var i User
	err := row.Scan(
		&i.UserID,
		&i.Username,
		&i.TotalSolved,
		&i.CurrentStreak,
		&i.LastStreakUpdate,
		&i.BestTime,
		&i.JoinedAt,
	)
	return i, err
}

const getUserByUsername = `
SELECT user_id, username, total_solved, current_streak, last_streak_update, best_time, joined_at
FROM users
WHERE username = $1
`

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByUsername, username)
	var i User
	err := row.Scan(
		&i.UserID,
		&i.Username,
		&i.TotalSolved,
		&i.CurrentStreak,
		&i.LastStreakUpdate,
		&i.BestTime,
		&i.JoinedAt,
	)
	return i, err
}

const updateUserStats = `
UPDATE users
SET total_solved = $2,
    current_streak = $3,
    last_streak_update = $4,
    best_time = $5
WHERE user_id = $1
RETURNING user_id, username, total_solved, current_streak, last_streak_update, best_time, joined_at
`

type UpdateUserStatsParams struct {
	UserID           string
	TotalSolved      int32
	CurrentStreak    int32
	LastStreakUpdate *time.Time
	BestTime         *int32
}

func (q *Queries) UpdateUserStats(ctx context.Context, arg UpdateUserStatsParams) (User, error) {
	row := q.db.QueryRow(
		ctx,
		updateUserStats,
		arg.UserID,
		arg.TotalSolved,
		arg.CurrentStreak,
		arg.LastStreakUpdate,
		arg.BestTime,
	)
	var i User
	err := row.Scan(
		&i.UserID,
		&i.Username,
		&i.TotalSolved,
		&i.CurrentStreak,
		&i.LastStreakUpdate,
		&i.BestTime,
		&i.JoinedAt,
	)
	return i, err
}
