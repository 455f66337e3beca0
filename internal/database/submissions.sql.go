package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const insertSubmission = `
INSERT INTO submissions (id, user_id, problem_id, is_correct, time_taken, hints_used, code, language, execution_time, memory)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, user_id, problem_id, is_correct, time_taken, hints_used, submitted_at, code, language, execution_time, memory
`

type InsertSubmissionParams struct {
	ID            uuid.UUID
	UserID        string
	ProblemID     string
	IsCorrect     bool
	TimeTaken     int32
	HintsUsed     int32
	Code          *string
	Language      *string
	ExecutionTime *string
	Memory        *int32
}

func (q *Queries) InsertSubmission(ctx context.Context, arg InsertSubmissionParams) (Submission, error) {
	row := q.db.QueryRow(
		ctx,
		insertSubmission,
		arg.ID,
		arg.UserID,
		arg.ProblemID,
		arg.IsCorrect,
		arg.TimeTaken,
		arg.HintsUsed,
		arg.Code,
		arg.Language,
		arg.ExecutionTime,
		arg.Memory,
	)
	var i Submission
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ProblemID,
		&i.IsCorrect,
		&i.TimeTaken,
		&i.HintsUsed,
		&i.SubmittedAt,
		&i.Code,
		&i.Language,
		&i.ExecutionTime,
		&i.Memory,
	)
	return i, err
}

const getSubmissionsByUser = `
SELECT id, user_id, problem_id, is_correct, time_taken, hints_used, submitted_at, code, language, execution_time, memory
FROM submissions
WHERE user_id = $1
ORDER BY submitted_at DESC
`

func (q *Queries) GetSubmissionsByUser(ctx context.Context, userID string) ([]Submission, error) {
	rows, err := q.db.Query(ctx, getSubmissionsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

const getSubmissionsByProblem = `
SELECT id, user_id, problem_id, is_correct, time_taken, hints_used, submitted_at, code, language, execution_time, memory
FROM submissions
WHERE problem_id = $1
ORDER BY submitted_at DESC
`

func (q *Queries) GetSubmissionsByProblem(ctx context.Context, problemID string) ([]Submission, error) {
	rows, err := q.db.Query(ctx, getSubmissionsByProblem, problemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

const getSubmissionsByUserAndProblem = `
SELECT id, user_id, problem_id, is_correct, time_taken, hints_used, submitted_at, code, language, execution_time, memory
FROM submissions
WHERE user_id = $1 AND problem_id = $2
ORDER BY submitted_at DESC
`

type GetSubmissionsByUserAndProblemParams struct {
	UserID    string
	ProblemID string
}

func (q *Queries) GetSubmissionsByUserAndProblem(
	ctx context.Context,
	arg GetSubmissionsByUserAndProblemParams,
) ([]Submission, error) {
	rows, err := q.db.Query(ctx, getSubmissionsByUserAndProblem, arg.UserID, arg.ProblemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

const getRecentSubmissionsByUser = `
SELECT id, user_id, problem_id, is_correct, time_taken, hints_used, submitted_at, code, language, execution_time, memory
FROM submissions
WHERE user_id = $1
ORDER BY submitted_at DESC
LIMIT $2
`

type GetRecentSubmissionsByUserParams struct {
	UserID string
	Limit  int32
}

func (q *Queries) GetRecentSubmissionsByUser(
	ctx context.Context,
	arg GetRecentSubmissionsByUserParams,
) ([]Submission, error) {
	rows, err := q.db.Query(ctx, getRecentSubmissionsByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

const countSubmissionsByUser = `
SELECT COUNT(*) FROM submissions WHERE user_id = $1
`

func (q *Queries) CountSubmissionsByUser(ctx context.Context, userID string) (int64, error) {
	row := q.db.QueryRow(ctx, countSubmissionsByUser, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

func scanSubmissions(rows pgx.Rows) ([]Submission, error) {
	items := []Submission{}
	for rows.Next() {
		var i Submission
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.ProblemID,
			&i.IsCorrect,
			&i.TimeTaken,
			&i.HintsUsed,
			&i.SubmittedAt,
			&i.Code,
			&i.Language,
			&i.ExecutionTime,
			&i.Memory,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
