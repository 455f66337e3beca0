package submission_service

import (
	"time"

	"github.com/bighasbula/ITEENS/internal/database"
)

const oneDay = 24 * time.Hour

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// applySubmission computes the user's post-submission aggregate fields.
//
// Solved count and best time move only on correct submissions. The streak
// moves on any submission, in day-start units: the first submission of a
// calendar day extends the streak when the previous one was yesterday (or
// never happened), and resets it to 1 after a missed day. Later submissions
// the same day leave it alone.
func applySubmission(
	user database.User,
	isCorrect bool,
	timeTaken int32,
	now time.Time,
) database.UpdateUserStatsParams {
	params := database.UpdateUserStatsParams{
		UserID:           user.UserID,
		TotalSolved:      user.TotalSolved,
		CurrentStreak:    user.CurrentStreak,
		LastStreakUpdate: user.LastStreakUpdate,
		BestTime:         user.BestTime,
	}

	if isCorrect {
		params.TotalSolved++
		if user.BestTime == nil || timeTaken < *user.BestTime {
			bestTime := timeTaken
			params.BestTime = &bestTime
		}
	}

	todayStart := startOfDay(now)

	// streak already advanced today
	if user.LastStreakUpdate != nil && !user.LastStreakUpdate.Before(todayStart) {
		return params
	}

	if user.LastStreakUpdate == nil {
		// first submission ever
		params.CurrentStreak++
		params.LastStreakUpdate = &todayStart
		return params
	}

	daysSinceLastUpdate := int(todayStart.Sub(*user.LastStreakUpdate) / oneDay)
	switch daysSinceLastUpdate {
	case 1:
		// submitted yesterday, streak continues
		params.CurrentStreak++
		params.LastStreakUpdate = &todayStart
	case 0:
		// unreachable given the guard above; kept so same-day stays a no-op
	default:
		// missed at least one day
		params.CurrentStreak = 1
		params.LastStreakUpdate = &todayStart
	}

	return params
}
