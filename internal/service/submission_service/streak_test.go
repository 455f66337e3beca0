package submission_service

import (
	"os"
	"testing"
	"time"

	"github.com/bighasbula/ITEENS/internal/database"
	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	os.Exit(m.Run())
}

var testNow = time.Date(2025, time.March, 12, 15, 30, 0, 0, time.Local)

func userWithStreak(streak int32, lastUpdate *time.Time) database.User {
	return database.User{
		UserID:           "user-1",
		TotalSolved:      7,
		CurrentStreak:    streak,
		LastStreakUpdate: lastUpdate,
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestApplySubmissionFirstEver(t *testing.T) {
	user := userWithStreak(0, nil)
	user.TotalSolved = 0

	params := applySubmission(user, true, 120, testNow)

	if params.CurrentStreak != 1 {
		t.Errorf("first submission ever must start the streak at 1, got %d", params.CurrentStreak)
	}
	if params.LastStreakUpdate == nil {
		t.Fatal("streak update timestamp must be set")
	}
	wantDay := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)
	if !params.LastStreakUpdate.Equal(wantDay) {
		t.Errorf("streak timestamp must be the local day start, got %v", *params.LastStreakUpdate)
	}
	if params.TotalSolved != 1 {
		t.Errorf("expected total solved 1, got %d", params.TotalSolved)
	}
}

func TestApplySubmissionConsecutiveDay(t *testing.T) {
	yesterday := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.Local)
	user := userWithStreak(5, timePtr(yesterday))

	params := applySubmission(user, true, 120, testNow)

	if params.CurrentStreak != 6 {
		t.Errorf("a submission the day after the last one must extend the streak, got %d", params.CurrentStreak)
	}
}

func TestApplySubmissionSameDay(t *testing.T) {
	today := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)
	user := userWithStreak(5, timePtr(today))

	params := applySubmission(user, true, 120, testNow)

	if params.CurrentStreak != 5 {
		t.Errorf("a second submission the same day must not move the streak, got %d", params.CurrentStreak)
	}
	if !params.LastStreakUpdate.Equal(today) {
		t.Errorf("same-day submission must keep the streak timestamp, got %v", *params.LastStreakUpdate)
	}
}

func TestApplySubmissionAfterGap(t *testing.T) {
	fiveDaysAgo := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.Local)
	user := userWithStreak(5, timePtr(fiveDaysAgo))

	params := applySubmission(user, true, 120, testNow)

	if params.CurrentStreak != 1 {
		t.Errorf("a missed day must reset the streak to 1, got %d", params.CurrentStreak)
	}
}

func TestApplySubmissionIncorrectStillMovesStreak(t *testing.T) {
	yesterday := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.Local)
	user := userWithStreak(2, timePtr(yesterday))

	params := applySubmission(user, false, 300, testNow)

	if params.CurrentStreak != 3 {
		t.Errorf("an incorrect submission still counts for the streak, got %d", params.CurrentStreak)
	}
	if params.TotalSolved != user.TotalSolved {
		t.Errorf("an incorrect submission must not raise total solved, got %d", params.TotalSolved)
	}
	if params.BestTime != nil {
		t.Errorf("an incorrect submission must not set best time, got %d", *params.BestTime)
	}
}

func TestApplySubmissionBestTimeKeepsMinimum(t *testing.T) {
	user := userWithStreak(0, nil)
	user.TotalSolved = 0

	for _, timeTaken := range []int32{40, 25, 30} {
		params := applySubmission(user, true, timeTaken, testNow)
		user.TotalSolved = params.TotalSolved
		user.CurrentStreak = params.CurrentStreak
		user.LastStreakUpdate = params.LastStreakUpdate
		user.BestTime = params.BestTime
	}

	if user.BestTime == nil {
		t.Fatal("best time must be set after correct submissions")
	}
	if *user.BestTime != 25 {
		t.Errorf("best time must be the minimum over correct submissions, got %d", *user.BestTime)
	}
	if user.TotalSolved != 3 {
		t.Errorf("expected 3 solved, got %d", user.TotalSolved)
	}
}

func TestApplySubmissionLateNightToEarlyMorning(t *testing.T) {
	// 23:50 yesterday then 00:10 today is still a consecutive-day pair
	lateNight := time.Date(2025, time.March, 11, 23, 50, 0, 0, time.Local)
	user := userWithStreak(0, nil)

	params := applySubmission(user, true, 60, lateNight)
	user.CurrentStreak = params.CurrentStreak
	user.LastStreakUpdate = params.LastStreakUpdate

	earlyMorning := time.Date(2025, time.March, 12, 0, 10, 0, 0, time.Local)
	params = applySubmission(user, true, 60, earlyMorning)

	if params.CurrentStreak != 2 {
		t.Errorf("day boundaries are local midnights, expected streak 2, got %d", params.CurrentStreak)
	}
}
