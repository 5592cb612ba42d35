package services

import (
	"errors"
	"testing"
	"time"
)

func TestAdvanceStreak(t *testing.T) {
	testCases := []struct {
		name    string
		last    *time.Time
		now     time.Time
		current int
		want    int
	}{
		{"first completion", nil, date(2024, time.May, 2), 0, 1},
		{"zero streak resets", ptr(date(2024, time.May, 1)), date(2024, time.May, 2), 0, 1},
		{"consecutive day extends", ptr(date(2024, time.May, 1)), date(2024, time.May, 2), 4, 5},
		{"same day keeps", ptr(date(2024, time.May, 2)), date(2024, time.May, 2), 4, 4},
		{"gap resets", ptr(date(2024, time.May, 1)), date(2024, time.May, 4), 9, 1},
		{"month boundary", ptr(date(2024, time.April, 30)), date(2024, time.May, 1), 2, 3},
		{
			"same utc day despite clock time",
			ptr(time.Date(2024, time.May, 2, 1, 0, 0, 0, time.UTC)),
			time.Date(2024, time.May, 2, 23, 59, 0, 0, time.UTC),
			7, 7,
		},
		{
			"next utc day despite short elapsed time",
			ptr(time.Date(2024, time.May, 1, 23, 0, 0, 0, time.UTC)),
			time.Date(2024, time.May, 2, 1, 0, 0, 0, time.UTC),
			7, 8,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := advanceStreak(tc.last, tc.now, tc.current)
			if got != tc.want {
				t.Errorf("advanceStreak = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPickIndexDeterministic(t *testing.T) {
	day := date(2024, time.May, 2)

	first := pickIndex(day, 1000)
	for i := 0; i < 5; i++ {
		if got := pickIndex(day, 1000); got != first {
			t.Fatalf("pickIndex not stable for a fixed date: %d vs %d", got, first)
		}
	}

	// Time of day must not change the selection.
	later := time.Date(2024, time.May, 2, 18, 30, 0, 0, time.UTC)
	if got := pickIndex(later, 1000); got != first {
		t.Errorf("pickIndex varies within a day: %d vs %d", got, first)
	}

	if got := pickIndex(day, 1000); got < 0 || got >= 1000 {
		t.Errorf("pickIndex out of range: %d", got)
	}

	if got := pickIndex(day, 0); got != 0 {
		t.Errorf("pickIndex with no questions should be 0, got %d", got)
	}
}

func TestChallengeDate(t *testing.T) {
	in := time.Date(2024, time.May, 2, 18, 30, 12, 0, time.UTC)
	want := date(2024, time.May, 2)
	if got := challengeDate(in); !got.Equal(want) {
		t.Errorf("challengeDate = %v, want %v", got, want)
	}
}

func TestDailySubmitAnswerOneShot(t *testing.T) {
	db := newTestDB(t)
	service := NewDailyService(db, NewAnswerChecker())

	user := seedUser(t, db, "drew")
	seedQuestion(t, db, "Mount Everest", 400)

	now := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)
	result, err := service.SubmitAnswer(user.ID, "mount everest", now)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !result.Correct || result.CurrentStreak != 1 {
		t.Errorf("first attempt = %+v", result)
	}

	if _, err := service.SubmitAnswer(user.ID, "mount everest", now); !errors.Is(err, ErrChallengeCompleted) {
		t.Errorf("second attempt: err = %v, want ErrChallengeCompleted", err)
	}
}
