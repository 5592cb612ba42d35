package services

import (
	"testing"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSpoilerCutoff(t *testing.T) {
	custom := date(2020, time.January, 1)

	testCases := []struct {
		name string
		user *models.User
		now  time.Time
		want *time.Time
	}{
		{"nil user", nil, date(2024, time.March, 10), nil},
		{
			"disabled",
			&models.User{SpoilerBlockEnabled: false},
			date(2024, time.March, 10),
			nil,
		},
		{
			"custom cutoff wins",
			&models.User{SpoilerBlockEnabled: true, SpoilerBlockDate: &custom},
			date(2024, time.March, 10),
			&custom,
		},
		{
			"default before september",
			&models.User{SpoilerBlockEnabled: true},
			date(2024, time.March, 10),
			ptr(date(2023, time.September, 1)),
		},
		{
			"default after september",
			&models.User{SpoilerBlockEnabled: true},
			date(2024, time.October, 2),
			ptr(date(2024, time.September, 1)),
		},
		{
			"default on september first",
			&models.User{SpoilerBlockEnabled: true},
			date(2024, time.September, 1),
			ptr(date(2024, time.September, 1)),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SpoilerCutoff(tc.user, tc.now)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("SpoilerCutoff() = %v, want %v", got, tc.want)
			}
			if got != nil && !got.Equal(*tc.want) {
				t.Errorf("SpoilerCutoff() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCombineCutoffs(t *testing.T) {
	early := date(2019, time.June, 1)
	late := date(2023, time.June, 1)

	if got := CombineCutoffs(nil, nil); got != nil {
		t.Errorf("all-nil combination should be nil, got %v", got)
	}

	got := CombineCutoffs(&late, nil, &early)
	if got == nil || !got.Equal(early) {
		t.Errorf("CombineCutoffs = %v, want %v", got, early)
	}

	// The result must be a copy, not an alias of the input.
	*got = late
	if !early.Equal(date(2019, time.June, 1)) {
		t.Error("CombineCutoffs aliased its input")
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}
