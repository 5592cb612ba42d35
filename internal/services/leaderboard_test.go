package services

import (
	"testing"
	"time"
)

func TestWindowStart(t *testing.T) {
	// A Wednesday.
	now := time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC)

	testCases := []struct {
		window  string
		want    *time.Time
		wantErr bool
	}{
		{WindowToday, ptr(date(2024, time.May, 15)), false},
		{WindowWeek, ptr(date(2024, time.May, 13)), false}, // Monday
		{WindowMonth, ptr(date(2024, time.May, 1)), false},
		{WindowAll, nil, false},
		{"", nil, false},
		{"fortnight", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.window, func(t *testing.T) {
			got, err := WindowStart(tc.window, now)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("WindowStart = %v, want %v", got, tc.want)
			}
			if got != nil && !got.Equal(*tc.want) {
				t.Errorf("WindowStart = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWindowStartWeekOnMonday(t *testing.T) {
	monday := time.Date(2024, time.May, 13, 0, 30, 0, 0, time.UTC)
	got, err := WindowStart(WindowWeek, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2024, time.May, 13); !got.Equal(want) {
		t.Errorf("week starting on a Monday should be that Monday, got %v", got)
	}
}

func TestWindowStartWeekOnSunday(t *testing.T) {
	sunday := time.Date(2024, time.May, 19, 12, 0, 0, 0, time.UTC)
	got, err := WindowStart(WindowWeek, sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2024, time.May, 13); !got.Equal(want) {
		t.Errorf("Sunday still belongs to the Monday week, got %v", got)
	}
}
