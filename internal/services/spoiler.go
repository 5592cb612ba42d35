package services

import (
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/models"
)

// SpoilerCutoff resolves a user's air-date cutoff. Questions that aired on or
// after the cutoff must not be shown. Returns nil when the user allows
// everything.
func SpoilerCutoff(user *models.User, now time.Time) *time.Time {
	if user == nil || !user.SpoilerBlockEnabled {
		return nil
	}
	if user.SpoilerBlockDate != nil {
		d := *user.SpoilerBlockDate
		return &d
	}
	d := seasonStart(now)
	return &d
}

// seasonStart is September 1 of the season year: dates before September
// belong to the season that started the previous calendar year.
func seasonStart(now time.Time) time.Time {
	year := now.UTC().Year()
	if now.UTC().Month() < time.September {
		year--
	}
	return time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC)
}

// CombineCutoffs merges several users' policies into one by taking the most
// restrictive (earliest) cutoff. A nil entry means "no restriction" and is
// ignored; the result is nil only when nobody restricts anything.
func CombineCutoffs(cutoffs ...*time.Time) *time.Time {
	var earliest *time.Time
	for _, c := range cutoffs {
		if c == nil {
			continue
		}
		if earliest == nil || c.Before(*earliest) {
			d := *c
			earliest = &d
		}
	}
	return earliest
}
