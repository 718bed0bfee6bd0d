package aggregator

import (
	"time"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

// Period is a calendar bucketing granularity. Candles use daily through
// monthly; the games-played histogram additionally supports yearly.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// ParsePeriod maps a user-supplied label to a Period.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case Daily, Weekly, Monthly, Yearly:
		return Period(s), true
	default:
		return "", false
	}
}

// Truncate returns the bucket boundary containing t: midnight for daily,
// the Monday of the ISO week for weekly, the 1st for monthly, Jan 1 for
// yearly. The boundary keeps t's calendar date but is always expressed in
// UTC, so records carrying different zone offsets for the same calendar
// day land in the same bucket.
func (p Period) Truncate(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch p {
	case Weekly:
		sinceMonday := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -sinceMonday)
	case Monthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	case Yearly:
		return time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
	default:
		return day
	}
}

// Next returns the start of the bucket after the one starting at t.
func (p Period) Next(t time.Time) time.Time {
	switch p {
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Monthly:
		return t.AddDate(0, 1, 0)
	case Yearly:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// Label renders a bucket start for display.
func (p Period) Label(t time.Time) string {
	switch p {
	case Monthly:
		return t.Format("Jan 2006")
	case Yearly:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay moves t to the last instant of its day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// DataBounds returns the earliest and latest completion dates in the game
// list. Zero times when no game carries a date.
func DataBounds(games []model.GameRecord) (min, max time.Time) {
	for _, game := range games {
		if !game.HasDate() {
			continue
		}
		if min.IsZero() || game.CompletedAt.Before(min) {
			min = game.CompletedAt
		}
		if max.IsZero() || game.CompletedAt.After(max) {
			max = game.CompletedAt
		}
	}
	return min, max
}
