package aggregator

import (
	"sort"
	"time"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

// GamesPlayedBuckets counts the viewer's dated games per calendar period.
// Unlike the win-rate aggregators it keeps games without a recorded winner,
// reporting them as draws. Empty periods between start and end are
// zero-filled; zero start/end default to the first/last occupied bucket.
// An inverted range yields an empty result.
func GamesPlayedBuckets(games []model.GameRecord, usernames []string, period Period, start, end time.Time) []model.GamesPlayedBucket {
	// Truncate yields UTC boundaries, so the unix key is canonical per
	// calendar bucket regardless of the record's zone offset.
	acc := make(map[int64]*model.GamesPlayedBucket)
	for _, game := range games {
		if !game.HasDate() {
			continue
		}
		role, ok := model.ResolveRole(game, usernames)
		if !ok {
			continue
		}
		bucketStart := period.Truncate(game.CompletedAt)
		b := acc[bucketStart.Unix()]
		if b == nil {
			b = &model.GamesPlayedBucket{Start: bucketStart, Label: period.Label(bucketStart)}
			acc[bucketStart.Unix()] = b
		}
		b.Total++
		switch game.Winner {
		case model.RoleNone:
			b.Draws++
		case role:
			b.Wins++
		default:
			b.Losses++
		}
	}

	if len(acc) == 0 && start.IsZero() && end.IsZero() {
		return nil
	}

	occupied := make([]*model.GamesPlayedBucket, 0, len(acc))
	for _, b := range acc {
		occupied = append(occupied, b)
	}
	sort.Slice(occupied, func(i, j int) bool { return occupied[i].Start.Before(occupied[j].Start) })

	if start.IsZero() {
		if len(occupied) == 0 {
			start = end
		} else {
			start = occupied[0].Start
		}
	}
	if end.IsZero() {
		if len(occupied) == 0 {
			end = start
		} else {
			end = occupied[len(occupied)-1].Start
		}
	}

	first := period.Truncate(start)
	last := period.Truncate(end)
	if first.After(last) {
		return nil
	}

	var filled []model.GamesPlayedBucket
	for cursor := first; !cursor.After(last); cursor = period.Next(cursor) {
		if b, ok := acc[cursor.Unix()]; ok {
			filled = append(filled, *b)
		} else {
			filled = append(filled, model.GamesPlayedBucket{Start: cursor, Label: period.Label(cursor)})
		}
	}
	return filled
}
