// Package aggregator derives analytic series from normalized game records.
// Every function is a pure transform: no I/O, no shared state, fresh
// output on every call, so concurrent invocation needs no locks.
package aggregator

import (
	"sort"
	"strings"
	"time"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

// DifferentialTimeline walks the viewer's completed games in chronological
// order and emits one point per game: +1 for a win, -1 for a loss, with
// the running cumulative total. Filters are ANDed; a nil filter set means
// no filtering. Games with the same timestamp keep their input order.
func DifferentialTimeline(games []model.GameRecord, usernames []string, identities model.IdentityMap, filters *model.Filters) []model.DifferentialPoint {
	type resolvedGame struct {
		game model.GameRecord
		role model.Role
	}

	targetFormat := ""
	if filters != nil {
		targetFormat = strings.ToLower(strings.TrimSpace(filters.Format))
	}

	var relevant []resolvedGame
	for _, game := range games {
		if !game.HasDate() || game.Winner == model.RoleNone {
			continue
		}
		role, ok := model.ResolveRole(game, usernames)
		if !ok {
			continue
		}
		if filters != nil {
			if targetFormat != "" && game.Format != targetFormat {
				continue
			}
			if filters.Side != model.RoleNone && filters.Side != role {
				continue
			}
			identity := game.Side(role).Identity
			if filters.Identity != "" && identity != filters.Identity {
				continue
			}
			if filters.Faction != "" && identities.Faction(identity) != filters.Faction {
				continue
			}
		}
		relevant = append(relevant, resolvedGame{game: game, role: role})
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].game.CompletedAt.Before(relevant[j].game.CompletedAt)
	})

	cumulative := 0
	var timeline []model.DifferentialPoint
	for _, rg := range relevant {
		didWin := rg.game.Winner == rg.role
		delta := -1
		if didWin {
			delta = 1
		}
		cumulative += delta
		timeline = append(timeline, model.DifferentialPoint{
			Date:       rg.game.CompletedAt,
			Cumulative: cumulative,
			Delta:      delta,
			DidWin:     didWin,
			Role:       rg.role,
		})
	}
	return timeline
}

// Candles buckets a date-sorted differential timeline into OHLC candles
// over [start, end]. Zero start/end default to the data's own bounds. The
// open of the first candle carries in the cumulative value reached before
// the range, not zero, so a window that begins mid-history stays correct.
// An inverted range yields an empty result.
func Candles(points []model.DifferentialPoint, period Period, start, end time.Time) []model.DifferentialCandle {
	if len(points) == 0 {
		return nil
	}
	sorted := sortedByDate(points)

	if start.IsZero() {
		start = sorted[0].Date
	}
	if end.IsZero() {
		end = sorted[len(sorted)-1].Date
	}
	if start.After(end) {
		return nil
	}

	baseline := 0
	for _, point := range sorted {
		if !point.Date.Before(start) {
			break
		}
		baseline = point.Cumulative
	}

	var candles []model.DifferentialCandle
	var current *model.DifferentialCandle
	prev := baseline

	for _, point := range sorted {
		if point.Date.Before(start) {
			prev = point.Cumulative
			continue
		}
		if point.Date.After(end) {
			break
		}

		bucketStart := period.Truncate(point.Date)
		if current == nil || !current.Start.Equal(bucketStart) {
			if current != nil {
				candles = append(candles, *current)
			}
			current = &model.DifferentialCandle{
				Start: bucketStart,
				End:   period.Next(bucketStart),
				Open:  prev,
				Close: prev,
				High:  prev,
				Low:   prev,
			}
		}

		// High/low must cover the carried-in value as well as the new
		// one so intra-bucket swings that never land on the close still
		// show up.
		value := point.Cumulative
		current.High = maxInt(current.High, prev, value)
		current.Low = minInt(current.Low, prev, value)
		current.Close = value
		prev = value
	}

	if current != nil {
		candles = append(candles, *current)
	}
	return candles
}

// RollingWinRate computes the trailing-window win rate at every point.
// Partial windows at the start are reported with their true sample count
// rather than skipped. Window sizes below 1 are treated as 1.
func RollingWinRate(points []model.DifferentialPoint, window int) []model.RollingWinRatePoint {
	if len(points) == 0 {
		return nil
	}
	if window < 1 {
		window = 1
	}
	sorted := sortedByDate(points)

	var queue []model.DifferentialPoint
	wins := 0
	result := make([]model.RollingWinRatePoint, 0, len(sorted))
	for _, point := range sorted {
		queue = append(queue, point)
		if point.DidWin {
			wins++
		}
		if len(queue) > window {
			if queue[0].DidWin {
				wins--
			}
			queue = queue[1:]
		}
		result = append(result, model.RollingWinRatePoint{
			Date:    point.Date,
			WinRate: float64(wins) / float64(len(queue)),
			Wins:    wins,
			Total:   len(queue),
		})
	}
	return result
}

func sortedByDate(points []model.DifferentialPoint) []model.DifferentialPoint {
	sorted := make([]model.DifferentialPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func maxInt(values ...int) int {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

func minInt(values ...int) int {
	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}
	return best
}
