package aggregator

import (
	"sort"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

// RunnerAccessBuckets groups the viewer's completed runner games by how
// many unique cards were accessed, win/loss split per count.
func RunnerAccessBuckets(games []model.GameRecord, usernames []string) []model.WinLossBucket {
	return accessBuckets(games, usernames, model.RoleRunner)
}

// CorpAccessBuckets is the corp-side view of the same counts: unique
// accesses made against the viewer's servers.
func CorpAccessBuckets(games []model.GameRecord, usernames []string) []model.WinLossBucket {
	return accessBuckets(games, usernames, model.RoleCorp)
}

func accessBuckets(games []model.GameRecord, usernames []string, seat model.Role) []model.WinLossBucket {
	return integerBuckets(games, usernames, func(game model.GameRecord, role model.Role) (int, bool) {
		if role != seat {
			return 0, false
		}
		if game.UniqueAccesses == model.Unrecorded {
			return 0, false
		}
		return game.UniqueAccesses, true
	})
}

// TurnBuckets groups the viewer's completed games on either side by how
// many turns the game lasted.
func TurnBuckets(games []model.GameRecord, usernames []string) []model.WinLossBucket {
	return integerBuckets(games, usernames, func(game model.GameRecord, role model.Role) (int, bool) {
		if game.Turns == model.Unrecorded {
			return 0, false
		}
		return game.Turns, true
	})
}

func integerBuckets(games []model.GameRecord, usernames []string, key func(model.GameRecord, model.Role) (int, bool)) []model.WinLossBucket {
	acc := make(map[int]*model.WinLossBucket)
	for _, game := range games {
		if game.Winner == model.RoleNone {
			continue
		}
		role, ok := model.ResolveRole(game, usernames)
		if !ok {
			continue
		}
		value, ok := key(game, role)
		if !ok {
			continue
		}
		b := acc[value]
		if b == nil {
			b = &model.WinLossBucket{Value: value}
			acc[value] = b
		}
		b.Total++
		if game.Winner == role {
			b.Wins++
		} else {
			b.Losses++
		}
	}
	return densify(acc)
}

// densify fills every integer between the observed minimum and maximum
// with a zero bucket. Downstream consumers assume a contiguous domain, so
// this is part of the contract, not cosmetics.
func densify(acc map[int]*model.WinLossBucket) []model.WinLossBucket {
	if len(acc) == 0 {
		return nil
	}
	values := make([]int, 0, len(acc))
	for value := range acc {
		values = append(values, value)
	}
	sort.Ints(values)

	min, max := values[0], values[len(values)-1]
	filled := make([]model.WinLossBucket, 0, max-min+1)
	for value := min; value <= max; value++ {
		if b, ok := acc[value]; ok {
			filled = append(filled, *b)
		} else {
			filled = append(filled, model.WinLossBucket{Value: value})
		}
	}
	return filled
}
