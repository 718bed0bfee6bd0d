package aggregator

import (
	"sort"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

// IdentityStats groups the viewer's completed games on one side by the
// identity they piloted. Rows are sorted by total games descending.
func IdentityStats(games []model.GameRecord, usernames []string, role model.Role, identities model.IdentityMap) []model.IdentityStat {
	return identityStats(games, usernames, role, identities, false)
}

// OpponentIdentityStats groups the viewer's completed games on one side by
// the identity they faced.
func OpponentIdentityStats(games []model.GameRecord, usernames []string, role model.Role, identities model.IdentityMap) []model.IdentityStat {
	return identityStats(games, usernames, role, identities, true)
}

func identityStats(games []model.GameRecord, usernames []string, role model.Role, identities model.IdentityMap, opponent bool) []model.IdentityStat {
	type bucket struct {
		wins    int
		total   int
		faction string
	}
	acc := make(map[string]*bucket)

	keyRole := role
	if opponent {
		keyRole = role.Opponent()
	}

	for _, game := range games {
		resolved, ok := model.ResolveRole(game, usernames)
		if !ok || resolved != role || game.Winner == model.RoleNone {
			continue
		}
		identity := game.Side(keyRole).Identity
		if identity == "" {
			identity = model.UnknownIdentity
		}
		b := acc[identity]
		if b == nil {
			b = &bucket{faction: identities.Faction(game.Side(keyRole).Identity)}
			acc[identity] = b
		}
		b.total++
		if game.Winner == role {
			b.wins++
		}
	}

	stats := make([]model.IdentityStat, 0, len(acc))
	for identity, b := range acc {
		stats = append(stats, model.IdentityStat{
			Role:     keyRole,
			Identity: identity,
			Faction:  b.faction,
			Wins:     b.wins,
			Losses:   b.total - b.wins,
			Total:    b.total,
			WinRate:  winRate(b.wins, b.total),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Identity < stats[j].Identity
	})
	return stats
}

// OverallStat rolls the viewer's completed games on one side into a single
// row. Nil when no game qualifies.
func OverallStat(games []model.GameRecord, usernames []string, role model.Role) *model.IdentityStat {
	wins, total := tallyOverall(games, usernames, role)
	if total == 0 {
		return nil
	}
	identity, faction := "Runner Overall", "neutral_runner"
	if role == model.RoleCorp {
		identity, faction = "Corp Overall", "neutral_corp"
	}
	return &model.IdentityStat{
		Role:     role,
		Identity: identity,
		Faction:  faction,
		Wins:     wins,
		Losses:   total - wins,
		Total:    total,
		WinRate:  winRate(wins, total),
	}
}

// OpponentOverallStat is the opponent-facing rollup for one side: the same
// reduction as OverallStat presented against the opposing role.
func OpponentOverallStat(games []model.GameRecord, usernames []string, role model.Role) *model.IdentityStat {
	wins, total := tallyOverall(games, usernames, role)
	if total == 0 {
		return nil
	}
	opponent := role.Opponent()
	identity, faction := "Vs Runner Overall", "neutral_runner"
	if opponent == model.RoleCorp {
		identity, faction = "Vs Corp Overall", "neutral_corp"
	}
	return &model.IdentityStat{
		Role:     opponent,
		Identity: identity,
		Faction:  faction,
		Wins:     wins,
		Losses:   total - wins,
		Total:    total,
		WinRate:  winRate(wins, total),
	}
}

// CombinedOverallStat rolls up the viewer's completed games on both sides.
func CombinedOverallStat(games []model.GameRecord, usernames []string) *model.IdentityStat {
	wins, total := tallyOverall(games, usernames, model.RoleNone)
	if total == 0 {
		return nil
	}
	return &model.IdentityStat{
		Role:     model.RoleRunner,
		Identity: "Vs Overall",
		Faction:  "neutral",
		Wins:     wins,
		Losses:   total - wins,
		Total:    total,
		WinRate:  winRate(wins, total),
	}
}

// tallyOverall is the one parameterized reduction behind every overall
// rollup. want==RoleNone accepts either side.
func tallyOverall(games []model.GameRecord, usernames []string, want model.Role) (wins, total int) {
	for _, game := range games {
		if game.Winner == model.RoleNone {
			continue
		}
		resolved, ok := model.ResolveRole(game, usernames)
		if !ok {
			continue
		}
		if want != model.RoleNone && resolved != want {
			continue
		}
		total++
		if game.Winner == resolved {
			wins++
		}
	}
	return wins, total
}

func winRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total)
}
