package aggregator

import (
	"testing"
	"time"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

// The viewer in every scenario.
const viewer = "alice"

var viewerNames = []string{viewer}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

// runnerGame builds a dated game with the viewer in the runner seat.
func runnerGame(t *testing.T, date string, won bool) model.GameRecord {
	t.Helper()
	winner := model.RoleCorp
	if won {
		winner = model.RoleRunner
	}
	return model.GameRecord{
		Winner:         winner,
		Runner:         model.RoleSnapshot{Username: viewer, Identity: "Zahya Sadeghi: Versatile Smuggler"},
		Corp:           model.RoleSnapshot{Username: "bob", Identity: "NBN: Reality Plus"},
		CompletedAt:    day(t, date),
		Format:         "standard",
		Turns:          model.Unrecorded,
		UniqueAccesses: model.Unrecorded,
	}
}

// corpGame builds a dated game with the viewer in the corp seat.
func corpGame(t *testing.T, date string, won bool) model.GameRecord {
	t.Helper()
	winner := model.RoleRunner
	if won {
		winner = model.RoleCorp
	}
	return model.GameRecord{
		Winner:         winner,
		Runner:         model.RoleSnapshot{Username: "bob", Identity: "Hoshiko Shiro: Untold Protagonist"},
		Corp:           model.RoleSnapshot{Username: viewer, Identity: "NBN: Reality Plus"},
		CompletedAt:    day(t, date),
		Format:         "standard",
		Turns:          model.Unrecorded,
		UniqueAccesses: model.Unrecorded,
	}
}

// testIdentities is a minimal identity→faction table for filter tests.
var testIdentities = model.IdentityMap{
	"Zahya Sadeghi: Versatile Smuggler": "criminal",
	"Hoshiko Shiro: Untold Protagonist": "anarch",
	"NBN: Reality Plus":                 "nbn",
	"Jinteki: Restoring Humanity":       "jinteki",
}
