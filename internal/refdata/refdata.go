// Package refdata holds the static lookup tables the aggregators consume:
// identity→faction, faction→display colour, and the named historical
// ranges per format. The data ships embedded in the binary and is
// immutable at runtime.
package refdata

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "embed"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

//go:embed identities.json
var identitiesJSON []byte

//go:embed factions.json
var factionsJSON []byte

//go:embed ranges.json
var rangesJSON []byte

// Faction display order: runner factions, corp factions, then unknown.
var factionOrder = []string{
	"criminal", "anarch", "shaper", "adam", "sunny_lebeau", "apex", "neutral_runner",
	"jinteki", "haas_bioroid", "nbn", "weyland_consortium", "neutral_corp",
	model.UnknownFaction,
}

var factionLabels = map[string]string{
	"criminal":           "Criminal",
	"anarch":             "Anarch",
	"shaper":             "Shaper",
	"adam":               "Adam",
	"sunny_lebeau":       "Sunny",
	"apex":               "Apex",
	"neutral_runner":     "Neutral Runner",
	"jinteki":            "Jinteki",
	"haas_bioroid":       "Haas-Bioroid",
	"nbn":                "NBN",
	"weyland_consortium": "Weyland",
	"neutral_corp":       "Neutral Corp",
	model.UnknownFaction: "Unknown",
}

var (
	identityMap    model.IdentityMap
	factionColours map[string]string
	knownRanges    map[string][]model.KnownRange
	factionRank    map[string]int
)

func init() {
	if err := json.Unmarshal(identitiesJSON, &identityMap); err != nil {
		panic(fmt.Sprintf("refdata: identities.json: %v", err))
	}
	if err := json.Unmarshal(factionsJSON, &factionColours); err != nil {
		panic(fmt.Sprintf("refdata: factions.json: %v", err))
	}

	var rawRanges map[string][]struct {
		Label string `json:"label"`
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := json.Unmarshal(rangesJSON, &rawRanges); err != nil {
		panic(fmt.Sprintf("refdata: ranges.json: %v", err))
	}
	knownRanges = make(map[string][]model.KnownRange, len(rawRanges))
	for format, rows := range rawRanges {
		for _, row := range rows {
			start, err1 := time.Parse("2006-01-02", row.Start)
			end, err2 := time.Parse("2006-01-02", row.End)
			if err1 != nil || err2 != nil {
				continue
			}
			knownRanges[format] = append(knownRanges[format], model.KnownRange{
				Label: row.Label,
				Start: start,
				End:   end,
			})
		}
		sort.Slice(knownRanges[format], func(i, j int) bool {
			return knownRanges[format][i].Start.Before(knownRanges[format][j].Start)
		})
	}

	factionRank = make(map[string]int, len(factionOrder))
	for i, faction := range factionOrder {
		factionRank[faction] = i
	}
}

// Identities returns the identity→faction lookup table.
func Identities() model.IdentityMap {
	return identityMap
}

// FactionColour returns the display colour for a faction, defaulting to
// the neutral colour.
func FactionColour(faction string) string {
	if colour, ok := factionColours[faction]; ok {
		return colour
	}
	return factionColours[model.UnknownFaction]
}

// FactionLabel returns the human-readable faction name.
func FactionLabel(faction string) string {
	if label, ok := factionLabels[faction]; ok {
		return label
	}
	return faction
}

// FactionRank orders factions for display: runner factions first, then
// corp, then anything unknown.
func FactionRank(faction string) int {
	if rank, ok := factionRank[faction]; ok {
		return rank
	}
	return len(factionOrder)
}

// KnownRanges returns the named historical ranges for a format, ordered by
// start date. Unknown or empty formats yield nothing.
func KnownRanges(format string) []model.KnownRange {
	normalized := strings.ToLower(strings.TrimSpace(format))
	if normalized == "" {
		return nil
	}
	return knownRanges[normalized]
}
