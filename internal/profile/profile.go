// Package profile infers which username(s) an uploaded history belongs to
// and merges multi-file uploads into a single deduplicated game list.
package profile

import (
	"fmt"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

// Upload couples one parsed file with its origin name.
type Upload struct {
	FileName string
	Games    []model.GameRecord
}

// Detect picks the viewer of a single upload: the username with the most
// appearances across both seats. Ties break to the lexicographically
// smaller name so repeated runs stay deterministic.
func Detect(games []model.GameRecord) *model.UserProfile {
	if len(games) == 0 {
		return nil
	}

	overall := make(map[string]int)
	for _, game := range games {
		if game.Runner.Username != "" {
			overall[game.Runner.Username]++
		}
		if game.Corp.Username != "" {
			overall[game.Corp.Username]++
		}
	}

	chosen, best := "", 0
	for username, count := range overall {
		if count > best || (count == best && (chosen == "" || username < chosen)) {
			chosen, best = username, count
		}
	}
	if chosen == "" {
		return nil
	}
	return Build(games, []string{chosen}, chosen)
}

// Build computes the full profile for an explicit alias set. The primary
// name is moved to the front of the alias list; an empty primary falls
// back to the first alias.
func Build(games []model.GameRecord, aliases []string, primary string) *model.UserProfile {
	ordered := orderAliases(aliases, primary)
	if len(ordered) == 0 || len(games) == 0 {
		return nil
	}

	var runnerGames, corpGames, matched int
	for _, game := range games {
		role, ok := model.ResolveRole(game, ordered)
		if !ok {
			continue
		}
		matched++
		if role == model.RoleRunner {
			runnerGames++
		} else {
			corpGames++
		}
	}

	return &model.UserProfile{
		Username:       ordered[0],
		Usernames:      ordered,
		TotalGames:     len(games),
		RunnerGames:    runnerGames,
		CorpGames:      corpGames,
		MatchedGames:   matched,
		UnmatchedGames: len(games) - matched,
		Coverage:       float64(matched) / float64(len(games)),
	}
}

// Merge deduplicates games across uploads and combines the per-file
// profiles. The alias set is the union of each file's detected username;
// the file contributing the most games names the primary alias.
func Merge(uploads []Upload) ([]model.GameRecord, *model.UserProfile, []model.UploadSource) {
	games := mergeWithoutDuplicates(uploads)

	var sources []model.UploadSource
	var aliases []string
	primary := ""
	primaryGames := -1
	for _, upload := range uploads {
		name := ""
		if p := Detect(upload.Games); p != nil {
			name = p.Username
			aliases = append(aliases, name)
			if len(upload.Games) > primaryGames {
				primary = name
				primaryGames = len(upload.Games)
			}
		}
		sources = append(sources, model.UploadSource{
			FileName:   upload.FileName,
			Username:   name,
			TotalGames: len(upload.Games),
		})
	}

	combined := Build(games, aliases, primary)
	return games, combined, sources
}

// mergeWithoutDuplicates keys each game by its id when present, else by a
// composite of the two usernames and the completion timestamp. First
// occurrence wins; composite collisions get an incrementing suffix so true
// duplicates without any distinguishing data are kept rather than dropped.
func mergeWithoutDuplicates(uploads []Upload) []model.GameRecord {
	seen := make(map[string]struct{})
	var merged []model.GameRecord
	disambiguator := 0

	for _, upload := range uploads {
		for _, game := range upload.Games {
			key := game.GameID
			if key == "" {
				completed := "unknown"
				if game.HasDate() {
					completed = game.CompletedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
				}
				key = fmt.Sprintf("%s|%s|%s", game.Runner.Username, game.Corp.Username, completed)
				if _, dup := seen[key]; dup {
					disambiguator++
					key = fmt.Sprintf("%s|%d", key, disambiguator)
				}
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, game)
		}
	}
	return merged
}

func orderAliases(aliases []string, primary string) []string {
	var ordered []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}
	add(primary)
	for _, name := range aliases {
		add(name)
	}
	return ordered
}
