package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jnetstats/go-jnet-stats/internal/model"
	"github.com/jnetstats/go-jnet-stats/internal/profile"
	"github.com/jnetstats/go-jnet-stats/internal/storage"
)

func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadHistory reads every stored game and rebuilds the viewer profile. The
// aliases come from the per-upload detections so a viewer whose username
// changed across exports still gets all their games matched.
func loadHistory(db *storage.DB) ([]model.GameRecord, *model.UserProfile, error) {
	games, err := db.AllGames()
	if err != nil {
		return nil, nil, fmt.Errorf("load games: %w", err)
	}
	if len(games) == 0 {
		return nil, nil, nil
	}

	detected := profile.Detect(games)
	if detected == nil {
		return games, nil, nil
	}

	uploads, err := db.ListUploads()
	if err != nil {
		return nil, nil, fmt.Errorf("list uploads: %w", err)
	}
	aliases := []string{detected.Username}
	for _, u := range uploads {
		if u.Username != "" && u.Username != detected.Username {
			aliases = append(aliases, u.Username)
		}
	}
	prof := detected
	if len(aliases) > 1 {
		prof = profile.Build(games, aliases, detected.Username)
	}
	log.Debug().
		Str("viewer", prof.Username).
		Int("games", len(games)).
		Float64("coverage", prof.Coverage).
		Msg("profile rebuilt")
	return games, prof, nil
}

func parseDateFlag(value, name string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q, want YYYY-MM-DD", name, value)
	}
	return t, nil
}

func parseSideFlag(value string) (model.Role, error) {
	if value == "" {
		return model.RoleNone, nil
	}
	role := model.ParseRole(value)
	if role == model.RoleNone {
		return model.RoleNone, fmt.Errorf("invalid --side %q, want runner or corp", value)
	}
	return role, nil
}
