package storage

import (
	"fmt"
	"time"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

// completedAtLayout keeps stored timestamps lexically sortable.
const completedAtLayout = "2006-01-02T15:04:05Z07:00"

// UploadRecord is one stored upload's metadata.
type UploadRecord struct {
	Hash       string
	FileName   string
	Username   string // detected viewer of that file, empty if none
	TotalGames int
	LoadedAt   string
}

// UploadExists returns true if an upload with the given hash is stored.
func (db *DB) UploadExists(hash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM uploads WHERE hash = ?", hash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertUpload records an upload. INSERT OR REPLACE keeps re-loads
// idempotent.
func (db *DB) InsertUpload(rec UploadRecord) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO uploads(hash, file_name, username, total_games, loaded_at)
		VALUES (?, ?, ?, ?, ?)`,
		rec.Hash, rec.FileName, rec.Username, rec.TotalGames, rec.LoadedAt,
	)
	return err
}

// ListUploads returns all stored uploads ordered by load time ascending.
func (db *DB) ListUploads() ([]UploadRecord, error) {
	rows, err := db.conn.Query(`
		SELECT hash, file_name, username, total_games, loaded_at
		FROM uploads ORDER BY loaded_at, hash`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UploadRecord
	for rows.Next() {
		var rec UploadRecord
		if err := rows.Scan(&rec.Hash, &rec.FileName, &rec.Username, &rec.TotalGames, &rec.LoadedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// InsertGames stores a batch of normalized games in a transaction,
// deduplicating against everything already stored: games with an id dedup
// on the id (first occurrence wins), the rest on the composite of both
// usernames and the completion timestamp with an occurrence suffix so
// indistinguishable duplicates inside one upload are kept.
func (db *DB) InsertGames(games []model.GameRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert, err := tx.Prepare(`
		INSERT OR IGNORE INTO games(
			dedup_key, base_key, game_id, winner,
			runner_username, runner_identity, corp_username, corp_identity,
			completed_at, format, turns, unique_accesses
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer insert.Close()

	count, err := tx.Prepare("SELECT COUNT(1) FROM games WHERE base_key = ?")
	if err != nil {
		return err
	}
	defer count.Close()

	for _, g := range games {
		baseKey := "id:" + g.GameID
		dedupKey := baseKey
		if g.GameID == "" {
			completed := "unknown"
			if g.HasDate() {
				completed = g.CompletedAt.UTC().Format(completedAtLayout)
			}
			baseKey = fmt.Sprintf("%s|%s|%s", g.Runner.Username, g.Corp.Username, completed)
			var occurrence int
			if err := count.QueryRow(baseKey).Scan(&occurrence); err != nil {
				return fmt.Errorf("count base key: %w", err)
			}
			dedupKey = fmt.Sprintf("%s|%d", baseKey, occurrence)
		}

		completedAt := ""
		if g.HasDate() {
			completedAt = g.CompletedAt.UTC().Format(completedAtLayout)
		}
		winner := ""
		if g.Winner != model.RoleNone {
			winner = g.Winner.String()
		}
		if _, err := insert.Exec(
			dedupKey, baseKey, g.GameID, winner,
			g.Runner.Username, g.Runner.Identity, g.Corp.Username, g.Corp.Identity,
			completedAt, g.Format, g.Turns, g.UniqueAccesses,
		); err != nil {
			return fmt.Errorf("insert game: %w", err)
		}
	}
	return tx.Commit()
}

// AllGames returns every stored game in insertion order, which preserves
// the original upload order for stable same-timestamp sorting downstream.
func (db *DB) AllGames() ([]model.GameRecord, error) {
	rows, err := db.conn.Query(`
		SELECT game_id, winner, runner_username, runner_identity,
		       corp_username, corp_identity, completed_at, format,
		       turns, unique_accesses
		FROM games ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.GameRecord
	for rows.Next() {
		var g model.GameRecord
		var winner, completedAt string
		if err := rows.Scan(
			&g.GameID, &winner,
			&g.Runner.Username, &g.Runner.Identity,
			&g.Corp.Username, &g.Corp.Identity,
			&completedAt, &g.Format, &g.Turns, &g.UniqueAccesses,
		); err != nil {
			return nil, err
		}
		g.Winner = model.ParseRole(winner)
		if completedAt != "" {
			if t, err := time.Parse(completedAtLayout, completedAt); err == nil {
				g.CompletedAt = t
			}
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// CountGames returns the number of stored games.
func (db *DB) CountGames() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM games").Scan(&count)
	return count, err
}

// Drop clears all stored uploads and games.
func (db *DB) Drop() error {
	if _, err := db.conn.Exec("DELETE FROM games"); err != nil {
		return err
	}
	_, err := db.conn.Exec("DELETE FROM uploads")
	return err
}
