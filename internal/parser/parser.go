// Package parser turns a raw game-history export into normalized records.
//
// Only the top-level shape is validated: the document must be a JSON array.
// Inside each element every field degrades independently — a missing or
// mistyped value resolves to its zero/unrecorded form instead of discarding
// the record, because exported histories are not a controlled format.
package parser

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

// FormatError reports an upload that cannot be processed at all: the text
// is not valid JSON, or it does not parse to an array. It is the only
// error this package produces.
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string { return e.msg }

// ParseHistory parses and normalizes a full game-history document.
// On a FormatError no partial result is returned.
func ParseHistory(raw []byte) ([]model.GameRecord, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &FormatError{msg: "the uploaded file is not valid JSON"}
	}
	entries, ok := parsed.([]any)
	if !ok {
		return nil, &FormatError{msg: "game history must contain an array of games"}
	}

	games := make([]model.GameRecord, 0, len(entries))
	for _, entry := range entries {
		games = append(games, normalizeGame(entry))
	}
	return games, nil
}

// Checksum returns the hex sha256 of the raw upload, used as the
// idempotency key for stored uploads.
func Checksum(raw []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(raw))
}

func normalizeGame(raw any) model.GameRecord {
	obj, _ := raw.(map[string]any)
	return model.GameRecord{
		GameID:         firstString(obj, "game-id", "gameId"),
		Winner:         model.ParseRole(stringField(obj, "winner")),
		Runner:         normalizeSide(obj["runner"]),
		Corp:           normalizeSide(obj["corp"]),
		CompletedAt:    resolveDate(obj),
		Format:         normalizeFormat(stringField(obj, "format")),
		Turns:          intField(obj, "turns"),
		UniqueAccesses: intField(obj, "unique-accesses"),
	}
}

func normalizeSide(raw any) model.RoleSnapshot {
	obj, ok := raw.(map[string]any)
	if !ok {
		return model.RoleSnapshot{}
	}
	var username string
	if player, ok := obj["player"].(map[string]any); ok {
		username = stringField(player, "username")
	}
	return model.RoleSnapshot{
		Username: username,
		Identity: stringField(obj, "identity"),
	}
}

// resolveDate applies the strict preference order: end-date, then
// start-date, then creation-date. The first parseable value wins.
func resolveDate(obj map[string]any) time.Time {
	for _, key := range []string{"end-date", "start-date", "creation-date"} {
		if t, ok := parseDate(stringField(obj, key)); ok {
			return t
		}
	}
	return time.Time{}
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}

func stringField(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	s, _ := obj[key].(string)
	return s
}

func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringField(obj, key); s != "" {
			return s
		}
	}
	return ""
}

func intField(obj map[string]any, key string) int {
	if obj == nil {
		return model.Unrecorded
	}
	// JSON numbers decode as float64; anything non-integral or negative
	// is treated as not recorded.
	f, ok := obj[key].(float64)
	if !ok || f != float64(int(f)) || f < 0 {
		return model.Unrecorded
	}
	return int(f)
}
