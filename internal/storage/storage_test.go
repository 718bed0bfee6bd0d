package storage

import (
	"testing"
	"time"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func storedGame(id, runner, corp string, winner model.Role, date string) model.GameRecord {
	var completed time.Time
	if date != "" {
		completed, _ = time.Parse("2006-01-02", date)
	}
	return model.GameRecord{
		GameID:         id,
		Winner:         winner,
		Runner:         model.RoleSnapshot{Username: runner, Identity: "Hoshiko Shiro: Untold Protagonist"},
		Corp:           model.RoleSnapshot{Username: corp, Identity: "NBN: Reality Plus"},
		CompletedAt:    completed,
		Format:         "standard",
		Turns:          8,
		UniqueAccesses: 5,
	}
}

func TestUploadInsertAndExists(t *testing.T) {
	db := openMemDB(t)

	rec := UploadRecord{
		Hash:       "abc123",
		FileName:   "history.json",
		Username:   "alice",
		TotalGames: 10,
		LoadedAt:   "2024-01-01T00:00:00Z",
	}
	if err := db.InsertUpload(rec); err != nil {
		t.Fatalf("InsertUpload: %v", err)
	}

	exists, err := db.UploadExists("abc123")
	if err != nil {
		t.Fatalf("UploadExists: %v", err)
	}
	if !exists {
		t.Error("expected upload to exist after insert")
	}
	exists2, _ := db.UploadExists("nonexistent")
	if exists2 {
		t.Error("expected unknown hash to not exist")
	}
}

func TestListUploadsOrdered(t *testing.T) {
	db := openMemDB(t)

	records := []UploadRecord{
		{Hash: "h2", FileName: "b.json", TotalGames: 2, LoadedAt: "2024-02-01T00:00:00Z"},
		{Hash: "h1", FileName: "a.json", Username: "alice", TotalGames: 1, LoadedAt: "2024-01-01T00:00:00Z"},
	}
	for _, rec := range records {
		if err := db.InsertUpload(rec); err != nil {
			t.Fatalf("InsertUpload: %v", err)
		}
	}

	got, err := db.ListUploads()
	if err != nil {
		t.Fatalf("ListUploads: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(got))
	}
	if got[0].Hash != "h1" || got[1].Hash != "h2" {
		t.Errorf("uploads not ordered by load time: %q, %q", got[0].Hash, got[1].Hash)
	}
}

func TestInsertGamesRoundTrip(t *testing.T) {
	db := openMemDB(t)

	games := []model.GameRecord{
		storedGame("g-1", "alice", "bob", model.RoleRunner, "2024-01-01"),
		storedGame("", "alice", "carol", model.RoleCorp, "2024-01-02"),
		storedGame("", "alice", "dave", model.RoleNone, ""),
	}
	if err := db.InsertGames(games); err != nil {
		t.Fatalf("InsertGames: %v", err)
	}

	got, err := db.AllGames()
	if err != nil {
		t.Fatalf("AllGames: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 games, got %d", len(got))
	}

	first := got[0]
	if first.GameID != "g-1" || first.Winner != model.RoleRunner {
		t.Errorf("first game = %+v", first)
	}
	if first.Runner.Identity != "Hoshiko Shiro: Untold Protagonist" {
		t.Errorf("runner identity = %q", first.Runner.Identity)
	}
	if first.Turns != 8 || first.UniqueAccesses != 5 {
		t.Errorf("turns/accesses = %d/%d, want 8/5", first.Turns, first.UniqueAccesses)
	}
	if !first.HasDate() {
		t.Error("dated game should round-trip its date")
	}

	undated := got[2]
	if undated.HasDate() {
		t.Error("undated game should stay undated")
	}
	if undated.Winner != model.RoleNone {
		t.Errorf("winner = %v, want none", undated.Winner)
	}
}

func TestInsertGamesDedupByGameID(t *testing.T) {
	db := openMemDB(t)

	g := storedGame("g-1", "alice", "bob", model.RoleRunner, "2024-01-01")
	if err := db.InsertGames([]model.GameRecord{g}); err != nil {
		t.Fatalf("InsertGames: %v", err)
	}
	// Second load of the same game must be a no-op.
	if err := db.InsertGames([]model.GameRecord{g}); err != nil {
		t.Fatalf("InsertGames again: %v", err)
	}

	count, err := db.CountGames()
	if err != nil {
		t.Fatalf("CountGames: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 game after duplicate load, got %d", count)
	}
}

func TestInsertGamesCompositeKeyKeepsSameBatchTwins(t *testing.T) {
	db := openMemDB(t)

	twin := storedGame("", "alice", "bob", model.RoleRunner, "2024-01-01")
	if err := db.InsertGames([]model.GameRecord{twin, twin}); err != nil {
		t.Fatalf("InsertGames: %v", err)
	}

	count, err := db.CountGames()
	if err != nil {
		t.Fatalf("CountGames: %v", err)
	}
	if count != 2 {
		t.Errorf("expected indistinguishable twins kept, got %d", count)
	}
}

func TestDropClearsEverything(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertUpload(UploadRecord{Hash: "h1", FileName: "a.json", LoadedAt: "2024-01-01T00:00:00Z"}); err != nil {
		t.Fatalf("InsertUpload: %v", err)
	}
	if err := db.InsertGames([]model.GameRecord{storedGame("g-1", "alice", "bob", model.RoleRunner, "2024-01-01")}); err != nil {
		t.Fatalf("InsertGames: %v", err)
	}

	if err := db.Drop(); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	count, _ := db.CountGames()
	if count != 0 {
		t.Errorf("expected 0 games after drop, got %d", count)
	}
	uploads, _ := db.ListUploads()
	if len(uploads) != 0 {
		t.Errorf("expected 0 uploads after drop, got %d", len(uploads))
	}
}
