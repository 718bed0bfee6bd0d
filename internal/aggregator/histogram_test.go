package aggregator

import (
	"testing"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

func accessGame(t *testing.T, date string, won bool, accesses int) model.GameRecord {
	t.Helper()
	g := runnerGame(t, date, won)
	g.UniqueAccesses = accesses
	return g
}

func TestRunnerAccessBucketsDensified(t *testing.T) {
	games := []model.GameRecord{
		accessGame(t, "2024-01-01", true, 4),
		accessGame(t, "2024-01-02", false, 4),
		accessGame(t, "2024-01-03", true, 7),
	}

	buckets := RunnerAccessBuckets(games, viewerNames)
	if len(buckets) != 4 {
		t.Fatalf("expected contiguous buckets 4..7, got %d", len(buckets))
	}
	for i, b := range buckets {
		if b.Value != 4+i {
			t.Fatalf("bucket %d: value %d, want %d", i, b.Value, 4+i)
		}
	}
	if buckets[0].Wins != 1 || buckets[0].Losses != 1 {
		t.Errorf("bucket 4 = %d/%d, want 1/1", buckets[0].Wins, buckets[0].Losses)
	}
	if buckets[1].Total != 0 || buckets[2].Total != 0 {
		t.Error("gap buckets 5 and 6 should be zero-filled")
	}
	if buckets[3].Wins != 1 || buckets[3].Total != 1 {
		t.Errorf("bucket 7 = %d of %d, want 1 of 1", buckets[3].Wins, buckets[3].Total)
	}
}

func TestAccessBucketsSkipUnrecordedAndWrongSeat(t *testing.T) {
	unrecorded := runnerGame(t, "2024-01-01", true) // UniqueAccesses stays Unrecorded
	corpSide := corpGame(t, "2024-01-02", true)
	corpSide.UniqueAccesses = 3

	if got := RunnerAccessBuckets([]model.GameRecord{unrecorded, corpSide}, viewerNames); got != nil {
		t.Errorf("expected no runner buckets, got %d", len(got))
	}
	corp := CorpAccessBuckets([]model.GameRecord{unrecorded, corpSide}, viewerNames)
	if len(corp) != 1 || corp[0].Value != 3 || corp[0].Wins != 1 {
		t.Errorf("corp buckets = %+v, want one winning bucket at 3", corp)
	}
}

func TestTurnBucketsCountBothSeats(t *testing.T) {
	asRunner := runnerGame(t, "2024-01-01", true)
	asRunner.Turns = 10
	asCorp := corpGame(t, "2024-01-02", false)
	asCorp.Turns = 10
	undecided := runnerGame(t, "2024-01-03", true)
	undecided.Turns = 10
	undecided.Winner = model.RoleNone

	buckets := TurnBuckets([]model.GameRecord{asRunner, asCorp, undecided}, viewerNames)
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	b := buckets[0]
	if b.Value != 10 || b.Wins != 1 || b.Losses != 1 || b.Total != 2 {
		t.Errorf("bucket = %+v, want value 10 with 1/1 of 2", b)
	}
}
