package aggregator

import (
	"math"
	"testing"
)

func TestRollingWinRateWarmUpAndWindow(t *testing.T) {
	points := timeline(t,
		step{"2024-01-01", true},
		step{"2024-01-02", true},
		step{"2024-01-03", false},
		step{"2024-01-04", true},
		step{"2024-01-05", false},
	)

	series := RollingWinRate(points, 3)
	if len(series) != 5 {
		t.Fatalf("expected 5 points, got %d", len(series))
	}

	wantWins := []int{1, 2, 2, 2, 1}
	wantTotal := []int{1, 2, 3, 3, 3}
	for i, p := range series {
		if p.Wins != wantWins[i] || p.Total != wantTotal[i] {
			t.Errorf("point %d: %d/%d, want %d/%d", i, p.Wins, p.Total, wantWins[i], wantTotal[i])
		}
		want := float64(wantWins[i]) / float64(wantTotal[i])
		if math.Abs(p.WinRate-want) > 1e-9 {
			t.Errorf("point %d: win rate %f, want %f", i, p.WinRate, want)
		}
	}
}

func TestRollingWinRateWindowClamp(t *testing.T) {
	points := timeline(t, step{"2024-01-01", true}, step{"2024-01-02", false})
	series := RollingWinRate(points, 0)
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}
	if series[0].WinRate != 1 || series[1].WinRate != 0 {
		t.Errorf("window 0 should clamp to 1: got %f, %f", series[0].WinRate, series[1].WinRate)
	}
}

func TestRollingWinRateEmpty(t *testing.T) {
	if got := RollingWinRate(nil, 5); got != nil {
		t.Errorf("empty input should yield nil, got %d points", len(got))
	}
}
