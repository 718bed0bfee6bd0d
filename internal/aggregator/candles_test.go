package aggregator

import (
	"testing"
	"time"

	"github.com/jnetstats/go-jnet-stats/internal/model"
)

type step struct {
	date string
	won  bool
}

// timeline builds differential points directly so candle tests control the
// exact cumulative path.
func timeline(t *testing.T, steps ...step) []model.DifferentialPoint {
	t.Helper()
	cumulative := 0
	points := make([]model.DifferentialPoint, 0, len(steps))
	for _, s := range steps {
		delta := -1
		if s.won {
			delta = 1
		}
		cumulative += delta
		points = append(points, model.DifferentialPoint{
			Date:       day(t, s.date),
			Cumulative: cumulative,
			Delta:      delta,
			DidWin:     s.won,
		})
	}
	return points
}

func TestCandlesWeekly(t *testing.T) {
	// Week of Jan 1 2024 (Mon): W W L. Week of Jan 8: L L.
	points := timeline(t,
		step{"2024-01-01", true},
		step{"2024-01-02", true},
		step{"2024-01-03", false},
		step{"2024-01-08", false},
		step{"2024-01-09", false},
	)

	candles := Candles(points, Weekly, time.Time{}, time.Time{})
	if len(candles) != 2 {
		t.Fatalf("expected 2 candles, got %d", len(candles))
	}

	first := candles[0]
	if first.Open != 0 || first.Close != 1 || first.High != 2 || first.Low != 0 {
		t.Errorf("first candle = O%d C%d H%d L%d, want O0 C1 H2 L0",
			first.Open, first.Close, first.High, first.Low)
	}
	second := candles[1]
	if second.Open != 1 || second.Close != -1 || second.High != 1 || second.Low != -1 {
		t.Errorf("second candle = O%d C%d H%d L%d, want O1 C-1 H1 L-1",
			second.Open, second.Close, second.High, second.Low)
	}
	if !second.Start.Equal(day(t, "2024-01-08")) {
		t.Errorf("second candle start = %v, want 2024-01-08", second.Start)
	}
}

func TestCandlesBaselineCarriesIntoRange(t *testing.T) {
	// Three wins before the range, then one loss inside it. The first
	// in-range candle must open at 3, not 0.
	points := timeline(t,
		step{"2024-01-01", true},
		step{"2024-01-02", true},
		step{"2024-01-03", true},
		step{"2024-02-05", false},
	)

	candles := Candles(points, Monthly, day(t, "2024-02-01"), day(t, "2024-02-28"))
	if len(candles) != 1 {
		t.Fatalf("expected 1 candle, got %d", len(candles))
	}
	c := candles[0]
	if c.Open != 3 || c.Close != 2 || c.High != 3 || c.Low != 2 {
		t.Errorf("candle = O%d C%d H%d L%d, want O3 C2 H3 L2", c.Open, c.Close, c.High, c.Low)
	}
}

func TestCandlesInvertedRange(t *testing.T) {
	points := timeline(t, step{"2024-01-01", true})
	if got := Candles(points, Daily, day(t, "2024-02-01"), day(t, "2024-01-01")); got != nil {
		t.Errorf("inverted range should yield no candles, got %d", len(got))
	}
}

func TestCandlesEmptyInput(t *testing.T) {
	if got := Candles(nil, Daily, time.Time{}, time.Time{}); got != nil {
		t.Errorf("empty input should yield no candles, got %d", len(got))
	}
}

func TestCandlesMixedZoneOffsetsShareOneDay(t *testing.T) {
	// Two points on the same wall-clock day, one carrying a zone offset,
	// must fold into a single daily candle instead of splitting the day.
	stamped, err := time.Parse(time.RFC3339, "2024-01-05T09:00:00+02:00")
	if err != nil {
		t.Fatalf("parse timestamp: %v", err)
	}
	points := []model.DifferentialPoint{
		{Date: day(t, "2024-01-05"), Cumulative: -1, Delta: -1},
		{Date: stamped, Cumulative: 0, Delta: 1, DidWin: true},
	}

	candles := Candles(points, Daily, time.Time{}, time.Time{})
	if len(candles) != 1 {
		t.Fatalf("expected 1 candle, got %d", len(candles))
	}
	c := candles[0]
	if c.Open != 0 || c.Close != 0 || c.High != 0 || c.Low != -1 {
		t.Errorf("candle = O%d C%d H%d L%d, want O0 C0 H0 L-1", c.Open, c.Close, c.High, c.Low)
	}
}

func TestCandlesHighLowCoverIntraBucketSwing(t *testing.T) {
	// One daily bucket: W L L W ends where it started, but the candle must
	// still record the excursion down to -1.
	points := []model.DifferentialPoint{
		{Date: day(t, "2024-01-01"), Cumulative: 1, Delta: 1, DidWin: true},
		{Date: day(t, "2024-01-01"), Cumulative: 0, Delta: -1},
		{Date: day(t, "2024-01-01"), Cumulative: -1, Delta: -1},
		{Date: day(t, "2024-01-01"), Cumulative: 0, Delta: 1, DidWin: true},
	}
	candles := Candles(points, Daily, time.Time{}, time.Time{})
	if len(candles) != 1 {
		t.Fatalf("expected 1 candle, got %d", len(candles))
	}
	c := candles[0]
	if c.High != 1 || c.Low != -1 || c.Open != 0 || c.Close != 0 {
		t.Errorf("candle = O%d C%d H%d L%d, want O0 C0 H1 L-1", c.Open, c.Close, c.High, c.Low)
	}
}
