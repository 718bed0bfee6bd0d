// Package report renders aggregated series as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/jnetstats/go-jnet-stats/internal/model"
	"github.com/jnetstats/go-jnet-stats/internal/refdata"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintProfile prints the detected viewer profile and coverage numbers.
func PrintProfile(w io.Writer, p *model.UserProfile) {
	if p == nil {
		fmt.Fprintln(w, "no profile detected")
		return
	}
	fmt.Fprintf(w, "\nViewer: %s", p.Username)
	if len(p.Usernames) > 1 {
		fmt.Fprintf(w, " (aliases: %v)", p.Usernames[1:])
	}
	fmt.Fprintf(w, "\nGames: %d total | %d as runner | %d as corp | %d unmatched | coverage %.1f%%\n\n",
		p.TotalGames, p.RunnerGames, p.CorpGames, p.UnmatchedGames, p.Coverage*100)
}

// PrintSources prints the per-file summaries of a multi-file merge.
func PrintSources(w io.Writer, sources []model.UploadSource) {
	if len(sources) == 0 {
		fmt.Fprintln(w, "no uploads stored")
		return
	}
	table := newTable(w)
	table.Header("FILE", "DETECTED USER", "GAMES")
	for _, s := range sources {
		user := s.Username
		if user == "" {
			user = "—"
		}
		table.Append(s.FileName, user, strconv.Itoa(s.TotalGames))
	}
	table.Render()
}

// SortByFaction stable-sorts stat rows into faction display order: runner
// factions first, then corp, then unknown. Within a faction the incoming
// order (total games descending) is kept.
func SortByFaction(stats []model.IdentityStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		return refdata.FactionRank(stats[i].Faction) < refdata.FactionRank(stats[j].Faction)
	})
}

// PrintIdentityTable prints categorical win-rate rows.
func PrintIdentityTable(w io.Writer, stats []model.IdentityStat) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "nothing to show")
		return
	}
	table := newTable(w)
	table.Header("IDENTITY", "FACTION", "W", "L", "TOTAL", "WIN%")
	for _, s := range stats {
		table.Append(
			s.Identity,
			refdata.FactionLabel(s.Faction),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Total),
			fmt.Sprintf("%.1f%%", s.WinRate*100),
		)
	}
	table.Render()
}

// PrintCandleTable prints differential candles for one period.
func PrintCandleTable(w io.Writer, candles []model.DifferentialCandle) {
	if len(candles) == 0 {
		fmt.Fprintln(w, "nothing to show")
		return
	}
	table := newTable(w)
	table.Header("BUCKET", "OPEN", "CLOSE", "HIGH", "LOW")
	for _, c := range candles {
		table.Append(
			c.Start.Format("2006-01-02"),
			strconv.Itoa(c.Open),
			strconv.Itoa(c.Close),
			strconv.Itoa(c.High),
			strconv.Itoa(c.Low),
		)
	}
	table.Render()
}

// PrintRollingTable prints the rolling win-rate series. Warm-up rows where
// fewer samples than the window were available are marked with "*".
func PrintRollingTable(w io.Writer, points []model.RollingWinRatePoint, window int) {
	if len(points) == 0 {
		fmt.Fprintln(w, "nothing to show")
		return
	}
	table := newTable(w)
	table.Header(" ", "DATE", "WIN%", "WINS", "SAMPLES")
	for _, p := range points {
		marker := " "
		if p.Total < window {
			marker = "*"
		}
		table.Append(
			marker,
			p.Date.Format("2006-01-02"),
			fmt.Sprintf("%.1f%%", p.WinRate*100),
			strconv.Itoa(p.Wins),
			strconv.Itoa(p.Total),
		)
	}
	table.Render()
}

// PrintHistogram prints an integer-keyed win/loss histogram.
func PrintHistogram(w io.Writer, buckets []model.WinLossBucket, valueLabel string) {
	if len(buckets) == 0 {
		fmt.Fprintln(w, "nothing to show")
		return
	}
	table := newTable(w)
	table.Header(valueLabel, "W", "L", "TOTAL")
	for _, b := range buckets {
		table.Append(
			strconv.Itoa(b.Value),
			strconv.Itoa(b.Wins),
			strconv.Itoa(b.Losses),
			strconv.Itoa(b.Total),
		)
	}
	table.Render()
}

// PrintGamesPlayed prints per-period game counts including draws.
func PrintGamesPlayed(w io.Writer, buckets []model.GamesPlayedBucket) {
	if len(buckets) == 0 {
		fmt.Fprintln(w, "nothing to show")
		return
	}
	table := newTable(w)
	table.Header("PERIOD", "W", "L", "DRAWS", "TOTAL")
	for _, b := range buckets {
		table.Append(
			b.Label,
			strconv.Itoa(b.Wins),
			strconv.Itoa(b.Losses),
			strconv.Itoa(b.Draws),
			strconv.Itoa(b.Total),
		)
	}
	table.Render()
}

// PrintKnownRanges prints the named historical ranges of a format.
func PrintKnownRanges(w io.Writer, ranges []model.KnownRange) {
	if len(ranges) == 0 {
		fmt.Fprintln(w, "no known ranges for that format")
		return
	}
	table := newTable(w)
	table.Header("LABEL", "START", "END")
	for _, r := range ranges {
		table.Append(r.Label, r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
	}
	table.Render()
}
