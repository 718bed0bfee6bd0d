package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jnetstats/go-jnet-stats/internal/aggregator"
	"github.com/jnetstats/go-jnet-stats/internal/model"
	"github.com/jnetstats/go-jnet-stats/internal/refdata"
	"github.com/jnetstats/go-jnet-stats/internal/report"
)

var (
	diffPeriod   string
	diffFrom     string
	diffTo       string
	diffFormat   string
	diffSide     string
	diffFaction  string
	diffIdentity string
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Win/loss differential candles over time",
	Long:  "Aggregate the viewer's cumulative win/loss differential into OHLC candles per period.",
	Args:  cobra.NoArgs,
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffPeriod, "period", "weekly", "candle period: daily, weekly or monthly")
	diffCmd.Flags().StringVar(&diffFrom, "from", "", "range start (YYYY-MM-DD)")
	diffCmd.Flags().StringVar(&diffTo, "to", "", "range end (YYYY-MM-DD)")
	diffCmd.Flags().StringVar(&diffFormat, "format", "", "only games of this format")
	diffCmd.Flags().StringVar(&diffSide, "side", "", "only games played as runner or corp")
	diffCmd.Flags().StringVar(&diffFaction, "faction", "", "only games on identities of this faction")
	diffCmd.Flags().StringVar(&diffIdentity, "identity", "", "only games on this identity")
}

func runDiff(cmd *cobra.Command, args []string) error {
	period, ok := aggregator.ParsePeriod(diffPeriod)
	if !ok || period == aggregator.Yearly {
		return fmt.Errorf("invalid --period %q, want daily, weekly or monthly", diffPeriod)
	}
	from, err := parseDateFlag(diffFrom, "from")
	if err != nil {
		return err
	}
	to, err := parseDateFlag(diffTo, "to")
	if err != nil {
		return err
	}
	side, err := parseSideFlag(diffSide)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	games, prof, err := loadHistory(db)
	if err != nil {
		return err
	}
	if prof == nil {
		fmt.Fprintln(os.Stdout, "No stored games name a player; nothing to aggregate.")
		return nil
	}

	filters := &model.Filters{
		Format:   diffFormat,
		Side:     side,
		Faction:  diffFaction,
		Identity: diffIdentity,
	}
	points := aggregator.DifferentialTimeline(games, prof.Usernames, refdata.Identities(), filters)
	if !from.IsZero() {
		from = aggregator.StartOfDay(from)
	}
	if !to.IsZero() {
		to = aggregator.EndOfDay(to)
	}
	candles := aggregator.Candles(points, period, from, to)

	report.PrintProfile(os.Stdout, prof)
	report.PrintCandleTable(os.Stdout, candles)
	return nil
}
