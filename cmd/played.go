package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jnetstats/go-jnet-stats/internal/aggregator"
	"github.com/jnetstats/go-jnet-stats/internal/report"
)

var (
	playedPeriod string
	playedFrom   string
	playedTo     string
)

var playedCmd = &cobra.Command{
	Use:   "played",
	Short: "Games played per period, split into wins, losses and draws",
	Args:  cobra.NoArgs,
	RunE:  runPlayed,
}

func init() {
	playedCmd.Flags().StringVar(&playedPeriod, "period", "monthly", "bucket period: daily, weekly, monthly or yearly")
	playedCmd.Flags().StringVar(&playedFrom, "from", "", "range start (YYYY-MM-DD)")
	playedCmd.Flags().StringVar(&playedTo, "to", "", "range end (YYYY-MM-DD)")
}

func runPlayed(cmd *cobra.Command, args []string) error {
	period, ok := aggregator.ParsePeriod(playedPeriod)
	if !ok {
		return fmt.Errorf("invalid --period %q, want daily, weekly, monthly or yearly", playedPeriod)
	}
	from, err := parseDateFlag(playedFrom, "from")
	if err != nil {
		return err
	}
	to, err := parseDateFlag(playedTo, "to")
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

	buckets := aggregator.GamesPlayedBuckets(games, prof.Usernames, period, from, to)
	report.PrintGamesPlayed(os.Stdout, buckets)
	return nil
}
