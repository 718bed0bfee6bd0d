package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jnetstats/go-jnet-stats/internal/aggregator"
	"github.com/jnetstats/go-jnet-stats/internal/report"
)

var turnsCmd = &cobra.Command{
	Use:   "turns",
	Short: "Win/loss histogram by game length in turns",
	Args:  cobra.NoArgs,
	RunE:  runTurns,
}

func runTurns(cmd *cobra.Command, args []string) error {
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

	buckets := aggregator.TurnBuckets(games, prof.Usernames)
	report.PrintHistogram(os.Stdout, buckets, "TURNS")
	return nil
}
