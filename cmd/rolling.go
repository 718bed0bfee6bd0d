package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jnetstats/go-jnet-stats/internal/aggregator"
	"github.com/jnetstats/go-jnet-stats/internal/refdata"
	"github.com/jnetstats/go-jnet-stats/internal/report"
)

var rollingWindow int

var rollingCmd = &cobra.Command{
	Use:   "rolling",
	Short: "Rolling win rate over the last N games",
	Args:  cobra.NoArgs,
	RunE:  runRolling,
}

func init() {
	rollingCmd.Flags().IntVar(&rollingWindow, "window", 20, "number of games per window")
}

func runRolling(cmd *cobra.Command, args []string) error {
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

	points := aggregator.DifferentialTimeline(games, prof.Usernames, refdata.Identities(), nil)
	series := aggregator.RollingWinRate(points, rollingWindow)
	report.PrintRollingTable(os.Stdout, series, rollingWindow)
	return nil
}
