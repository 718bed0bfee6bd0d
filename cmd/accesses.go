package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jnetstats/go-jnet-stats/internal/aggregator"
	"github.com/jnetstats/go-jnet-stats/internal/report"
)

var accessesCorp bool

var accessesCmd = &cobra.Command{
	Use:   "accesses",
	Short: "Win/loss histogram by unique cards accessed",
	Args:  cobra.NoArgs,
	RunE:  runAccesses,
}

func init() {
	accessesCmd.Flags().BoolVar(&accessesCorp, "corp", false, "corp-side games (accesses suffered) instead of runner-side")
}

func runAccesses(cmd *cobra.Command, args []string) error {
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

	buckets := aggregator.RunnerAccessBuckets(games, prof.Usernames)
	if accessesCorp {
		buckets = aggregator.CorpAccessBuckets(games, prof.Usernames)
	}
	report.PrintHistogram(os.Stdout, buckets, "ACCESSES")
	return nil
}
