package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jnetstats/go-jnet-stats/internal/aggregator"
	"github.com/jnetstats/go-jnet-stats/internal/report"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the detected viewer profile",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintln(os.Stdout, "No stored games name a player; cannot detect a viewer.")
		return nil
	}
	report.PrintProfile(os.Stdout, prof)
	if min, max := aggregator.DataBounds(games); !min.IsZero() {
		fmt.Fprintf(os.Stdout, "History spans %s to %s.\n",
			min.Format("2006-01-02"), max.Format("2006-01-02"))
	}
	return nil
}
