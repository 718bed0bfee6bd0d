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

var identitiesSide string

var identitiesCmd = &cobra.Command{
	Use:   "identities",
	Short: "Win rates per identity played",
	Args:  cobra.NoArgs,
	RunE:  runIdentities,
}

func init() {
	identitiesCmd.Flags().StringVar(&identitiesSide, "side", "", "limit to games played as runner or corp")
}

func runIdentities(cmd *cobra.Command, args []string) error {
	side, err := parseSideFlag(identitiesSide)
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

	identities := refdata.Identities()
	roles := []model.Role{model.RoleRunner, model.RoleCorp}
	if side != model.RoleNone {
		roles = []model.Role{side}
	}
	for _, role := range roles {
		stats := aggregator.IdentityStats(games, prof.Usernames, role, identities)
		report.SortByFaction(stats)
		if overall := aggregator.OverallStat(games, prof.Usernames, role); overall != nil {
			stats = append(stats, *overall)
		}
		fmt.Fprintf(os.Stdout, "\nAs %s:\n", role)
		report.PrintIdentityTable(os.Stdout, stats)
	}
	return nil
}
