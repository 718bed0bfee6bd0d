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

var opponentsSide string

var opponentsCmd = &cobra.Command{
	Use:   "opponents",
	Short: "Win rates against opposing identities",
	Args:  cobra.NoArgs,
	RunE:  runOpponents,
}

func init() {
	opponentsCmd.Flags().StringVar(&opponentsSide, "side", "", "limit to games played as runner or corp")
}

func runOpponents(cmd *cobra.Command, args []string) error {
	side, err := parseSideFlag(opponentsSide)
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
		stats := aggregator.OpponentIdentityStats(games, prof.Usernames, role, identities)
		report.SortByFaction(stats)
		if overall := aggregator.OpponentOverallStat(games, prof.Usernames, role); overall != nil {
			stats = append(stats, *overall)
		}
		fmt.Fprintf(os.Stdout, "\nAs %s, versus:\n", role)
		report.PrintIdentityTable(os.Stdout, stats)
	}
	if side == model.RoleNone {
		if combined := aggregator.CombinedOverallStat(games, prof.Usernames); combined != nil {
			fmt.Fprintln(os.Stdout, "\nAll games:")
			report.PrintIdentityTable(os.Stdout, []model.IdentityStat{*combined})
		}
	}
	return nil
}
