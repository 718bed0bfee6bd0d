package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jnetstats/go-jnet-stats/internal/refdata"
	"github.com/jnetstats/go-jnet-stats/internal/report"
)

var rangesFormat string

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "Show the named historical ranges of a format",
	Args:  cobra.NoArgs,
	RunE:  runRanges,
}

func init() {
	rangesCmd.Flags().StringVar(&rangesFormat, "format", "standard", "format name")
}

func runRanges(cmd *cobra.Command, args []string) error {
	report.PrintKnownRanges(os.Stdout, refdata.KnownRanges(rangesFormat))
	return nil
}
