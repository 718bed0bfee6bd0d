package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dropForce bool

// dropCmd clears the history database.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete all stored uploads and games",
	Long:  "Permanently delete every stored upload and game from the history database. Re-load your exports afterwards to rebuild.",
	Args:  cobra.NoArgs,
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently clear: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Drop(); err != nil {
		return fmt.Errorf("drop: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Cleared all stored uploads and games from %s\n", dbPath)
	return nil
}
