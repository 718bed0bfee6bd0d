package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored uploads",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	uploads, err := db.ListUploads()
	if err != nil {
		return fmt.Errorf("list uploads: %w", err)
	}
	if len(uploads) == 0 {
		fmt.Fprintln(os.Stdout, "No uploads stored yet. Run 'jnetstats load <history.json>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-28s  %-16s  %6s  %s\n",
		"HASH", "FILE", "USER", "GAMES", "LOADED")
	fmt.Fprintf(os.Stdout, "%-14s  %-28s  %-16s  %6s  %s\n",
		"──────────────", "────────────────────────────", "────────────────", "──────", "──────")
	for _, u := range uploads {
		user := u.Username
		if user == "" {
			user = "—"
		}
		fmt.Fprintf(os.Stdout, "%-14s  %-28s  %-16s  %6d  %s\n",
			u.Hash[:12], u.FileName, user, u.TotalGames, u.LoadedAt)
	}
	return nil
}
