package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	dbPath  string
	verbose bool

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jnetstats",
	Short: "Netrunner match history statistics tool",
	Long:  "Load jinteki.net game history exports and compute per-player win-rate statistics.",
}

// Execute runs the root command.
func Execute() {
	_ = godotenv.Load()

	cobra.OnInitialize(func() {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()

		if env := os.Getenv("JNETSTATS_DB"); env != "" && !rootCmd.PersistentFlags().Changed("db") {
			dbPath = env
		}
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".jnetstats", "history.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(rollingCmd)
	rootCmd.AddCommand(identitiesCmd)
	rootCmd.AddCommand(opponentsCmd)
	rootCmd.AddCommand(accessesCmd)
	rootCmd.AddCommand(turnsCmd)
	rootCmd.AddCommand(playedCmd)
	rootCmd.AddCommand(rangesCmd)
	rootCmd.AddCommand(dropCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
