package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jnetstats/go-jnet-stats/internal/parser"
	"github.com/jnetstats/go-jnet-stats/internal/profile"
	"github.com/jnetstats/go-jnet-stats/internal/report"
	"github.com/jnetstats/go-jnet-stats/internal/storage"
)

var loadCmd = &cobra.Command{
	Use:   "load <history.json> [more.json...]",
	Short: "Load one or more game history exports into the database",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var uploads []profile.Upload
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		hash := parser.Checksum(raw)
		exists, err := db.UploadExists(hash)
		if err != nil {
			return fmt.Errorf("check upload: %w", err)
		}
		if exists {
			fmt.Fprintf(os.Stdout, "%s already loaded — skipping.\n", filepath.Base(path))
			continue
		}

		games, err := parser.ParseHistory(raw)
		if err != nil {
			var ferr *parser.FormatError
			if errors.As(err, &ferr) {
				return fmt.Errorf("%s: %s", filepath.Base(path), ferr.Error())
			}
			return fmt.Errorf("parse %s: %w", path, err)
		}
		log.Debug().Str("file", path).Int("games", len(games)).Msg("parsed history")

		upload := profile.Upload{FileName: filepath.Base(path), Games: games}
		uploads = append(uploads, upload)

		if err := db.InsertGames(games); err != nil {
			return fmt.Errorf("store %s: %w", path, err)
		}

		username := ""
		if p := profile.Detect(games); p != nil {
			username = p.Username
		}
		rec := storage.UploadRecord{
			Hash:       hash,
			FileName:   upload.FileName,
			Username:   username,
			TotalGames: len(games),
			LoadedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		if err := db.InsertUpload(rec); err != nil {
			return fmt.Errorf("record upload: %w", err)
		}
	}

	if len(uploads) == 0 {
		fmt.Fprintln(os.Stdout, "Nothing new to load.")
		return nil
	}

	_, merged, sources := profile.Merge(uploads)
	report.PrintSources(os.Stdout, sources)
	report.PrintProfile(os.Stdout, merged)

	total, err := db.CountGames()
	if err != nil {
		return fmt.Errorf("count games: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Database now holds %d games.\n", total)
	return nil
}
