package main

import (
	"github.com/ewsmith/papergraph/internal/config"
	"github.com/ewsmith/papergraph/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the SQLite query cache from records.jsonl",
	RunE:  runRebuild,
}

func runRebuild(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitConfigError, "opening database: %s", err)
	}
	defer db.Close()

	n, err := db.RebuildFromJSONL(config.RecordsPath(root))
	if err != nil {
		exitWithError(ExitDataError, "rebuilding cache: %s", err)
	}

	logger.Debug("cache rebuilt", "records", n)
	if humanOutput {
		outputHuman("Rebuilt cache with %d records\n", n)
		return nil
	}
	return outputJSON(map[string]int{"records": n})
}
