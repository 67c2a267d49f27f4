package main

import (
	"github.com/ewsmith/papergraph/internal/config"
	"github.com/ewsmith/papergraph/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single record by id (or DOI)",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitConfigError, "opening database (run 'papergraph rebuild' first): %s", err)
	}
	defer db.Close()

	r, err := db.GetByID(args[0])
	if err != nil {
		exitWithError(ExitDataError, "querying record: %s", err)
	}
	if r == nil {
		r, err = db.GetByDOI(args[0])
		if err != nil {
			exitWithError(ExitDataError, "querying record: %s", err)
		}
	}
	if r == nil {
		exitWithError(ExitDataError, "record not found: %s", args[0])
	}

	if humanOutput {
		outputHuman("%s\n  %s\n", r.ID, r.Title)
		if r.DOI != "" {
			outputHuman("  doi: %s\n", r.DOI)
		}
		if len(r.Authors) > 0 {
			outputHuman("  authors: %v\n", r.Authors.Strings())
		}
		return nil
	}
	return outputJSON(r)
}
