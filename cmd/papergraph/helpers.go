package main

import (
	"os"

	"github.com/ewsmith/papergraph/internal/config"
	"github.com/ewsmith/papergraph/internal/graph"
	"github.com/ewsmith/papergraph/internal/record"
	"github.com/ewsmith/papergraph/internal/storage"
)

// mustFindRepository locates the repository root or exits.
func mustFindRepository() string {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting working directory: %s", err)
	}
	root, err := config.FindRepository(cwd)
	if err != nil {
		exitWithError(ExitConfigError, "%s", err)
	}
	return root
}

// loadRecords reads all records from the repository's JSONL store.
func loadRecords(root string) []record.PaperRecord {
	records, err := storage.ReadAll(config.RecordsPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading records: %s", err)
	}
	return records
}

// buildOptions assembles builder options from the repository config.
func buildOptions(root string) graph.BuildOptions {
	opts := graph.DefaultBuildOptions()
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %s", err)
	}
	if cfg.Unspecified != "" {
		opts.Unspecified = cfg.Unspecified
	}
	if cfg.CoOccurrenceThreshold > 0 {
		opts.CoOccurrenceThreshold = cfg.CoOccurrenceThreshold
	}
	return opts
}
