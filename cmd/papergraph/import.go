package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ewsmith/papergraph/internal/config"
	"github.com/ewsmith/papergraph/internal/crossref"
	"github.com/ewsmith/papergraph/internal/importer"
	"github.com/ewsmith/papergraph/internal/record"
	"github.com/ewsmith/papergraph/internal/storage"
	"github.com/spf13/cobra"
)

var importResolve bool

func init() {
	importCmd.Flags().BoolVar(&importResolve, "resolve", false, "Fill missing fields from Crossref where a DOI is known")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import paper records from JSON exports or PDFs",
	Long: `Import paper records into the repository.

JSON files may contain a single record object or an array of records; list
fields tolerate native arrays, JSON-encoded array strings, and bare scalars.
PDF files are scanned for a DOI and title to seed a minimal record.

Records already present (by content fingerprint or DOI) are skipped.

Examples:
  papergraph import papers.json
  papergraph import --resolve paper.pdf
  papergraph import exports/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

// importSummary is the JSON output of the import command.
type importSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	existing := loadRecords(root)

	var incoming []record.PaperRecord
	var allErrs []string

	for _, path := range args {
		records, errs := importFile(path)
		for _, err := range errs {
			allErrs = append(allErrs, err.Error())
		}
		incoming = append(incoming, records...)
	}

	if importResolve {
		incoming = resolveRecords(cmd.Context(), incoming)
	}

	dupes := importer.FindDuplicates(incoming, existing)

	summary := importSummary{Errors: allErrs}
	recordsPath := config.RecordsPath(root)
	for i, r := range incoming {
		if _, ok := dupes[i]; ok {
			logger.Debug("skipping duplicate record", "id", r.ID)
			summary.Skipped++
			continue
		}
		if err := storage.Append(recordsPath, r); err != nil {
			exitWithError(ExitDataError, "appending record %s: %s", r.ID, err)
		}
		summary.Imported++
	}

	if humanOutput {
		outputHuman("Imported %d records (%d skipped, %d errors)\n",
			summary.Imported, summary.Skipped, len(summary.Errors))
		for _, e := range summary.Errors {
			outputHuman("  error: %s\n", e)
		}
		return nil
	}
	return outputJSON(summary)
}

// importFile dispatches on file extension.
func importFile(path string) ([]record.PaperRecord, []error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		r, err := importer.FromPDF(path)
		if err != nil {
			return nil, []error{err}
		}
		logger.Debug("imported PDF", "path", path, "doi", r.DOI)
		return []record.PaperRecord{r}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{err}
	}
	return importer.ParseRecords(data)
}

// resolveRecords fills missing metadata from Crossref for records with DOIs.
// Lookup failures degrade to the unresolved record.
func resolveRecords(ctx context.Context, records []record.PaperRecord) []record.PaperRecord {
	global, err := config.LoadGlobalConfig()
	if err != nil {
		logger.Warn("skipping resolution", "err", err)
		return records
	}

	var opts []crossref.ClientOption
	if global.CrossrefMailto != "" {
		opts = append(opts, crossref.WithMailto(global.CrossrefMailto))
	}
	client := crossref.NewClient(opts...)

	for i, r := range records {
		if r.DOI == "" {
			continue
		}
		resolved, err := client.Lookup(ctx, r.DOI, r)
		if err != nil {
			logger.Warn("crossref lookup failed", "doi", r.DOI, "err", err)
			continue
		}
		resolved.ID = importer.MakeID(resolved)
		records[i] = resolved
	}
	return records
}
