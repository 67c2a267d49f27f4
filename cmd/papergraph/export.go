package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/ewsmith/papergraph/internal/export"
	"github.com/ewsmith/papergraph/internal/record"
)

var (
	exportOutput string
	exportFormat string
	exportAppend bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default: stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json or bibtex")
	exportCmd.Flags().BoolVar(&exportAppend, "append", false, "Append to an existing .bib file, skipping entries already present")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all records as JSON or BibTeX",
	Long: `Export the record library as a single JSON array (suitable for
re-import with 'papergraph import') or as BibTeX entries.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	records := loadRecords(root)

	switch exportFormat {
	case "json":
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			exitWithError(ExitDataError, "encoding records: %s", err)
		}
		writeExport(append(out, '\n'), len(records))
	case "bibtex":
		if exportAppend {
			appendBibTeX(records)
			return nil
		}
		writeExport([]byte(export.ToBibTeXList(records)), len(records))
	default:
		exitWithError(ExitError, "unknown format %q (expected json or bibtex)", exportFormat)
	}
	return nil
}

func appendBibTeX(records []record.PaperRecord) {
	if exportOutput == "" {
		exitWithError(ExitError, "--append requires --output")
	}

	idx, err := export.ParseBibTeXFile(exportOutput)
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %s", exportOutput, err)
	}

	var fresh []record.PaperRecord
	for _, r := range records {
		if !idx.HasEntry(r.ID, r.DOI) {
			fresh = append(fresh, r)
		}
	}

	if len(fresh) > 0 {
		if err := export.AppendToBibFile(exportOutput, export.ToBibTeXList(fresh)); err != nil {
			exitWithError(ExitError, "writing %s: %s", exportOutput, err)
		}
	}

	if humanOutput {
		outputHuman("Appended %d new entries to %s (%d already present)\n",
			len(fresh), exportOutput, len(records)-len(fresh))
	} else {
		outputJSON(map[string]int{"appended": len(fresh), "skipped": len(records) - len(fresh)})
	}
}

func writeExport(data []byte, count int) {
	if exportOutput == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		exitWithError(ExitError, "writing %s: %s", exportOutput, err)
	}
	if humanOutput {
		outputHuman("Exported %d records to %s\n", count, exportOutput)
	}
}
