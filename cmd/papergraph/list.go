package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all paper records",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	records := loadRecords(root)

	if humanOutput {
		for _, r := range records {
			if r.Year > 0 {
				outputHuman("%s  (%d) %s\n", r.ID, r.Year, r.Title)
			} else {
				outputHuman("%s  %s\n", r.ID, r.Title)
			}
		}
		outputHuman("%d records\n", len(records))
		return nil
	}
	return outputJSON(records)
}
