package main

import (
	"os"

	"github.com/ewsmith/papergraph/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a papergraph repository in the current directory",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	if err := config.Init(cwd); err != nil {
		exitWithError(ExitConfigError, "%s", err)
	}

	if humanOutput {
		outputHuman("Initialized papergraph repository in %s\n", config.PapergraphPath(cwd))
		return nil
	}
	return outputJSON(map[string]string{"initialized": config.PapergraphPath(cwd)})
}
