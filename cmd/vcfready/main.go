// Package main provides the vcfready CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vcfready",
		Short: "VCF 9.0 readiness assessment",
		Long: `vcfready walks a VMware environment through the VCF 9.0 readiness
questionnaire for its deployment path, records the answers in a ledger,
and scores how ready the environment is.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newPathsCmd(),
		newQuestionsCmd(),
		newAnswerCmd(),
		newNotesCmd(),
		newResetCmd(),
		newEvaluateCmd(),
		newExportCmd(),
		newLintCmd(),
		newHistoryCmd(),
		newMCPCmd(),
	)
	return rootCmd
}
