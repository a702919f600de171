package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcfready/vcfready/pkg/readiness"
	"github.com/vcfready/vcfready/pkg/surface"
)

func newLintCmd() *cobra.Command {
	var (
		catalogPath string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check catalog result phrases against declared severities",
		Long: `Reports catalog options whose declared severity disagrees with how the
phrase classifier reads the result text, phrases matching more than one
trigger, and options without a declared severity. Exits non-zero when any
high-severity finding is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(loadConfig(), catalogPath)
			if err != nil {
				return err
			}
			findings := readiness.LintCatalog(cat)

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if findings == nil {
					findings = []readiness.LintFinding{}
				}
				if err := enc.Encode(findings); err != nil {
					return fmt.Errorf("encoding JSON: %w", err)
				}
			} else {
				surface.RenderLint(os.Stdout, findings)
			}

			if readiness.HasHigh(findings) {
				return fmt.Errorf("catalog lint: high-severity findings")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
