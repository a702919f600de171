package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPathsCmd() *cobra.Command {
	var (
		catalogPath string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List deployment paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(loadConfig(), catalogPath)
			if err != nil {
				return err
			}
			paths := cat.Paths()

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(paths)
			}
			for _, p := range paths {
				fmt.Printf("%s  %s\n", p.ID, p.Title)
				fmt.Printf("       %s\n", p.Description)
				for _, set := range p.SubPaths {
					fmt.Printf("       --subpath %-18s %s\n", set.Prefix, set.Title)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func newQuestionsCmd() *cobra.Command {
	var (
		catalogPath string
		pathID      string
		subPaths    []string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questions asked on a deployment path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(loadConfig(), catalogPath)
			if err != nil {
				return err
			}
			questions, err := cat.Questions(pathID, subPaths...)
			if err != nil {
				return err
			}

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(questions)
			}
			for _, q := range questions {
				fmt.Printf("%s:%s [%s]\n  %s\n  answers: %v\n", q.Prefix, q.ID, q.Category, q.Text, q.Answers())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in)")
	cmd.Flags().StringVar(&pathID, "path", "", "Deployment path ID (required)")
	cmd.Flags().StringSliceVar(&subPaths, "subpath", nil, "Sub-path prefixes to include (repeatable)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
