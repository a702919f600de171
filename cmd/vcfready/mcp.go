package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/vcfready/vcfready/internal/mcptools"
)

func newMCPCmd() *cobra.Command {
	var (
		catalogPath string
		classifier  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the readiness tools over MCP on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			cat, err := loadCatalog(cfg, catalogPath)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, cat, classifier)
			if err != nil {
				return err
			}
			return server.ServeStdio(mcptools.New(cat, engine))
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in)")
	cmd.Flags().StringVar(&classifier, "classifier", "", "Classifier: phrase or severity (default from config)")

	return cmd
}
