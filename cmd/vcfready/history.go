package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vcfready/vcfready/internal/history"
	"github.com/vcfready/vcfready/pkg/config"
)

func newHistoryCmd() *cobra.Command {
	var (
		ledgerPath string
		limit      int
		outputFmt  string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent evaluations",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(config.HistoryPath())
			if err != nil {
				return err
			}
			defer store.Close()

			ref := ""
			if ledgerPath != "" {
				ref = resolveLedger(ledgerPath, "")
			}
			records, err := store.Recent(cmd.Context(), ref, limit)
			if err != nil {
				return err
			}

			if outputFmt == "json" {
				if records == nil {
					records = []history.Record{}
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			if len(records) == 0 {
				fmt.Println("No evaluations recorded.")
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WHEN\tSCORE\tLABEL\tANSWERED\tBLOCKERS\tWARNINGS\tCLASSIFIER\tLEDGER")
			for _, r := range records {
				fmt.Fprintf(tw, "%s\t%d%%\t%s\t%d\t%d\t%d\t%s\t%s\n",
					r.CreatedAt.Local().Format(time.DateTime), r.Score, r.Label,
					r.Answered, r.Blockers, r.Warnings, r.Classifier, r.Ledger)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "Only show evaluations of this ledger file")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of evaluations")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
