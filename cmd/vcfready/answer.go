package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcfready/vcfready/pkg/ledger"
)

type ledgerFlags struct {
	path string
	name string
}

func (f *ledgerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "ledger", "", "Ledger file (default: named ledger in the cache dir)")
	cmd.Flags().StringVar(&f.name, "name", "default", "Assessment name, used when --ledger is not set")
}

func (f *ledgerFlags) resolve() string {
	return resolveLedger(f.path, f.name)
}

func newAnswerCmd() *cobra.Command {
	var (
		lf          ledgerFlags
		catalogPath string
		prefix      string
		questionID  string
		answer      string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Record an answer in a ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(loadConfig(), catalogPath)
			if err != nil {
				return err
			}
			q, ok := cat.Lookup(prefix, questionID)
			if !ok {
				return fmt.Errorf("unknown question %s:%s", prefix, questionID)
			}

			path := lf.resolve()
			l, err := ledger.LoadOrNew(path)
			if err != nil {
				return err
			}
			e, err := l.Answer(prefix, q, answer)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("notes") {
				e = l.SetNotes(e.Key(), notes)
			}
			if err := ledger.Save(path, l); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "%s = %s: %s\n", e.Key(), e.Answer, e.Result)
			fmt.Fprintf(os.Stderr, "Ledger saved: %s (%d answered)\n", path, l.Len())
			return nil
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Question set prefix, e.g. generic (required)")
	cmd.Flags().StringVar(&questionID, "question", "", "Question ID (required)")
	cmd.Flags().StringVar(&answer, "answer", "", "Answer value, e.g. yes or no (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes to attach")
	_ = cmd.MarkFlagRequired("prefix")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func newNotesCmd() *cobra.Command {
	var (
		lf          ledgerFlags
		catalogPath string
		prefix      string
		questionID  string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Attach notes to a question",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(loadConfig(), catalogPath)
			if err != nil {
				return err
			}
			if _, ok := cat.Lookup(prefix, questionID); !ok {
				return fmt.Errorf("unknown question %s:%s", prefix, questionID)
			}

			path := lf.resolve()
			l, err := ledger.LoadOrNew(path)
			if err != nil {
				return err
			}
			l.SetNotes(ledger.Key{Prefix: prefix, QuestionID: questionID}, notes)
			if err := ledger.Save(path, l); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Notes saved: %s\n", path)
			return nil
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Question set prefix (required)")
	cmd.Flags().StringVar(&questionID, "question", "", "Question ID (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes text")
	_ = cmd.MarkFlagRequired("prefix")
	_ = cmd.MarkFlagRequired("question")

	return cmd
}

func newResetCmd() *cobra.Command {
	var (
		lf     ledgerFlags
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard answers from a ledger",
		Long: `Discards every answer in the ledger, or with --prefix only the answers of
one question set (use this when dropping a sub-path).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := lf.resolve()
			l, err := ledger.LoadOrNew(path)
			if err != nil {
				return err
			}
			n := l.Len()
			if prefix != "" {
				n = l.DeletePrefix(prefix)
			} else {
				l.Reset()
			}
			if err := ledger.Save(path, l); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Removed %d answers from %s\n", n, path)
			return nil
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only discard answers under this prefix")

	return cmd
}
