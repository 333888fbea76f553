package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/inbox"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

func newClassifyCommand(verbose *bool) *cobra.Command {
	var format string
	var projectDir string

	cmd := &cobra.Command{
		Use:   "classify <file>",
		Short: "Classify a message dump and print the transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, projectDir, args[0], format, *verbose)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "dump format (sms-csv, sms-json); detected from extension if empty")
	cmd.Flags().StringVar(&projectDir, "dir", ".", "project directory")

	return cmd
}

func runClassify(cmd *cobra.Command, dir, file, format string, verbose bool) error {
	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}

	msgs, err := parseDump(file, format)
	if err != nil {
		return err
	}

	engine := newEngine(cfg, newLogger(verbose))
	txns := engine.ClassifyAll(msgs)

	for _, txn := range txns {
		cmd.Println(formatTransaction(cfg.Currency, txn))
	}
	cmd.Printf("%d of %d messages classified as transactions\n", len(txns), len(msgs))
	return nil
}

// parseDump picks a parser for the file and parses it.
func parseDump(file, format string) ([]model.RawMessage, error) {
	if format == "" {
		format = inbox.DetectFormat(file)
	}
	parser := inbox.DefaultRegistry().Get(format)
	if parser == nil {
		return nil, fmt.Errorf("unknown dump format %q for %s", format, file)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}
	defer f.Close()

	msgs, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	return msgs, nil
}

func formatTransaction(currency string, txn model.Transaction) string {
	date := "(undated)"
	if txn.Dated() {
		date = txn.OccurredAt.UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("%-10s  %-8s  %14s  %-15s  %s",
		date, txn.Kind, report.FormatAmount(currency, txn.Amount), txn.Category, txn.Sender)
}
