package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

func newReportCommand() *cobra.Command {
	var kind string
	var period string
	var list bool

	cmd := &cobra.Command{
		Use:   "report [directory]",
		Short: "Summarize spending and income from the ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runReport(cmd, absDir, kind, report.DateFilter(period), list)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind (Debit, Credit, Recharge)")
	cmd.Flags().StringVar(&period, "period", string(report.DateAll), "window for --list (All, Today, Week, Month)")
	cmd.Flags().BoolVar(&list, "list", false, "list matching transactions")

	return cmd
}

func runReport(cmd *cobra.Command, dir, kind string, period report.DateFilter, list bool) error {
	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}

	store := ledger.NewService(resolvePath(dir, cfg.Paths.Ledger))
	txns, err := store.ReadAll()
	if err != nil {
		return err
	}

	if kind != "" {
		k := model.Kind(kind)
		if !k.Valid() {
			return fmt.Errorf("unknown kind %q", kind)
		}
		txns = report.FilterByKind(txns, k)
	}

	now := time.Now()
	a := report.Analyze(txns, now)
	totals := report.Totals(txns)

	printTotals(cmd, cfg.Currency, "Today", a.Today)
	printTotals(cmd, cfg.Currency, "Week", a.Week)
	printTotals(cmd, cfg.Currency, "Month", a.Month)
	printTotals(cmd, cfg.Currency, "All", totals)

	if list {
		for _, txn := range report.FilterByDate(txns, period, now) {
			cmd.Println(formatTransaction(cfg.Currency, txn))
		}
	}
	return nil
}

func printTotals(cmd *cobra.Command, currency, label string, p report.PeriodTotals) {
	cmd.Printf("%-6s  spent %s, credited %s\n",
		label, report.FormatAmount(currency, p.Spent), report.FormatAmount(currency, p.Credited))
}
