package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/classify"
	"github.com/fintrack-dev/fintrack/internal/inbox"
	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/rejectlog"
)

func newImportCommand(verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [directory]",
		Short: "Classify inbox dumps into the ledger",
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

			return runImport(cmd, absDir, *verbose)
		},
	}

	return cmd
}

func runImport(cmd *cobra.Command, dir string, verbose bool) error {
	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}

	inboxDir := resolvePath(dir, cfg.Paths.Inbox)
	files, err := inbox.Scan(inboxDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		cmd.Println("Nothing to import")
		return nil
	}

	engine := newEngine(cfg, newLogger(verbose))
	store := ledger.NewService(resolvePath(dir, cfg.Paths.Ledger))

	var accepted, rejected int
	for _, file := range files {
		msgs, err := parseDump(file.Path, "")
		if err != nil {
			return err
		}

		txns, rejections := classifyBatch(engine, msgs)
		if err := store.Append(txns); err != nil {
			return fmt.Errorf("storing %s: %w", file.Name, err)
		}
		if len(rejections) > 0 {
			if err := rejectlog.Append(dir, rejections); err != nil {
				return fmt.Errorf("logging rejections for %s: %w", file.Name, err)
			}
		}

		if err := inbox.MarkProcessed(inboxDir, file.Name); err != nil {
			return err
		}

		accepted += len(txns)
		rejected += len(rejections)
		cmd.Printf("%s: %d transactions, %d rejected\n", file.Name, len(txns), len(rejections))
	}

	cmd.Printf("Imported %d transactions (%d messages rejected)\n", accepted, rejected)
	return nil
}

// classifyBatch runs every message through the engine, separating accepted
// transactions from rejection log entries.
func classifyBatch(engine *classify.Engine, msgs []model.RawMessage) ([]model.Transaction, []rejectlog.Entry) {
	var txns []model.Transaction
	var rejections []rejectlog.Entry

	for _, msg := range msgs {
		txn, reason := engine.Classify(msg)
		if reason == classify.RejectNone {
			txns = append(txns, txn)
			continue
		}

		ts, ok := msg.Time()
		if !ok {
			ts = time.Now()
		}
		rejections = append(rejections, rejectlog.Entry{
			Timestamp: ts,
			Sender:    msg.Sender,
			Reason:    reason.String(),
			Excerpt:   rejectlog.Excerpt(msg.Text),
		})
	}

	return txns, rejections
}
