package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/buildinfo"
	"github.com/fintrack-dev/fintrack/internal/classify"
	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/logger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "fintrack",
		Short:   "Extract financial transactions from notification messages",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log rejected messages")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newClassifyCommand(&verbose))
	rootCmd.AddCommand(newImportCommand(&verbose))
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}

func newLogger(verbose bool) zerolog.Logger {
	log := logger.New()
	if verbose {
		log = log.Level(zerolog.DebugLevel)
	}
	return log
}

// newEngine builds a classification engine from the project config.
func newEngine(cfg *config.Config, log zerolog.Logger) *classify.Engine {
	return classify.NewEngine(
		classify.WithWorkers(cfg.Workers),
		classify.WithLogger(log),
		classify.WithExtraVocabulary(classify.Vocabulary{
			Exclusions: cfg.Vocabulary.Exclusions,
			Debit:      cfg.Vocabulary.Debit,
			Credit:     cfg.Vocabulary.Credit,
			WalletLoad: cfg.Vocabulary.WalletLoad,
			Recharge:   cfg.Vocabulary.Recharge,
		}),
	)
}
