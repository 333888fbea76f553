package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// undatedFile holds transactions whose source message had no timestamp.
const undatedFile = "undated.csv"

// Service stores accepted transactions as monthly CSV files under a root
// directory: <root>/YYYY/MM/transactions.csv, plus <root>/undated.csv for
// records without a timestamp.
type Service struct {
	root string
}

// NewService creates a ledger Service rooted at dir.
func NewService(dir string) *Service {
	return &Service{root: dir}
}

// Append validates and stores transactions, routing each to its month's
// file by OccurredAt. Nothing is written if any record fails validation.
func (s *Service) Append(txns []model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	if verrs := ValidateTransactions(txns); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	// Group by destination file, preserving order within each group.
	groups := make(map[string][]model.Transaction)
	var order []string
	for _, txn := range txns {
		path := s.pathFor(txn)
		if _, seen := groups[path]; !seen {
			order = append(order, path)
		}
		groups[path] = append(groups[path], txn)
	}

	for _, path := range order {
		if err := s.appendFile(path, groups[path]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) appendFile(path string, txns []model.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger file: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, txns); err != nil {
		return fmt.Errorf("appending transactions: %w", err)
	}
	return nil
}

// ReadMonth reads all transactions recorded for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.Transaction, error) {
	return s.readFile(s.monthPath(year, month))
}

// ReadUndated reads transactions without a timestamp.
func (s *Service) ReadUndated() ([]model.Transaction, error) {
	return s.readFile(filepath.Join(s.root, undatedFile))
}

// ReadAll reads every stored transaction: all monthly files plus the
// undated file.
func (s *Service) ReadAll() ([]model.Transaction, error) {
	paths, err := filepath.Glob(filepath.Join(s.root, "[0-9][0-9][0-9][0-9]", "[0-9][0-9]", "transactions.csv"))
	if err != nil {
		return nil, fmt.Errorf("listing ledger files: %w", err)
	}

	var all []model.Transaction
	for _, path := range paths {
		txns, err := s.readFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, txns...)
	}

	undated, err := s.ReadUndated()
	if err != nil {
		return nil, err
	}
	return append(all, undated...), nil
}

func (s *Service) readFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return txns, nil
}

func (s *Service) pathFor(txn model.Transaction) string {
	if !txn.Dated() {
		return filepath.Join(s.root, undatedFile)
	}
	t := txn.OccurredAt.UTC()
	return s.monthPath(t.Year(), int(t.Month()))
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "transactions.csv")
}
