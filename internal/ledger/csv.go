package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,occurred_at,kind,amount,category,sender,source_text"

const (
	numFields     = 7
	colID         = 0
	colOccurredAt = 1
	colKind       = 2
	colAmount     = 3
	colCategory   = 4
	colSender     = 5
	colSourceText = 6
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a writer (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends transactions to an existing writer (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = txn.ID
	if txn.Dated() {
		row[colOccurredAt] = txn.OccurredAt.UTC().Format(time.RFC3339)
	}
	row[colKind] = string(txn.Kind)
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colCategory] = string(txn.Category)
	row[colSender] = txn.Sender
	row[colSourceText] = txn.SourceText
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var occurredAt time.Time
	if record[colOccurredAt] != "" {
		var err error
		occurredAt, err = time.Parse(time.RFC3339, record[colOccurredAt])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing occurred_at %q: %w", record[colOccurredAt], err)
		}
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Transaction{
		ID:         record[colID],
		OccurredAt: occurredAt,
		Kind:       model.Kind(record[colKind]),
		Amount:     amount,
		Category:   model.Category(record[colCategory]),
		Sender:     record[colSender],
		SourceText: record[colSourceText],
	}, nil
}
