package inbox

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// FormatCSV is the format key for CSV message dumps.
const FormatCSV = "sms-csv"

// CSVParser parses CSV message dumps with a
// sender,timestamp_millis,text header row.
type CSVParser struct{}

const (
	csvNumFields    = 3
	csvColSender    = 0
	csvColTimestamp = 1
	csvColText      = 2
)

// Format returns the parser name.
func (p *CSVParser) Format() string { return FormatCSV }

// Parse reads a CSV dump and returns RawMessages.
func (p *CSVParser) Parse(r io.Reader) ([]model.RawMessage, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = csvNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading message CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var msgs []model.RawMessage
	for i, rec := range records[1:] {
		m, err := parseCSVRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func parseCSVRow(rec []string) (model.RawMessage, error) {
	var ts int64
	if rec[csvColTimestamp] != "" {
		var err error
		ts, err = strconv.ParseInt(rec[csvColTimestamp], 10, 64)
		if err != nil {
			return model.RawMessage{}, fmt.Errorf("parsing timestamp %q: %w", rec[csvColTimestamp], err)
		}
	}

	return model.RawMessage{
		Sender:          rec[csvColSender],
		TimestampMillis: ts,
		Text:            rec[csvColText],
	}, nil
}
