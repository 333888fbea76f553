package inbox

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// FormatJSON is the format key for JSON message dumps.
const FormatJSON = "sms-json"

// JSONParser parses JSON message dumps: an array of objects in the shape
// device SMS exporters emit, with the timestamp as a string of epoch millis.
type JSONParser struct{}

type jsonMessage struct {
	Address string `json:"address"`
	Body    string `json:"body"`
	Date    string `json:"date"`
}

// Format returns the parser name.
func (p *JSONParser) Format() string { return FormatJSON }

// Parse reads a JSON dump and returns RawMessages.
func (p *JSONParser) Parse(r io.Reader) ([]model.RawMessage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading message JSON: %w", err)
	}

	var raw []jsonMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing message JSON: %w", err)
	}

	var msgs []model.RawMessage
	for i, jm := range raw {
		var ts int64
		if jm.Date != "" {
			ts, err = strconv.ParseInt(jm.Date, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("message %d: parsing date %q: %w", i, jm.Date, err)
			}
		}
		msgs = append(msgs, model.RawMessage{
			Sender:          jm.Address,
			TimestampMillis: ts,
			Text:            jm.Body,
		})
	}
	return msgs, nil
}
