package model

import "time"

// RawMessage is one inbound notification text as supplied by a message
// source. TimestampMillis is epoch milliseconds; zero or negative means the
// source had no timestamp for this message.
type RawMessage struct {
	Text            string
	Sender          string
	TimestampMillis int64
}

// Time returns the message timestamp, and whether one is present.
func (m RawMessage) Time() (time.Time, bool) {
	if m.TimestampMillis <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(m.TimestampMillis), true
}
